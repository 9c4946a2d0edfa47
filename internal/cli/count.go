package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/tiling"
)

// countCommand prints tiling counts without enumerating.
func (c *CLI) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count [width...]",
		Short: "Print the number of tilings for each width",
		Long: `Print the number of tilings of a 2×N board for each width.

Counts follow the Fibonacci numbers and are computed directly, so widths
far beyond what list can display are fine. Without arguments widths
0 through the configured maximum are shown. A range such as 10-20 expands
to every width in it.`,
		Example: `  dominoes count
  dominoes count 10 50 100
  dominoes count 1-20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			widths, err := parseWidths(args, c.Config.Gallery.Max)
			if err != nil {
				return err
			}
			fmt.Println(countTable(widths))
			return nil
		},
	}
}

// maxCountRange bounds how many rows a single range argument may expand to.
const maxCountRange = 1000

// maxCountWidth is the largest width whose count is computed. Counting
// costs big-integer additions proportional to the width squared.
const maxCountWidth = 10000

// parseWidths turns arguments into widths. No arguments means 0..hi.
func parseWidths(args []string, hi int) ([]int, error) {
	if len(args) == 0 {
		widths := make([]int, 0, hi+1)
		for n := 0; n <= hi; n++ {
			widths = append(widths, n)
		}
		return widths, nil
	}

	var widths []int
	for _, arg := range args {
		first, last, isRange := strings.Cut(arg, "-")
		if !isRange || first == "" {
			n, err := parseCountWidth(arg)
			if err != nil {
				return nil, err
			}
			widths = append(widths, n)
			continue
		}
		from, err := parseCountWidth(first)
		if err != nil {
			return nil, err
		}
		to, err := parseCountWidth(last)
		if err != nil {
			return nil, err
		}
		if from > to {
			return nil, errors.New(errors.ErrCodeInvalidWidth, "range %q is reversed", arg)
		}
		if to-from >= maxCountRange {
			return nil, errors.New(errors.ErrCodeInvalidWidth, "range %q has more than %d widths", arg, maxCountRange)
		}
		for n := from; n <= to; n++ {
			widths = append(widths, n)
		}
	}
	return widths, nil
}

func parseCountWidth(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, errors.New(errors.ErrCodeInvalidWidth, "width %q is not a non-negative integer", s)
	}
	if n > maxCountWidth {
		return 0, errors.New(errors.ErrCodeInvalidWidth, "width %d exceeds the maximum of %d", n, maxCountWidth)
	}
	return n, nil
}

// countFor returns the tiling count for small widths as an int64.
func countFor(n int) int64 {
	return tiling.Count(n).Int64()
}

// countTable renders widths and their counts as a bordered table.
func countTable(widths []int) string {
	rows := make([][]string, len(widths))
	for i, n := range widths {
		rows[i] = []string{strconv.Itoa(n), tiling.Count(n).String()}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Width", "Tilings").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return cellStyle.Foreground(colorCyan).Align(lipgloss.Right)
			}
			return cellStyle.Foreground(colorWhite).Align(lipgloss.Right)
		})
	return t.Render()
}
