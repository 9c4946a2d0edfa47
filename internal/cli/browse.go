package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/gallery"
	"github.com/matzehuels/dominoes/pkg/render/sink"
)

// Browser styles
var (
	browseInputStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	browseErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
	browseDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	browseCardStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1).
				MarginRight(1)
)

// maxInputLen caps the width field.
const maxInputLen = 3

// browseCommand opens the interactive gallery.
func (c *CLI) browseCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse tilings interactively",
		Long: `Browse the tilings of a 2×N board in the terminal.

Type a width and press enter, or step with + and -. Use the arrow keys to
scroll through the cards and r to reset to the default width.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.newGallery(false, true)
			if err != nil {
				return err
			}
			defer g.Close()

			if width == 0 {
				width = g.Width()
			}
			m := newBrowseModel(cmd.Context(), g, strconv.Itoa(width))
			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			if bm, ok := final.(browseModel); ok && bm.result != nil {
				printInfo("%s", bm.result.Summary())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "initial board width (default from config)")

	return cmd
}

// generatedMsg carries the outcome of a Generate call back to the model.
type generatedMsg struct {
	res *gallery.Result
	err error
}

// browseModel is the bubbletea model for the interactive gallery.
type browseModel struct {
	ctx     context.Context
	gallery *gallery.Gallery

	input   string          // Width field as typed
	result  *gallery.Result // Cards on screen
	err     error           // Last validation or generation error
	loading bool

	offset int // First visible card row
	termW  int // Terminal size; zero until the first WindowSizeMsg
	termH  int
}

func newBrowseModel(ctx context.Context, g *gallery.Gallery, input string) browseModel {
	return browseModel{
		ctx:     ctx,
		gallery: g,
		input:   input,
		loading: true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.generate()
}

func (m browseModel) generate() tea.Cmd {
	g, ctx, input := m.gallery, m.ctx, m.input
	return func() tea.Msg {
		res, err := g.Generate(ctx, input)
		return generatedMsg{res: res, err: err}
	}
}

// submit validates the field and starts a run. Invalid input keeps the
// current cards on screen and only shows the message.
func (m browseModel) submit() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	opts := m.gallery.Options()
	if _, err := errors.ParseWidth(m.input, opts.Min, opts.Max); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.loading = true
	m.result = nil
	m.offset = 0
	return m, m.generate()
}

func (m browseModel) step(delta int) (tea.Model, tea.Cmd) {
	n, err := strconv.Atoi(m.input)
	if err != nil {
		n = m.gallery.Width()
	}
	opts := m.gallery.Options()
	m.input = strconv.Itoa(min(max(n+delta, opts.Min), opts.Max))
	return m.submit()
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if errors.Is(msg.err, errors.ErrCodeBusy) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.result = msg.res
		m.err = nil
		m.offset = 0

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "+", "=", "right", "l":
			return m.step(1)
		case "-", "_", "left", "h":
			return m.step(-1)
		case "r":
			m.gallery.Reset()
			m.input = strconv.Itoa(m.gallery.Width())
			m.result = nil
			m.err = nil
			m.offset = 0
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' && len(m.input) < maxInputLen {
				m.input += s
			}
		}

	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		m.offset = min(m.offset, m.maxOffset())
	}
	return m, nil
}

// cardWidth and cardHeight measure one framed card at the current width.
func (m browseModel) cardWidth() int {
	return lipgloss.Width(m.frame(0)) + 1
}

func (m browseModel) cardHeight() int {
	return lipgloss.Height(m.frame(0))
}

func (m browseModel) frame(i int) string {
	if m.result == nil || i >= len(m.result.Cards) {
		return browseCardStyle.Render("Tiling #0\n\n")
	}
	return browseCardStyle.Render(sink.RenderTextCard(m.result.Cards[i], sink.WithTextColor(true)))
}

// columns is the number of cards per row at the current terminal width.
func (m browseModel) columns() int {
	if m.termW == 0 {
		return 4
	}
	return max(1, m.termW/m.cardWidth())
}

// rows is the number of card rows that fit below the header.
func (m browseModel) rows() int {
	if m.termH == 0 {
		return 3
	}
	return max(1, (m.termH-8)/m.cardHeight())
}

func (m browseModel) cardRows() int {
	if m.result == nil {
		return 0
	}
	cols := m.columns()
	return (len(m.result.Cards) + cols - 1) / cols
}

func (m browseModel) maxOffset() int {
	return max(0, m.cardRows()-m.rows())
}

func (m browseModel) View() string {
	var b strings.Builder
	opts := m.gallery.Options()

	b.WriteString(StyleTitle.Render("Domino Tilings"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Width %s %s\n",
		browseInputStyle.Render("["+m.input+"_]"),
		browseDimStyle.Render(fmt.Sprintf("(%d-%d)", opts.Min, opts.Max)))

	switch {
	case m.err != nil:
		b.WriteString(browseErrorStyle.Render(iconError + " " + errors.UserMessage(m.err)))
	case m.loading:
		b.WriteString(browseDimStyle.Render("Generating..."))
	case m.result != nil:
		b.WriteString(StyleSuccess.Render(m.result.Summary()))
	}
	b.WriteString("\n\n")

	if m.result != nil {
		cols, rows := m.columns(), m.rows()
		end := min(m.cardRows(), m.offset+rows)
		for row := m.offset; row < end; row++ {
			var cards []string
			for col := 0; col < cols; col++ {
				i := row*cols + col
				if i >= len(m.result.Cards) {
					break
				}
				cards = append(cards, m.frame(i))
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
			b.WriteString("\n")
		}
		if m.cardRows() > rows {
			b.WriteString(browseDimStyle.Render(fmt.Sprintf("  rows %d-%d of %d", m.offset+1, end, m.cardRows())))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("0-9 width  ⏎ generate  +/- step  ↑/↓ scroll  r reset  q quit"))
	return b.String()
}
