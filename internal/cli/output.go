package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/render"
)

// nopCloser makes os.Stdout usable as an io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns stdout for an empty path, otherwise creates the file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("open output %s: %w", path, err)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return out.Close()
}

// formatFromPath infers the render format from a file extension.
// ".txt" maps to text and ".gv" to dot; unknown extensions yield "".
func formatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "txt":
		return render.FormatText
	case "gv":
		return render.FormatDOT
	case render.FormatSVG, render.FormatPNG, render.FormatPDF, render.FormatJSON, render.FormatDOT:
		return ext
	}
	return ""
}

// extension returns the file extension written for format.
func extension(format string) string {
	switch format {
	case render.FormatText:
		return "txt"
	case render.FormatTree:
		return render.FormatSVG
	case render.FormatTreePNG:
		return render.FormatPNG
	}
	return format
}

// resolveFormat picks the explicit flag, then the output extension, then
// the fallback, and validates the result.
func resolveFormat(flag, output, fallback string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flag))
	if format == "" {
		format = formatFromPath(output)
	}
	if format == "" {
		format = fallback
	}
	if err := errors.ValidateFormat(format, render.Formats); err != nil {
		return "", err
	}
	return format, nil
}

// defaultOutput names the file written when -o is not given.
func defaultOutput(prefix string, width int, format string) string {
	return fmt.Sprintf("%s-%d.%s", prefix, width, extension(format))
}
