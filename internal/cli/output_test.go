package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/dominoes/pkg/errors"
)

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"out.svg":      "svg",
		"OUT.PNG":      "png",
		"a/b/c.pdf":    "pdf",
		"tilings.json": "json",
		"tree.gv":      "dot",
		"tree.dot":     "dot",
		"cards.txt":    "text",
		"noext":        "",
		"image.gif":    "",
	}
	for path, want := range tests {
		if got := formatFromPath(path); got != want {
			t.Errorf("formatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		flag, output, fallback string
		want                   string
		wantErr                bool
	}{
		{"png", "x.svg", "json", "png", false},
		{"", "x.pdf", "svg", "pdf", false},
		{"", "", "json", "json", false},
		{"", "x.unknown", "svg", "svg", false},
		{" SVG ", "", "", "svg", false},
		{"gif", "", "svg", "", true},
	}
	for _, tt := range tests {
		got, err := resolveFormat(tt.flag, tt.output, tt.fallback)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveFormat(%q, %q, %q) error = %v", tt.flag, tt.output, tt.fallback, err)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("error code = %s", errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("resolveFormat(%q, %q, %q) = %q, want %q", tt.flag, tt.output, tt.fallback, got, tt.want)
		}
	}
}

func TestDefaultOutput(t *testing.T) {
	tests := []struct {
		prefix, format string
		want           string
	}{
		{"tilings", "svg", "tilings-4.svg"},
		{"tilings", "text", "tilings-4.txt"},
		{"tree", "tree", "tree-4.svg"},
		{"tree", "dot", "tree-4.dot"},
		{"tree", "tree-png", "tree-4.png"},
	}
	for _, tt := range tests {
		if got := defaultOutput(tt.prefix, 4, tt.format); got != tt.want {
			t.Errorf("defaultOutput(%q, 4, %q) = %q, want %q", tt.prefix, tt.format, got, tt.want)
		}
	}
}

func TestTreeFormat(t *testing.T) {
	tests := []struct {
		opts treeOpts
		want string
	}{
		{treeOpts{}, "tree"},
		{treeOpts{output: "t.svg"}, "tree"},
		{treeOpts{output: "t.PNG"}, "tree-png"},
		{treeOpts{output: "t.png", dot: true}, "dot"},
	}
	for _, tt := range tests {
		if got := treeFormat(tt.opts); got != tt.want {
			t.Errorf("treeFormat(%+v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := writeOutput(path, []byte("VHV")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "VHV" {
		t.Errorf("file = %q", got)
	}
	if err := writeOutput(filepath.Join(t.TempDir(), "missing", "out.txt"), nil); err == nil {
		t.Error("writeOutput into a missing directory should fail")
	}
}
