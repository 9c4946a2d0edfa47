package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/dominoes/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	opts := cfg.GalleryOptions()
	if opts.Min != 1 || opts.Max != 10 || opts.Default != 4 || opts.Delay != 100*time.Millisecond {
		t.Errorf("GalleryOptions() = %+v", opts)
	}
	if cfg.Server.Addr != defaultAddr {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[gallery]
max = 8
default_width = 6
delay = "250ms"

[render]
style = "blueprint"
columns = 3
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Gallery.Min != 1 {
		t.Errorf("Min = %d, want default 1", cfg.Gallery.Min)
	}
	if cfg.Gallery.Max != 8 || cfg.Gallery.DefaultWidth != 6 {
		t.Errorf("Gallery = %+v", cfg.Gallery)
	}
	if cfg.Gallery.Delay.Duration != 250*time.Millisecond {
		t.Errorf("Delay = %s", cfg.Gallery.Delay)
	}
	if cfg.Render.Style != "blueprint" || cfg.Render.Columns != 3 || cfg.Render.Format != "svg" {
		t.Errorf("Render = %+v", cfg.Render)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[gallery\nmax = 3"},
		{"unknown key", "[gallery]\nheight = 3\n"},
		{"bad delay", "[gallery]\ndelay = \"soon\"\n"},
		{"inverted bounds", "[gallery]\nmin = 5\nmax = 2\n"},
		{"bad format", "[render]\nformat = \"gif\"\n"},
		{"bad style", "[render]\nstyle = \"neon\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("LoadConfig() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadConfigFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, appName, "config.toml"), []byte("[server]\naddr = \":9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(os.Stderr, LogInfo)
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if c.Config.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", c.Config.Server.Addr)
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c := New(os.Stderr, LogInfo)
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if c.Config != DefaultConfig() {
		t.Error("missing file changed the config")
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.configPath = filepath.Join(t.TempDir(), "nope.toml")
	if err := c.loadConfig(); err == nil {
		t.Error("explicit missing config should fail")
	}
}
