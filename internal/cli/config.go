package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dominoes/pkg/cache"
	"github.com/matzehuels/dominoes/pkg/errors"
	"github.com/matzehuels/dominoes/pkg/gallery"
	"github.com/matzehuels/dominoes/pkg/render"
	"github.com/matzehuels/dominoes/pkg/render/styles"
)

// Config is the optional TOML configuration file.
//
//	[gallery]
//	min = 1
//	max = 10
//	default_width = 4
//	delay = "100ms"
//
//	[render]
//	format = "svg"
//	style = "blueprint"
//	columns = 4
//
//	[server]
//	addr = ":8080"
//	cache_size = 128
type Config struct {
	Gallery GalleryConfig `toml:"gallery"`
	Render  RenderConfig  `toml:"render"`
	Server  ServerConfig  `toml:"server"`
}

// GalleryConfig bounds the accepted widths.
type GalleryConfig struct {
	Min          int      `toml:"min"`
	Max          int      `toml:"max"`
	DefaultWidth int      `toml:"default_width"`
	Delay        duration `toml:"delay"`
}

// RenderConfig sets defaults for render, list and serve.
type RenderConfig struct {
	Format  string `toml:"format"`
	Style   string `toml:"style"`
	Columns int    `toml:"columns"`
}

// ServerConfig configures the HTTP gallery.
type ServerConfig struct {
	Addr      string `toml:"addr"`
	CacheSize int    `toml:"cache_size"`
}

// duration decodes TOML strings such as "250ms".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	opts := gallery.DefaultOptions()
	return Config{
		Gallery: GalleryConfig{
			Min:          opts.Min,
			Max:          opts.Max,
			DefaultWidth: opts.Default,
			Delay:        duration{opts.Delay},
		},
		Render: RenderConfig{
			Format: render.FormatSVG,
			Style:  styles.Names[0],
		},
		Server: ServerConfig{
			Addr:      defaultAddr,
			CacheSize: cache.DefaultCapacity,
		},
	}
}

// GalleryOptions converts the [gallery] table.
func (c Config) GalleryOptions() gallery.Options {
	return gallery.Options{
		Min:     c.Gallery.Min,
		Max:     c.Gallery.Max,
		Default: c.Gallery.DefaultWidth,
		Delay:   c.Gallery.Delay.Duration,
	}
}

// Validate checks every table.
func (c Config) Validate() error {
	if err := c.GalleryOptions().Validate(); err != nil {
		return err
	}
	if err := errors.ValidateFormat(c.Render.Format, render.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[render] format")
	}
	if !styles.Valid(c.Render.Style) {
		return errors.New(errors.ErrCodeInvalidConfig, "[render] unknown style %q", c.Render.Style)
	}
	if c.Render.Columns < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "[render] columns %d is negative", c.Render.Columns)
	}
	return nil
}

// LoadConfig reads path on top of DefaultConfig. Keys missing from the
// file keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// loadConfig loads the --config file, or the default path when it exists.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(dir, "config.toml")
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "path", path)
	return nil
}

// configDir returns the config directory using XDG standard (~/.config/dominoes/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
