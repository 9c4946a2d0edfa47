package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dominoes/pkg/buildinfo"
	"github.com/matzehuels/dominoes/pkg/cache"
	"github.com/matzehuels/dominoes/pkg/gallery"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dominoes"

	// defaultAddr is the listen address for the gallery server.
	defaultAddr = ":8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	Config     Config
	configPath string
}

// New creates a new CLI instance with a default logger and built-in
// configuration. The config file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Dominoes enumerates every domino tiling of a 2×N board",
		Long: `Dominoes lists, counts and draws every way to tile a 2×N board with
vertical dominoes and stacked horizontal pairs.

Results can be printed as terminal cards, written as SVG, PNG, PDF, JSON or
Graphviz files, browsed interactively, or served over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/dominoes/config.toml)")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Gallery Factory
// =============================================================================

// newGallery creates a gallery from the loaded configuration. One-shot
// commands pass noCache because they render each artifact once.
func (c *CLI) newGallery(noCache bool, delay bool) (*gallery.Gallery, error) {
	opts := c.Config.GalleryOptions()
	if !delay {
		opts.Delay = 0
	}
	var store cache.Cache = cache.NewMemoryCache(c.Config.Server.CacheSize)
	if noCache {
		store = cache.NewNullCache()
	}
	return gallery.New(opts,
		gallery.WithCache(store),
		gallery.WithLogger(c.Logger))
}
