// Package cli implements the ipath command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ipath/pkg/buildinfo"
	"github.com/matzehuels/ipath/pkg/ipath"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "ipath"

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
	Logger *log.Logger

	configPath string // --config, or the default location
	cfg        Config // loaded before any subcommand runs
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    defaultConfig(),
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
		Short: "ipath maps tabular data onto iPath metabolic pathway maps",
		Long: `ipath turns a table of identifiers and numeric columns into an iPath
selection, where each column can drive color, line width or opacity, and
submits it to the iPath web service to render a pathway map.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.registerHooks()
			return c.initConfig(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ipath/config.toml)")

	root.AddCommand(c.mapCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.selectionCommand())
	root.AddCommand(c.scaleCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// initConfig resolves the config path and reads it into c.cfg.
func (c *CLI) initConfig(cmd *cobra.Command) error {
	explicit := cmd.Flags().Changed("config")
	if !explicit {
		path, err := defaultConfigPath()
		if err != nil {
			c.Logger.Debug("no config directory", "error", err)
			c.cfg = defaultConfig()
			return nil
		}
		c.configPath = path
	}

	cfg, err := loadConfig(c.configPath, explicit, c.Logger)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// =============================================================================
// Client Factory
// =============================================================================

// newClient creates an iPath client from the effective configuration.
func (c *CLI) newClient() *ipath.Client {
	return ipath.NewClient(
		ipath.WithTimeout(c.cfg.Timeout.Duration),
		ipath.WithMappingURL(c.cfg.MappingURL),
		ipath.WithInspectURL(c.cfg.InspectURL),
		ipath.WithLogger(c.Logger),
	)
}
