package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ipath/pkg/colormap"
	"github.com/matzehuels/ipath/pkg/errors"
	"github.com/matzehuels/ipath/pkg/ipath"
)

// configFile is the config file name inside the config directory.
const configFile = "config.toml"

// duration decodes TOML strings such as "90s" or "2m".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds user defaults read from config.toml.
// Command-line flags override these values.
type Config struct {
	Timeout            duration      `toml:"timeout"`
	MappingURL         string        `toml:"mapping_url"`
	InspectURL         string        `toml:"inspect_url"`
	SequentialColormap string        `toml:"sequential_colormap"`
	DivergingColormap  string        `toml:"diverging_colormap"`
	Defaults           ipath.Options `toml:"defaults"`
}

// defaultConfig returns the built-in configuration.
func defaultConfig() Config {
	return Config{
		Timeout:            duration{ipath.DefaultTimeout},
		MappingURL:         ipath.DefaultMappingURL,
		InspectURL:         ipath.DefaultInspectURL,
		SequentialColormap: colormap.DefaultSequential,
		DivergingColormap:  colormap.DefaultDiverging,
		Defaults:           ipath.DefaultOptions(),
	}
}

// configDir returns the config directory using XDG standard (~/.config/ipath/).
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

// defaultConfigPath returns the location of the default config file.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// loadConfig reads path on top of the built-in defaults.
//
// If explicit is false a missing file is not an error. Unknown keys are
// logged and ignored. A malformed file, or one naming an invalid export
// type or colormap, fails with INVALID_CONFIG.
func loadConfig(path string, explicit bool, logger *log.Logger) (Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		logger.Debug("no config file", "path", path)
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "key", key.String(), "path", path)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	logger.Debug("loaded config", "path", path)
	return cfg, nil
}

func (c Config) validate() error {
	if err := c.Defaults.Validate(); err != nil {
		return err
	}
	for _, name := range []string{c.SequentialColormap, c.DivergingColormap} {
		if _, err := colormap.Lookup(name); err != nil {
			return err
		}
	}
	if c.Timeout.Duration < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout.Duration)
	}
	return nil
}

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the configuration file and effective settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.configPath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(c.cfg)
		},
	})

	return cmd
}
