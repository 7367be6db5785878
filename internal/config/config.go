package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level persona configuration.
type Config struct {
	// StateDir is where session state files live. Empty means the OS
	// temporary directory.
	StateDir string  `mapstructure:"state_dir"`
	Display  Display `mapstructure:"display"`
	Journal  Journal `mapstructure:"journal"`
}

// Display defines which statusline segments are rendered.
type Display struct {
	ShowPersonality     bool `mapstructure:"show_personality"`
	ShowActivity        bool `mapstructure:"show_activity"`
	ShowCurrentJob      bool `mapstructure:"show_current_job"`
	ShowErrorIndicators bool `mapstructure:"show_error_indicators"`
	ShowModel           bool `mapstructure:"show_model"`
	Color               bool `mapstructure:"color"`
}

// Journal defines the optional SQLite event journal.
type Journal struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("state_dir", "")
	v.SetDefault("display.show_personality", DefaultDisplay.ShowPersonality)
	v.SetDefault("display.show_activity", DefaultDisplay.ShowActivity)
	v.SetDefault("display.show_current_job", DefaultDisplay.ShowCurrentJob)
	v.SetDefault("display.show_error_indicators", DefaultDisplay.ShowErrorIndicators)
	v.SetDefault("display.show_model", DefaultDisplay.ShowModel)
	v.SetDefault("display.color", DefaultDisplay.Color)
	v.SetDefault("journal.enabled", DefaultJournal.Enabled)
	v.SetDefault("journal.path", JournalPath())

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.StateDir = expandPath(cfg.StateDir)
	cfg.Journal.Path = expandPath(cfg.Journal.Path)

	return &cfg, nil
}

// JournalPath returns the default path to the SQLite event journal.
func JournalPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultJournalName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
