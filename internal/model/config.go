package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// IssueConfig holds settings for the external issue-tracker integration.
type IssueConfig struct {
	// BaseURL is the "new issue" endpoint of the target tracker.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Template is the issue-template identifier passed as a query
	// parameter.
	Template string `mapstructure:"template" yaml:"template"`
}

// SyncConfig holds settings for the build-provenance indicator.
type SyncConfig struct {
	// LogPath is the local sync log file written by the content-sync
	// script.
	LogPath string `mapstructure:"log_path" yaml:"log_path"`

	// InfoURL, when set, is fetched instead of reading LogPath directly
	// (a companion `evidence-author serve` instance).
	InfoURL string `mapstructure:"info_url" yaml:"info_url"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`

	// SplitRatio is the starting width fraction of the editor pane.
	SplitRatio float64 `mapstructure:"split_ratio" yaml:"split_ratio"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Issue   IssueConfig   `mapstructure:"issue" yaml:"issue"`
	Sync    SyncConfig    `mapstructure:"sync" yaml:"sync"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/evidence-author/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "evidence-author", "config.yaml")
}

// Production defaults for the issue tracker integration.
const (
	DefaultIssueBaseURL  = "https://github.com/department-of-veterans-affairs/va.gov-team/issues/new"
	DefaultIssueTemplate = "benefits-management-tools-improved-evidence-requests.yml"
	DefaultSyncLogPath   = "vets-website-sync/sync.log"
)

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Issue: IssueConfig{
			BaseURL:  DefaultIssueBaseURL,
			Template: DefaultIssueTemplate,
		},
		Sync: SyncConfig{
			LogPath: DefaultSyncLogPath,
		},
		Display: DisplayConfig{
			Theme:      "default",
			SplitRatio: 0.45,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// An empty path means the default location (DefaultConfigPath). If the
// file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("issue.base_url", DefaultIssueBaseURL)
	v.SetDefault("issue.template", DefaultIssueTemplate)
	v.SetDefault("sync.log_path", DefaultSyncLogPath)
	v.SetDefault("display.theme", "default")
	v.SetDefault("display.split_ratio", 0.45)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.SplitRatio <= 0 || cfg.Display.SplitRatio >= 1 {
		cfg.Display.SplitRatio = 0.45
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("issue", cfg.Issue)
	v.Set("sync", cfg.Sync)
	v.Set("display", cfg.Display)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
