package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Naming.TitlePreference) == 0 {
		c.Naming.TitlePreference = DefaultTitlePreference()
	}

	if c.Routing.SeriesCategory == "" {
		c.Routing.SeriesCategory = "Anime"
	}

	if c.Routing.MoviesCategory == "" {
		c.Routing.MoviesCategory = "Movies"
	}

	if c.Routing.RestrictedCategory == "" {
		c.Routing.RestrictedCategory = "Hentai"
	}

	if c.Outputs.ReportDir == "" {
		c.Outputs.ReportDir = DefaultReportDir()
	}

	if c.Watch.SettleMillis <= 0 {
		c.Watch.SettleMillis = 500
	}
}

// GetReportPath resolves the report directory, expanding a leading `~` or
// `$HOME`.
func (c *Config) GetReportPath() string {
	reportDir := c.Outputs.ReportDir
	if reportDir == "" {
		reportDir = DefaultReportDir()
	}

	if (len(reportDir) >= 1 && reportDir[:1] == "~") || (len(reportDir) >= 5 && reportDir[:5] == "$HOME") {
		home, _ := os.UserHomeDir()
		if home != "" {
			if reportDir[:1] == "~" {
				reportDir = filepath.Join(home, reportDir[1:])
			} else {
				reportDir = filepath.Join(home, reportDir[6:])
			}
		}
	}

	return reportDir
}
