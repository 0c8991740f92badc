package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/renamarr/renamarr/internal/models"
)

type Config struct {
	Paths         PathsConfig         `toml:"paths"`
	Naming        NamingConfig        `toml:"naming"`
	Routing       RoutingConfig       `toml:"routing"`
	Destinations  []DestinationConfig `toml:"destinations"`
	Outputs       OutputConfig        `toml:"outputs"`
	Notifications NotificationConfig  `toml:"notifications"`
	Watch         WatchConfig         `toml:"watch"`
}

type PathsConfig struct {
	DropDir string `toml:"drop_dir"`
}

type NamingConfig struct {
	TitlePreference []string `toml:"title_preference"`
}

type RoutingConfig struct {
	SeriesCategory     string `toml:"series_category"`
	MoviesCategory     string `toml:"movies_category"`
	RestrictedCategory string `toml:"restricted_category"`
}

type DestinationConfig struct {
	ID   int    `toml:"id"`
	Name string `toml:"name"`
	Path string `toml:"path"`
	Type string `toml:"type"`
}

type OutputConfig struct {
	ReportDir string `toml:"report_dir"`
}

type NotificationConfig struct {
	DiscordWebhook string `toml:"discord_webhook"`
}

type WatchConfig struct {
	SettleMillis int `toml:"settle_ms"`
}

func (c *Config) Validate() error {
	if c.Paths.DropDir == "" {
		return fmt.Errorf("paths.drop_dir is required")
	}

	if len(c.Destinations) == 0 {
		return fmt.Errorf("at least one [[destinations]] entry is required")
	}

	for i, dest := range c.Destinations {
		if dest.Name == "" {
			return fmt.Errorf("destinations[%d].name is required", i)
		}
		if dest.Path == "" {
			return fmt.Errorf("destinations[%d].path is required", i)
		}
	}

	for _, lang := range c.Naming.TitlePreference {
		if models.ParseLanguage(lang) == models.LanguageUnknown {
			return fmt.Errorf("naming.title_preference: unknown language %q", lang)
		}
	}

	return nil
}

// TitlePreference returns the configured language preference order as
// model values.
func (c *Config) TitlePreference() []models.Language {
	preference := make([]models.Language, 0, len(c.Naming.TitlePreference))
	for _, lang := range c.Naming.TitlePreference {
		preference = append(preference, models.ParseLanguage(lang))
	}
	return preference
}

// DestinationFolders returns the configured destinations as model values.
func (c *Config) DestinationFolders() []models.DestinationFolder {
	folders := make([]models.DestinationFolder, 0, len(c.Destinations))
	for i, dest := range c.Destinations {
		id := dest.ID
		if id == 0 {
			id = i + 1
		}
		folderType := models.FolderType(strings.ToLower(dest.Type))
		if folderType == "" {
			folderType = models.FolderTypeDestination
		}
		folders = append(folders, models.DestinationFolder{
			ID:   id,
			Name: dest.Name,
			Path: dest.Path,
			Type: folderType,
		})
	}
	return folders
}

func DefaultTitlePreference() []string {
	return []string{"english", "romaji"}
}

func DefaultReportDir() string {
	switch runtime.GOOS {
	case "darwin":
		return "$HOME/Library/Application Support/renamarr/reports"
	case "linux":
		return "/var/lib/renamarr/reports"
	default:
		return "./reports"
	}
}
