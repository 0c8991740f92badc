package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renamarr/renamarr/internal/config"
	"github.com/renamarr/renamarr/internal/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[paths]
drop_dir = "/drop"

[[destinations]]
name = "Anime"
path = "/library/anime"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"english", "romaji"}, cfg.Naming.TitlePreference)
	assert.Equal(t, "Anime", cfg.Routing.SeriesCategory)
	assert.Equal(t, "Movies", cfg.Routing.MoviesCategory)
	assert.Equal(t, "Hentai", cfg.Routing.RestrictedCategory)
	assert.Equal(t, 500, cfg.Watch.SettleMillis)
	assert.NotEmpty(t, cfg.Outputs.ReportDir)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[paths]
drop_dir = "/drop"

[naming]
title_preference = ["romaji", "english"]

[routing]
series_category = "Serien"

[[destinations]]
id = 4
name = "Serien"
path = "/library/serien"
type = "destination"

[[destinations]]
name = "Movies"
path = "/library/movies"

[watch]
settle_ms = 1500
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Serien", cfg.Routing.SeriesCategory)
	assert.Equal(t, 1500, cfg.Watch.SettleMillis)
	assert.Equal(t,
		[]models.Language{models.LanguageRomaji, models.LanguageEnglish},
		cfg.TitlePreference())

	folders := cfg.DestinationFolders()
	require.Len(t, folders, 2)
	assert.Equal(t, 4, folders[0].ID)
	assert.Equal(t, models.FolderTypeDestination, folders[0].Type)
	// Unset IDs fall back to list position.
	assert.Equal(t, 2, folders[1].ID)
}

func TestLoad_MissingDropDir(t *testing.T) {
	path := writeConfig(t, `
[[destinations]]
name = "Anime"
path = "/library/anime"
`)

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "paths.drop_dir is required")
}

func TestLoad_MissingDestinations(t *testing.T) {
	path := writeConfig(t, `
[paths]
drop_dir = "/drop"
`)

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "destinations")
}

func TestLoad_UnknownPreferenceLanguage(t *testing.T) {
	path := writeConfig(t, `
[paths]
drop_dir = "/drop"

[naming]
title_preference = ["klingon"]

[[destinations]]
name = "Anime"
path = "/library/anime"
`)

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "unknown language")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")
}
