package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renamarr/renamarr/internal/engine"
	"github.com/renamarr/renamarr/internal/models"
)

func TestResolveTitle_PreferenceOrderWins(t *testing.T) {
	titles := []models.Title{
		{Text: "Kidou Senshi", Language: models.LanguageRomaji, Kind: models.TitleKindOfficial},
		{Text: "Mobile Suit", Language: models.LanguageEnglish, Kind: models.TitleKindOfficial},
	}

	text, ok := engine.ResolveTitle(titles, models.TitleKindOfficial,
		[]models.Language{models.LanguageEnglish, models.LanguageRomaji})
	assert.True(t, ok)
	assert.Equal(t, "Mobile Suit", text)
}

func TestResolveTitle_LaterPreferenceNeverOverridesEarlierMatch(t *testing.T) {
	// Romaji is listed first in the collection, but English is the higher
	// priority language; the scan must not fall through to romaji once an
	// English match exists.
	titles := []models.Title{
		{Text: "Romaji Title", Language: models.LanguageRomaji, Kind: models.TitleKindOfficial},
		{Text: "English A", Language: models.LanguageEnglish, Kind: models.TitleKindOfficial},
		{Text: "English B", Language: models.LanguageEnglish, Kind: models.TitleKindOfficial},
	}

	text, ok := engine.ResolveTitle(titles, models.TitleKindOfficial,
		[]models.Language{models.LanguageEnglish, models.LanguageRomaji})
	assert.True(t, ok)
	assert.Equal(t, "English A", text)
}

func TestResolveTitle_ReorderingNonMatchingEntriesIsStable(t *testing.T) {
	preference := []models.Language{models.LanguageEnglish, models.LanguageRomaji}

	a := []models.Title{
		{Text: "日本語", Language: models.LanguageJapanese, Kind: models.TitleKindOfficial},
		{Text: "Match", Language: models.LanguageRomaji, Kind: models.TitleKindOfficial},
	}
	b := []models.Title{
		{Text: "Match", Language: models.LanguageRomaji, Kind: models.TitleKindOfficial},
		{Text: "日本語", Language: models.LanguageJapanese, Kind: models.TitleKindOfficial},
	}

	textA, okA := engine.ResolveTitle(a, models.TitleKindOfficial, preference)
	textB, okB := engine.ResolveTitle(b, models.TitleKindOfficial, preference)
	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, textA, textB)
}

func TestResolveTitle_KindFilter(t *testing.T) {
	titles := []models.Title{
		{Text: "ShortEN", Language: models.LanguageEnglish, Kind: models.TitleKindShort},
		{Text: "OfficialEN", Language: models.LanguageEnglish, Kind: models.TitleKindOfficial},
	}

	text, ok := engine.ResolveTitle(titles, models.TitleKindOfficial,
		[]models.Language{models.LanguageEnglish})
	assert.True(t, ok)
	assert.Equal(t, "OfficialEN", text)

	// TitleKindAny disables the filter; the short title is first in scan order.
	text, ok = engine.ResolveTitle(titles, models.TitleKindAny,
		[]models.Language{models.LanguageEnglish})
	assert.True(t, ok)
	assert.Equal(t, "ShortEN", text)
}

func TestResolveTitle_NoMatch(t *testing.T) {
	titles := []models.Title{
		{Text: "日本語", Language: models.LanguageJapanese, Kind: models.TitleKindOfficial},
	}

	_, ok := engine.ResolveTitle(titles, models.TitleKindOfficial,
		[]models.Language{models.LanguageEnglish, models.LanguageRomaji})
	assert.False(t, ok)
}
