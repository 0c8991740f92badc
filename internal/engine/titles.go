package engine

import "github.com/renamarr/renamarr/internal/models"

// ResolveTitle scans the preference order and returns the first title whose
// language matches the highest-priority language that has any match. A later
// preference entry never overrides a match for an earlier one. When kind is
// models.TitleKindAny the kind filter is disabled. ok is false when no
// preferred language yields a match.
func ResolveTitle(titles []models.Title, kind models.TitleKind, preference []models.Language) (text string, ok bool) {
	for _, lang := range preference {
		for _, t := range titles {
			if t.Language != lang {
				continue
			}
			if kind != models.TitleKindAny && t.Kind != kind {
				continue
			}
			return t.Text, true
		}
	}
	return "", false
}

// seriesTitle resolves the official series title in preference order,
// falling back to the host-supplied preferred title.
func (e *Engine) seriesTitle(series *models.SeriesInfo) string {
	if text, ok := ResolveTitle(series.Titles, models.TitleKindOfficial, e.preference); ok {
		return text
	}
	return series.PreferredTitle
}

// episodeTitle resolves the episode title in preference order, falling back
// to the first title in the collection. An episode without any title is a
// hard failure.
func (e *Engine) episodeTitle(episode *models.EpisodeInfo) (string, error) {
	if text, ok := ResolveTitle(episode.Titles, models.TitleKindAny, e.preference); ok {
		return text, nil
	}
	if len(episode.Titles) == 0 {
		return "", ErrNoEpisodeTitle
	}
	return episode.Titles[0].Text, nil
}
