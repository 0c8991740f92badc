package engine

import (
	"fmt"

	"github.com/renamarr/renamarr/internal/models"
)

// categoryPrefix maps each episode category to its single-letter label tag.
// Regular episodes and "other" entries carry no tag.
var categoryPrefix = map[models.EpisodeType]string{
	models.EpisodeTypeEpisode: "",
	models.EpisodeTypeCredits: "C",
	models.EpisodeTypeSpecial: "S",
	models.EpisodeTypeTrailer: "T",
	models.EpisodeTypeParody:  "P",
	models.EpisodeTypeOther:   "",
}

// FormatEpisodeLabel renders the zero-padded, category-prefixed episode
// label. Movies have no episode label and get an empty string. The padding
// width is the digit count of the series total for the episode's category,
// never less than one.
func FormatEpisodeLabel(episode *models.EpisodeInfo, series *models.SeriesInfo) (string, error) {
	if series.IsMovie() {
		return "", nil
	}

	count, ok := series.EpisodeCounts.For(episode.Type)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEpisodeType, episode.Type)
	}

	return fmt.Sprintf("%s%0*d", categoryPrefix[episode.Type], digits(count), episode.Number), nil
}

func digits(n int) int {
	if n <= 0 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}
