package engine

import (
	"fmt"
	"strings"

	"github.com/renamarr/renamarr/internal/models"
	"github.com/renamarr/renamarr/internal/utils"
)

// categoryFor partitions a series into exactly one routing category. The
// restricted flag takes priority over the movie/series split.
func (e *Engine) categoryFor(series *models.SeriesInfo) string {
	switch {
	case series.Restricted:
		return e.categories.Restricted
	case series.IsMovie():
		return e.categories.Movies
	default:
		return e.categories.Series
	}
}

// ResolveDestination picks the destination folder whose name matches the
// series' routing category (case-insensitive, first match in list order) and
// derives the sanitized series-title subfolder. It never invents a folder:
// when no configured folder matches, the invocation fails.
func (e *Engine) ResolveDestination(ctx *models.RelocationContext) (models.DestinationFolder, string, error) {
	series := ctx.FirstSeries()
	category := e.categoryFor(series)

	for _, folder := range ctx.AvailableFolders {
		if strings.EqualFold(folder.Name, category) {
			return folder, utils.SanitizeFileName(e.seriesTitle(series)), nil
		}
	}

	return models.DestinationFolder{}, "", fmt.Errorf("%w: no folder named %q", ErrDestinationNotFound, category)
}
