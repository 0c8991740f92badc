// Package engine computes relocation plans for media files: a normalized
// file name plus a destination folder and subfolder, derived purely from
// host-supplied metadata. Every invocation is an independent computation
// over its context; the engine holds only read-only configuration and is
// safe for concurrent use.
package engine

import (
	"fmt"

	"github.com/renamarr/renamarr/internal/models"
)

// Categories holds the routing category names matched against destination
// folder names.
type Categories struct {
	Series     string
	Movies     string
	Restricted string
}

// DefaultCategories returns the stock category names.
func DefaultCategories() Categories {
	return Categories{
		Series:     "Anime",
		Movies:     "Movies",
		Restricted: "Hentai",
	}
}

// DefaultPreference returns the stock title language preference order.
func DefaultPreference() []models.Language {
	return []models.Language{models.LanguageEnglish, models.LanguageRomaji}
}

type Engine struct {
	preference []models.Language
	categories Categories
}

func New(preference []models.Language, categories Categories) *Engine {
	if len(preference) == 0 {
		preference = DefaultPreference()
	}
	if categories == (Categories{}) {
		categories = DefaultCategories()
	}
	return &Engine{
		preference: preference,
		categories: categories,
	}
}

// GetNewPath computes the relocation plan for a single context. Name
// assembly runs first; a name failure is surfaced without attempting
// destination resolution.
func (e *Engine) GetNewPath(ctx *models.RelocationContext) (*models.RelocationResult, error) {
	if err := validate(ctx); err != nil {
		return nil, err
	}

	fileName, err := e.BuildFileName(ctx)
	if err != nil {
		return nil, err
	}

	folder, subfolder, err := e.ResolveDestination(ctx)
	if err != nil {
		return nil, err
	}

	return &models.RelocationResult{
		FileName:    fileName,
		Destination: folder,
		Subfolder:   subfolder,
	}, nil
}

func validate(ctx *models.RelocationContext) error {
	if ctx.FirstSeries() == nil {
		return fmt.Errorf("%w: no series metadata", ErrInvalidContext)
	}
	if ctx.FirstEpisode() == nil {
		return fmt.Errorf("%w: no episode metadata", ErrInvalidContext)
	}
	return nil
}
