package reporting

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/renamarr/renamarr/internal/collectors"
	"github.com/renamarr/renamarr/internal/engine"
	"github.com/renamarr/renamarr/internal/models"
)

// PlannedFile is one successful relocation plan.
type PlannedFile struct {
	SourcePath  string
	FileName    string
	Destination models.DestinationFolder
	Subfolder   string
}

// TargetPath is the full path the host should move the file to.
func (p PlannedFile) TargetPath() string {
	return filepath.Join(p.Destination.Path, p.Subfolder, p.FileName)
}

// FailedFile is a file the engine could not plan.
type FailedFile struct {
	SourcePath string
	Kind       string
	Reason     string
}

type SummaryStats struct {
	TotalFiles   int
	PlannedCount int
	FailedCount  int
	SkippedCount int
	Duration     time.Duration
}

// PlanReport collects the outcome of one planning run.
type PlanReport struct {
	Planned []PlannedFile
	Failed  []FailedFile
	Skipped []collectors.SkippedFile
	Summary SummaryStats
}

func NewPlanReport() *PlanReport {
	return &PlanReport{}
}

// AddResult records a single engine invocation outcome.
func (r *PlanReport) AddResult(sourcePath string, result *models.RelocationResult, err error) {
	r.Summary.TotalFiles++
	if err != nil {
		r.Summary.FailedCount++
		r.Failed = append(r.Failed, FailedFile{
			SourcePath: sourcePath,
			Kind:       errorKind(err),
			Reason:     err.Error(),
		})
		return
	}

	r.Summary.PlannedCount++
	r.Planned = append(r.Planned, PlannedFile{
		SourcePath:  sourcePath,
		FileName:    result.FileName,
		Destination: result.Destination,
		Subfolder:   result.Subfolder,
	})
}

// AddSkipped records files the collector could not build contexts for.
func (r *PlanReport) AddSkipped(skipped []collectors.SkippedFile) {
	r.Skipped = append(r.Skipped, skipped...)
	r.Summary.SkippedCount += len(skipped)
	r.Summary.TotalFiles += len(skipped)
}

// errorKind maps an engine error to a stable machine-readable kind for
// reports.
func errorKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrEmptyFileName):
		return "empty_file_name"
	case errors.Is(err, engine.ErrDestinationNotFound):
		return "destination_not_found"
	case errors.Is(err, engine.ErrNoEpisodeTitle):
		return "no_episode_title"
	case errors.Is(err, engine.ErrUnknownEpisodeType):
		return "unrecognized_episode_category"
	case errors.Is(err, engine.ErrInvalidContext):
		return "invalid_context"
	default:
		return "error"
	}
}
