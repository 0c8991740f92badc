package reporting_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renamarr/renamarr/internal/collectors"
	"github.com/renamarr/renamarr/internal/engine"
	"github.com/renamarr/renamarr/internal/models"
	"github.com/renamarr/renamarr/internal/reporting"
)

func sampleResult() *models.RelocationResult {
	return &models.RelocationResult{
		FileName: "My Show - 03 - The Beginning[ensub][10bit][HEVC][GRP].mkv",
		Destination: models.DestinationFolder{
			ID: 1, Name: "Anime", Path: "/library/anime",
		},
		Subfolder: "My Show",
	}
}

func TestPlanReport_AddResult(t *testing.T) {
	report := reporting.NewPlanReport()

	report.AddResult("/drop/src.mkv", sampleResult(), nil)
	report.AddResult("/drop/bad.mkv", nil, engine.ErrDestinationNotFound)

	assert.Equal(t, 2, report.Summary.TotalFiles)
	assert.Equal(t, 1, report.Summary.PlannedCount)
	assert.Equal(t, 1, report.Summary.FailedCount)

	require.Len(t, report.Planned, 1)
	assert.Equal(t, "/library/anime/My Show/My Show - 03 - The Beginning[ensub][10bit][HEVC][GRP].mkv",
		report.Planned[0].TargetPath())

	require.Len(t, report.Failed, 1)
	assert.Equal(t, "destination_not_found", report.Failed[0].Kind)
}

func TestPlanReport_ErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind string
	}{
		{engine.ErrEmptyFileName, "empty_file_name"},
		{engine.ErrDestinationNotFound, "destination_not_found"},
		{fmt.Errorf("wrapped: %w", engine.ErrNoEpisodeTitle), "no_episode_title"},
		{engine.ErrUnknownEpisodeType, "unrecognized_episode_category"},
		{engine.ErrInvalidContext, "invalid_context"},
		{fmt.Errorf("something else"), "error"},
	}

	for _, tc := range tests {
		report := reporting.NewPlanReport()
		report.AddResult("/drop/x.mkv", nil, tc.err)
		require.Len(t, report.Failed, 1)
		assert.Equal(t, tc.kind, report.Failed[0].Kind, "error %v", tc.err)
	}
}

func TestPlanReport_AddSkipped(t *testing.T) {
	report := reporting.NewPlanReport()
	report.AddSkipped([]collectors.SkippedFile{
		{Path: "/drop/orphan.mkv", Reason: "missing metadata sidecar orphan.mkv.json"},
	})

	assert.Equal(t, 1, report.Summary.SkippedCount)
	assert.Equal(t, 1, report.Summary.TotalFiles)
}
