package collectors_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renamarr/renamarr/internal/collectors"
)

func waitForPlan(t *testing.T, planned <-chan collectors.CollectedContext) collectors.CollectedContext {
	t.Helper()
	select {
	case collected := <-planned:
		return collected
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a plan")
		return collectors.CollectedContext{}
	}
}

func TestWatcher_PlansNewMediaFile(t *testing.T) {
	dropDir := t.TempDir()

	cc := collectors.NewContextCollector(dropDir, testFolders(), testLogger())
	planned := make(chan collectors.CollectedContext, 1)

	w := collectors.NewWatcher(cc, 50*time.Millisecond, func(collected collectors.CollectedContext) {
		planned <- collected
	}, testLogger())
	require.NoError(t, w.Start())
	defer w.Stop()

	mediaPath := filepath.Join(dropDir, "src.mkv")
	writeFile(t, mediaPath, "video bytes")
	writeFile(t, mediaPath+".json", sidecarJSON)

	collected := waitForPlan(t, planned)
	assert.Equal(t, mediaPath, collected.SourcePath)
	assert.Equal(t, "src.mkv", collected.Context.File.FileName)
}

func TestWatcher_SidecarArrivingLaterCompletesMediaFile(t *testing.T) {
	dropDir := t.TempDir()

	cc := collectors.NewContextCollector(dropDir, testFolders(), testLogger())
	planned := make(chan collectors.CollectedContext, 1)

	w := collectors.NewWatcher(cc, 50*time.Millisecond, func(collected collectors.CollectedContext) {
		planned <- collected
	}, testLogger())
	require.NoError(t, w.Start())
	defer w.Stop()

	mediaPath := filepath.Join(dropDir, "late.mkv")
	writeFile(t, mediaPath, "video bytes")

	// Let the media-only event settle; without a sidecar nothing is planned.
	time.Sleep(200 * time.Millisecond)
	select {
	case <-planned:
		t.Fatal("planned a media file with no sidecar")
	default:
	}

	writeFile(t, mediaPath+".json", sidecarJSON)

	collected := waitForPlan(t, planned)
	assert.Equal(t, mediaPath, collected.SourcePath)
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dropDir := t.TempDir()

	cc := collectors.NewContextCollector(dropDir, testFolders(), testLogger())
	planned := make(chan collectors.CollectedContext, 1)

	w := collectors.NewWatcher(cc, 50*time.Millisecond, func(collected collectors.CollectedContext) {
		planned <- collected
	}, testLogger())
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dropDir, "notes.txt"), []byte("text"), 0644))

	time.Sleep(200 * time.Millisecond)
	select {
	case <-planned:
		t.Fatal("planned a non-media file")
	default:
	}
}
