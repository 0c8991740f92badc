package collectors

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/renamarr/renamarr/internal/models"
	"github.com/renamarr/renamarr/internal/utils"
)

// CollectedContext pairs a relocation context with the media file it was
// built for.
type CollectedContext struct {
	SourcePath string
	Context    models.RelocationContext
}

// SkippedFile records a media file no context could be built for. Skips are
// not failures; the host simply has not written (or has mis-written) the
// metadata sidecar yet.
type SkippedFile struct {
	Path   string
	Reason string
}

// sidecarDocument is the host-written metadata sidecar stored next to each
// media file as <file>.json. All metadata is already resolved by the host;
// the collector only decodes it.
type sidecarDocument struct {
	Series       []models.SeriesInfo  `json:"series"`
	Episodes     []models.EpisodeInfo `json:"episodes"`
	Streams      models.StreamInfo    `json:"streams"`
	ReleaseGroup string               `json:"release_group"`
}

// ContextCollector walks the drop directory and builds one relocation
// context per media file that has a metadata sidecar.
type ContextCollector struct {
	dropDir      string
	destinations []models.DestinationFolder
	logger       *slog.Logger
}

func NewContextCollector(dropDir string, destinations []models.DestinationFolder, logger *slog.Logger) *ContextCollector {
	return &ContextCollector{
		dropDir:      dropDir,
		destinations: destinations,
		logger:       logger,
	}
}

func (cc *ContextCollector) Name() string {
	return "filesystem"
}

func (cc *ContextCollector) Collect(ctx context.Context) ([]CollectedContext, []SkippedFile, error) {
	var contexts []CollectedContext
	var skipped []SkippedFile

	if _, err := os.Stat(cc.dropDir); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("drop directory does not exist: %s", cc.dropDir)
	}

	err := filepath.WalkDir(cc.dropDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				cc.logger.Warn("permission denied", "path", path)
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(filepath.Base(path), ".") {
			return nil
		}

		if !utils.IsMediaFile(path) {
			return nil
		}

		collected, err := cc.Load(path)
		if err != nil {
			cc.logger.Warn("skipping media file", "path", path, "reason", err)
			skipped = append(skipped, SkippedFile{Path: path, Reason: err.Error()})
			return nil
		}

		contexts = append(contexts, *collected)
		return nil
	})

	if err != nil {
		return contexts, skipped, fmt.Errorf("failed to walk drop directory: %w", err)
	}

	return contexts, skipped, nil
}

// Load builds the relocation context for a single media file from its
// metadata sidecar.
func (cc *ContextCollector) Load(mediaPath string) (*CollectedContext, error) {
	sidecarPath := utils.SidecarPath(mediaPath)

	data, err := os.ReadFile(sidecarPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("missing metadata sidecar %s", filepath.Base(sidecarPath))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata sidecar: %w", err)
	}

	var doc sidecarDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse metadata sidecar: %w", err)
	}

	if len(doc.Series) == 0 {
		return nil, fmt.Errorf("metadata sidecar has no series entry")
	}
	if len(doc.Episodes) == 0 {
		return nil, fmt.Errorf("metadata sidecar has no episode entry")
	}

	return &CollectedContext{
		SourcePath: mediaPath,
		Context: models.RelocationContext{
			File: models.FileInfo{
				FileName:     filepath.Base(mediaPath),
				Streams:      doc.Streams,
				ReleaseGroup: doc.ReleaseGroup,
			},
			Episodes:         doc.Episodes,
			Series:           doc.Series,
			AvailableFolders: cc.destinations,
		},
	}, nil
}
