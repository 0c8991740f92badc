package collectors

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/renamarr/renamarr/internal/utils"
)

// PlanFunc is invoked for each media file whose metadata sidecar is present
// once its events have settled.
type PlanFunc func(CollectedContext)

// Watcher watches the drop directory for new media files and their metadata
// sidecars. Events for a file are debounced so half-copied files are not
// planned mid-transfer.
type Watcher struct {
	collector *ContextCollector
	watcher   *fsnotify.Watcher
	plan      PlanFunc
	settle    time.Duration
	logger    *slog.Logger

	mu       sync.Mutex
	pending  map[string]*time.Timer
	stopChan chan struct{}
}

func NewWatcher(collector *ContextCollector, settle time.Duration, plan PlanFunc, logger *slog.Logger) *Watcher {
	return &Watcher{
		collector: collector,
		plan:      plan,
		settle:    settle,
		logger:    logger,
		pending:   make(map[string]*time.Timer),
		stopChan:  make(chan struct{}),
	}
}

// Start begins watching the drop directory and its subdirectories.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	err = filepath.WalkDir(w.collector.dropDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != w.collector.dropDir {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return err
	}

	w.logger.Info("watching drop directory", "path", w.collector.dropDir)

	go w.processEvents()

	return nil
}

func (w *Watcher) Stop() error {
	close(w.stopChan)
	w.mu.Lock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}

	if info.IsDir() {
		if event.Op&fsnotify.Create != 0 {
			if err := w.watcher.Add(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
		}
		return
	}

	// A sidecar arriving can complete a media file that was skipped earlier,
	// so both event kinds schedule the media file for planning.
	mediaPath := event.Name
	if utils.IsSidecarFile(mediaPath) {
		mediaPath = strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
	}
	if !utils.IsMediaFile(mediaPath) {
		return
	}

	w.schedule(mediaPath)
}

// schedule (re)arms the settle timer for a media file; the last event wins.
func (w *Watcher) schedule(mediaPath string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[mediaPath]; ok {
		timer.Stop()
	}
	w.pending[mediaPath] = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		delete(w.pending, mediaPath)
		w.mu.Unlock()
		w.planSettled(mediaPath)
	})
}

func (w *Watcher) planSettled(mediaPath string) {
	if _, err := os.Stat(mediaPath); err != nil {
		return
	}

	collected, err := w.collector.Load(mediaPath)
	if err != nil {
		w.logger.Info("media file not ready", "path", mediaPath, "reason", err)
		return
	}

	w.plan(*collected)
}
