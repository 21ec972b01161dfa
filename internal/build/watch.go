package build

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chriserin/featgen/internal/logfields"
)

// Watcher rebuilds whenever a source document changes.
type Watcher struct {
	builder  *Builder
	debounce time.Duration
	onBuild  func(*Report, error)
}

// NewWatcher returns a watcher that calls onBuild after every rebuild.
// Bursts of events closer together than debounce trigger a single build.
func NewWatcher(b *Builder, debounce time.Duration, onBuild func(*Report, error)) *Watcher {
	if onBuild == nil {
		onBuild = func(*Report, error) {}
	}
	return &Watcher{builder: b, debounce: debounce, onBuild: onBuild}
}

// Run watches the source tree until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := addTree(fsw, w.builder.opts.SourceDir); err != nil {
		return err
	}
	logger := w.builder.logger
	logger.Info("Watching for changes", "source", w.builder.opts.SourceDir)

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if err := addTree(fsw, event.Name); err != nil {
					logger.Debug("Not watching new path", logfields.Path(event.Name), logfields.Error(err))
				}
			}
			if w.relevant(event) {
				logger.Debug("Source change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				timer.Reset(w.debounce)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error", logfields.Error(err))
		case <-timer.C:
			report, err := w.builder.Build(ctx, false)
			w.onBuild(report, err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != w.builder.opts.Extension {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// addTree watches root and every non-hidden directory below it. Files are
// ignored.
func addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
