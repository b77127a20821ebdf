// Package watcher observes the corpus source file and signals when it
// changes, so long-running sessions (the TUI) can reload the corpus and
// invalidate the cached similarity matrix.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cinematch-labs/cinematch-cli/internal/logger"
)

// debounce collapses editor write bursts into a single change signal.
const debounce = 200 * time.Millisecond

// Watcher signals corpus file changes via a callback.
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	onChange func()
}

// New creates a watcher for the given file. The parent directory is
// watched rather than the file itself: editors and re-exports typically
// replace the file, which would silently drop a direct watch.
func New(path string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{fw: fw, path: abs, onChange: onChange}, nil
}

// Start blocks, dispatching the callback on each (debounced) change to
// the watched file, until the context is cancelled or the watcher closed.
func (w *Watcher) Start(ctx context.Context) error {
	logger.Debug("Watching %s for changes", w.path)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Corpus change detected: %s", event)

			// Reset the debounce window.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, w.onChange)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

// relevant reports whether the event touches the watched file with an
// operation that can change its content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Rename)
}
