// Package watcher reloads a closet spec file whenever it changes on disk.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/philipparndt/gocloset/pkg/closet"
	"github.com/philipparndt/gocloset/pkg/specfile"
)

// DefaultDebounce collapses the burst of events an editor save produces
const DefaultDebounce = 150 * time.Millisecond

// Update is the result of reloading the spec file
type Update struct {
	Path string
	Spec closet.Spec
	Err  error
}

// SpecWatcher watches one spec file. The parent directory is watched
// rather than the file so that editors replacing the file by rename
// keep being noticed.
type SpecWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	updates  chan Update

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// New starts watching path
func New(path string, debounce time.Duration) (*SpecWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &SpecWatcher{
		watcher:  watcher,
		path:     absPath,
		debounce: debounce,
		updates:  make(chan Update, 1),
	}, nil
}

// Path returns the absolute path being watched
func (w *SpecWatcher) Path() string {
	return w.path
}

// Updates delivers reloaded specs. Only the latest pending update is
// kept, so a slow consumer never sees stale files. The channel is
// closed by Close.
func (w *SpecWatcher) Updates() <-chan Update {
	return w.updates
}

// Run dispatches file events until ctx is done or the watcher is closed
func (w *SpecWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("watcher error", "path", w.path, "error", err)
		}
	}
}

func (w *SpecWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *SpecWatcher) reload() {
	spec, err := specfile.Load(w.path)
	if err != nil {
		slog.Warn("failed to reload spec", "path", w.path, "error", err)
	} else {
		slog.Info("spec reloaded", "path", w.path)
	}
	w.publish(Update{Path: w.path, Spec: spec, Err: err})
}

func (w *SpecWatcher) publish(u Update) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case <-w.updates:
	default:
	}
	w.updates <- u
}

// Close stops watching. It is safe to call more than once.
func (w *SpecWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.updates)
	w.mu.Unlock()
	return w.watcher.Close()
}
