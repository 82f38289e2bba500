// Package watcher monitors the configuration file so the dev command can
// restart its delegate when deck.yaml changes.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/deckctl/internal/logfields"
)

// Watcher monitors one file and emits a debounced change signal.
type Watcher struct {
	path         string
	watcher      *fsnotify.Watcher
	mu           sync.Mutex
	stopChan     chan struct{}
	pendingChan  chan struct{}
	changes      chan struct{}
	stopOnce     sync.Once
	debounceTime time.Duration
}

// New creates a watcher for the given file path. debounce collapses rapid
// successive writes (editors often write twice); pass 0 for the default.
func New(path string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Resolve absolute path for consistent watching
	absPath, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	if debounce <= 0 {
		debounce = 2 * time.Second
	}

	return &Watcher{
		path:         absPath,
		watcher:      fsw,
		stopChan:     make(chan struct{}),
		pendingChan:  make(chan struct{}, 1),
		changes:      make(chan struct{}, 1),
		debounceTime: debounce,
	}, nil
}

// Changes returns the channel signalled after a debounced file change.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Start begins monitoring the file.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Watch the directory containing the file (more reliable than watching
	// the file directly; editors replace files on save)
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	slog.Info("Watching configuration file", logfields.Path(w.path))

	go w.watchLoop(ctx)
	go w.debounceLoop(ctx)

	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		if w.watcher != nil {
			err = w.watcher.Close()
		}
	})
	return err
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop(ctx context.Context) {
	watchedFile := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only process events for our file
			if filepath.Base(event.Name) != watchedFile {
				continue
			}

			switch {
			case event.Op&fsnotify.Write == fsnotify.Write:
				slog.Debug("Config file write detected", logfields.Path(event.Name))
				w.trigger()
			case event.Op&fsnotify.Create == fsnotify.Create:
				slog.Debug("Config file create detected", logfields.Path(event.Name))
				w.trigger()
			case event.Op&fsnotify.Rename == fsnotify.Rename:
				slog.Debug("Config file rename detected", logfields.Path(event.Name))
				w.trigger()
			case event.Op&fsnotify.Remove == fsnotify.Remove:
				slog.Warn("Config file removed", logfields.Path(event.Name))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

// debounceLoop collapses bursts of triggers into single change signals
func (w *Watcher) debounceLoop(ctx context.Context) {
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.pendingChan:
			// Reset/start debounce timer
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, func() {
				select {
				case w.changes <- struct{}{}:
				default:
					// Change already pending
				}
			})
		}
	}
}

// trigger schedules a debounced change signal
func (w *Watcher) trigger() {
	select {
	case w.pendingChan <- struct{}{}:
	default:
		// Trigger already pending
	}
}
