// Package watch re-runs a callback whenever a case file is saved.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/brayton/pkg/log"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// Config holds configuration options for a Watcher.
type Config struct {
	// Debounce is the delay to wait after a file change before running.
	// Default: 200 milliseconds
	Debounce time.Duration
}

// Watcher monitors a single file through its parent directory, so that
// editors which replace the file on save are still observed.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   log.Logger

	mu    sync.Mutex
	timer *time.Timer
	wg    sync.WaitGroup
}

// New creates a watcher for path.
func New(path string, cfg Config, logger log.Logger) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{path: path, debounce: cfg.Debounce, logger: logger}
}

// Run calls fn once, then again after every debounced write or create of the
// watched file. It blocks until ctx is cancelled and never runs fn
// concurrently with itself.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	var runMu sync.Mutex
	run := func() {
		runMu.Lock()
		defer runMu.Unlock()
		if ctx.Err() != nil {
			return
		}
		fn(ctx)
	}

	run()
	w.logger.Info("watching case file", log.String("path", w.path))

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				w.stop()
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("case file changed", log.String("op", event.Op.String()))
			w.schedule(run)

		case err, ok := <-watcher.Errors:
			if !ok {
				w.stop()
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule(run func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		run()
	})
}

// stop cancels a pending run and waits for one already in progress.
func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.timer = nil
	w.mu.Unlock()
	w.wg.Wait()
}
