// Package watcher reports settled changes to a catalog's source files.
//
// The parent directory of each tracked file is watched with fsnotify, so
// editors and tools that replace a file by rename are still observed. Bursts
// of events are debounced: a Change is delivered only once no event has
// arrived for the configured delay.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"marquee/internal/logging"
)

// DefaultDebounce is used when Options.Debounce is zero.
const DefaultDebounce = 500 * time.Millisecond

// Change describes a settled burst of events.
type Change struct {
	Paths   []string
	Removed bool
}

// Handler reacts to a change. It runs on the watcher goroutine, so no further
// events are processed until it returns.
type Handler func(ctx context.Context, change Change)

// Options configures a Watcher.
type Options struct {
	Files    []string
	Debounce time.Duration
}

// Watcher monitors a fixed set of files.
type Watcher struct {
	fs       *fsnotify.Watcher
	targets  map[string]struct{}
	debounce time.Duration
	logger   *slog.Logger
}

// New starts watching the parent directories of opts.Files.
func New(opts Options, logger *slog.Logger) (*Watcher, error) {
	if len(opts.Files) == 0 {
		return nil, fmt.Errorf("watcher: no files to watch")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	logger = logging.NewComponentLogger(logger, "watcher")

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fs:       fsw,
		targets:  make(map[string]struct{}, len(opts.Files)),
		debounce: opts.Debounce,
		logger:   logger,
	}
	dirs := map[string]struct{}{}
	for _, file := range opts.Files {
		abs, err := filepath.Abs(file)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolve %s: %w", file, err)
		}
		w.targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for _, dir := range slices.Sorted(maps.Keys(dirs)) {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("added watch", logging.String("path", dir))
	}
	return w, nil
}

// Run delivers changes to handle until ctx is cancelled. It closes the
// underlying fsnotify watcher before returning.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	defer w.fs.Close()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = map[string]struct{}{}
		removed bool
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			path, tracked := w.match(event.Name)
			if !tracked || event.Op == fsnotify.Chmod {
				continue
			}
			pending[path] = struct{}{}
			if event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
				removed = true
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logging.WarnWithContext(w.logger, "file watch error", "watch_error",
				logging.Error(err),
				logging.String(logging.FieldImpact, "source changes may be missed until the next event"),
				logging.String(logging.FieldErrorHint, "restart the watch command if changes stop being picked up"))

		case <-fire:
			fire = nil
			change := Change{Paths: slices.Sorted(maps.Keys(pending)), Removed: removed}
			clear(pending)
			removed = false
			w.logger.Debug("source change settled",
				logging.Int("paths", len(change.Paths)),
				logging.Bool("removed", change.Removed))
			handle(ctx, change)
		}
	}
}

func (w *Watcher) match(name string) (string, bool) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", false
	}
	_, ok := w.targets[abs]
	return abs, ok
}
