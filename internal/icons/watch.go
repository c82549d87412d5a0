// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

var watchReadyHook func() // used in tests, called when Watch started watching

// Watch generates icons like Generate and then regenerates them each time the
// source image changes, until ctx is canceled.
func Watch(ctx context.Context, c *Config) error {
	c.setDefaults()
	if c.Source == "" {
		return ErrNoSource
	}
	source, err := filepath.Abs(c.Source)
	if err != nil {
		return err
	}
	c.Source = source

	generate := func() {
		if err := Generate(ctx, c); err != nil {
			logger.Error(ctx, "icon generation failed", slog.Any("err", err))
		}
	}

	logger.Info(ctx, "performing an initial generation")
	generate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Editors often replace files instead of writing to them, so watch the
	// directory, not the file.
	if err := watcher.Add(filepath.Dir(source)); err != nil {
		return err
	}

	// Image editors and exporters tend to write a file in several steps.
	debouncer := newDebouncer(250*time.Millisecond, generate)
	defer debouncer.Stop()

	logger.Info(ctx, "started watching for new changes", slog.String("source", source))
	if watchReadyHook != nil {
		watchReadyHook()
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldRegenerate(source, event.Name, event.Op) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling generation",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			debouncer.Do()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watcher failed", slog.Any("err", err))
		case <-ctx.Done():
			logger.Info(ctx, "gracefully shutting down")
			return nil
		}
	}
}

// shouldRegenerate reports whether an event on path means that the source
// image has new contents.
func shouldRegenerate(source, path string, op fsnotify.Op) bool {
	if filepath.Clean(path) != filepath.Clean(source) {
		return false
	}

	// Renames are followed by a create of the new name, removes leave
	// nothing to generate from and chmod doesn't change pixels.
	return op&(fsnotify.Create|fsnotify.Write) != 0
}

// debouncer delays execution of a function until a specified duration has
// passed without any new events. Executions never overlap.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer

	run     sync.Mutex // held while f runs
	stopped bool       // guarded by run
}

// newDebouncer creates a new debouncer.
func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, func() {
		d.run.Lock()
		defer d.run.Unlock()
		if !d.stopped {
			d.f()
		}
	})
}

// Stop cancels a scheduled execution and waits for a running one to finish.
func (d *debouncer) Stop() {
	d.mu.Lock()
	if d.t != nil {
		d.t.Stop()
	}
	d.mu.Unlock()

	d.run.Lock()
	defer d.run.Unlock()
	d.stopped = true
}
