// Package watcher reports changes to COOL source files so they can be
// rebuilt. Bursts of events on the same file collapse into one callback.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

var ErrAlreadyRunning = errors.New("watcher already running")

type Config struct {
	// Path is a single source file or a directory watched recursively.
	Path string

	Debounce time.Duration

	// Extensions filters files in directory mode. A watched single file is
	// always reported whatever its extension.
	Extensions []string
}

type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	config  Config

	// file is the cleaned target when Path names a single file.
	file string

	mu         sync.Mutex
	running    bool
	debouncers map[string]*Debouncer
}

func NewWatcher(config Config, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:    w,
		logger:     logger,
		config:     config,
		debouncers: make(map[string]*Debouncer),
	}, nil
}

// Watch blocks until ctx is done, calling onChange with the path of every
// source file that was written or created. onChange runs on the debouncer's
// goroutine; calls for the same path never overlap.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrAlreadyRunning
	}
	w.running = true
	w.mu.Unlock()

	defer w.stopDebouncers()

	if err := w.addPath(w.config.Path); err != nil {
		return fmt.Errorf("failed to watch %q: %w", w.config.Path, err)
	}

	w.logger.Info("watching for changes",
		"path", w.config.Path,
		"debounce_ms", w.config.Debounce.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !w.shouldProcess(event) {
				continue
			}

			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())

			path := event.Name
			w.debouncer(path).Trigger(func() { onChange(path) })

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) Close() error {
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	return nil
}

// addPath watches a directory tree, or the parent directory of a single file
// so that editors replacing the file by rename are still noticed.
func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		w.file = filepath.Clean(path)
		return w.watcher.Add(filepath.Dir(w.file))
	}

	return filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		w.logger.Debug("watching directory", "path", p)
		return w.watcher.Add(p)
	})
}

func (w *Watcher) shouldProcess(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	if w.file != "" {
		return filepath.Clean(event.Name) == w.file
	}

	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}

	return w.hasValidExtension(filepath.Ext(event.Name))
}

func (w *Watcher) hasValidExtension(ext string) bool {
	return slices.ContainsFunc(w.config.Extensions, func(valid string) bool {
		return strings.EqualFold(ext, valid)
	})
}

func (w *Watcher) debouncer(path string) *Debouncer {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.debouncers[path]
	if !ok {
		d = NewDebouncer(w.config.Debounce)
		w.debouncers[path] = d
	}

	return d
}

func (w *Watcher) stopDebouncers() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, d := range w.debouncers {
		d.Stop()
	}
	w.debouncers = make(map[string]*Debouncer)
	w.running = false
}
