// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directory holding one file, so editors that save by
// rename-over are still seen, and reports only events for that file.
// Bursts of events are debounced into a single callback.
package fsnotify

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/corey/wce/internal/ports"
)

// DefaultDebounce is the quiet period after the last event before onChange fires.
const DefaultDebounce = 100 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
	wg       sync.WaitGroup

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	errs    []error
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	return NewWatcherWithDebounce(DefaultDebounce)
}

// NewWatcherWithDebounce creates a watcher with a custom quiet period.
func NewWatcherWithDebounce(d time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:       fw,
		debounce: d,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. The file itself need not exist yet.
func (w *Watcher) Watch(path string, onChange func(path string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					w.schedule(absPath, onChange)
				}

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				w.mu.Lock()
				w.errs = append(w.errs, err)
				w.mu.Unlock()

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule(path string, onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		stopped := w.stopped
		w.mu.Unlock()
		if !stopped {
			onChange(path)
		}
	})
}

// Err returns the watcher errors reported so far, joined.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return errors.Join(w.errs...)
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	err := w.fw.Close()
	w.wg.Wait()
	return err
}

var _ ports.Watcher = (*Watcher)(nil)
