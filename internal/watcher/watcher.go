// Package watcher provides debounced single-file change notification,
// used by the board's --watch mode to reload when the database changes.
package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexanderramin/planboard/internal/throttle"
)

// ErrClosed is returned when Watch is called on a closed Watcher.
var ErrClosed = errors.New("watcher: closed")

// DefaultDebounce is the coalescing window applied to bursts of file
// events (editors and sqlite commonly emit several per save).
const DefaultDebounce = 250 * time.Millisecond

// Watcher invokes a callback when a watched file changes, coalescing
// event bursts through a Debouncer.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce *throttle.Debouncer
	onError  func(error)

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// New creates a Watcher. onError may be nil; debounce <= 0 uses the default.
func New(debounce time.Duration, onError func(error)) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &Watcher{
		fs:       fs,
		debounce: throttle.NewDebouncer(debounce),
		onError:  onError,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts watching the file at path and calls onChange (debounced)
// whenever it is written, created, renamed, or removed. The parent
// directory is watched rather than the file itself so atomic
// rename-over-save and sqlite WAL checkpoints are not missed.
func (w *Watcher) Watch(path string, onChange func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving watch path: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := w.fs.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	base := filepath.Base(abs)
	go w.loop(base, onChange)
	return nil
}

func (w *Watcher) loop(base string, onChange func()) {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			// The sqlite -wal and -journal siblings count as changes too.
			name := filepath.Base(ev.Name)
			if name != base && name != base+"-wal" && name != base+"-journal" {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.debounce.Trigger(onChange)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

// Close stops watching and cancels any pending debounced callback.
// Closing twice is a no-op.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	close(w.done)
	w.debounce.Cancel()
	return w.fs.Close()
}
