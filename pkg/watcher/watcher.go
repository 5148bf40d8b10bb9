// Package watcher reloads scan and design files when they change on disk,
// so an exported scan can be re-segmented or a design re-opened without
// restarting the editor.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce absorbs the burst of write events most exporters produce
// while saving a large STL.
const DefaultDebounce = 300 * time.Millisecond

// ReloadWatcher triggers a reload callback when a watched file is rewritten
type ReloadWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu        sync.Mutex
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
	done      chan struct{}
}

// New creates a reload watcher with the given debounce interval. A zero
// interval gets the default.
func New(debounce time.Duration) (*ReloadWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &ReloadWatcher{
		watcher:   fsw,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
		done:      make(chan struct{}),
	}, nil
}

// Watch registers a file for reloads. The callback receives the absolute
// path of the changed file, after the debounce interval has passed without
// further writes.
func (w *ReloadWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	if err := w.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	w.mu.Lock()
	w.callbacks[absPath] = callback
	w.mu.Unlock()
	return nil
}

// Start begins dispatching change events. Call Close to stop.
func (w *ReloadWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					w.scheduleReload(event.Name)
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
			case <-w.done:
				return
			}
		}
	}()
}

// scheduleReload arms the debounce timer for a changed file, resetting any
// timer already pending for it.
func (w *ReloadWatcher) scheduleReload(filePath string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	callback, ok := w.callbacks[filePath]
	if !ok {
		return
	}
	if timer, ok := w.timers[filePath]; ok {
		timer.Stop()
	}
	w.timers[filePath] = time.AfterFunc(w.debounce, func() {
		callback(filePath)
	})
}

// Close stops the watcher and cancels pending reloads
func (w *ReloadWatcher) Close() error {
	w.mu.Lock()
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	close(w.done)
	return w.watcher.Close()
}
