package tables

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
)

// Registry holds the active Store and supports hot reloading. Reads go
// through Current, which hands out the immutable Store pointer; a reload
// builds a complete replacement Store and swaps the pointer under the lock.
// The tables themselves are never mutated in place, so callers holding an
// older Store keep a consistent view.
type Registry struct {
	mu       sync.RWMutex
	store    *Store
	dir      string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onSwap   func(*Store)
}

// NewRegistry creates a registry serving the built-in seed tables.
func NewRegistry() *Registry {
	return &Registry{store: DefaultStore()}
}

// NewRegistryWithDirectory creates a registry loading table documents from
// the directory.
func NewRegistryWithDirectory(dir string) (*Registry, error) {
	store, err := LoadDirectory(dir)
	if err != nil {
		return nil, err
	}
	return &Registry{store: store, dir: dir}, nil
}

// Current returns the active table set. The returned Store is immutable and
// safe to use for the whole of a calculation even while a reload swaps in a
// newer generation.
func (r *Registry) Current() *Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store
}

// Reload rebuilds the table set from the configured directory and swaps it
// in atomically. On any load or validation error the active tables are left
// untouched.
func (r *Registry) Reload() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for reload")
	}

	store, err := LoadDirectory(r.dir)
	if err != nil {
		return fmt.Errorf("reloading tables: %w", err)
	}

	r.mu.Lock()
	r.store = store
	r.mu.Unlock()

	if r.onSwap != nil {
		r.onSwap(store)
	}
	return nil
}

// SetOnSwap sets a callback invoked after each successful reload with the
// new table set.
func (r *Registry) SetOnSwap(fn func(*Store)) {
	r.onSwap = fn
}

// Watch starts watching the table directory and reloads on changes to YAML
// files.
func (r *Registry) Watch() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.dir); err != nil {
		r.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", r.dir, err)
	}

	return nil
}

// StopWatch stops the directory watcher.
func (r *Registry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
		r.stopChan = nil
	}
	if r.watcher != nil {
		r.watcher.Close()
		r.watcher = nil
	}
}

func (r *Registry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				// A failed reload keeps the previous generation active.
				_ = r.Reload()
			}

		case _, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
