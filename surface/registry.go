// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrNoBackendAvailable is returned by Open when no registered display
	// backend is available.
	ErrNoBackendAvailable = errors.New("surface: no display backend available")

	// ErrUnknownBackend is returned by Open for an unregistered name.
	ErrUnknownBackend = errors.New("surface: unknown display backend")
)

// Options configure a display opened through the registry.
type Options struct {
	// Width and Height are the initial window size the display configures
	// new surfaces with.
	Width, Height int
}

// Factory opens a display.
type Factory func(opts Options) (Display, error)

// Backend is a registered display backend.
type Backend struct {
	Name string

	// Priority orders backends when Open is called without a name. Higher
	// is preferred; platform compositors register above headless (10).
	Priority int

	Factory   Factory
	Available func() bool
}

var backends = &registry{entries: make(map[string]*Backend)}

type registry struct {
	mu      sync.RWMutex
	entries map[string]*Backend
}

// Register adds a display backend. A nil available means always available.
// Registering an existing name replaces it.
func Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	backends.mu.Lock()
	defer backends.mu.Unlock()
	backends.entries[name] = &Backend{Name: name, Priority: priority, Factory: factory, Available: available}
}

// Unregister removes a display backend.
func Unregister(name string) {
	backends.mu.Lock()
	defer backends.mu.Unlock()
	delete(backends.entries, name)
}

// Available returns the names of available backends, highest priority
// first.
func Available() []string {
	backends.mu.RLock()
	defer backends.mu.RUnlock()
	return backends.sorted()
}

// Open opens the named display backend, or the best available one when
// name is empty.
func Open(name string, opts Options) (Display, error) {
	if name != "" {
		backends.mu.RLock()
		b, ok := backends.entries[name]
		backends.mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
		}
		if !b.Available() {
			return nil, fmt.Errorf("%w: %q", ErrNoBackendAvailable, name)
		}
		return b.Factory(opts)
	}

	var errs []error
	for _, n := range Available() {
		d, err := Open(n, opts)
		if err == nil {
			return d, nil
		}
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, ErrNoBackendAvailable
}

// sorted must be called with the lock held.
func (r *registry) sorted() []string {
	list := make([]*Backend, 0, len(r.entries))
	for _, b := range r.entries {
		if b.Available() {
			list = append(list, b)
		}
	}
	slices.SortFunc(list, func(a, b *Backend) int {
		return cmp.Or(cmp.Compare(b.Priority, a.Priority), cmp.Compare(a.Name, b.Name))
	})
	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	return names
}
