// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/text"
)

// Backend errors.
var (
	// ErrUnknownBackend is wrapped by Open when no backend has the
	// requested name.
	ErrUnknownBackend = errors.New("surface: unknown backend")

	// ErrNoBackend is returned by Open when no registered backend can
	// create a surface.
	ErrNoBackend = errors.New("surface: no backend available")
)

// Backend is a named surface implementation a chart host can select, for
// example through the backend key of a chart configuration file.
type Backend struct {
	Name string

	// Priority orders automatic selection, highest first. Ties go to the
	// lower name.
	Priority int

	// New creates a surface for opts.
	New func(opts Options) (ggchart.Surface, error)

	// Check reports why the backend cannot run on this system. A nil
	// Check means always available.
	Check func() error
}

// Status describes a registered backend. Err is nil when it is available.
type Status struct {
	Name     string
	Priority int
	Err      error
}

// Available reports whether the backend can create surfaces.
func (s Status) Available() bool { return s.Err == nil }

// BackendError reports a backend that could not create a surface.
type BackendError struct {
	Name string
	Err  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("surface: backend %q: %v", e.Name, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// registry holds backends by name.
type registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

var backends = newRegistry()

func newRegistry() *registry {
	return &registry{backends: make(map[string]Backend)}
}

// Register adds a backend, replacing any backend with the same name.
func Register(b Backend) { backends.register(b) }

// Backends returns the status of every registered backend in selection
// order.
func Backends() []Status { return backends.status() }

// Open creates a surface with the named backend. An empty name selects
// the first available backend in priority order, falling through to the
// next one when creation fails.
func Open(name string, opts Options) (ggchart.Surface, error) {
	return backends.open(name, opts)
}

func (r *registry) register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[b.Name] = b
}

func (r *registry) status() []Status {
	r.mu.RLock()
	list := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	out := make([]Status, len(list))
	for i, b := range list {
		out[i] = Status{Name: b.Name, Priority: b.Priority, Err: check(b)}
	}
	return out
}

func (r *registry) open(name string, opts Options) (ggchart.Surface, error) {
	if name != "" {
		r.mu.RLock()
		b, ok := r.backends[name]
		r.mu.RUnlock()
		if !ok {
			return nil, &BackendError{Name: name, Err: ErrUnknownBackend}
		}
		if err := check(b); err != nil {
			return nil, &BackendError{Name: name, Err: err}
		}
		s, err := b.New(opts)
		if err != nil {
			return nil, &BackendError{Name: name, Err: err}
		}
		return s, nil
	}

	errs := []error{ErrNoBackend}
	for _, st := range r.status() {
		if st.Err != nil {
			errs = append(errs, &BackendError{Name: st.Name, Err: st.Err})
			continue
		}
		s, err := r.open(st.Name, opts)
		if err == nil {
			return s, nil
		}
		ggchart.Logger().Debug("surface: backend failed", "backend", st.Name, "err", err)
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func check(b Backend) error {
	if b.New == nil {
		return errors.New("no constructor")
	}
	if b.Check == nil {
		return nil
	}
	return b.Check()
}

func init() {
	Register(Backend{
		Name:     "image",
		Priority: 10,
		New: func(opts Options) (ggchart.Surface, error) {
			return NewImageSurfaceWithOptions(opts)
		},
		Check: func() error {
			if _, err := text.DefaultFont(); err != nil {
				return fmt.Errorf("legend font: %w", err)
			}
			return nil
		},
	})
	Register(Backend{
		Name: "recording",
		New: func(opts Options) (ggchart.Surface, error) {
			return recording.NewRecorder(opts.Width, opts.Height), nil
		},
	})
}
