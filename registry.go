package statkit

import (
	"slices"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/statkit/internal/sentinel"
)

// Built-in statistic names, pre-registered by NewRegistry.
const (
	StatMean   = "mean"
	StatStdDev = "stddev"
	StatMedian = "median"
	StatL2     = "l2"
)

// Registry maps statistic names to their implementations, so callers
// can select a statistic by name at runtime. It is populated at
// construction time and read afterwards; registering concurrently with
// lookups is not supported.
type Registry struct {
	stats map[string]StatFn
}

// NewRegistry creates a new registry with the built-in statistics
// pre-registered under the names "mean", "stddev", "median" and "l2".
func NewRegistry() *Registry {
	registry := &Registry{
		stats: make(map[string]StatFn),
	}

	// Register the built-in statistics
	registry.Register(StatMean, Mean)
	registry.Register(StatStdDev, StdDev)
	registry.Register(StatMedian, Median)
	registry.Register(StatL2, L2)

	return registry
}

// NewEmptyRegistry creates a new registry without the built-in
// statistics. This is useful for testing or when you want to register
// only specific statistics.
func NewEmptyRegistry() *Registry {
	return &Registry{
		stats: make(map[string]StatFn),
	}
}

// Register registers a statistic under the given name. Registering an
// already registered name overwrites the previous function.
func (r *Registry) Register(name string, fn StatFn) error {
	if name == "" {
		return ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "name")
	}

	if fn == nil {
		return ewrap.Wrap(sentinel.ErrNilStatFn, name)
	}

	r.stats[name] = fn

	return nil
}

// Lookup returns the statistic registered under the given name.
func (r *Registry) Lookup(name string) (StatFn, error) {
	if name == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "name")
	}

	fn, ok := r.stats[name]
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrStatNotFound, name)
	}

	return fn, nil
}

// Names returns the sorted names of all registered statistics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.stats))
	for name := range r.stats {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
