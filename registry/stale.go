package registry

import (
	"fmt"

	"go.uber.org/zap"
)

// MarkDerived records that the consumer has rebuilt its derived data for the
// named function at the function's current UpdateCount.
func (r *Registry) MarkDerived(name string) error {
	idx, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownName, name)
	}
	e := r.entries[idx]
	e.derived = e.Function.UpdateCount()
	return nil
}

// Stale returns true if the named function has changed since the last
// MarkDerived call, or if it was never marked. Unknown names are always
// stale.
func (r *Registry) Stale(name string) bool {
	idx, ok := r.byName[name]
	if !ok {
		return true
	}
	return r.entries[idx].Stale()
}

// Stale returns true if the entry's function has changed since it was last
// marked as derived.
func (e *Entry) Stale() bool {
	return e.derived < 0 || e.derived != e.Function.UpdateCount()
}

// StaleNames returns the names of every stale entry in index order.
func (r *Registry) StaleNames() []string {
	names := []string{}
	for _, e := range r.entries {
		if e.Stale() {
			names = append(names, e.Name)
		}
	}
	if len(names) > 0 {
		r.log.Debug("stale tabulated functions", zap.Strings("names", names))
	}
	return names
}
