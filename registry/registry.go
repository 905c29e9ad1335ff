/*Package registry holds the named tabulated functions owned by a custom force
definition.

Entries keep their insertion order, since force expressions refer to functions
by index as well as by name. Each entry also remembers the UpdateCount its
consumer last derived data from, which lets spline builders skip work when
nothing has changed.
*/
package registry

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phil-mansfield/tabulated"
)

var (
	ErrEmptyName     = errors.New("registry: empty function name")
	ErrDuplicateName = errors.New("registry: duplicate function name")
	ErrNilFunction   = errors.New("registry: nil function")
	ErrUnknownName   = errors.New("registry: unknown function name")
)

// Entry is a single named function.
type Entry struct {
	// ID is a handle which stays the same across Replace calls.
	ID       string
	Name     string
	Function tabulated.Function

	// derived is the UpdateCount seen by the last MarkDerived call, or -1.
	derived int
	fp      uint64
}

// Registry is an ordered collection of uniquely named functions. It is not
// safe for concurrent mutation.
type Registry struct {
	entries []*Entry
	byName  map[string]int
	byPrint map[uint64][]int
	log     *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug output.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		byName:  map[string]int{},
		byPrint: map[uint64][]int{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends a function under the given name and returns its index. The
// registry takes ownership of fn.
func (r *Registry) Add(name string, fn tabulated.Function) (int, error) {
	if name == "" {
		return -1, ErrEmptyName
	} else if tabulated.IsNil(fn) {
		return -1, fmt.Errorf("%w: '%s'", ErrNilFunction, name)
	} else if _, ok := r.byName[name]; ok {
		return -1, fmt.Errorf("%w: '%s'", ErrDuplicateName, name)
	}

	idx := len(r.entries)
	e := &Entry{
		ID:       uuid.New().String(),
		Name:     name,
		Function: fn,
		derived:  -1,
	}
	r.entries = append(r.entries, e)
	r.byName[name] = idx
	r.index(idx)

	r.log.Debug("added tabulated function",
		zap.String("name", name),
		zap.Stringer("kind", fn.Kind()),
		zap.Int("index", idx),
		zap.String("id", e.ID),
	)
	return idx, nil
}

// Replace swaps the function stored under name. The entry keeps its index and
// ID and is marked stale.
func (r *Registry) Replace(name string, fn tabulated.Function) error {
	if tabulated.IsNil(fn) {
		return fmt.Errorf("%w: '%s'", ErrNilFunction, name)
	}
	idx, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownName, name)
	}

	r.unindex(idx)
	e := r.entries[idx]
	e.Function = fn
	e.derived = -1
	r.index(idx)

	r.log.Debug("replaced tabulated function",
		zap.String("name", name), zap.Stringer("kind", fn.Kind()))
	return nil
}

// Remove deletes the named function. Later entries shift down by one index.
func (r *Registry) Remove(name string) error {
	idx, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownName, name)
	}

	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	r.reindex()

	r.log.Debug("removed tabulated function", zap.String("name", name))
	return nil
}

// Len returns the number of functions.
func (r *Registry) Len() int { return len(r.entries) }

// Get returns the function at index i.
func (r *Registry) Get(i int) tabulated.Function { return r.entries[i].Function }

// Name returns the name of the function at index i.
func (r *Registry) Name(i int) string { return r.entries[i].Name }

// Entry returns the entry at index i.
func (r *Registry) Entry(i int) *Entry { return r.entries[i] }

// Names returns the function names in index order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the named function and its index.
func (r *Registry) Lookup(name string) (fn tabulated.Function, idx int, ok bool) {
	idx, ok = r.byName[name]
	if !ok {
		return nil, -1, false
	}
	return r.entries[idx].Function, idx, true
}

// Dedup returns the name of a registered function equal to fn, if there is
// one.
func (r *Registry) Dedup(fn tabulated.Function) (name string, ok bool) {
	if tabulated.IsNil(fn) {
		return "", false
	}
	for _, idx := range r.byPrint[fn.Fingerprint()] {
		e := r.entries[idx]
		if tabulated.Equal(e.Function, fn) {
			r.log.Debug("found duplicate tabulated function",
				zap.String("name", e.Name))
			return e.Name, true
		}
	}
	return "", false
}

// Equal returns true if both registries hold equal functions under the same
// names in the same order.
func (r *Registry) Equal(other *Registry) bool {
	if other == nil || len(r.entries) != len(other.entries) {
		return false
	}
	for i, e := range r.entries {
		o := other.entries[i]
		if e.Name != o.Name || !tabulated.Equal(e.Function, o.Function) {
			return false
		}
	}
	return true
}

// index and unindex maintain the fingerprint index. Fingerprints are taken
// at insertion, so a function mutated in place after being added must be
// passed through Replace to keep Dedup accurate.
func (r *Registry) index(idx int) {
	fp := r.entries[idx].Function.Fingerprint()
	r.entries[idx].fp = fp
	r.byPrint[fp] = append(r.byPrint[fp], idx)
}

func (r *Registry) unindex(idx int) {
	fp := r.entries[idx].fp
	idxs := r.byPrint[fp]
	for i := range idxs {
		if idxs[i] == idx {
			idxs = append(idxs[:i], idxs[i+1:]...)
			break
		}
	}
	if len(idxs) == 0 {
		delete(r.byPrint, fp)
	} else {
		r.byPrint[fp] = idxs
	}
}

func (r *Registry) reindex() {
	r.byName = make(map[string]int, len(r.entries))
	r.byPrint = map[uint64][]int{}
	for i, e := range r.entries {
		r.byName[e.Name] = i
		r.index(i)
	}
}
