package rulekit

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps predicate names to predicate functions. It is append-only
// during configuration: Register refuses duplicates so independently
// developed predicate libraries cannot silently shadow each other, and
// Replace is the explicit override used by the composition layer.
//
// Multiple registries may coexist (one per test, one per tenant); nothing
// in the package is process-global.
type Registry struct {
	mu    sync.RWMutex
	names []string
	preds map[string]Predicate
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{preds: make(map[string]Predicate)}
}

// Register adds a named predicate. It fails with ErrDuplicatePredicate when
// the name is taken and ErrNilPredicate or ErrEmptyPredicateName on misuse.
func (r *Registry) Register(name string, p Predicate) error {
	if name == "" {
		return ErrEmptyPredicateName
	}
	if p == nil {
		return fmt.Errorf("%w: %q", ErrNilPredicate, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.preds[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePredicate, name)
	}
	r.preds[name] = p
	r.names = append(r.names, name)
	return nil
}

// Replace inserts or overrides a named predicate. An overridden name keeps
// its registration position.
func (r *Registry) Replace(name string, p Predicate) error {
	if name == "" {
		return ErrEmptyPredicateName
	}
	if p == nil {
		return fmt.Errorf("%w: %q", ErrNilPredicate, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.preds[name]; !ok {
		r.names = append(r.names, name)
	}
	r.preds[name] = p
	return nil
}

// Lookup returns the predicate registered under name. It fails with a
// *UnknownPredicateError (matching ErrUnknownPredicate) when absent.
func (r *Registry) Lookup(name string) (Predicate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.preds[name]
	if !ok {
		return nil, &UnknownPredicateError{Names: []string{name}}
	}
	return p, nil
}

// Has reports whether a predicate is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.preds[name]
	return ok
}

// Names returns the registered names in registration order. The snapshot is
// independent of the registry, so callers can range over it repeatedly.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

// Len returns the number of registered predicates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Subset builds a new registry containing only the named predicates, the
// "pick only what you need" composition primitive. Unknown names fail as
// one batch *UnknownPredicateError listing every missing name.
func (r *Registry) Subset(names ...string) (*Registry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := NewRegistry()
	var missing []string
	for _, name := range names {
		p, ok := r.preds[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		if _, dup := out.preds[name]; dup {
			continue
		}
		out.preds[name] = p
		out.names = append(out.names, name)
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, &UnknownPredicateError{Names: slices.Compact(missing)}
	}
	return out, nil
}

// Merge combines two registries into a new one without touching either
// input. Names present in both take other's predicate, mirroring the
// right-biased rule set merge.
func (r *Registry) Merge(other *Registry) *Registry {
	out := r.Clone()
	if other == nil {
		return out
	}

	other.mu.RLock()
	defer other.mu.RUnlock()

	for _, name := range other.names {
		if _, ok := out.preds[name]; !ok {
			out.names = append(out.names, name)
		}
		out.preds[name] = other.preds[name]
	}
	return out
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	if r == nil {
		return out
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out.names = slices.Clone(r.names)
	for name, p := range r.preds {
		out.preds[name] = p
	}
	return out
}
