package rulekit

import "math"

// Predicate is the canonical check signature every registered check is
// normalized to: it receives the resolved field value and the parameters
// declared on the rule, and reports whether the value passes.
//
// Predicates must be deterministic, side-effect free, and total: a value of
// an unexpected type fails the check (return false), it never panics. Checks
// written against narrower signatures are adapted with Adapt or AdaptTyped
// before registration rather than registered as variant contracts.
type Predicate func(value any, params Params) bool

// Adapt normalizes a parameter-less check to the canonical signature.
func Adapt(fn func(value any) bool) Predicate {
	return func(value any, _ Params) bool {
		return fn(value)
	}
}

// AdaptTyped normalizes a typed check to the canonical signature. Values of
// any other type fail the check instead of panicking, which keeps adapted
// predicates total.
func AdaptTyped[T any](fn func(value T, params Params) bool) Predicate {
	return func(value any, params Params) bool {
		v, ok := value.(T)
		if !ok {
			return false
		}
		return fn(v, params)
	}
}

// Params carries the per-rule configuration of a predicate, as declared in
// the rule document. Keys are parameter names; values are whatever the rule
// source produced (JSON decodes numbers to float64, YAML and TOML to int or
// int64), so the typed getters normalize across those representations.
type Params map[string]any

// Has reports whether the parameter is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Get returns the raw parameter value.
func (p Params) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// String returns the parameter as a string.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool returns the parameter as a bool.
func (p Params) Bool(key string) (bool, bool) {
	v, ok := p[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Float returns the parameter as a float64, accepting any Go integer or
// float representation. NaN and the infinities are rejected so comparisons
// stay total.
func (p Params) Float(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	return Number(v)
}

// Int returns the parameter as an int, accepting integer representations
// and whole floats (the only number JSON produces).
func (p Params) Int(key string) (int, bool) {
	f, ok := p.Float(key)
	if !ok || math.Trunc(f) != f {
		return 0, false
	}
	return int(f), true
}

// Strings returns the parameter as a string slice, accepting []string and
// the []any produced by the document decoders when every element is a
// string.
func (p Params) Strings(key string) ([]string, bool) {
	v, ok := p[key]
	if !ok {
		return nil, false
	}
	switch vv := v.(type) {
	case []string:
		out := make([]string, len(vv))
		copy(out, vv)
		return out, true
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// Clone returns a shallow copy so stored rules cannot be mutated through a
// retained Params reference.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Number converts any integer or float value to float64. It rejects NaN and
// the infinities, matching the framework-wide rule that sentinel floats never
// count as numbers. Predicate libraries use it to coerce field values the
// same way Params.Float coerces parameters.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
