package rulekit

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration-time errors. All of them are raised synchronously from
// Register, Add, Build, and friends; none is ever deferred to Validate.
var (
	// ErrDuplicatePredicate is returned when registering a name that is already taken.
	ErrDuplicatePredicate = errors.New("predicate already registered")

	// ErrUnknownPredicate is returned when a referenced predicate name is not registered.
	ErrUnknownPredicate = errors.New("unknown predicate")

	// ErrInvalidRule is returned when a rule fails its construction checks.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidPath is returned when a field selector cannot be parsed.
	ErrInvalidPath = errors.New("invalid field path")

	// ErrNilPredicate is returned when registering a nil predicate function.
	ErrNilPredicate = errors.New("nil predicate")

	// ErrEmptyPredicateName is returned when registering under an empty name.
	ErrEmptyPredicateName = errors.New("empty predicate name")

	// ErrNilRegistry is returned when Build is given a nil registry.
	ErrNilRegistry = errors.New("nil registry")

	// ErrNilRuleSet is returned when Build is given a nil rule set.
	ErrNilRuleSet = errors.New("nil rule set")
)

// UnknownPredicateError reports every unresolved predicate name at once, so
// a misconfigured rule set surfaces all of its problems in a single build
// attempt. Names are sorted for stable output.
//
// It matches ErrUnknownPredicate under errors.Is.
type UnknownPredicateError struct {
	Names []string
}

func (e *UnknownPredicateError) Error() string {
	switch len(e.Names) {
	case 0:
		return ErrUnknownPredicate.Error()
	case 1:
		return fmt.Sprintf("unknown predicate: %q", e.Names[0])
	default:
		quoted := make([]string, len(e.Names))
		for i, n := range e.Names {
			quoted[i] = fmt.Sprintf("%q", n)
		}
		return "unknown predicates: " + strings.Join(quoted, ", ")
	}
}

func (e *UnknownPredicateError) Is(target error) bool {
	return target == ErrUnknownPredicate
}

// InvalidRuleError describes why a rule was rejected at construction time.
// Field holds the raw selector when one was given.
//
// It matches ErrInvalidRule under errors.Is.
type InvalidRuleError struct {
	Field  string
	Reason string
}

func (e *InvalidRuleError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid rule: %s", e.Reason)
	}
	return fmt.Sprintf("invalid rule for %q: %s", e.Field, e.Reason)
}

func (e *InvalidRuleError) Is(target error) bool {
	return target == ErrInvalidRule
}
