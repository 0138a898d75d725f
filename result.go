package rulekit

import (
	"fmt"
	"strings"
)

// PredicateRequired is the implicit predicate name reported when a required
// field is absent from the input. It never needs to be registered.
const PredicateRequired = "required"

// FieldError is one failed check: which field, which predicate, the
// rendered message, and the parameters the predicate ran with (kept for
// message re-rendering and translation).
type FieldError struct {
	Field     Path   `json:"field"`
	Predicate string `json:"predicate"`
	Message   string `json:"message"`
	Params    Params `json:"params,omitempty"`
}

// Error implements the error interface so individual failures compose with
// Go error plumbing.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field.String(), e.Message)
}

// FieldErrors is the error-interface bridge over a failure list, for
// callers that want Go error plumbing instead of a Result value.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Result is the complete, deterministic report of one Validate call.
// Errors appear in rule declaration order, then predicate order within a
// rule; it is never nil and never partial.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

// Err returns the failures as an error, or nil when the input was valid.
// The returned error is a FieldErrors and can be recovered with errors.As.
func (r Result) Err() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	return FieldErrors(r.Errors)
}

// Has reports whether the field has at least one failure.
func (r Result) Has(field string) bool {
	for _, e := range r.Errors {
		if e.Field.String() == field {
			return true
		}
	}
	return false
}

// Messages returns the failure messages for one field, in report order.
func (r Result) Messages(field string) []string {
	var out []string
	for _, e := range r.Errors {
		if e.Field.String() == field {
			out = append(out, e.Message)
		}
	}
	return out
}

// ErrorsFor returns the full FieldError values for one field.
func (r Result) ErrorsFor(field string) []FieldError {
	var out []FieldError
	for _, e := range r.Errors {
		if e.Field.String() == field {
			out = append(out, e)
		}
	}
	return out
}

// Fields returns the failing field paths, unique, in first-failure order.
func (r Result) Fields() []string {
	seen := make(map[string]bool, len(r.Errors))
	var out []string
	for _, e := range r.Errors {
		key := e.Field.String()
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}
