// Package rulekit provides a composable, rule-based validation framework
// built from small, independent predicates.
//
// The package separates the three concerns of declarative validation:
// predicates (named boolean checks over a single value), rules (which field
// must satisfy which predicates, with what parameters), and validators
// (immutable engines that evaluate a rule set against structured input).
// Predicates are registered under stable names in a Registry, rules are
// collected into a RuleSet keyed by field path, and Build resolves every
// referenced predicate eagerly so misconfiguration surfaces once at startup
// rather than at call time.
//
// # Architecture
//
// Core building blocks:
//   - Predicate – canonical check signature func(value any, params Params) bool
//   - Registry  – named predicate store with duplicate protection and subsetting
//   - Rule      – binding of a field Path to an ordered predicate sequence
//   - RuleSet   – ordered, path-keyed rule collection with right-biased Merge
//   - Validator – immutable execution engine produced by Build
//   - Result    – structured pass/fail report with per-field errors
//
// Registries and rule sets are assembled at configuration time. A Validator
// snapshots the predicates it needs during Build, so later registry changes
// never alter the behavior of an already-built validator. Validators hold no
// per-call state and are safe for concurrent use.
//
// # Usage
//
//	reg := rulekit.NewRegistry()
//	_ = reg.Register("isNumber", func(v any, _ rulekit.Params) bool {
//		f, ok := v.(float64)
//		return ok && !math.IsNaN(f)
//	})
//
//	rs := rulekit.NewRuleSet()
//	_ = rs.Add("age", rulekit.Check("isNumber"))
//
//	v, err := rulekit.Build(rs, reg)
//	if err != nil {
//		// unknown predicate names, reported all at once
//	}
//
//	res := v.Validate(map[string]any{"age": 42})
//	if !res.Valid {
//		for _, fe := range res.Errors {
//			// fe.Field, fe.Predicate, fe.Message
//		}
//	}
//
// # Error Handling
//
// Configuration mistakes (duplicate registration, malformed rules, unknown
// predicate names) are returned as errors from Register, Add, and Build and
// never deferred to validation time. Validate is a total function: it always
// returns a complete Result and never panics, even when a predicate violates
// its contract. Failed checks are data (FieldError values inside Result),
// not errors; Result.Err bridges to the error interface for callers that
// want one.
//
// # Concurrency
//
// Registries guard their state with a read-write mutex so lookups remain
// safe after publication, though assembly is expected to happen before the
// validator is shared. A built Validator is immutable and may be used from
// any number of goroutines without synchronization.
package rulekit
