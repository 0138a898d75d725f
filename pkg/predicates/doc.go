// Package predicates provides the built-in predicate library for rulekit:
// kind checks, string and numeric constraints, common formats, and timestamp
// comparisons, all normalized to the rulekit.Predicate signature.
//
// # Architecture
//
// Each source file groups a family of predicates (`kinds.go`, `strings.go`,
// `numbers.go`, `format.go`, `timestamps.go`). Every predicate is a plain
// function reading its configuration from the rule's Params at check time;
// the only package state is a concurrency-safe cache of compiled patterns, so
// everything here is goroutine-safe. Exported name constants (IsNumber,
// MinLen, Email, ...) spell the registered names so rule documents and Go
// code reference the same strings.
//
// # Usage
//
//	reg := predicates.Registry()
//
//	rs := rulekit.NewRuleSet()
//	_ = rs.Add("age",
//	    rulekit.Check(predicates.IsNumber),
//	    rulekit.Check(predicates.Min, rulekit.Params{"value": 18}),
//	)
//	_ = rs.Add("email", rulekit.Check(predicates.Email))
//
//	v, err := rulekit.Build(rs, reg)
//
// To mix built-ins with project-specific predicates, register your own first
// and add the library with RegisterAll; names you already claimed stay yours
// and come back as a joined duplicate error.
//
// # Value Model
//
// Predicates are total: a value of an unexpected type fails the check rather
// than panicking. Numeric predicates accept every Go integer and float type
// but reject NaN and the infinities, numeric strings are not coerced, and
// string lengths count Unicode code points rather than bytes.
package predicates
