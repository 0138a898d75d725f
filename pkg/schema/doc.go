// Package schema loads and saves rule sets as data, so validation rules can
// live in config files and cross service boundaries.
//
// The wire format is a sequence of rule objects:
//
//	[
//	  {"field": "age", "predicates": [{"name": "min", "params": {"value": 18}}]},
//	  {"field": "nickname", "predicates": [{"name": "nonempty"}], "optional": true}
//	]
//
// JSON, YAML, and TOML are supported. TOML cannot express a top-level array,
// so there the sequence is wrapped in a document with a single rules key;
// Decode accepts both forms in every format.
//
// Decoding builds the RuleSet through the regular constructors, so a document
// that names a bad selector, has a rule without predicates, or repeats a
// field path fails with a *DecodeError pointing at the offending rule; it
// never produces a partially valid set. Predicate names are resolved later by
// rulekit.Build, which keeps documents portable across registries.
package schema
