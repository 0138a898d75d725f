package rulekit

import "strconv"

// PredicateSpec names one predicate a field must satisfy, together with its
// per-rule parameters.
type PredicateSpec struct {
	Name   string
	Params Params
}

// Check builds a PredicateSpec. The optional params argument keeps simple
// declarations terse:
//
//	rulekit.Check("isNumber")
//	rulekit.Check("min", rulekit.Params{"value": 18})
func Check(name string, params ...Params) PredicateSpec {
	spec := PredicateSpec{Name: name}
	if len(params) > 0 {
		spec.Params = params[0]
	}
	return spec
}

// Rule binds a field path to an ordered sequence of predicate checks. An
// optional rule treats an absent field as passing; a required rule (the
// default) treats it as a failure.
type Rule struct {
	Field      Path
	Predicates []PredicateSpec
	Optional   bool
}

// NewRule parses the field selector and assembles a validated Rule. It
// fails with a *InvalidRuleError when the selector is malformed, the
// predicate sequence is empty, or any predicate name is blank.
func NewRule(field string, specs ...PredicateSpec) (Rule, error) {
	path, err := ParsePath(field)
	if err != nil {
		return Rule{}, &InvalidRuleError{Field: field, Reason: err.Error()}
	}
	rule := Rule{Field: path, Predicates: specs}
	if err := rule.check(); err != nil {
		return Rule{}, err
	}
	return rule, nil
}

// NewOptionalRule is NewRule with the optional flag set.
func NewOptionalRule(field string, specs ...PredicateSpec) (Rule, error) {
	rule, err := NewRule(field, specs...)
	if err != nil {
		return Rule{}, err
	}
	rule.Optional = true
	return rule, nil
}

// check enforces the construction invariants on a fully-populated Rule.
// Rules built through literals pass through it when added to a RuleSet.
func (r Rule) check() error {
	if r.Field.IsZero() {
		return &InvalidRuleError{Reason: "empty field selector"}
	}
	if len(r.Predicates) == 0 {
		return &InvalidRuleError{Field: r.Field.String(), Reason: "no predicates"}
	}
	for i, spec := range r.Predicates {
		if spec.Name == "" {
			return &InvalidRuleError{
				Field:  r.Field.String(),
				Reason: "empty predicate name at position " + strconv.Itoa(i),
			}
		}
	}
	return nil
}

// clone deep-copies the parts of a Rule that callers could mutate through
// retained references.
func (r Rule) clone() Rule {
	out := Rule{Field: r.Field, Optional: r.Optional}
	if r.Predicates != nil {
		out.Predicates = make([]PredicateSpec, len(r.Predicates))
		for i, spec := range r.Predicates {
			out.Predicates[i] = PredicateSpec{Name: spec.Name, Params: spec.Params.Clone()}
		}
	}
	return out
}
