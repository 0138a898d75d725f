package rulekit

// RuleSet is an ordered collection of rules, keyed by field path: one rule
// per path, declaration order preserved. Duplicate paths are rejected by Add
// and AddRule; Put replaces explicitly. RuleSets are assembled at
// configuration time and handed to Build.
type RuleSet struct {
	rules []Rule
	index map[string]int
}

// NewRuleSet returns an empty RuleSet.
func NewRuleSet() *RuleSet {
	return &RuleSet{index: make(map[string]int)}
}

// Add parses the field selector and appends a required rule. It fails with
// a *InvalidRuleError when the selector is malformed, already present, or
// the predicate sequence is empty.
func (rs *RuleSet) Add(field string, specs ...PredicateSpec) error {
	rule, err := NewRule(field, specs...)
	if err != nil {
		return err
	}
	return rs.AddRule(rule)
}

// AddOptional is Add with the optional flag set: an absent field passes
// instead of failing the implicit required check.
func (rs *RuleSet) AddOptional(field string, specs ...PredicateSpec) error {
	rule, err := NewOptionalRule(field, specs...)
	if err != nil {
		return err
	}
	return rs.AddRule(rule)
}

// AddRule appends a pre-built rule, re-running the construction checks so
// hand-assembled literals obey the same invariants. A duplicate path is an
// error; use Put for explicit override semantics.
func (rs *RuleSet) AddRule(rule Rule) error {
	if err := rule.check(); err != nil {
		return err
	}
	key := rule.Field.String()
	if _, ok := rs.index[key]; ok {
		return &InvalidRuleError{Field: key, Reason: "duplicate path"}
	}
	rs.index[key] = len(rs.rules)
	rs.rules = append(rs.rules, rule.clone())
	return nil
}

// Put inserts or replaces the rule for its path. A replaced path keeps its
// original declaration position, so error ordering stays stable across
// overrides. Put still rejects rules that fail construction checks.
func (rs *RuleSet) Put(rule Rule) error {
	if err := rule.check(); err != nil {
		return err
	}
	key := rule.Field.String()
	if at, ok := rs.index[key]; ok {
		rs.rules[at] = rule.clone()
		return nil
	}
	rs.index[key] = len(rs.rules)
	rs.rules = append(rs.rules, rule.clone())
	return nil
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Rules returns the rules in declaration order. The result is a deep copy;
// mutating it does not affect the set.
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	out := make([]Rule, len(rs.rules))
	for i, rule := range rs.rules {
		out[i] = rule.clone()
	}
	return out
}

// Paths returns the rule paths in declaration order.
func (rs *RuleSet) Paths() []Path {
	if rs == nil {
		return nil
	}
	out := make([]Path, len(rs.rules))
	for i, rule := range rs.rules {
		out[i] = rule.Field
	}
	return out
}

// Rule returns the rule registered for the given selector.
func (rs *RuleSet) Rule(field string) (Rule, bool) {
	if rs == nil {
		return Rule{}, false
	}
	path, err := ParsePath(field)
	if err != nil {
		return Rule{}, false
	}
	at, ok := rs.index[path.String()]
	if !ok {
		return Rule{}, false
	}
	return rs.rules[at].clone(), true
}

// Clone returns an independent copy of the set.
func (rs *RuleSet) Clone() *RuleSet {
	out := NewRuleSet()
	if rs == nil {
		return out
	}
	out.rules = make([]Rule, len(rs.rules))
	for i, rule := range rs.rules {
		out.rules[i] = rule.clone()
	}
	for k, v := range rs.index {
		out.index[k] = v
	}
	return out
}

// Merge combines two rule sets into a new one without touching either
// input. Paths present in both take b's rule (right-biased override), and
// an overridden path keeps a's declaration position. The returned paths
// list which rules were overridden so callers can surface the shadowing.
func Merge(a, b *RuleSet) (*RuleSet, []Path) {
	merged := a.Clone()
	if b == nil {
		return merged, nil
	}

	var overridden []Path
	for _, rule := range b.rules {
		key := rule.Field.String()
		if _, ok := merged.index[key]; ok {
			overridden = append(overridden, rule.Field)
		}
		// Rules in a stored set already passed construction checks.
		_ = merged.Put(rule)
	}
	return merged, overridden
}
