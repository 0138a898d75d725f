package rulekit

import (
	"io"
	"log/slog"
	"slices"
)

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	failFast bool
	message  MessageFunc
	logger   *slog.Logger
}

// WithFailFast stops a validation run at the first failed check. The
// default collects every failure so callers get a complete report.
func WithFailFast() Option {
	return func(c *buildConfig) { c.failFast = true }
}

// WithCollectAll restores the default collect-every-failure behavior.
func WithCollectAll() Option {
	return func(c *buildConfig) { c.failFast = false }
}

// WithMessageTemplate replaces the default failure message template. See
// RenderTemplate for the placeholder syntax.
func WithMessageTemplate(tpl string) Option {
	return func(c *buildConfig) {
		if tpl != "" {
			c.message = templateMessageFunc(tpl)
		}
	}
}

// WithMessageFunc replaces message rendering entirely, e.g. with a
// translation catalog. Nil funcs are ignored.
func WithMessageFunc(fn MessageFunc) Option {
	return func(c *buildConfig) {
		if fn != nil {
			c.message = fn
		}
	}
}

// WithLogger enables debug diagnostics for build and validation. Nil
// loggers are ignored; the default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Validator evaluates a compiled rule set against input values. It is
// immutable after Build: predicates are snapshotted out of the registry,
// configuration is fixed, and Validate keeps no state between calls, so one
// Validator may serve any number of concurrent callers.
type Validator struct {
	rules    []compiledRule
	failFast bool
	message  MessageFunc
	logger   *slog.Logger
}

type compiledRule struct {
	field    Path
	optional bool
	checks   []compiledCheck
}

type compiledCheck struct {
	name   string
	params Params
	fn     Predicate
}

// Build compiles a rule set against a registry. Every referenced predicate
// is resolved eagerly; unresolved names fail as a single
// *UnknownPredicateError listing all of them, so misconfiguration is caught
// once, at startup, never at call time. The inputs are not retained:
// changing the registry or rule set afterwards does not affect the returned
// Validator.
func Build(rs *RuleSet, reg *Registry, opts ...Option) (*Validator, error) {
	if rs == nil {
		return nil, ErrNilRuleSet
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}

	cfg := &buildConfig{
		message: templateMessageFunc(DefaultMessageTemplate),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var missing []string
	compiled := make([]compiledRule, 0, rs.Len())
	for _, rule := range rs.rules {
		cr := compiledRule{
			field:    rule.Field,
			optional: rule.Optional,
			checks:   make([]compiledCheck, 0, len(rule.Predicates)),
		}
		for _, spec := range rule.Predicates {
			fn, err := reg.Lookup(spec.Name)
			if err != nil {
				missing = append(missing, spec.Name)
				continue
			}
			cr.checks = append(cr.checks, compiledCheck{
				name:   spec.Name,
				params: spec.Params.Clone(),
				fn:     fn,
			})
		}
		compiled = append(compiled, cr)
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, &UnknownPredicateError{Names: slices.Compact(missing)}
	}

	cfg.logger.Debug("validator built",
		slog.Int("rules", len(compiled)),
		slog.Bool("fail_fast", cfg.failFast),
	)

	return &Validator{
		rules:    compiled,
		failFast: cfg.failFast,
		message:  cfg.message,
		logger:   cfg.logger,
	}, nil
}

// Validate evaluates the input and returns a complete Result. It is a total
// function: it never returns an error and never panics, regardless of the
// input shape or of predicates that violate their contract. Two calls with
// the same input produce the same Result.
func (v *Validator) Validate(input any) Result {
	errs := make([]FieldError, 0)

	for _, rule := range v.rules {
		value, found := rule.field.Resolve(input)

		if !found {
			if rule.optional {
				continue
			}
			errs = append(errs, v.fieldError(rule.field, PredicateRequired, nil))
			if v.failFast {
				return v.result(errs)
			}
			continue
		}

		for _, check := range rule.checks {
			if runCheck(check.fn, value, check.params) {
				continue
			}
			errs = append(errs, v.fieldError(rule.field, check.name, check.params))
			if v.failFast {
				return v.result(errs)
			}
		}
	}

	return v.result(errs)
}

func (v *Validator) result(errs []FieldError) Result {
	res := Result{Valid: len(errs) == 0, Errors: errs}
	if !res.Valid {
		v.logger.Debug("validation failed",
			slog.Int("errors", len(errs)),
			slog.String("first_field", errs[0].Field.String()),
		)
	}
	return res
}

func (v *Validator) fieldError(field Path, predicate string, params Params) FieldError {
	return FieldError{
		Field:     field,
		Predicate: predicate,
		Message:   v.message(field, predicate, params),
		Params:    params.Clone(),
	}
}

// runCheck invokes a predicate and converts a contract violation (panic)
// into a failed check, keeping Validate total.
func runCheck(fn Predicate, value any, params Params) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return fn(value, params)
}
