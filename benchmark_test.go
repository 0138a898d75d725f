package rulekit_test

import (
	"testing"

	"github.com/dmitrymomot/rulekit"
)

func benchValidator(b *testing.B) *rulekit.Validator {
	b.Helper()

	reg := rulekit.NewRegistry()
	if err := reg.Register("isNumber", func(v any, _ rulekit.Params) bool {
		switch v.(type) {
		case int, float64:
			return true
		default:
			return false
		}
	}); err != nil {
		b.Fatal(err)
	}
	if err := reg.Register("nonempty", func(v any, _ rulekit.Params) bool {
		s, ok := v.(string)
		return ok && s != ""
	}); err != nil {
		b.Fatal(err)
	}
	if err := reg.Register("min", func(v any, params rulekit.Params) bool {
		n, ok := v.(int)
		limit, hasLimit := params.Int("value")
		return ok && hasLimit && n >= limit
	}); err != nil {
		b.Fatal(err)
	}

	rs := rulekit.NewRuleSet()
	if err := rs.Add("name", rulekit.Check("nonempty")); err != nil {
		b.Fatal(err)
	}
	if err := rs.Add("age", rulekit.Check("isNumber"), rulekit.Check("min", rulekit.Params{"value": 18})); err != nil {
		b.Fatal(err)
	}
	if err := rs.Add("address.city", rulekit.Check("nonempty")); err != nil {
		b.Fatal(err)
	}
	if err := rs.AddOptional("tags[0]", rulekit.Check("nonempty")); err != nil {
		b.Fatal(err)
	}

	v, err := rulekit.Build(rs, reg)
	if err != nil {
		b.Fatal(err)
	}
	return v
}

func BenchmarkValidator_Validate(b *testing.B) {
	v := benchValidator(b)
	input := map[string]any{
		"name": "ada",
		"age":  30,
		"address": map[string]any{
			"city": "London",
		},
		"tags": []any{"pioneer"},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_ = v.Validate(input)
	}
}

func BenchmarkValidator_Validate_invalid(b *testing.B) {
	v := benchValidator(b)
	input := map[string]any{
		"name":    "",
		"age":     "thirty",
		"address": map[string]any{},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_ = v.Validate(input)
	}
}

func BenchmarkValidator_Validate_parallel(b *testing.B) {
	v := benchValidator(b)
	input := map[string]any{
		"name": "ada",
		"age":  30,
		"address": map[string]any{
			"city": "London",
		},
	}

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = v.Validate(input)
		}
	})
}

func BenchmarkParsePath(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_, _ = rulekit.ParsePath("user.addresses[2].lines[0]")
	}
}

func BenchmarkPath_Resolve(b *testing.B) {
	path := rulekit.MustPath("user.addresses[0].city")
	input := map[string]any{
		"user": map[string]any{
			"addresses": []any{
				map[string]any{"city": "London"},
			},
		},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = path.Resolve(input)
	}
}
