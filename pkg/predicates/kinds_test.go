package predicates_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit"
	"github.com/dmitrymomot/rulekit/pkg/predicates"
)

// check runs a built-in predicate by its registered name.
func check(t *testing.T, name string, value any, params rulekit.Params) bool {
	t.Helper()

	p, ok := predicates.Lookup(name)
	require.True(t, ok, "predicate %q is not built in", name)
	return p(value, params)
}

func TestIsString(t *testing.T) {
	assert.True(t, check(t, predicates.IsString, "hello", nil))
	assert.True(t, check(t, predicates.IsString, "", nil))

	for _, v := range []any{42, 4.2, true, nil, []any{"a"}, map[string]any{}} {
		assert.False(t, check(t, predicates.IsString, v, nil), "value %v", v)
	}
}

func TestIsNumber(t *testing.T) {
	numbers := []any{42, int8(1), int64(-7), uint(9), uint64(1 << 60), 4.2, float32(1.5), 0}
	for _, v := range numbers {
		assert.True(t, check(t, predicates.IsNumber, v, nil), "value %v", v)
	}

	notNumbers := []any{"42", true, nil, []any{1}, map[string]any{}, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, v := range notNumbers {
		assert.False(t, check(t, predicates.IsNumber, v, nil), "value %v", v)
	}
}

func TestIsInt(t *testing.T) {
	assert.True(t, check(t, predicates.IsInt, 42, nil))
	assert.True(t, check(t, predicates.IsInt, 42.0, nil), "whole floats count, JSON has no integer type")
	assert.True(t, check(t, predicates.IsInt, int64(-3), nil))

	assert.False(t, check(t, predicates.IsInt, 42.5, nil))
	assert.False(t, check(t, predicates.IsInt, "42", nil))
	assert.False(t, check(t, predicates.IsInt, math.NaN(), nil))
}

func TestIsBool(t *testing.T) {
	assert.True(t, check(t, predicates.IsBool, true, nil))
	assert.True(t, check(t, predicates.IsBool, false, nil))

	assert.False(t, check(t, predicates.IsBool, 1, nil))
	assert.False(t, check(t, predicates.IsBool, "true", nil))
	assert.False(t, check(t, predicates.IsBool, nil, nil))
}

func TestIsObject(t *testing.T) {
	type payload struct{ Name string }

	assert.True(t, check(t, predicates.IsObject, map[string]any{}, nil))
	assert.True(t, check(t, predicates.IsObject, map[string]int{"a": 1}, nil))
	assert.True(t, check(t, predicates.IsObject, payload{Name: "x"}, nil))
	assert.True(t, check(t, predicates.IsObject, &payload{Name: "x"}, nil))
	assert.True(t, check(t, predicates.IsObject, time.Now(), nil))

	assert.False(t, check(t, predicates.IsObject, map[int]string{1: "a"}, nil))
	assert.False(t, check(t, predicates.IsObject, (*payload)(nil), nil))
	assert.False(t, check(t, predicates.IsObject, []any{}, nil))
	assert.False(t, check(t, predicates.IsObject, "{}", nil))
	assert.False(t, check(t, predicates.IsObject, nil, nil))
}

func TestIsArray(t *testing.T) {
	assert.True(t, check(t, predicates.IsArray, []any{1, 2}, nil))
	assert.True(t, check(t, predicates.IsArray, []string{}, nil))
	assert.True(t, check(t, predicates.IsArray, [3]int{}, nil))

	assert.False(t, check(t, predicates.IsArray, "abc", nil))
	assert.False(t, check(t, predicates.IsArray, map[string]any{}, nil))
	assert.False(t, check(t, predicates.IsArray, nil, nil))
}

func TestIsNull(t *testing.T) {
	assert.True(t, check(t, predicates.IsNull, nil, nil))
	assert.True(t, check(t, predicates.IsNull, (*int)(nil), nil))
	assert.True(t, check(t, predicates.IsNull, (map[string]any)(nil), nil))
	assert.True(t, check(t, predicates.IsNull, ([]any)(nil), nil))

	assert.False(t, check(t, predicates.IsNull, 0, nil))
	assert.False(t, check(t, predicates.IsNull, "", nil))
	assert.False(t, check(t, predicates.IsNull, []any{}, nil))
}

func TestIsDefined(t *testing.T) {
	for _, v := range []any{nil, 0, "", false, []any{}, map[string]any{}} {
		assert.True(t, check(t, predicates.IsDefined, v, nil), "value %v", v)
	}
}
