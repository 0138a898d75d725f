package predicates

import (
	"math"

	"github.com/dmitrymomot/rulekit"
)

// Registered names of the numeric predicates.
const (
	Min        = "min"
	Max        = "max"
	Between    = "between"
	Positive   = "positive"
	NonZero    = "nonzero"
	Integer    = "integer"
	MultipleOf = "multipleOf"
)

func minNum(value any, params rulekit.Params) bool {
	f, ok := rulekit.Number(value)
	if !ok {
		return false
	}
	limit, ok := params.Float("value")
	return ok && f >= limit
}

func maxNum(value any, params rulekit.Params) bool {
	f, ok := rulekit.Number(value)
	if !ok {
		return false
	}
	limit, ok := params.Float("value")
	return ok && f <= limit
}

// between checks the inclusive range ["min", "max"].
func between(value any, params rulekit.Params) bool {
	f, ok := rulekit.Number(value)
	if !ok {
		return false
	}
	lo, okLo := params.Float("min")
	hi, okHi := params.Float("max")
	return okLo && okHi && f >= lo && f <= hi
}

func positive(value any, _ rulekit.Params) bool {
	f, ok := rulekit.Number(value)
	return ok && f > 0
}

func nonzero(value any, _ rulekit.Params) bool {
	f, ok := rulekit.Number(value)
	return ok && f != 0
}

func integer(value any, _ rulekit.Params) bool {
	f, ok := rulekit.Number(value)
	return ok && math.Trunc(f) == f
}

// multipleOf checks divisibility by the "value" parameter. A zero divisor
// fails every value.
func multipleOf(value any, params rulekit.Params) bool {
	f, ok := rulekit.Number(value)
	if !ok {
		return false
	}
	div, ok := params.Float("value")
	if !ok || div == 0 {
		return false
	}
	return math.Mod(f, div) == 0
}
