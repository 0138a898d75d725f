package predicates

import (
	"math"
	"time"

	"github.com/dmitrymomot/rulekit"
)

// Registered names of the timestamp predicates.
const (
	Timestamp = "timestamp"
	Before    = "before"
	After     = "after"
)

// Epoch integers are accepted between 1970 and the year 3000; larger
// magnitudes within the window are read as milliseconds.
const (
	maxEpochSeconds = 32503680000
	maxEpochMillis  = maxEpochSeconds * 1000
)

// parseTime normalizes the timestamp representations rule documents produce:
// time.Time values, RFC 3339 strings, and non-negative epoch integers in
// seconds or milliseconds.
func parseTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	}

	f, ok := rulekit.Number(value)
	if !ok || f < 0 || math.Trunc(f) != f {
		return time.Time{}, false
	}
	n := int64(f)
	switch {
	case n <= maxEpochSeconds:
		return time.Unix(n, 0).UTC(), true
	case n <= maxEpochMillis:
		return time.UnixMilli(n).UTC(), true
	default:
		return time.Time{}, false
	}
}

func timestamp(value any, _ rulekit.Params) bool {
	_, ok := parseTime(value)
	return ok
}

// before checks that the value is strictly earlier than the "value"
// parameter, which accepts the same representations as the value itself.
func before(value any, params rulekit.Params) bool {
	ts, ok := parseTime(value)
	if !ok {
		return false
	}
	raw, ok := params.Get("value")
	if !ok {
		return false
	}
	limit, ok := parseTime(raw)
	return ok && ts.Before(limit)
}

// after checks that the value is strictly later than the "value" parameter.
func after(value any, params rulekit.Params) bool {
	ts, ok := parseTime(value)
	if !ok {
		return false
	}
	raw, ok := params.Get("value")
	if !ok {
		return false
	}
	limit, ok := parseTime(raw)
	return ok && ts.After(limit)
}
