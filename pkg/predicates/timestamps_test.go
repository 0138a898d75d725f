package predicates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit"
	"github.com/dmitrymomot/rulekit/pkg/predicates"
)

func TestTimestamp(t *testing.T) {
	valid := []any{
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00+02:00",
		time.Now(),
		1700000000,        // epoch seconds
		int64(1700000000), // any integer type works
		1700000000000,     // epoch milliseconds
		0,                 // the epoch itself
	}
	for _, v := range valid {
		assert.True(t, check(t, predicates.Timestamp, v, nil), "should be valid: %v", v)
	}

	invalid := []any{
		"2024-01-15", // date only, not RFC 3339
		"15/01/2024 10:30",
		"",
		-5,                // before the epoch
		12.5,              // fractional epoch
		99999999999999999, // beyond any sane window
		true,
		nil,
	}
	for _, v := range invalid {
		assert.False(t, check(t, predicates.Timestamp, v, nil), "should be invalid: %v", v)
	}
}

func TestBeforeAfter(t *testing.T) {
	limit := rulekit.Params{"value": "2024-06-01T00:00:00Z"}

	t.Run("before is strict", func(t *testing.T) {
		assert.True(t, check(t, predicates.Before, "2024-01-01T00:00:00Z", limit))
		assert.False(t, check(t, predicates.Before, "2024-06-01T00:00:00Z", limit), "equal is not before")
		assert.False(t, check(t, predicates.Before, "2025-01-01T00:00:00Z", limit))
	})

	t.Run("after is strict", func(t *testing.T) {
		assert.True(t, check(t, predicates.After, "2025-01-01T00:00:00Z", limit))
		assert.False(t, check(t, predicates.After, "2024-06-01T00:00:00Z", limit), "equal is not after")
		assert.False(t, check(t, predicates.After, "2024-01-01T00:00:00Z", limit))
	})

	t.Run("representations mix", func(t *testing.T) {
		assert.True(t, check(t, predicates.Before, 1700000000, limit), "epoch seconds against RFC 3339 limit")
		assert.True(t, check(t, predicates.After, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), limit))
		assert.True(t, check(t, predicates.Before, "2024-01-01T00:00:00Z", rulekit.Params{"value": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}))
	})

	t.Run("unparseable inputs fail", func(t *testing.T) {
		assert.False(t, check(t, predicates.Before, "not a time", limit))
		assert.False(t, check(t, predicates.Before, "2024-01-01T00:00:00Z", rulekit.Params{"value": "junk"}))
		assert.False(t, check(t, predicates.Before, "2024-01-01T00:00:00Z", nil), "missing parameter fails")
	})
}
