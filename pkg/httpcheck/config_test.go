package httpcheck_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/httpcheck"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("HTTPCHECK_MAX_BODY_BYTES")
	os.Unsetenv("HTTPCHECK_MAX_ERRORS")

	cfg, err := httpcheck.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, int64(1048576), cfg.MaxBodyBytes, "MaxBodyBytes should default to 1 MiB")
	assert.Equal(t, 0, cfg.MaxErrors, "MaxErrors should default to unlimited")
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("HTTPCHECK_MAX_BODY_BYTES", "2048")
	t.Setenv("HTTPCHECK_MAX_ERRORS", "5")

	cfg, err := httpcheck.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
	assert.Equal(t, 5, cfg.MaxErrors)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("HTTPCHECK_MAX_BODY_BYTES", "not-a-number")

	_, err := httpcheck.LoadConfig()

	require.Error(t, err)
	assert.ErrorIs(t, err, httpcheck.ErrParsingConfig)
}
