package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsTimeDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, getEnvAsTimeDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "30")
	assert.Equal(t, 30*time.Second, getEnvAsTimeDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "soon")
	assert.Equal(t, time.Minute, getEnvAsTimeDuration("TEST_DURATION", time.Minute))

	assert.Equal(t, time.Hour, getEnvAsTimeDuration("TEST_DURATION_UNSET", time.Hour))
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_SLICE", " a, b ,,c ")
	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsSlice("TEST_SLICE", nil))

	assert.Equal(t, []string{"x"}, getEnvAsSlice("TEST_SLICE_UNSET", []string{"x"}))
}

func TestGetEnvAsIntAndBool(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")

	assert.Equal(t, 42, getEnvAsInt("TEST_INT", 1))
	assert.Equal(t, 1, getEnvAsInt("TEST_BAD_INT", 1))
	assert.True(t, getEnvAsBool("TEST_BOOL", false))
	assert.False(t, getEnvAsBool("TEST_BOOL_UNSET", false))
}

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("QUOTER_MODE", "live")
	t.Setenv("QUOTER_ENDPOINT", "http://quotes.internal/rates")
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("CACHE_ENABLED", "true")

	cfg := Load()

	assert.True(t, IsProduction(cfg))
	assert.Equal(t, "info", GetLogLevel(cfg))
	assert.Equal(t, "live", cfg.Quoter.Mode)
	assert.Equal(t, "http://quotes.internal/rates", cfg.Quoter.Endpoint)
	assert.Equal(t, 45*time.Minute, cfg.Session.TTL)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "QUOTER_MODE", "QUOTER_ENDPOINT", "SESSION_TTL", "CACHE_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.False(t, IsProduction(cfg))
	assert.Equal(t, "debug", GetLogLevel(cfg))
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Cache.Enabled)
}

func TestInitializeLogger(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	assert.NotNil(t, InitializeLogger(Load()))
	assert.NotNil(t, NewLogger(Load(), false))
}
