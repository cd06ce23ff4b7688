package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apivalidate/pkg/config"
	"github.com/dmitrymomot/apivalidate/pkg/httpvalidate"
	"github.com/dmitrymomot/apivalidate/pkg/logger"
	"github.com/dmitrymomot/apivalidate/pkg/validator"
)

var appKeys = []string{
	"LOG_SERVICE",
	"APP_ENV",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"VALIDATOR_CONCURRENCY",
	"HTTP_MAX_BODY_SIZE",
	"HTTP_VALIDATE_RESPONSES",
}

// cleanEnv unsets the application keys for the test and empties the cache.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range appKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	config.ResetCache()
	t.Cleanup(config.ResetCache)
}

func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)

	var logCfg logger.Config
	require.NoError(t, config.Load(&logCfg))
	assert.Equal(t, logger.Config{Service: "apivalidate", Env: logger.EnvDevelopment}, logCfg)

	var validatorCfg validator.Config
	require.NoError(t, config.Load(&validatorCfg))
	assert.Equal(t, 0, validatorCfg.Concurrency)

	var httpCfg httpvalidate.Config
	require.NoError(t, config.Load(&httpCfg))
	assert.Equal(t, int64(1048576), httpCfg.MaxBodySize)
	assert.True(t, httpCfg.ValidateResponses)
}

func TestLoad_EnvOverrides(t *testing.T) {
	cleanEnv(t)
	t.Setenv("LOG_SERVICE", "users-api")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("VALIDATOR_CONCURRENCY", "4")
	t.Setenv("HTTP_MAX_BODY_SIZE", "2048")
	t.Setenv("HTTP_VALIDATE_RESPONSES", "false")

	var logCfg logger.Config
	require.NoError(t, config.Load(&logCfg))
	assert.Equal(t, "users-api", logCfg.Service)
	assert.Equal(t, "production", logCfg.Env)
	assert.Equal(t, "warn", logCfg.Level)

	log, err := logger.NewFromConfig(logCfg)
	require.NoError(t, err)
	assert.NotNil(t, log)

	var validatorCfg validator.Config
	require.NoError(t, config.Load(&validatorCfg))
	assert.Equal(t, 4, validatorCfg.Concurrency)

	var httpCfg httpvalidate.Config
	require.NoError(t, config.Load(&httpCfg))
	assert.Equal(t, int64(2048), httpCfg.MaxBodySize)
	assert.False(t, httpCfg.ValidateResponses)
}

func TestLoad_InvalidValue(t *testing.T) {
	cleanEnv(t)
	t.Setenv("HTTP_MAX_BODY_SIZE", "one megabyte")

	var cfg httpvalidate.Config
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("HTTP_MAX_BODY_SIZE", "512")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, int64(512), cfg.MaxBodySize)
}

func TestLoad_InvalidLogLevelSurfacesAtBuild(t *testing.T) {
	cleanEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	var cfg logger.Config
	require.NoError(t, config.Load(&cfg))

	_, err := logger.NewFromConfig(cfg)
	assert.ErrorContains(t, err, "loud")
}

func TestLoad_Cached(t *testing.T) {
	cleanEnv(t)
	t.Setenv("VALIDATOR_CONCURRENCY", "2")

	var first validator.Config
	require.NoError(t, config.Load(&first))

	t.Setenv("VALIDATOR_CONCURRENCY", "8")

	var second validator.Config
	require.NoError(t, config.Load(&second))
	assert.Equal(t, 2, second.Concurrency)

	require.NoError(t, config.ForceReloadConfig(&second))
	assert.Equal(t, 8, second.Concurrency)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *httpvalidate.Config
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	cleanEnv(t)

	var cfg validator.Config
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("VALIDATOR_CONCURRENCY", "many")
	var broken struct {
		Concurrency int `env:"VALIDATOR_CONCURRENCY"`
	}
	assert.Panics(t, func() { config.MustLoad(&broken) })
}
