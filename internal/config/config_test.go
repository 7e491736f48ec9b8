package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chevoisiatesalvati/guess-what/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("GAME_BACKEND", "")
	t.Setenv("DISPLAY_PLATFORM_FEE_PERCENT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("LOCAL_TIME_LIMIT", "")
	t.Setenv("APP_URL", "https://guess.example/")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, config.BackendRemote, cfg.GameBackend)
	assert.Equal(t, uint64(5), cfg.DisplayPlatformFeePercent)
	assert.Equal(t, 30*time.Second, cfg.LocalTimeLimit)
	assert.Equal(t, "https://guess.example", cfg.AppURL)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("GAME_BACKEND", "LOCAL")
	t.Setenv("DISPLAY_PLATFORM_FEE_PERCENT", "10")
	t.Setenv("LOCAL_TIME_LIMIT", "45s")
	t.Setenv("REDIS_DB", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendLocal, cfg.GameBackend)
	assert.Equal(t, uint64(10), cfg.DisplayPlatformFeePercent)
	assert.Equal(t, 45*time.Second, cfg.LocalTimeLimit)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("GAME_BACKEND", "carrier-pigeon")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("GAME_BACKEND", "remote")
	t.Setenv("DISPLAY_PLATFORM_FEE_PERCENT", "101")
	_, err = config.Load()
	assert.Error(t, err)
}

func TestProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GAME_BACKEND", "")
	t.Setenv("DISPLAY_PLATFORM_FEE_PERCENT", "")

	_, err := config.Load()
	assert.Error(t, err)
}
