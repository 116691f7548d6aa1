package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 30, cfg.AccessTokenTTLMinutes)
	assert.Equal(t, 15, cfg.RefreshTokenTTLDays)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("REFRESH_TOKEN_TTL_DAYS", "7")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, 5, cfg.AccessTokenTTLMinutes)
	assert.Equal(t, 7, cfg.RefreshTokenTTLDays)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadIgnoresGarbageTTL(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "not-a-number")
	t.Setenv("REFRESH_TOKEN_TTL_DAYS", "-3")

	cfg := Load()

	assert.Equal(t, 30, cfg.AccessTokenTTLMinutes)
	assert.Equal(t, 15, cfg.RefreshTokenTTLDays)
}
