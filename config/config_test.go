package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func TestNewConfigDefaults(t *testing.T) {
	captureLog(t)
	// empty values count as unset
	for _, key := range []string{"SERVER_PORT", "DATABASE_DRIVER", "JWT_TTL", "SCHOOL_VERIFICATION_TOKEN", "GRADING_CONCURRENCY"} {
		t.Setenv(key, "")
	}

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, "VALID_TOKEN", cfg.Auth.SchoolVerificationToken)
	assert.Equal(t, 4, cfg.Grading.Concurrency)
}

func TestNewConfigKeepsSecretsOutOfTheLog(t *testing.T) {
	buf := captureLog(t)
	secrets := map[string]string{
		"DATABASE_PASSWORD":         "db-pass-7f3a",
		"JWT_SECRET":                "jwt-secret-91c2",
		"SCHOOL_VERIFICATION_TOKEN": "verify-token-44de",
		"SEED_PASSWORD":             "seed-pass-0b8e",
		"GEMINI_API_KEY":            "gemini-key-c6d1",
	}
	for key, value := range secrets {
		t.Setenv(key, value)
	}

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "db-pass-7f3a", cfg.Database.Password)
	assert.Equal(t, "jwt-secret-91c2", cfg.Auth.JWTSecret)

	out := buf.String()
	assert.Contains(t, out, "Config loaded")
	for key, value := range secrets {
		assert.NotContains(t, out, value, key)
	}
}
