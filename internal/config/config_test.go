package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, int32(1), cfg.Database.MinConns)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.AcquireTimeout)
	assert.Equal(t, "HS256", cfg.Auth.JWTAlgorithm)
	assert.Equal(t, 15, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL())
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ACCOUNTS_SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("ACCOUNTS_DATABASE_URL", "postgres://example/db")
	t.Setenv("ACCOUNTS_DATABASE_MAXCONNS", "25")
	t.Setenv("ACCOUNTS_DATABASE_ACQUIRETIMEOUT", "2s")
	t.Setenv("ACCOUNTS_AUTH_JWTSECRET", "s3cret")
	t.Setenv("ACCOUNTS_AUTH_TOKENTTLMINUTES", "30")
	t.Setenv("ACCOUNTS_AUTH_COOKIESECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "postgres://example/db", cfg.Database.URL)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, 2*time.Second, cfg.Database.AcquireTimeout)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL())
	assert.True(t, cfg.Auth.CookieSecure)
}
