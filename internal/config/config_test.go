package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_PATH", "LISTEN_ADDR", "JWT_SECRET", "TOKEN_TTL",
		"AUTH_ISSUER_URL", "AUTH_JWKS_URL", "AUTH_AUDIENCE", "AUTH_ALLOWED_ISSUERS",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS",
		"TLS_CERT_FILE", "TLS_KEY_FILE", "ALLOW_INSECURE_HTTP", "LOG_LEVEL", "ENV",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "fieldtrack.sqlite", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, float64(100), cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.Auth.OIDCEnabled())
	assert.NotEmpty(t, cfg.Warnings) // default JWT secret warns
}

func TestLoadFromEnv_AllVarsSet(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/data/app.sqlite")
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("RATE_LIMIT_RPS", "50")
	t.Setenv("RATE_LIMIT_BURST", "75")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/data/app.sqlite", cfg.DBPath)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "supersecret", cfg.Auth.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, float64(50), cfg.RateLimitRPS)
	assert.Equal(t, 75, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv_OIDC(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_ISSUER_URL", "https://idp.example.com")

	// Issuer without audience is a config error.
	_, err := LoadFromEnv()
	require.Error(t, err)

	t.Setenv("AUTH_AUDIENCE", "fieldtrack-api")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Auth.OIDCEnabled())
}

func TestLoadFromEnv_TLSPairRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("TLS_CERT_FILE", "/etc/certs/cert.pem")

	_, err := LoadFromEnv()
	require.Error(t, err)
}

func TestLoadFromEnv_ProductionHardening(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	// Default JWT secret is fatal in production.
	_, err := LoadFromEnv()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "real-secret")
	// CORS wildcard is fatal too.
	_, err = LoadFromEnv()
	require.Error(t, err)

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")
	// Still no TLS.
	_, err = LoadFromEnv()
	require.Error(t, err)

	t.Setenv("ALLOW_INSECURE_HTTP", "true")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]string{
		"debug": "DEBUG", "info": "INFO", "warn": "WARN",
		"warning": "WARN", "error": "ERROR", "bogus": "INFO",
	}
	for in, want := range tests {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel().String(), "level %q", in)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment line\n\nDB_PATH=/tmp/dotenv.sqlite\nJWT_SECRET=\"quoted-secret\"\nMALFORMED LINE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "/tmp/dotenv.sqlite", os.Getenv("DB_PATH"))
	assert.Equal(t, "quoted-secret", os.Getenv("JWT_SECRET"))
}

func TestLoadDotEnv_EnvWins(t *testing.T) {
	t.Setenv("DB_PATH", "/already/set.sqlite")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_PATH=/from/file.sqlite\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "/already/set.sqlite", os.Getenv("DB_PATH"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
