package inits

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_CONN", "file::memory:")
	t.Setenv("SIGNATURE_SECRET_KEY", "x")
}

func TestConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Config()
	require.NoError(t, err)
	assert.False(t, cfg.System.IsProd)
	assert.Equal(t, ":1323", cfg.System.Listen)
	assert.Equal(t, DBDriverPostgres, cfg.System.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.Security.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "admin", cfg.InitAdmin.Username)
	assert.Empty(t, cfg.InitAdmin.Password)
	assert.Contains(t, cfg.String(), "masked")
}

func TestConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MODE", "production")
	t.Setenv("LISTEN", ":8080")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Config()
	require.NoError(t, err)
	assert.True(t, cfg.System.IsProd)
	assert.Equal(t, ":8080", cfg.System.Listen)
	assert.Equal(t, DBDriverSQLite, cfg.System.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.Security.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
}

func TestConfigRejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"unknown driver": {"DB_DRIVER", "oracle"},
		"bad ttl":        {"TOKEN_TTL", "soon"},
		"negative ttl":   {"TOKEN_TTL", "-1h"},
		"empty secret":   {"SIGNATURE_SECRET_KEY", ""},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Config()
			assert.Error(t, err)
		})
	}
}
