package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a-very-long-test-secret"

func TestLoad_DefaultsWithRequiredSecret(t *testing.T) {
	t.Setenv("STOREADMIN_AUTH__JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 5, cfg.List.MaxVisible)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("STOREADMIN_AUTH__JWT_SECRET", testSecret)
	t.Setenv("STOREADMIN_SERVER__ADDR", ":9090")
	t.Setenv("STOREADMIN_SERVER__READ_TIMEOUT", "3s")
	t.Setenv("STOREADMIN_LIST__PAGE_SIZE", "25")
	t.Setenv("STOREADMIN_LOG__OUTPUT_PATHS", "stdout,/tmp/storeadmin.log")
	t.Setenv("STOREADMIN_FX__BASE_URL", "https://rates.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 25, cfg.List.PageSize)
	assert.Equal(t, []string{"stdout", "/tmp/storeadmin.log"}, cfg.Log.OutputPaths)
	assert.Equal(t, "https://rates.example.com", cfg.FX.BaseURL)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"short secret", map[string]string{"STOREADMIN_AUTH__JWT_SECRET": "short"}},
		{"postgres without dsn", map[string]string{
			"STOREADMIN_AUTH__JWT_SECRET": testSecret,
			"STOREADMIN_STORAGE__DRIVER":  "postgres",
		}},
		{"unknown driver", map[string]string{
			"STOREADMIN_AUTH__JWT_SECRET": testSecret,
			"STOREADMIN_STORAGE__DRIVER":  "sqlite",
		}},
		{"page size above limit", map[string]string{
			"STOREADMIN_AUTH__JWT_SECRET": testSecret,
			"STOREADMIN_LIST__PAGE_SIZE":  "500",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestTransformEnv(t *testing.T) {
	key, value := transformEnv("STOREADMIN_AUTH__ACCESS_TOKEN_TTL", "2h")
	assert.Equal(t, "auth.access_token_ttl", key)
	assert.Equal(t, "2h", value)
}
