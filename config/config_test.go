package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:8080"}, cfg.CORSOrigins)
	assert.Equal(t, 100, cfg.LogMaxSize)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("LOG_MAX_AGE", "7")
	t.Setenv("LOG_MAX_SIZE", "not-a-number")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.True(t, cfg.AuthRequired)
	assert.Equal(t, 7, cfg.LogMaxAge)
	assert.Equal(t, 100, cfg.LogMaxSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, "cache:6380", cfg.RedisFullAddr())
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "body", DBPort: "5432"}
	assert.Equal(t, "host=db user=u password=p dbname=body port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
