package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestDefaults(t *testing.T) {
	cfg := FromEnv(envOf(nil))

	assert.Equal(t, "5050", cfg.AppURI)
	assert.Equal(t, "*", cfg.AllowedOrigins)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, "FormBuilderDB", cfg.MongoDB)
	assert.Equal(t, 5*time.Minute, cfg.TemplateCacheTTL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Zero(t, cfg.SMTP.Port)
	assert.False(t, cfg.SeedSamples)
}

func TestMongoURISelectsMongoDriver(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{"MONGO_URI": "mongodb://localhost:27017"}))
	assert.Equal(t, DriverMongo, cfg.StoreDriver)

	cfg = FromEnv(envOf(map[string]string{"MONGO_URI": "mongodb://localhost:27017", "STORE_DRIVER": "memory"}))
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
}

func TestParsesValues(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{
		"APP_URI":            "8888",
		"TEMPLATE_CACHE_TTL": "30s",
		"REQUEST_TIMEOUT":    "bogus",
		"SMTP_PORT":          "587",
		"SEED_SAMPLES":       "true",
	}))

	assert.Equal(t, "8888", cfg.AppURI)
	assert.Equal(t, 30*time.Second, cfg.TemplateCacheTTL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.True(t, cfg.SeedSamples)
}
