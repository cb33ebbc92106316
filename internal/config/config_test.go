package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()
		assert.Equal(t, "8780", cfg.Port)
		assert.Equal(t, "csv", cfg.FlowSource)
		assert.Equal(t, 24, cfg.WindowSize)
		assert.Equal(t, 10, cfg.ElementsPerType)
		assert.Equal(t, int64(0), cfg.GeneratorSeed)
		assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("APP_PORT", "9000")
		t.Setenv("FLOW_SOURCE", "Postgres")
		t.Setenv("WINDOW_SIZE", "12")
		t.Setenv("GENERATOR_SEED", "-3")
		t.Setenv("SESSION_TTL", "45m")
		t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

		cfg := Load()
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, "postgres", cfg.FlowSource)
		assert.Equal(t, 12, cfg.WindowSize)
		assert.Equal(t, int64(-3), cfg.GeneratorSeed)
		assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("WINDOW_SIZE", "0")
		t.Setenv("ELEMENTS_PER_TYPE", "ten")
		t.Setenv("SESSION_TTL", "soon")
		t.Setenv("BUNDEBUG", "maybe")

		cfg := Load()
		assert.Equal(t, 24, cfg.WindowSize)
		assert.Equal(t, 10, cfg.ElementsPerType)
		assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
		assert.False(t, cfg.BunDebug)
	})
}
