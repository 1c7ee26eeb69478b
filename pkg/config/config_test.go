package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/lifeweeks/pkg/cache"
	lwerrors "github.com/matzehuels/lifeweeks/pkg/errors"
	"github.com/matzehuels/lifeweeks/pkg/layout"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 100, cfg.Years)
	assert.Equal(t, layout.DefaultConfig(), cfg.Render)
	assert.Equal(t, cache.BackendFile, cfg.Cache.Backend)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadNoSources(t *testing.T) {
	cfg, err := LoadWithEnvFile("", filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "lifeweeks.toml", `
output_dir = "calendars"
years = 90

[render]
highlight_color = "#ff8800"
box_size = 8.0

[cache]
backend = "none"
ttl = "2h"

[server]
addr = "127.0.0.1:9000"
`)
	cfg, err := LoadWithEnvFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, "calendars", cfg.OutputDir)
	assert.Equal(t, 90, cfg.Years)
	assert.Equal(t, 8.0, cfg.Render.BoxSize)
	assert.Equal(t, "#ff8800", cfg.Render.HighlightColor.Hex())
	assert.Equal(t, layout.DefaultMargin, cfg.Render.Margin, "unset keys keep defaults")
	assert.Equal(t, cache.BackendNone, cfg.Cache.Backend)
	assert.Equal(t, 2*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
}

func TestLoadTOMLUnknownKey(t *testing.T) {
	path := writeFile(t, "bad.toml", "yeras = 90\n")
	_, err := LoadWithEnvFile(path, "")
	require.Error(t, err)
	assert.True(t, lwerrors.Is(err, lwerrors.ErrCodeInvalidConfig))
	assert.Contains(t, err.Error(), "yeras")
}

func TestLoadTOMLMissingFile(t *testing.T) {
	_, err := LoadWithEnvFile(filepath.Join(t.TempDir(), "nope.toml"), "")
	assert.True(t, lwerrors.Is(err, lwerrors.ErrCodeFileNotFound), "got %v", err)
}

func TestLoadEnvOverridesTOML(t *testing.T) {
	path := writeFile(t, "lifeweeks.toml", "years = 90\n")
	t.Setenv("LIFEWEEKS_YEARS", "80")
	t.Setenv("LIFEWEEKS_CACHE_BACKEND", "redis")
	t.Setenv("LIFEWEEKS_CACHE_REDIS_ADDR", "cache:6379")
	t.Setenv("LIFEWEEKS_RENDER_BASE_COLOR", "#333333")

	cfg, err := LoadWithEnvFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Years)
	assert.Equal(t, cache.BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, "#333333", cfg.Render.BaseColor.Hex())
}

func TestLoadDotEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "LIFEWEEKS_OUTPUT_DIR=from-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("LIFEWEEKS_OUTPUT_DIR") })

	cfg, err := LoadWithEnvFile("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.OutputDir)
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("LIFEWEEKS_YEARS", "many")
	_, err := LoadWithEnvFile("", "")
	assert.True(t, lwerrors.Is(err, lwerrors.ErrCodeInvalidConfig), "got %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero box size", func(c *Config) { c.Render.BoxSize = 0 }},
		{"zero years", func(c *Config) { c.Years = 0 }},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Second }},
		{"redis without addr", func(c *Config) { c.Cache.Backend = "redis"; c.Cache.RedisAddr = "" }},
		{"mongo without database", func(c *Config) { c.Cache.Backend = "mongo"; c.Cache.MongoDatabase = "" }},
		{"output dir traversal", func(c *Config) { c.OutputDir = "../../etc" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, lwerrors.IsInvalid(err), "got %v", err)
		})
	}
}

func TestCacheOptions(t *testing.T) {
	c := Default().Cache
	c.Dir = "/tmp/lw"
	opts := c.Options()
	assert.Equal(t, cache.BackendFile, opts.Backend)
	assert.Equal(t, "/tmp/lw", opts.Dir)
	assert.Equal(t, "localhost:6379", opts.Redis.Addr)
	assert.Equal(t, "lifeweeks", opts.Mongo.Database)
}
