// Package config loads lifeweeks settings.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults ([Default])
//  2. a .env file in the working directory (joho/godotenv), which only
//     fills variables that are not already set
//  3. an optional TOML file (BurntSushi/toml); unknown keys are rejected
//  4. environment variables prefixed with LIFEWEEKS_ (caarlos0/env)
//
// Command-line flags are applied last by the CLI.
//
// Example TOML:
//
//	output_dir = "calendars"
//	years = 90
//
//	[render]
//	highlight_color = "#00ffff"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
package config

import (
	"errors"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/matzehuels/lifeweeks/pkg/cache"
	lwerrors "github.com/matzehuels/lifeweeks/pkg/errors"
	"github.com/matzehuels/lifeweeks/pkg/io"
	"github.com/matzehuels/lifeweeks/pkg/layout"
	"github.com/matzehuels/lifeweeks/pkg/pipeline"
)

// EnvPrefix prefixes every environment variable, e.g. LIFEWEEKS_CACHE_BACKEND.
const EnvPrefix = "LIFEWEEKS_"

// DotEnvFile is the .env file read by [Load].
const DotEnvFile = ".env"

// Config is the complete application configuration.
type Config struct {
	OutputDir string `toml:"output_dir" env:"OUTPUT_DIR"`
	Years     int    `toml:"years" env:"YEARS"`

	Render layout.Config `toml:"render" envPrefix:"RENDER_"`
	Cache  CacheConfig   `toml:"cache" envPrefix:"CACHE_"`
	Server ServerConfig  `toml:"server" envPrefix:"SERVER_"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	// Backend is one of none, file, redis or mongo.
	Backend string        `toml:"backend" env:"BACKEND"`
	Dir     string        `toml:"dir" env:"DIR"`
	TTL     time.Duration `toml:"ttl" env:"TTL"`

	RedisAddr     string `toml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `toml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `toml:"redis_db" env:"REDIS_DB"`

	MongoURI        string `toml:"mongo_uri" env:"MONGO_URI"`
	MongoDatabase   string `toml:"mongo_database" env:"MONGO_DATABASE"`
	MongoCollection string `toml:"mongo_collection" env:"MONGO_COLLECTION"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr string `toml:"addr" env:"ADDR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir: io.DefaultOutputDir,
		Years:     pipeline.DefaultYears,
		Render:    layout.DefaultConfig(),
		Cache: CacheConfig{
			Backend:         cache.BackendFile,
			TTL:             cache.TTLArtifact,
			RedisAddr:       "localhost:6379",
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   "lifeweeks",
			MongoCollection: "artifacts",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads .env from the working directory and then path, which may be
// empty.
func Load(path string) (Config, error) {
	return LoadWithEnvFile(path, DotEnvFile)
}

// LoadWithEnvFile is [Load] with an explicit .env location. A missing .env
// file is not an error; a missing TOML file is.
func LoadWithEnvFile(path, envFile string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, lwerrors.Wrap(lwerrors.ErrCodeInvalidConfig, err, "read %s", envFile)
		}
	}

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, lwerrors.Wrap(lwerrors.ErrCodeInvalidConfig, err, "read environment")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return lwerrors.Wrap(lwerrors.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}
	if err != nil {
		return lwerrors.Wrap(lwerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return lwerrors.New(lwerrors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if err := pipeline.ValidateYears(c.Years); err != nil {
		return lwerrors.Wrap(lwerrors.ErrCodeInvalidConfig, err, "years")
	}
	if c.OutputDir != "" {
		if err := lwerrors.ValidatePath(c.OutputDir); err != nil {
			return err
		}
	}
	return c.Cache.Validate()
}

// Validate checks the backend name and its required settings.
func (c CacheConfig) Validate() error {
	if !slices.Contains(cache.Backends, c.Backend) {
		return lwerrors.New(lwerrors.ErrCodeInvalidConfig, "unknown cache backend %q (must be one of: %s)",
			c.Backend, strings.Join(cache.Backends, ", "))
	}
	if c.TTL < 0 {
		return lwerrors.New(lwerrors.ErrCodeInvalidConfig, "cache ttl cannot be negative")
	}
	switch c.Backend {
	case cache.BackendRedis:
		if c.RedisAddr == "" {
			return lwerrors.New(lwerrors.ErrCodeInvalidConfig, "redis backend requires redis_addr")
		}
	case cache.BackendMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" || c.MongoCollection == "" {
			return lwerrors.New(lwerrors.ErrCodeInvalidConfig, "mongo backend requires mongo_uri, mongo_database and mongo_collection")
		}
	}
	return nil
}

// Options converts the section into cache.Open options.
func (c CacheConfig) Options() cache.Options {
	return cache.Options{
		Backend: c.Backend,
		Dir:     c.Dir,
		Redis: cache.RedisConfig{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
			Prefix:   "lifeweeks:",
		},
		Mongo: cache.MongoConfig{
			URI:        c.MongoURI,
			Database:   c.MongoDatabase,
			Collection: c.MongoCollection,
		},
	}
}
