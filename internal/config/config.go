package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// RedisConfig holds connection settings for the Redis document persister.
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
}

// Config is the top-level service configuration. A YAML file is optional;
// environment variables override whatever the file provides.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen" json:"listen"`

	// Storage selects the document persister: "redis", "postgres" or
	// "memory". Memory keeps the document for the process lifetime only.
	Storage string `yaml:"storage" json:"storage"`

	Redis RedisConfig `yaml:"redis" json:"redis"`

	// DatabaseURL is the Postgres connection string when Storage is
	// "postgres".
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// FlushSpec is the cron schedule for committing a dirty document to
	// storage, e.g. "@every 15s".
	FlushSpec string `yaml:"flush" json:"flush"`

	// AllowedOrigins is the CORS allow-list for the SPA. "*" allows all.
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		Listen:         ":9091",
		Storage:        "memory",
		Redis:          RedisConfig{Addr: "localhost:6379"},
		FlushSpec:      "@every 15s",
		AllowedOrigins: []string{"*"},
	}
}

// Normalize fills missing or unknown values with defaults so a partial file
// still behaves.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = ":9091"
	}
	switch c.Storage {
	case "redis", "postgres", "memory":
	default:
		c.Storage = "memory"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.FlushSpec == "" {
		c.FlushSpec = "@every 15s"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
}

// Load reads the YAML file at path (missing file is not an error; defaults
// apply), then applies environment overrides and normalizes.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if uerr := yaml.Unmarshal(data, cfg); uerr != nil {
				return nil, uerr
			}
		case errors.Is(err, fs.ErrNotExist):
			// First run without a config file; env and defaults carry it.
		default:
			return nil, err
		}
	}

	cfg.applyEnv()
	cfg.Normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("STORAGE_BACKEND"); v != "" {
		c.Storage = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = n
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("FLUSH_SPEC"); v != "" {
		c.FlushSpec = v
	}
}
