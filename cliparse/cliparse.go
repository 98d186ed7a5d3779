// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Environments
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const defaultSQLitePath = "pollsite.db"

type Config struct {
	Env            string        `yaml:"env"             env:"ENV"             env-default:"local"`
	Port           int           `yaml:"port"            env:"PORT"            env-default:"3318"`
	DatabaseURL    string        `yaml:"database_url"    env:"DATABASE_URL"`
	DatabaseType   string        `yaml:"database_type"   env:"DATABASE_TYPE"   env-default:"sqlite"`
	IndexLimit     int           `yaml:"index_limit"     env:"INDEX_LIMIT"     env-default:"0"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"5s"`
}

// ParseFlags builds the config from (highest first) CLI flags, environment,
// an optional YAML file and defaults.
func ParseFlags(args []string) (Config, error) {
	var (
		cfg          Config
		configPath   string
		envFile      string
		port         int
		databaseURL  string
		databaseType string
		indexLimit   int
	)

	fs := flag.NewFlagSet("pollsite", flag.ContinueOnError)

	fs.StringVar(&configPath, "c", "", "Path to YAML config file (or CONFIG_PATH env)")
	fs.StringVar(&envFile, "env-file", ".env", "Optional dotenv file")

	// Network and storage (can be CLI args or env)
	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&databaseURL, "d", "", "Database URL")
	fs.StringVar(&databaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&indexLimit, "index-limit", -1, "Questions shown on the index page (0 = all)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// A missing .env is fine; existing env vars win over it
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read env: %w", err)
	}

	// CLI overrides everything else
	if port != 0 {
		cfg.Port = port
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if databaseType != "" {
		cfg.DatabaseType = databaseType
	}
	if indexLimit >= 0 {
		cfg.IndexLimit = indexLimit
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	switch c.DatabaseType {
	case DatabaseSQLite:
		if c.DatabaseURL == "" {
			c.DatabaseURL = defaultSQLitePath
		}
	case DatabasePostgres:
		if c.DatabaseURL == "" {
			return errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return fmt.Errorf("unsupported database type %q (want sqlite or postgres)", c.DatabaseType)
	}

	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env %q (want local, dev or prod)", c.Env)
	}

	if c.IndexLimit < 0 {
		return errors.New("index limit must be >= 0")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout must be >= 0")
	}

	return nil
}
