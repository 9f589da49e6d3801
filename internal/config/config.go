package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"Commissions"`
		Port     int    `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Port         int    `envconfig:"DB_PORT" default:"5432"`
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:""`
		Name         string `envconfig:"DB_NAME" default:"commissions"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	}

	Migrate struct {
		OnStart bool `envconfig:"MIGRATE_ON_START" default:"true"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	Upload struct {
		// Backend is "local" or "gcs".
		Backend  string `envconfig:"UPLOAD_BACKEND" default:"local"`
		Dir      string `envconfig:"UPLOAD_DIR" default:"uploads"`
		Bucket   string `envconfig:"UPLOAD_BUCKET"`
		MaxBytes int64  `envconfig:"UPLOAD_MAX_BYTES" default:"33554432"`
	}

	Import struct {
		AliasFile string `envconfig:"IMPORT_ALIAS_FILE"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Upload.Backend {
	case "local", "gcs":
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Upload.Backend)
	}

	if cfg.Upload.Backend == "gcs" && cfg.Upload.Bucket == "" {
		return nil, fmt.Errorf("UPLOAD_BUCKET is required for the gcs upload backend")
	}

	return &cfg, nil
}
