package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER,required"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME,required"`
	DBSslMode     string `env:"DB_SSLMODE" envDefault:"disable"`
	DBAutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
	SeedDemoData  bool   `env:"SEED_DEMO_DATA" envDefault:"false"`

	// BatchFetchSize is the number of orders whose items are loaded by one IN query.
	BatchFetchSize int `env:"BATCH_FETCH_SIZE" envDefault:"100"`
	// LazyListLimit caps the orders loaded by the lazy entity listing.
	LazyListLimit int `env:"LAZY_LIST_LIMIT" envDefault:"1000"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the .env file when present and parses the environment into Config.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.BatchFetchSize < 1 {
		return Config{}, fmt.Errorf("BATCH_FETCH_SIZE must be positive, got %d", cfg.BatchFetchSize)
	}
	if cfg.LazyListLimit < 1 {
		return Config{}, fmt.Errorf("LAZY_LIST_LIMIT must be positive, got %d", cfg.LazyListLimit)
	}

	return cfg, nil
}

// DSN returns the key/value connection string used by gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// URL returns the connection string in URL form, as lib/pq and migrate expect it.
func (c Config) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
