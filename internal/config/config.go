package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/sadopc/tagzi/internal/store"
)

// Config is everything tagzi reads from the environment at startup.
type Config struct {
	DBPath         string
	LogPath        string
	LogLevel       string
	Locale         string
	CurrencySymbol string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is normal; the environment alone is enough.
		_ = godotenv.Load()
	}

	dbPath := os.Getenv("TAGZI_DB_PATH")
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve default db path: %w", err)
		}
		dbPath = p
	}

	cfg := &Config{
		DBPath:         dbPath,
		LogPath:        getenvWithDefault("TAGZI_LOG_PATH", filepath.Join(filepath.Dir(dbPath), "tagzi.log")),
		LogLevel:       getenvWithDefault("TAGZI_LOG_LEVEL", "info"),
		Locale:         getenvWithDefault("TAGZI_LOCALE", "tr"),
		CurrencySymbol: getenvWithDefault("TAGZI_CURRENCY_SYMBOL", "₺"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem at once rather than stopping at the first.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	var errs []error
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("TAGZI_DB_PATH must not be empty"))
	}
	if strings.TrimSpace(c.LogPath) == "" {
		errs = append(errs, errors.New("TAGZI_LOG_PATH must not be empty"))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("TAGZI_LOG_LEVEL: %w", err))
	}
	if _, err := language.Parse(c.Locale); err != nil {
		errs = append(errs, fmt.Errorf("TAGZI_LOCALE: %w", err))
	}
	if c.CurrencySymbol == "" {
		errs = append(errs, errors.New("TAGZI_CURRENCY_SYMBOL must not be empty"))
	}
	return errors.Join(errs...)
}

// Language is the parsed Locale. Call it only on a validated config.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Turkish
	}
	return tag
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
