package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/campuskit/feedback-server/internal/feedback"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv     string
	DBPath     string
	DBDriver   string
	RedisAddr  string
	HTTPPort   int
	CacheTTL   time.Duration
	Categories feedback.CategorySet
}

type categoriesFile struct {
	Categories []string `yaml:"categories"`
}

// LoadFromEnv loads configuration from environment variables. The category
// set comes from the YAML file named by CATEGORIES_FILE, falling back to the
// built-in default set; an invalid set is a startup error, never a request
// error.
func LoadFromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnv("HTTP_PORT", "8080"))
	if err != nil {
		port = 8080
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		ttl = 10 * time.Minute
	}

	categories := feedback.DefaultCategories
	if path := os.Getenv("CATEGORIES_FILE"); path != "" {
		categories, err = loadCategories(path)
		if err != nil {
			return nil, fmt.Errorf("load categories from %s: %w", path, err)
		}
	}

	return &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		DBPath:     getEnv("DB_PATH", "./data/feedback.db"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite3"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:   port,
		CacheTTL:   ttl,
		Categories: categories,
	}, nil
}

func loadCategories(path string) (feedback.CategorySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f categoriesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return feedback.NewCategorySet(f.Categories)
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
