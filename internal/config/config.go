package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Redis  RedisConfig
	SQLite SQLiteConfig
	Sheet  SheetConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL"` // Optional: packs are stored in Redis when set
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH"` // Optional: used when Redis is not configured
}

// SheetConfig holds settings of the sheet itself
type SheetConfig struct {
	Lang          string        `env:"SHEET_LANG" envDefault:"en"`
	SkillCacheTTL time.Duration `env:"SKILL_CACHE_TTL" envDefault:"10m"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeValidation, "failed to parse environment")
	}

	// Validate fields
	if cfg.Sheet.Lang == "" {
		return nil, apperr.Validationf("SHEET_LANG must not be empty")
	}
	if cfg.Sheet.SkillCacheTTL <= 0 {
		return nil, apperr.Validationf("SKILL_CACHE_TTL must be positive, got %s", cfg.Sheet.SkillCacheTTL)
	}

	return cfg, nil
}
