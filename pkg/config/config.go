package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/schemakit/pkg/logger"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "SCHEMAKIT_"

// Config holds engine settings.
type Config struct {
	// CacheSize bounds the compiled validator cache; 0 disables it.
	CacheSize int `env:"CACHE_SIZE" envDefault:"128"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// DefaultLanguage is used to render messages when the caller asks for none.
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
}

var defaultEnvLoaded sync.Once

// Load reads Config from the environment.
//
// Without arguments the .env file in the working directory is loaded once
// per process if it exists. With arguments each file must exist. Variables
// already present in the environment are never overridden by files.
func Load(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		defaultEnvLoaded.Do(func() {
			// The default .env file is optional.
			_ = godotenv.Load()
		})
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		CacheSize:       128,
		LogLevel:        "info",
		LogFormat:       string(logger.FormatJSON),
		DefaultLanguage: "en",
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache size must not be negative, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	switch logger.Format(c.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: log format must be %q or %q, got %q", ErrInvalidConfig, logger.FormatJSON, logger.FormatText, c.LogFormat)
	}
	if c.DefaultLanguage == "" {
		return fmt.Errorf("%w: default language must not be empty", ErrInvalidConfig)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() slog.Level {
	l, _ := logger.ParseLevel(c.LogLevel)
	return l
}
