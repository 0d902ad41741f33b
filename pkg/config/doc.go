// Package config loads engine settings from the environment.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tags). Every variable carries the
// SCHEMAKIT_ prefix:
//
//	SCHEMAKIT_CACHE_SIZE        compiled validator cache size (default 128, 0 disables)
//	SCHEMAKIT_LOG_LEVEL         debug, info, warn or error (default info)
//	SCHEMAKIT_LOG_FORMAT        json or text (default json)
//	SCHEMAKIT_DEFAULT_LANGUAGE  message language when none is requested (default en)
//
// Usage:
//
//	cfg, err := config.Load()             // optional ./.env
//	cfg, err := config.Load("prod.env")   // the file must exist
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrInvalidConfig.
package config
