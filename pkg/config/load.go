package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig is returned when a loaded value fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads the first env file found among envFilePath (searching parent
// directories), falling back to ./.env, then processes the environment.
// Variables already set in the environment win over file values.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	for _, path := range envFilePath {
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		logger.Debug("Loaded environment file", "path", foundPath)
		return loadFromEnv()
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"log_format", cfg.Log.Format,
		"max_accounts", cfg.Registry.MaxAccounts,
		"cli_color", cfg.CLI.Color,
	)
	return &cfg, nil
}

// Validate checks every section against its validate tags.
func (c *App) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	for _, section := range []any{c.Log, c.Registry, c.CLI} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
