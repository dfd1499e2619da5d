package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnv loads ./.env into the process environment without overriding
// variables that are already set. It reports whether a file was loaded.
func LoadEnv(logger *slog.Logger) bool {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system environment variables")
		return false
	}
	logger.Info("Environment variables loaded from .env file")
	return true
}

// FindEnvFile looks for filename (default ".env") in the working directory and
// its parents. The search stops after the first directory holding a go.mod so
// that files outside the module are never picked up.
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
