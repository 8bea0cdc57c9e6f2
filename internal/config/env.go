package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fjacquet/insurance-summary/internal/logging"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads a .env file from the working directory or its parent, once
// per process. Variables already set in the environment win. It returns the
// file that was loaded, or "" when none was found.
func LoadEnv() (string, error) {
	var loaded string
	var err error
	envOnce.Do(func() {
		loaded, err = loadEnvFrom(".env", filepath.Join("..", ".env"))
	})
	return loaded, err
}

func loadEnvFrom(candidates ...string) (string, error) {
	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return "", fmt.Errorf("error loading %s: %w", envFile, err)
		}
		return envFile, nil
	}
	return "", nil
}

// ConfigureLogging builds the application logger from the log section.
func ConfigureLogging(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
