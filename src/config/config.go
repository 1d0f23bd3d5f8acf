package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string
	LogFormat string
	// AllowCast is the default comparison policy of the parse command.
	AllowCast bool
	// EnvFileLoaded is false when no .env file was found.
	EnvFileLoaded bool
}

// Load reads the given .env files (".env" when none are given) into the
// process environment and then reads the configuration from it. Missing
// files are not an error; variables already set in the environment win.
func Load(files ...string) (Config, error) {
	cfg := Config{
		LogLevel:      "info",
		LogFormat:     "console",
		AllowCast:     true,
		EnvFileLoaded: true,
	}

	err := godotenv.Load(files...)
	if errors.Is(err, fs.ErrNotExist) {
		cfg.EnvFileLoaded = false
	} else if err != nil {
		return cfg, fmt.Errorf("config: could not load env file: %w", err)
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("NUMERIC_ALLOW_CAST"); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("config: invalid NUMERIC_ALLOW_CAST %q: %w", v, err)
		}
		cfg.AllowCast = allow
	}

	return cfg, nil
}
