package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	OutputWindow = "window"
	OutputText   = "text"
)

// ErrInvalidOutputMode is returned for an unknown BUDGET_OUTPUT value
var ErrInvalidOutputMode = errors.New("invalid output mode")

type Config struct {
	// Logging
	LogLevelName string
	Debug        bool

	// Presentation
	OutputMode        string
	HighlightExpenses bool
	WindowTitle       string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevelName:      strings.ToLower(getEnv("LOG_LEVEL", "")),
		Debug:             getEnv("DEBUG", "") == "1",
		OutputMode:        strings.ToLower(getEnv("BUDGET_OUTPUT", OutputWindow)),
		HighlightExpenses: getEnvBool("BUDGET_HIGHLIGHT_EXPENSES", true),
		WindowTitle:       getEnv("BUDGET_TITLE", "Budget Tracker"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	switch c.OutputMode {
	case OutputWindow, OutputText:
	default:
		return fmt.Errorf("%w %q: must be %q or %q", ErrInvalidOutputMode, c.OutputMode, OutputWindow, OutputText)
	}

	switch c.LogLevelName {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q: must be debug, info, warn or error", c.LogLevelName)
	}

	return nil
}

// LogLevel maps LOG_LEVEL and DEBUG to a zerolog level
func (c *Config) LogLevel() zerolog.Level {
	switch c.LogLevelName {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if c.Debug {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
