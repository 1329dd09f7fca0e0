package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	Addr     string
	Debug    bool
	LogLevel string
}

// Load reads .env (if present) and populates a Config from environment
// variables. Call once at bootstrap.
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		Addr:     env("SUDOKU_ADDR", ":8080"),
		Debug:    envBool("SUDOKU_DEBUG", false),
		LogLevel: env("SUDOKU_LOG_LEVEL", "info"),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
