// Package config centralises configuration parsing for the dev host.
package config

import (
	"os"
	"time"
)

// Config captures runtime configuration values for the dev host.
type Config struct {
	HTTPAddress     string
	StaticDir       string        // Served under /static/ (styles.css, wasm_exec.js).
	WASMPath        string        // Compiled cmd/web binary served as /app.wasm.
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		StaticDir:       getEnv("STATIC_DIR", "web/static"),
		WASMPath:        getEnv("WASM_PATH", "web/app.wasm"),
		ReadTimeout:     getDurationEnv("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDurationEnv("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
