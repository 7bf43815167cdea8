package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first, if present; real
// environment variables win over .env entries.
//
// Supported variables:
//
//	JOBEASE_API_BASE_URL      base URL of the backend REST API
//	JOBEASE_ENABLE_BACKEND    "true"/"false" toggle for outbound calls
//	JOBEASE_REQUEST_TIMEOUT   request timeout, e.g. "10s"
//	JOBEASE_STORAGE_PATH      path of the local SQLite store
//	JOBEASE_ENV               environment name reported in telemetry
func parseEnv(cfg *Config) {
	// Missing .env is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("JOBEASE_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("JOBEASE_ENABLE_BACKEND"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.APIEnabled = enabled
		}
	}
	if v := os.Getenv("JOBEASE_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("JOBEASE_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("JOBEASE_ENV"); v != "" {
		cfg.Environment = v
	}
}
