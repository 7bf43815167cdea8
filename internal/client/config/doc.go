// Package config loads runtime configuration for the JobEase CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-f string   path of the local storage file
//	-offline    disable all outbound backend calls
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.jobease.app/api",
//	  "api_enabled": true,
//	  "request_timeout": "10s",
//	  "storage_path": "jobease.db",
//	  "environment": "production"
//	}
package config
