// Package config loads runtime configuration for the Inkwell CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the blog backend
//	-t int      request timeout (seconds)
//	-d string   path to the credentials database
//
// # JSON schema
//
//	{
//	  "backend_base_url": "http://localhost:5000",
//	  "request_timeout_sec": 15,
//	  "credentials_path": "inkwell.db"
//	}
//
// Environment variables are not read; use the JSON file or flags.
package config
