// Package config loads runtime configuration for the Shelfhub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   backend server origin (scheme://host[:port])
//	-a string   API base URL, absolute or a path starting with "/"
//	-d string   path to the local database file
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_url": "https://apps.example.org",
//	  "api_base_url": "/api",
//	  "database_path": "shelfhub.db",
//	  "request_timeout": "30s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
