// Package config loads runtime configuration for the Shelfkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the cloud backend ("" keeps the app offline-only)
//	-d string   path to the local SQLite database
//	-t string   session token for the cloud backend
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "remote_endpoint": "https://api.shelfkeeper.example",
//	  "auth_token": "…",
//	  "database_dsn": "shelfkeeper.db",
//	  "s3_bucket": "shelfkeeper-assets",
//	  "s3_region": "eu-central-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "…",
//	  "s3_secret_key": "…",
//	  "upload_retries": 3,
//	  "upload_retry_delay": "2s",
//	  "request_timeout": "10s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
