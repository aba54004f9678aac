// Package config loads runtime configuration for the VIP Club CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file
//     (see parseEnv) selected via flags: -e or -env-file.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   base URL of the backend API
//	-d string   path/DSN of the local SQLite database
//	-i int      online status check interval (seconds)
//
// # Environment variables
//
//	VIPCLUB_BASE_URL
//	VIPCLUB_DB_DSN
//	VIPCLUB_REQUEST_TIMEOUT        (Go duration, e.g. "30s")
//	VIPCLUB_ONLINE_CHECK_INTERVAL  (Go duration, e.g. "3s")
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8000/api",
//	  "db_dsn": "vipclub.db",
//	  "request_timeout": "30s",
//	  "online_check_interval": "3s"
//	}
package config
