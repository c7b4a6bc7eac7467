// Package config loads runtime configuration for the FinSync client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: a dotenv file (-e/-env, or ./.env when present) and
//     FINSYNC_* variables of the process, which win over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the FinSync API
//	-d string   path of the local SQLite database
//	-i int      online status check interval (seconds)
//	-u string   profile image upload backend: http or s3
//	-v          verbose (debug) logging
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds. Keys that are absent leave the earlier value alone:
//
//	{
//	  "server_base_url": "http://localhost:8000",
//	  "database_path": "/home/ann/.config/finsync/finsync.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "upload_backend": "s3",
//	  "s3_bucket": "avatars",
//	  "s3_region": "eu-central-1",
//	  "s3_base_endpoint": "http://localhost:9000",
//	  "s3_public_base_url": "http://localhost:9000/avatars"
//	}
package config
