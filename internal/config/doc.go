// Package config loads runtime configuration for the schoolinv CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with a local .env file loaded first.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file
//	-e string   export directory
//	-s int      sync delay (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the sync delay, so values can be
// either strings like "2s" or integer nanoseconds:
//
//	{
//	  "database_path": "schoolinv.db",
//	  "sync_delay": "2s",
//	  "export_dir": ".",
//	  "header_aliases": {
//	    "category": ["category", "Category", "Категория"],
//	    "name": ["name", "Name", "Наименование"]
//	  }
//	}
//
// Primary API
//
//   - type Config                     — runtime settings
//   - func LoadConfig() *Config       — defaults, then JSON, env and flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
