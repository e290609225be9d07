package config

import (
	"time"

	"github.com/avelichko/schoolinv/internal/services"
)

// Config holds runtime settings for the schoolinv CLI.
//
// Fields:
//   - DatabasePath: path to the local SQLite database file.
//   - SyncDelay: how long a new record stays unsynced before the simulated
//     server acknowledgment.
//   - ExportDir: directory the registry export files are written to.
//   - HeaderAliases: spreadsheet headers accepted by the catalog import.
//   - GeminiAPIKey / GeminiModel: optional photo-analysis settings; an
//     empty key disables the feature.
type Config struct {
	DatabasePath  string
	SyncDelay     time.Duration
	ExportDir     string
	HeaderAliases services.HeaderAliases
	GeminiAPIKey  string
	GeminiModel   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "schoolinv.db"
	c.SyncDelay = 2 * time.Second
	c.ExportDir = "."
	c.HeaderAliases = services.DefaultHeaderAliases()
	c.GeminiModel = "gemini-2.0-flash"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
