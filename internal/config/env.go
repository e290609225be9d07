package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a local .env
// file first if one exists. A missing .env file is not an error.
//
// Recognized variables:
//
//	SCHOOLINV_DB          path to the SQLite database file
//	SCHOOLINV_EXPORT_DIR  export directory
//	SCHOOLINV_SYNC_DELAY  sync delay, time.ParseDuration syntax ("2s")
//	GEMINI_API_KEY        Gemini API key (empty disables photo analysis)
//	GEMINI_MODEL          Gemini model name
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SCHOOLINV_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SCHOOLINV_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("SCHOOLINV_SYNC_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SyncDelay = d
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
}
