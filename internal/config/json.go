package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avelichko/schoolinv/internal/flagx"
	"github.com/avelichko/schoolinv/internal/services"
	"github.com/avelichko/schoolinv/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the sync delay either as a string like
// "2s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath  string                  `json:"database_path"`
	SyncDelay     timex.Duration          `json:"sync_delay"`
	ExportDir     string                  `json:"export_dir"`
	HeaderAliases *services.HeaderAliases `json:"header_aliases"`
	GeminiAPIKey  string                  `json:"gemini_api_key"`
	GeminiModel   string                  `json:"gemini_model"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flag. No flag means no JSON is loaded. Read or unmarshal
// errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SyncDelay.Duration != 0 {
		cfg.SyncDelay = time.Duration(jc.SyncDelay.Duration)
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	if jc.HeaderAliases != nil {
		cfg.HeaderAliases = *jc.HeaderAliases
	}
	if jc.GeminiAPIKey != "" {
		cfg.GeminiAPIKey = jc.GeminiAPIKey
	}
	if jc.GeminiModel != "" {
		cfg.GeminiModel = jc.GeminiModel
	}
}
