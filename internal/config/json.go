package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mpetrenko/castgate/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// specified in seconds and converted to time.Duration when copied into the
// runtime Config.
type JSONConfig struct {
	GatewayHTTPURL     string `json:"gateway_http_url"`
	GatewayWSURL       string `json:"gateway_ws_url"`
	DatabasePath       string `json:"database_path"`
	RequestTimeoutSecs int    `json:"request_timeout_seconds"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JSONConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only non-zero JSON values override the current Config, so a partial file
// keeps defaults for the fields it omits. Panics on read or unmarshal
// errors; intended usage is defaults -> parseJSON -> parseFlags, where later
// stages override earlier ones.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.GatewayHTTPURL != "" {
		cfg.GatewayHTTPURL = jc.GatewayHTTPURL
	}
	if jc.GatewayWSURL != "" {
		cfg.GatewayWSURL = jc.GatewayWSURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSecs) * time.Second
	}
}
