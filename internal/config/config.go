package config

import "time"

// Config holds runtime settings for the CastGate CLI.
//
// Fields:
//   - GatewayHTTPURL: base URL of the gateway REST API.
//   - GatewayWSURL: URL of the gateway push (WebSocket) endpoint.
//   - DatabasePath: path of the local SQLite file holding the credential
//     and cached profile fields.
//   - RequestTimeout: per-request timeout for REST calls.
type Config struct {
	GatewayHTTPURL string
	GatewayWSURL   string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayHTTPURL = "http://localhost:4000"
	c.GatewayWSURL = "ws://localhost:4000/ws"
	c.DatabasePath = "castgate.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
