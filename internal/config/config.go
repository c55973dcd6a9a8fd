// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Layer defaults -> optional file -> env in Load.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath is the sqlite database file; ":memory:" for ephemeral runs.
	DBPath string `koanf:"db_path"`

	// ClearLedgerOnSeed controls whether POST /api/models/seed also wipes
	// the vote ledger. Off by default: historical votes survive a reseed.
	ClearLedgerOnSeed bool `koanf:"clear_ledger_on_seed"`

	// StatusListLimit caps GET /api/status results.
	StatusListLimit int `koanf:"status_list_limit"`

	// Chat agent provider settings (Anthropic).
	ChatAPIKey string `koanf:"chat_api_key"`
	ChatModel  string `koanf:"chat_model"`

	// Search agent provider settings (OpenAI).
	SearchAPIKey string `koanf:"search_api_key"`
	SearchModel  string `koanf:"search_model"`

	// AgentMaxTokens caps agent completions.
	AgentMaxTokens int `koanf:"agent_max_tokens"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8080",
		DBPath:          "battle.db",
		StatusListLimit: 1000,
		AgentMaxTokens:  1024,
	}
}
