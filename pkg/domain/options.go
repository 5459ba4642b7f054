package domain

import "time"

// AsyncConfig selects the input strategy.
type AsyncConfig struct {
	// Enabled switches Run to non-blocking polling.
	Enabled bool
	// Timeout bounds the readiness wait of a single poll.
	Timeout time.Duration
}

// InitOptions is consumed once by Shell.Init.
type InitOptions struct {
	MultiLine    bool
	ShowKeyCodes bool
	Async        AsyncConfig
	// HistoryPath names the history file. It is created empty if missing.
	HistoryPath string
}
