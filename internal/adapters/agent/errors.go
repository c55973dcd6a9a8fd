package agent

import "errors"

// Sentinel kinds for agent errors.
var (
	ErrEmptyAPIKey  = errors.New("agent API key is empty")
	ErrUnknownAgent = errors.New("unknown agent type")
)
