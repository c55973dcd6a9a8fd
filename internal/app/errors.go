package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrInvalidVote      = errors.New("winner and loser must be different models")
	ErrNotStarted       = errors.New("service not started")
	ErrAgentUnavailable = errors.New("agent not configured")
)
