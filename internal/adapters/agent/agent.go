// Package agent defines the AI agent capability consumed by the chat and
// search endpoints. Providers are constructed once at process start and
// injected explicitly; there are no lazy global instances.
package agent

import "context"

// Result is the outcome of a single agent execution.
type Result struct {
	Success  bool           `json:"success"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// Agent executes a prompt against an underlying LLM provider.
type Agent interface {
	// Execute runs the prompt. useTools asks the agent to exercise its
	// tool integrations where the provider supports them.
	Execute(ctx context.Context, prompt string, useTools bool) (Result, error)

	// Capabilities lists what the agent can do, for discovery endpoints.
	Capabilities() []string

	// Type identifies the agent variant ("chat" or "search").
	Type() string
}

// Config holds the settings shared by all agent providers.
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}
