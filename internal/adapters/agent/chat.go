package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/pkg/metrics"
)

// Chat agent defaults.
const (
	chatDefaultModel     = "claude-3-5-sonnet-20241022"
	chatDefaultMaxTokens = 1024
)

// ChatAgent is the conversational agent variant, backed by Anthropic.
type ChatAgent struct {
	client    anthropic.Client
	model     string
	maxTokens int
}

// NewChatAgent creates a chat agent from config.
func NewChatAgent(cfg Config) (*ChatAgent, error) {
	if cfg.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model := cfg.Model
	if model == "" {
		model = chatDefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = chatDefaultMaxTokens
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &ChatAgent{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Type implements Agent.Type.
func (a *ChatAgent) Type() string { return "chat" }

// Capabilities implements Agent.Capabilities.
func (a *ChatAgent) Capabilities() []string {
	return []string{"conversation", "analysis", "summarization", "code"}
}

// Execute implements Agent.Execute. Failures are reported in-band in the
// Result so handlers can pass them through to clients; the error return is
// reserved for transport-level problems.
func (a *ChatAgent) Execute(ctx context.Context, prompt string, useTools bool) (Result, error) {
	start := time.Now()
	defer func() {
		metrics.RecordAgentLatency("chat", float64(time.Since(start).Milliseconds()))
	}()

	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(a.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		metrics.RecordAgentRequest("chat", "error")
		return Result{Error: wrapProviderError("anthropic", err).Error()}, nil
	}

	var text strings.Builder
	for _, block := range message.Content {
		switch content := block.AsAny().(type) {
		case anthropic.TextBlock:
			text.WriteString(content.Text)
		}
	}
	if text.Len() == 0 {
		metrics.RecordAgentRequest("chat", "error")
		return Result{Error: "empty response from provider"}, nil
	}

	metrics.RecordAgentRequest("chat", "success")
	return Result{
		Success: true,
		Content: text.String(),
		Metadata: map[string]any{
			"model":         a.model,
			"input_tokens":  message.Usage.InputTokens,
			"output_tokens": message.Usage.OutputTokens,
			"tools_used":    0, // the chat variant carries no tools
		},
	}, nil
}

// wrapProviderError adds provider context to SDK and context errors.
func wrapProviderError(provider string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s request timeout: %w", provider, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s request canceled: %w", provider, err)
	}
	return fmt.Errorf("%s request failed: %w", provider, err)
}
