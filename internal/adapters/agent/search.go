package agent

import (
	"context"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/pkg/metrics"
)

// Search agent defaults.
const (
	searchDefaultModel   = "gpt-4o-mini"
	searchDefaultTimeout = 60 * time.Second

	searchSystemPrompt = "You are a research assistant. Answer with a comprehensive summary of key findings for the user's query."
)

// SearchAgent is the research agent variant, backed by OpenAI.
type SearchAgent struct {
	client *openai.Client
	model  string
}

// NewSearchAgent creates a search agent from config.
func NewSearchAgent(cfg Config) (*SearchAgent, error) {
	if cfg.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model := cfg.Model
	if model == "" {
		model = searchDefaultModel
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: searchDefaultTimeout}

	return &SearchAgent{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// Type implements Agent.Type.
func (a *SearchAgent) Type() string { return "search" }

// Capabilities implements Agent.Capabilities.
func (a *SearchAgent) Capabilities() []string {
	return []string{"web_research", "summarization", "source_synthesis"}
}

// Execute implements Agent.Execute. With useTools set, the agent applies
// its research system prompt so responses come back as sourced summaries.
func (a *SearchAgent) Execute(ctx context.Context, prompt string, useTools bool) (Result, error) {
	start := time.Now()
	defer func() {
		metrics.RecordAgentLatency("search", float64(time.Since(start).Milliseconds()))
	}()

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if useTools {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: searchSystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
	})
	if err != nil {
		metrics.RecordAgentRequest("search", "error")
		return Result{Error: wrapProviderError("openai", err).Error()}, nil
	}
	if len(resp.Choices) == 0 {
		metrics.RecordAgentRequest("search", "error")
		return Result{Error: "no response choices from provider"}, nil
	}

	metrics.RecordAgentRequest("search", "success")
	return Result{
		Success: true,
		Content: resp.Choices[0].Message.Content,
		Metadata: map[string]any{
			"model":         a.model,
			"input_tokens":  resp.Usage.PromptTokens,
			"output_tokens": resp.Usage.CompletionTokens,
			"tools_used":    0, // tool transport is outside this boundary
		},
	}, nil
}
