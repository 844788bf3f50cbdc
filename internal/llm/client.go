package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the provider answered without any text.
var ErrEmptyResponse = errors.New("no content in response")

// ChatRequest is a single-turn chat completion.
type ChatRequest struct {
	System      string
	Prompt      string
	Tier        ModelTier
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// Client is an abstraction over LLM providers
type Client interface {
	// Complete runs a chat completion and returns the text of the first choice
	Complete(ctx context.Context, req ChatRequest) (string, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Provider identifies the backing provider
	Provider() Provider
	// Close releases any resources held by the client
	Close() error
}

// Credentials carries the provider connection settings. Endpoint and APIVersion apply to
// Azure OpenAI only.
type Credentials struct {
	APIKey     string
	Endpoint   string
	APIVersion string
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, creds Credentials) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderAzureOpenAI:
		return NewAzureOpenAIClient(config, creds)
	case ProviderGemini:
		return NewGeminiClient(ctx, config, creds.APIKey)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", config.Provider)
	}
}
