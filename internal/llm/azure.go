package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// AzureOpenAIClient implements Client for an Azure OpenAI resource
type AzureOpenAIClient struct {
	client *openai.Client
	config *Config
}

// NewAzureOpenAIClient creates a client for the Azure OpenAI resource at creds.Endpoint
func NewAzureOpenAIClient(config *Config, creds Credentials) (*AzureOpenAIClient, error) {
	if creds.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if creds.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}

	cfg := openai.DefaultAzureConfig(creds.APIKey, strings.TrimSuffix(creds.Endpoint, "/"))
	if creds.APIVersion != "" {
		cfg.APIVersion = creds.APIVersion
	}
	// Deployment names are used verbatim.
	cfg.AzureModelMapperFunc = func(model string) string { return model }

	return &AzureOpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		config: config,
	}, nil
}

// Complete runs a chat completion against the tier's deployment
func (c *AzureOpenAIClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	deployment := c.config.GetModel(req.Tier)
	if deployment == "" {
		return "", fmt.Errorf("no model configured for tier %s", req.Tier)
	}

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:               deployment,
		Messages:            messages,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         req.Temperature,
		TopP:                req.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// GetModel returns the deployment name for a tier
func (c *AzureOpenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Provider returns ProviderAzureOpenAI
func (c *AzureOpenAIClient) Provider() Provider {
	return ProviderAzureOpenAI
}

// Close is a no-op; the HTTP client holds no resources of its own
func (c *AzureOpenAIClient) Close() error {
	return nil
}
