package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/jobmatch/internal/config"
	"github.com/jonathan/jobmatch/internal/logger"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// EmbeddingInputs are the phrases embedded on every call.
var EmbeddingInputs = []string{"first phrase", "second phrase", "third phrase"}

// Embedder is the subset of the go-openai client used here.
type Embedder interface {
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// EmbeddingClient embeds the fixed phrases with an Azure OpenAI embedding deployment.
type EmbeddingClient struct {
	client Embedder
	model  string
	log    *zap.Logger
}

// NewEmbeddingClient creates a client for the configured embedding deployment.
func NewEmbeddingClient(cfg config.AzureOpenAIConfig, log *zap.Logger) (*EmbeddingClient, error) {
	if !cfg.Configured() {
		return nil, &ErrNotConfigured{Integration: NameEmbedding}
	}

	clientCfg := openai.DefaultAzureConfig(cfg.APIKey, strings.TrimSuffix(cfg.Endpoint, "/"))
	if cfg.EmbeddingAPIVersion != "" {
		clientCfg.APIVersion = cfg.EmbeddingAPIVersion
	}
	clientCfg.AzureModelMapperFunc = func(model string) string { return model }

	return NewEmbeddingClientWith(openai.NewClientWithConfig(clientCfg), cfg.EmbeddingModel, log), nil
}

// NewEmbeddingClientWith wraps an existing embedder.
func NewEmbeddingClientWith(client Embedder, model string, log *zap.Logger) *EmbeddingClient {
	return &EmbeddingClient{
		client: client,
		model:  model,
		log:    logger.WithIntegration(log, NameEmbedding, "azure-openai", model),
	}
}

// Generate embeds EmbeddingInputs and reports the vector sizes and token usage, one line each.
func (c *EmbeddingClient) Generate(ctx context.Context) (string, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: EmbeddingInputs,
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create embeddings: %w", err)
	}

	lines := make([]string, 0, len(resp.Data)+1)
	for _, item := range resp.Data {
		lines = append(lines, fmt.Sprintf("Index: %d, Embedding length: %d", item.Index, len(item.Embedding)))
	}

	usage, err := json.Marshal(embeddingUsage{
		PromptTokens: resp.Usage.PromptTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode usage: %w", err)
	}
	lines = append(lines, "Usage: "+string(usage))

	c.log.Info("embeddings created", zap.Int("vectors", len(resp.Data)), zap.Int("total_tokens", resp.Usage.TotalTokens))
	return strings.Join(lines, "\n"), nil
}

// embeddingUsage is the usage line payload. Embeddings report no completion tokens.
type embeddingUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}
