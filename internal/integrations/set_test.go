package integrations

import (
	"context"
	"testing"

	"github.com/jonathan/jobmatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet_NothingConfigured(t *testing.T) {
	set, err := NewSet(context.Background(), config.Config{LLMProvider: "azure-openai"}, nil)
	require.NoError(t, err)

	assert.Nil(t, set.Search)
	assert.Nil(t, set.Answer)
	assert.Nil(t, set.Embedding)
	assert.Nil(t, set.Warehouse)
	assert.NoError(t, set.Close())
}

func TestNewSet_AzureConfigured(t *testing.T) {
	cfg := config.Config{
		LLMProvider: "azure-openai",
		AzureOpenAI: config.AzureOpenAIConfig{
			APIKey:              "key",
			Endpoint:            "https://example.openai.azure.com",
			ChatAPIVersion:      "2025-01-01-preview",
			EmbeddingAPIVersion: "2023-05-15",
			ChatModel:           "o3-mini",
			EmbeddingModel:      "text-embedding-3-large",
		},
		Search: config.SearchConfig{
			Endpoint:   "https://example.search.windows.net",
			APIKey:     "key",
			IndexName:  "vector-skillmaster-csv",
			APIVersion: "2023-11-01",
		},
	}

	set, err := NewSet(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer set.Close()

	assert.NotNil(t, set.Search)
	assert.NotNil(t, set.Answer)
	assert.NotNil(t, set.Embedding)
	assert.Nil(t, set.Warehouse)
}
