package integrations

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/jobmatch/internal/config"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	resp openai.EmbeddingResponse
	err  error
	got  openai.EmbeddingRequestStrings
}

func (f *fakeEmbedder) CreateEmbeddings(_ context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error) {
	if req, ok := conv.(openai.EmbeddingRequestStrings); ok {
		f.got = req
	}
	return f.resp, f.err
}

func TestEmbeddingClient_Generate(t *testing.T) {
	fake := &fakeEmbedder{resp: openai.EmbeddingResponse{
		Data: []openai.Embedding{
			{Index: 0, Embedding: make([]float32, 4)},
			{Index: 1, Embedding: make([]float32, 4)},
			{Index: 2, Embedding: make([]float32, 4)},
		},
		Usage: openai.Usage{PromptTokens: 6, TotalTokens: 6},
	}}

	client := NewEmbeddingClientWith(fake, "text-embedding-3-large", nil)
	out, err := client.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, EmbeddingInputs, fake.got.Input)
	assert.Equal(t, openai.EmbeddingModel("text-embedding-3-large"), fake.got.Model)

	assert.Equal(t, "Index: 0, Embedding length: 4\nIndex: 1, Embedding length: 4\nIndex: 2, Embedding length: 4\n"+
		`Usage: {"prompt_tokens":6,"total_tokens":6}`, out)
}

func TestEmbeddingClient_Error(t *testing.T) {
	client := NewEmbeddingClientWith(&fakeEmbedder{err: errors.New("deployment not found")}, "m", nil)

	_, err := client.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deployment not found")
}

func TestNewEmbeddingClient_NotConfigured(t *testing.T) {
	_, err := NewEmbeddingClient(config.AzureOpenAIConfig{APIKey: "k"}, nil)

	var notConfigured *ErrNotConfigured
	require.ErrorAs(t, err, &notConfigured)
	assert.Equal(t, NameEmbedding, notConfigured.Integration)
}
