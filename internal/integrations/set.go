package integrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/jobmatch/internal/config"
	"github.com/jonathan/jobmatch/internal/llm"
	"go.uber.org/zap"
)

// Set holds the integrations that could be built from a configuration. A nil member is not
// configured.
type Set struct {
	Search    *SearchClient
	Answer    *AnswerService
	Embedding *EmbeddingClient
	Warehouse *WarehouseClient

	chat llm.Client
}

// NewSet builds every configured integration. Missing credentials leave the member nil;
// any other construction failure is returned.
func NewSet(ctx context.Context, cfg config.Config, log *zap.Logger) (*Set, error) {
	if log == nil {
		log = zap.NewNop()
	}
	set := &Set{}

	var err error
	if set.Search, err = NewSearchClient(cfg.Search, nil, log); skip(err) != nil {
		return nil, err
	}
	if set.Embedding, err = NewEmbeddingClient(cfg.AzureOpenAI, log); skip(err) != nil {
		return nil, err
	}
	if set.Warehouse, err = NewWarehouseClient(cfg.Databricks, log); skip(err) != nil {
		return nil, err
	}

	chat, err := newChatClient(ctx, cfg)
	if err != nil {
		_ = set.Close()
		return nil, err
	}
	if chat != nil {
		set.chat = chat
		set.Answer, _ = NewAnswerService(chat, log)
	}

	log.Info("integrations configured",
		zap.Bool(NameSearch, set.Search != nil),
		zap.Bool(NameAnswer, set.Answer != nil),
		zap.Bool(NameEmbedding, set.Embedding != nil),
		zap.Bool(NameWarehouse, set.Warehouse != nil),
	)
	return set, nil
}

func newChatClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch llm.Provider(cfg.LLMProvider) {
	case llm.ProviderGemini:
		if !cfg.Gemini.Configured() {
			return nil, nil
		}
		llmCfg := llm.DefaultGeminiConfig()
		if cfg.Gemini.Model != "" {
			llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Gemini.Model)
		}
		client, err := llm.NewClient(ctx, llmCfg, llm.Credentials{APIKey: cfg.Gemini.APIKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		if !cfg.AzureOpenAI.Configured() {
			return nil, nil
		}
		client, err := llm.NewClient(ctx, llm.DefaultAzureOpenAIConfig(cfg.AzureOpenAI.ChatModel), llm.Credentials{
			APIKey:     cfg.AzureOpenAI.APIKey,
			Endpoint:   cfg.AzureOpenAI.Endpoint,
			APIVersion: cfg.AzureOpenAI.ChatAPIVersion,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure OpenAI client: %w", err)
		}
		return client, nil
	}
}

// Close releases the warehouse pool and the chat client.
func (s *Set) Close() error {
	var errs []error
	if s.Warehouse != nil {
		errs = append(errs, s.Warehouse.Close())
	}
	if s.chat != nil {
		errs = append(errs, s.chat.Close())
	}
	return errors.Join(errs...)
}

func skip(err error) error {
	var notConfigured *ErrNotConfigured
	if errors.As(err, &notConfigured) {
		return nil
	}
	return err
}
