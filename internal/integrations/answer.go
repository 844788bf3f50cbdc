package integrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/logger"
	"github.com/jonathan/jobmatch/internal/prompts"
	"go.uber.org/zap"
)

// Fixed chat prompts.
var (
	AnswerSystemPrompt = prompts.MustGet("answer.json", "system")
	AnswerUserPrompt   = prompts.MustGet("answer.json", "user")
)

// NoResponse is returned when the model produced no text.
const NoResponse = "No response generated"

const answerMaxTokens = 800

// AnswerService asks the configured LLM the fixed question.
type AnswerService struct {
	client llm.Client
	log    *zap.Logger
}

// NewAnswerService wraps an LLM client. A nil client means the integration is not configured.
func NewAnswerService(client llm.Client, log *zap.Logger) (*AnswerService, error) {
	if client == nil {
		return nil, &ErrNotConfigured{Integration: NameAnswer}
	}
	return &AnswerService{
		client: client,
		log:    logger.WithIntegration(log, NameAnswer, string(client.Provider()), client.GetModel(llm.TierStandard)),
	}, nil
}

// Generate returns the model's answer, or NoResponse when the model produced no text.
func (s *AnswerService) Generate(ctx context.Context) (string, error) {
	text, err := s.client.Complete(ctx, llm.ChatRequest{
		System:      AnswerSystemPrompt,
		Prompt:      AnswerUserPrompt,
		Tier:        llm.TierStandard,
		MaxTokens:   answerMaxTokens,
		Temperature: 1,
		TopP:        1,
	})
	if errors.Is(err, llm.ErrEmptyResponse) {
		s.log.Warn("model returned no content")
		return NoResponse, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	s.log.Info("answer generated", zap.String("answer", logger.TruncateForLog(text, 80)))
	return text, nil
}
