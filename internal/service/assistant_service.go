package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrAssistantUnavailable is returned when no AI API key is configured. The
// handler reports it with a fixed message and never reaches the provider.
var ErrAssistantUnavailable = errors.New("AI API key is not configured")

// AssistantService answers free-text questions, grounding them in the
// knowledge base documents when any are available.
type AssistantService struct {
	ai        AIClient
	knowledge *KnowledgeService
	logger    *zap.Logger
}

// NewAssistantService wires the assistant. A nil AIClient produces a service
// that rejects every question with ErrAssistantUnavailable.
func NewAssistantService(ai AIClient, knowledge *KnowledgeService, logger *zap.Logger) *AssistantService {
	return &AssistantService{
		ai:        ai,
		knowledge: knowledge,
		logger:    logger,
	}
}

func (s *AssistantService) Ask(ctx context.Context, question string) (string, error) {
	if s.ai == nil {
		return "", ErrAssistantUnavailable
	}

	s.knowledge.EnsureLoaded(ctx)
	handles := s.knowledge.Handles()

	s.logger.Info("Question received",
		zap.Int("question_len", len(question)),
		zap.Int("grounding_documents", len(handles)),
	)

	answer, err := s.ai.GenerateAnswer(ctx, question, handles)
	if err != nil {
		return "", err
	}

	return answer, nil
}
