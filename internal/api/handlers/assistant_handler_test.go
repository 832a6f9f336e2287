package handlers

import (
	"net/http"
	"testing"

	"campus-desk/internal/service"
	"campus-desk/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAssistantApp(ai service.AIClient, knowledgeDir string) *fiber.App {
	logger := zap.NewNop()
	knowledge := service.NewKnowledgeService(ai, &config.GeminiConfig{KnowledgeDir: knowledgeDir}, logger)
	svc := service.NewAssistantService(ai, knowledge, logger)
	h := NewAssistantHandler(svc, logger)

	app := fiber.New()
	app.Post("/api/ask-ai", h.Ask)
	return app
}

func TestAssistantHandler_Ask_NoKey(t *testing.T) {
	// nil client mirrors the wiring when GEMINI_API_KEY is unset: the request
	// fails with the fixed message before any provider call could happen
	app := newAssistantApp(nil, t.TempDir())

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/ask-ai", `{"question":"library hours?"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "API Key missing", decoded["error"])
}

func TestAssistantHandler_Ask_EmptyQuestion(t *testing.T) {
	app := newAssistantApp(&stubAIClient{answer: "unused"}, t.TempDir())

	resp, _ := doJSON(t, app, http.MethodPost, "/api/ask-ai", `{"question":""}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAssistantHandler_Ask_Answered(t *testing.T) {
	ai := &stubAIClient{answer: "the library closes at 22:00"}
	app := newAssistantApp(ai, t.TempDir())

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/ask-ai", `{"question":"library hours?"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "the library closes at 22:00", decoded["answer"])
	assert.Equal(t, 1, ai.generateCalls)
}

func TestAssistantHandler_Ask_ProviderError(t *testing.T) {
	// Empty answer makes the stub return an error, which is echoed raw
	app := newAssistantApp(&stubAIClient{}, t.TempDir())

	resp, decoded := doJSON(t, app, http.MethodPost, "/api/ask-ai", `{"question":"library hours?"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "model unavailable", decoded["error"])
}
