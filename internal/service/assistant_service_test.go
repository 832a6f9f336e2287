package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAssistantService_Ask_NoKeyConfigured(t *testing.T) {
	ai := &fakeAIClient{answer: "should never be used"}
	knowledge := newKnowledgeService(ai, t.TempDir())
	// A nil client is how main wires the assistant when GEMINI_API_KEY is unset
	svc := NewAssistantService(nil, knowledge, zap.NewNop())

	_, err := svc.Ask(context.Background(), "where is the dean's office?")

	assert.ErrorIs(t, err, ErrAssistantUnavailable)
	assert.Zero(t, ai.generateCalls)
	assert.Zero(t, ai.uploadCount())
}

func TestAssistantService_Ask_GroundsInKnowledge(t *testing.T) {
	dir := writeKnowledgeDir(t, "handbook.pdf")
	ai := &fakeAIClient{answer: "the dean's office is in block A"}
	svc := NewAssistantService(ai, newKnowledgeService(ai, dir), zap.NewNop())

	answer, err := svc.Ask(context.Background(), "where is the dean's office?")

	require.NoError(t, err)
	assert.Equal(t, "the dean's office is in block A", answer)
	assert.Equal(t, 1, ai.generateCalls)
	assert.Equal(t, 1, ai.uploadCount())

	// A follow-up question reuses the uploaded handles
	_, err = svc.Ask(context.Background(), "and the registrar?")
	require.NoError(t, err)
	assert.Equal(t, 1, ai.uploadCount())
}

func TestDetectMIMEType(t *testing.T) {
	assert.Equal(t, "application/pdf", detectMIMEType(filepath.Join("kb", "handbook.pdf")))
	assert.Equal(t, "image/png", detectMIMEType("map.PNG"))
	assert.Equal(t, "application/octet-stream", detectMIMEType("mystery.bin"))
}
