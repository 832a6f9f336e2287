package service

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"campus-desk/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// FileHandle identifies a document previously uploaded to the AI provider's
// file store.
type FileHandle struct {
	URI      string
	MIMEType string
}

// AIClient is the surface of the generative-AI provider the backend relies
// on: uploading grounding documents and answering questions against them.
type AIClient interface {
	UploadFile(ctx context.Context, path string) (FileHandle, error)
	GenerateAnswer(ctx context.Context, question string, files []FileHandle) (string, error)
}

// systemInstruction describes the assistant persona. When grounding documents
// are attached the model is told to refuse questions outside of them.
func systemInstruction(grounded bool) string {
	base := `You are the campus help assistant for a student complaint-management portal. ` +
		`You answer questions about campus procedures, departments, complaint handling and student services. ` +
		`Be concise, factual and polite.`

	if grounded {
		return base + ` Answer ONLY using the reference documents supplied with this request. ` +
			`If the answer is not contained in the documents, say that you do not have that information ` +
			`instead of guessing.`
	}
	return base
}

type LLMService struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewLLMService(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*LLMService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Gemini client initialized", zap.String("model", cfg.Model))

	return &LLMService{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// UploadFile pushes a local document to the Gemini file store and returns the
// handle to reference it from generation requests.
func (s *LLMService) UploadFile(ctx context.Context, path string) (FileHandle, error) {
	file, err := s.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: detectMIMEType(path),
	})
	if err != nil {
		return FileHandle{}, fmt.Errorf("failed to upload file %s: %w", filepath.Base(path), err)
	}

	s.logger.Info("File uploaded to Gemini",
		zap.String("file", filepath.Base(path)),
		zap.String("uri", file.URI),
	)

	return FileHandle{URI: file.URI, MIMEType: file.MIMEType}, nil
}

// GenerateAnswer sends the question to the model, attaching any grounding
// documents as file parts ahead of the question text.
func (s *LLMService) GenerateAnswer(ctx context.Context, question string, files []FileHandle) (string, error) {
	parts := make([]*genai.Part, 0, len(files)+1)
	for _, f := range files {
		parts = append(parts, genai.NewPartFromURI(f.URI, f.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(question))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction(len(files) > 0), genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return answer, nil
}

func detectMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mimeType := mime.TypeByExtension(ext); mimeType != "" {
		return mimeType
	}

	// Fallback for extensions the OS mime table may not know
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".md":
		return "text/markdown"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
