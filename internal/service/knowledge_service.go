package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"campus-desk/pkg/config"

	"go.uber.org/zap"
)

// Loader states. Transitions are one-way: Empty -> Loading -> Ready. There is
// no invalidation path within a process lifetime.
const (
	knowledgeEmpty int32 = iota
	knowledgeLoading
	knowledgeReady
)

// knowledgeExtensions are the document types shipped to the AI file store.
var knowledgeExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".md":   true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// KnowledgeService lazily uploads a local folder of reference documents to
// the AI provider's file store, exactly once per process. The resulting
// handles ground every assistant answer.
type KnowledgeService struct {
	ai     AIClient
	dir    string
	logger *zap.Logger

	state   atomic.Int32
	mu      sync.Mutex
	handles []FileHandle
}

func NewKnowledgeService(ai AIClient, cfg *config.GeminiConfig, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{
		ai:     ai,
		dir:    cfg.KnowledgeDir,
		logger: logger,
	}
}

// EnsureLoaded populates the knowledge base on first call and is a no-op
// afterwards. Concurrent first callers block until the one loading goroutine
// finishes, so documents are uploaded at most once. A missing or empty folder
// is not an error: the assistant degrades to answering from general
// knowledge. Per-file upload failures are logged and skipped.
func (s *KnowledgeService) EnsureLoaded(ctx context.Context) {
	if s.state.Load() == knowledgeReady {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Load() == knowledgeReady {
		return
	}
	s.state.Store(knowledgeLoading)

	s.load(ctx)

	// Ready even on partial or empty results: there is no retry path, and
	// staying Empty would rescan the folder on every request.
	s.state.Store(knowledgeReady)
}

func (s *KnowledgeService) load(ctx context.Context) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("Knowledge folder not readable, assistant will answer without grounding",
			zap.String("dir", s.dir),
			zap.Error(err),
		)
		return
	}

	var uploaded int
	for _, entry := range entries {
		if entry.IsDir() || !knowledgeExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		handle, err := s.ai.UploadFile(ctx, path)
		if err != nil {
			// Skip the file; the remaining documents still get uploaded.
			s.logger.Warn("Failed to upload knowledge document",
				zap.String("file", entry.Name()),
				zap.Error(err),
			)
			continue
		}

		s.handles = append(s.handles, handle)
		uploaded++
	}

	if uploaded == 0 {
		s.logger.Warn("No knowledge documents uploaded, assistant will answer without grounding",
			zap.String("dir", s.dir),
		)
		return
	}

	s.logger.Info("Knowledge base loaded",
		zap.String("dir", s.dir),
		zap.Int("documents", uploaded),
	)
}

// Handles returns the uploaded document handles. Call EnsureLoaded first.
func (s *KnowledgeService) Handles() []FileHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handles := make([]FileHandle, len(s.handles))
	copy(handles, s.handles)
	return handles
}
