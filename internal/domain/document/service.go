package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/texkit/overleaf-mcp/internal/repository"
)

// Service handles document operations, keeping the database authoritative and
// mirroring content to the filesystem after each committed write.
type Service struct {
	repo    Repository
	storage string
	logger  *slog.Logger
}

// NewService creates a new document service.
func NewService(repo Repository, storagePath string, logger *slog.Logger) *Service {
	return &Service{repo: repo, storage: storagePath, logger: logger}
}

// Create inserts a document and writes its filesystem mirror.
func (s *Service) Create(ctx context.Context, projectID, filename, content string) (*Document, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	doc := &Document{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Filename:  filename,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFilename, filename)
		}
		return nil, fmt.Errorf("creating document: %w", err)
	}

	if err := s.writeMirror(projectID, filename, content); err != nil {
		return nil, fmt.Errorf("writing document mirror: %w", err)
	}

	s.logger.Info("created document", "project_id", projectID, "filename", filename)
	return doc, nil
}

// Get fetches a document with content. Absence returns nil, not an error.
func (s *Service) Get(ctx context.Context, projectID, filename string) (*Document, error) {
	doc, err := s.repo.Get(ctx, projectID, filename)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return doc, nil
}

// List returns a project's document listings ordered by filename.
func (s *Service) List(ctx context.Context, projectID string) ([]Info, error) {
	return s.repo.List(ctx, projectID)
}

// Update overwrites a document's content, recording the previous content as a
// new version, then refreshes the filesystem mirror. Returns false without
// side effects when the document doesn't exist.
func (s *Service) Update(ctx context.Context, projectID, filename, content, commitMessage string) (bool, error) {
	version, err := s.repo.UpdateContent(ctx, projectID, filename, content, commitMessage, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("updating document: %w", err)
	}

	// The database commit is the source of truth. A mirror failure here
	// leaves the database ahead of the filesystem until the next write, so
	// the committed update still counts as success.
	if err := s.writeMirror(projectID, filename, content); err != nil {
		s.logger.Warn("document mirror write failed", "project_id", projectID, "filename", filename, "error", err)
	}

	s.logger.Info("updated document", "project_id", projectID, "filename", filename, "version", version)
	return true, nil
}

// Versions returns the full version history of one document, oldest first.
func (s *Service) Versions(ctx context.Context, documentID string) ([]Version, error) {
	return s.repo.ListVersions(ctx, documentID)
}

// History returns all version rows across a project's documents.
func (s *Service) History(ctx context.Context, projectID string) ([]HistoryEntry, error) {
	return s.repo.ProjectHistory(ctx, projectID)
}

func (s *Service) writeMirror(projectID, filename, content string) error {
	dir := filepath.Join(s.storage, projectID, "documents")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644)
}
