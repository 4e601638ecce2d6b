package project

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
	"github.com/texkit/overleaf-mcp/internal/domain/document"
	"github.com/texkit/overleaf-mcp/internal/domain/template"
	"github.com/texkit/overleaf-mcp/internal/repository"
)

// placeholderContent seeds the initial document when no template applies.
const placeholderContent = "% Main document\n"

// TemplateGetter resolves template ids for project creation.
type TemplateGetter interface {
	Get(ctx context.Context, id string) (*template.Template, error)
}

// DocumentCreator creates the companion initial document.
type DocumentCreator interface {
	Create(ctx context.Context, projectID, filename, content string) (*document.Document, error)
}

// Service handles project operations.
type Service struct {
	repo      Repository
	templates TemplateGetter
	documents DocumentCreator
	storage   string
	logger    *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, templates TemplateGetter, documents DocumentCreator, storagePath string, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		templates: templates,
		documents: documents,
		storage:   storagePath,
		logger:    logger,
	}
}

// Create creates a project together with its on-disk layout and an initial
// main.tex document. A template id that doesn't resolve is not an error: the
// initial document falls back to the empty placeholder.
func (s *Service) Create(ctx context.Context, title string, docType DocumentType, templateID string) (*Project, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, docType)
	}

	now := time.Now().UTC()
	proj := &Project{
		ID:         uuid.NewString(),
		Title:      title,
		Type:       docType,
		TemplateID: templateID,
		CreatedAt:  now,
		UpdatedAt:  now,
		Settings:   map[string]any{},
		Status:     StatusActive,
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	if err := s.createProjectDirs(proj.ID); err != nil {
		return nil, fmt.Errorf("creating project directories: %w", err)
	}

	content := placeholderContent
	if templateID != "" {
		tpl, err := s.templates.Get(ctx, templateID)
		if err != nil {
			return nil, fmt.Errorf("resolving template: %w", err)
		}
		if tpl != nil {
			content = tpl.Content
		} else {
			s.logger.Warn("template not found, using placeholder", "template_id", templateID)
		}
	}

	if _, err := s.documents.Create(ctx, proj.ID, "main.tex", content); err != nil {
		return nil, fmt.Errorf("creating initial document: %w", err)
	}

	s.logger.Info("created project", "id", proj.ID, "title", title, "type", docType)
	return proj, nil
}

// Get fetches a project by ID. Absence is a normal outcome, not an error.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns active projects, most recently updated first.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// SetOverleafID records the external project id assigned by a sync.
func (s *Service) SetOverleafID(ctx context.Context, id, overleafID string) error {
	if err := s.repo.SetOverleafID(ctx, id, overleafID); err != nil {
		return fmt.Errorf("binding overleaf id: %w", err)
	}
	return nil
}

func (s *Service) createProjectDirs(projectID string) error {
	for _, sub := range []string{"documents", "assets", "compiled"} {
		if err := os.MkdirAll(filepath.Join(s.storage, projectID, sub), 0o755); err != nil {
			return err
		}
	}
	return nil
}
