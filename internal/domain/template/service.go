package template

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/texkit/overleaf-mcp/internal/repository"
)

// Service exposes the read-only template catalog.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new template service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns all templates without content bodies.
func (s *Service) List(ctx context.Context) ([]Template, error) {
	return s.repo.List(ctx)
}

// Get fetches a template with content. Absence returns nil, not an error.
func (s *Service) Get(ctx context.Context, id string) (*Template, error) {
	tmpl, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting template: %w", err)
	}
	return tmpl, nil
}
