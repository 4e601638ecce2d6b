package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/texkit/overleaf-mcp/internal/domain/project"
	"github.com/texkit/overleaf-mcp/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	settings, err := marshalSettings(proj.Settings)
	if err != nil {
		return fmt.Errorf("failed to encode project settings: %w", err)
	}

	query := `
		INSERT INTO projects (id, title, type, template_id, created_at, updated_at, overleaf_id, settings, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		proj.ID,
		proj.Title,
		string(proj.Type),
		nullString(proj.TemplateID),
		proj.CreatedAt,
		proj.UpdatedAt,
		nullString(proj.OverleafID),
		settings,
		proj.Status,
	)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID regardless of status
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `
		SELECT id, title, type, template_id, created_at, updated_at, overleaf_id, settings, status
		FROM projects
		WHERE id = ?
	`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return proj, nil
}

// List returns active projects ordered by most recently updated first
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `
		SELECT id, title, type, template_id, created_at, updated_at, overleaf_id, settings, status
		FROM projects
		WHERE status = 'active'
		ORDER BY updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *proj)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// SetOverleafID binds a project to its external Overleaf project id
func (r *ProjectRepository) SetOverleafID(ctx context.Context, id, overleafID string) error {
	query := `
		UPDATE projects
		SET overleaf_id = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, overleafID, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set overleaf id: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var proj project.Project
	var templateID, overleafID, settings sql.NullString
	var docType string

	err := row.Scan(
		&proj.ID,
		&proj.Title,
		&docType,
		&templateID,
		&proj.CreatedAt,
		&proj.UpdatedAt,
		&overleafID,
		&settings,
		&proj.Status,
	)
	if err != nil {
		return nil, err
	}

	proj.Type = project.DocumentType(docType)
	proj.TemplateID = templateID.String
	proj.OverleafID = overleafID.String
	proj.Settings = map[string]any{}
	if settings.Valid && settings.String != "" {
		if err := json.Unmarshal([]byte(settings.String), &proj.Settings); err != nil {
			return nil, fmt.Errorf("decoding project settings: %w", err)
		}
	}

	return &proj, nil
}

func marshalSettings(settings map[string]any) (string, error) {
	if len(settings) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
