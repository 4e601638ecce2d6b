package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/texkit/overleaf-mcp/internal/domain/document"
	"github.com/texkit/overleaf-mcp/internal/repository"
)

// DocumentRepository implements document.Repository for SQLite
type DocumentRepository struct {
	db *DB
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a new document row
func (r *DocumentRepository) Create(ctx context.Context, doc *document.Document) error {
	query := `
		INSERT INTO documents (id, project_id, filename, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		doc.ID,
		doc.ProjectID,
		doc.Filename,
		doc.Content,
		doc.CreatedAt,
		doc.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

// Get retrieves a document by its (project id, filename) pair
func (r *DocumentRepository) Get(ctx context.Context, projectID, filename string) (*document.Document, error) {
	query := `
		SELECT id, content, created_at, updated_at
		FROM documents
		WHERE project_id = ? AND filename = ?
	`

	doc := document.Document{
		ProjectID: projectID,
		Filename:  filename,
	}
	var content sql.NullString
	err := r.db.QueryRowContext(ctx, query, projectID, filename).Scan(
		&doc.ID,
		&content,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	doc.Content = content.String
	return &doc, nil
}

// List returns document listings (no content) ordered by filename
func (r *DocumentRepository) List(ctx context.Context, projectID string) ([]document.Info, error) {
	query := `
		SELECT id, filename, created_at, updated_at
		FROM documents
		WHERE project_id = ?
		ORDER BY filename
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Info
	for rows.Next() {
		var info document.Info
		if err := rows.Scan(&info.ID, &info.Filename, &info.CreatedAt, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, info)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}

// UpdateContent snapshots the current content as the next version and
// overwrites the document, all within one transaction. The version row holds
// the content as it was before this update; the owning project's timestamp is
// bumped alongside the document's.
func (r *DocumentRepository) UpdateContent(ctx context.Context, projectID, filename, content, commitMessage string, at time.Time) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var documentID string
	var oldContent sql.NullString
	err = tx.QueryRowContext(ctx, `
		SELECT id, content FROM documents
		WHERE project_id = ? AND filename = ?
	`, projectID, filename).Scan(&documentID, &oldContent)

	if err == sql.ErrNoRows {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up document: %w", err)
	}

	var versionNumber int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(version_number), 0) + 1
		FROM versions
		WHERE document_id = ?
	`, documentID).Scan(&versionNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to compute version number: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO versions (id, document_id, version_number, content, commit_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), documentID, versionNumber, oldContent.String, commitMessage, at)
	if err != nil {
		return 0, fmt.Errorf("failed to insert version: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE documents
		SET content = ?, updated_at = ?
		WHERE id = ?
	`, content, at, documentID)
	if err != nil {
		return 0, fmt.Errorf("failed to update document: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE projects
		SET updated_at = ?
		WHERE id = ?
	`, at, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to touch project: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return versionNumber, nil
}

// ListVersions returns all versions of a document, oldest first
func (r *DocumentRepository) ListVersions(ctx context.Context, documentID string) ([]document.Version, error) {
	query := `
		SELECT id, document_id, version_number, content, commit_message, created_at
		FROM versions
		WHERE document_id = ?
		ORDER BY version_number
	`

	rows, err := r.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer rows.Close()

	var versions []document.Version
	for rows.Next() {
		var v document.Version
		var content, message sql.NullString
		if err := rows.Scan(&v.ID, &v.DocumentID, &v.Number, &content, &message, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		v.Content = content.String
		v.CommitMessage = message.String
		versions = append(versions, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating version rows: %w", err)
	}

	return versions, nil
}

// ProjectHistory returns every version across a project's documents,
// ordered by filename and then version number
func (r *DocumentRepository) ProjectHistory(ctx context.Context, projectID string) ([]document.HistoryEntry, error) {
	query := `
		SELECT d.filename, v.version_number, v.commit_message, v.created_at
		FROM versions v
		JOIN documents d ON d.id = v.document_id
		WHERE d.project_id = ?
		ORDER BY d.filename, v.version_number
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project history: %w", err)
	}
	defer rows.Close()

	var entries []document.HistoryEntry
	for rows.Next() {
		var entry document.HistoryEntry
		var message sql.NullString
		if err := rows.Scan(&entry.Filename, &entry.Version, &message, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.CommitMessage = message.String
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return entries, nil
}
