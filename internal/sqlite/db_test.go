package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/texkit/overleaf-mcp/internal/domain/document"
	"github.com/texkit/overleaf-mcp/internal/domain/project"
	"github.com/texkit/overleaf-mcp/internal/domain/template"
)

var (
	_ project.Repository  = (*ProjectRepository)(nil)
	_ document.Repository = (*DocumentRepository)(nil)
	_ template.Repository = (*TemplateRepository)(nil)
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"projects",
		"documents",
		"versions",
		"templates",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestTemplateSeeding verifies the default templates exist and seeding is
// idempotent across repeated migration runs
func TestTemplateSeeding(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM templates").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.NoError(t, db.RunMigrations())

	err = db.QueryRow("SELECT COUNT(*) FROM templates").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 2, count, "seeding must not duplicate templates")

	var name string
	err = db.QueryRow("SELECT name FROM templates WHERE id = ?", "article_basic").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "Basic Article", name)
}

// TestDocumentConstraints verifies uniqueness and foreign keys on documents
func TestDocumentConstraints(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO projects (id, title, type, created_at, updated_at, settings, status)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, '{}', 'active')`,
		"p1", "Test Project", "article")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO documents (id, project_id, filename, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		"d1", "p1", "main.tex", "")
	require.NoError(t, err)

	// Duplicate filename within the project must be rejected
	_, err = db.ExecContext(ctx,
		`INSERT INTO documents (id, project_id, filename, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		"d2", "p1", "main.tex", "")
	require.Error(t, err, "should fail on duplicate filename")
	require.True(t, isUniqueViolation(err))

	// Foreign key constraint - should fail with invalid project_id
	_, err = db.ExecContext(ctx,
		`INSERT INTO documents (id, project_id, filename, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		"d3", "missing", "other.tex", "")
	require.Error(t, err, "should fail with invalid project_id")
}

// TestVersionConstraints verifies the version number uniqueness backstop
func TestVersionConstraints(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO projects (id, title, type, created_at, updated_at, settings, status)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, '{}', 'active')`,
		"p1", "Test Project", "article")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO documents (id, project_id, filename, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		"d1", "p1", "main.tex", "")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO versions (id, document_id, version_number, content, commit_message, created_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		"v1", "d1", 1, "old", "first")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO versions (id, document_id, version_number, content, commit_message, created_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		"v2", "d1", 1, "old again", "dup")
	require.Error(t, err, "should fail on duplicate version number")
	require.True(t, isUniqueViolation(err))
}
