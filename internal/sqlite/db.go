package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema and seeds the curated templates.
// Both steps are idempotent so this runs on every startup.
func (db *DB) RunMigrations() error {
	migration := `
-- Projects table
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    type TEXT NOT NULL,
    template_id TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    overleaf_id TEXT,
    settings TEXT,
    status TEXT NOT NULL DEFAULT 'active'
);
CREATE INDEX IF NOT EXISTS idx_project_status ON projects(status);

-- Documents table
CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    filename TEXT NOT NULL,
    content TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    FOREIGN KEY (project_id) REFERENCES projects(id),
    UNIQUE(project_id, filename)
);
CREATE INDEX IF NOT EXISTS idx_project_documents ON documents(project_id);

-- Versions table: append-only snapshots of prior document content.
-- The unique constraint backs the per-document monotonic numbering.
CREATE TABLE IF NOT EXISTS versions (
    id TEXT PRIMARY KEY,
    document_id TEXT NOT NULL,
    version_number INTEGER NOT NULL,
    content TEXT,
    commit_message TEXT,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (document_id) REFERENCES documents(id),
    UNIQUE(document_id, version_number)
);
CREATE INDEX IF NOT EXISTS idx_document_versions ON versions(document_id);

-- Templates table
CREATE TABLE IF NOT EXISTS templates (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    document_type TEXT NOT NULL,
    content TEXT NOT NULL,
    description TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.seedTemplates(); err != nil {
		return fmt.Errorf("failed to seed templates: %w", err)
	}

	return nil
}

func (db *DB) seedTemplates() error {
	for _, tpl := range defaultTemplates {
		_, err := db.Exec(`
			INSERT OR IGNORE INTO templates (id, name, document_type, content, description)
			VALUES (?, ?, ?, ?, ?)
		`, tpl.ID, tpl.Name, tpl.DocumentType, tpl.Content, tpl.Description)
		if err != nil {
			return fmt.Errorf("seeding template %s: %w", tpl.ID, err)
		}
	}
	return nil
}
