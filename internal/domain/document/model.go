package document

import "time"

// Document is identified by its (project id, filename) pair. The filename is
// treated as an opaque path segment; it is not sanitized against traversal.
type Document struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Filename  string    `json:"filename"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Info is a listing view of a document, without content.
type Info struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Version is an immutable snapshot of a document's content as it was
// immediately before an update. Numbers are per-document, contiguous from 1.
type Version struct {
	ID            string    `json:"id"`
	DocumentID    string    `json:"document_id"`
	Number        int       `json:"version"`
	Content       string    `json:"content"`
	CommitMessage string    `json:"message"`
	CreatedAt     time.Time `json:"timestamp"`
}

// HistoryEntry is a project-wide history view row: a version joined with the
// filename of the document it belongs to.
type HistoryEntry struct {
	Filename      string    `json:"filename"`
	Version       int       `json:"version"`
	CommitMessage string    `json:"message"`
	CreatedAt     time.Time `json:"timestamp"`
}
