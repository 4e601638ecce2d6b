package document

import (
	"context"
	"time"
)

// Repository provides persistence for documents and their versions.
type Repository interface {
	Create(ctx context.Context, doc *Document) error
	Get(ctx context.Context, projectID, filename string) (*Document, error)
	List(ctx context.Context, projectID string) ([]Info, error)

	// UpdateContent performs the versioned update in a single transaction:
	// snapshot the previous content as version max+1, overwrite the document,
	// and bump both the document and owning project timestamps. Returns the
	// new version number, or repository.ErrNotFound if the document doesn't
	// exist.
	UpdateContent(ctx context.Context, projectID, filename, content, commitMessage string, at time.Time) (int, error)

	ListVersions(ctx context.Context, documentID string) ([]Version, error)
	ProjectHistory(ctx context.Context, projectID string) ([]HistoryEntry, error)
}
