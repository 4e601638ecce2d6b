package template

import "time"

// Template is a curated, read-only LaTeX starting point. Templates are seeded
// at store initialization and never mutated through the protocol.
type Template struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DocumentType string    `json:"document_type"`
	Content      string    `json:"content,omitempty"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
