package project

import "time"

// DocumentType classifies what kind of LaTeX document a project produces.
type DocumentType string

const (
	TypeArticle DocumentType = "article"
	TypeReport  DocumentType = "report"
	TypeBook    DocumentType = "book"
	TypeThesis  DocumentType = "thesis"
)

// Valid reports whether the document type is one of the supported values.
func (t DocumentType) Valid() bool {
	switch t {
	case TypeArticle, TypeReport, TypeBook, TypeThesis:
		return true
	}
	return false
}

// Project status values. Listing only ever surfaces active projects.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Project is a container for documents, mirrored to a directory on disk.
type Project struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Type       DocumentType   `json:"type"`
	TemplateID string         `json:"template_id,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	OverleafID string         `json:"overleaf_id,omitempty"`
	Settings   map[string]any `json:"settings"`
	Status     string         `json:"status"`
}
