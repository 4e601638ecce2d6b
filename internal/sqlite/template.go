package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/texkit/overleaf-mcp/internal/domain/template"
	"github.com/texkit/overleaf-mcp/internal/repository"
)

// TemplateRepository implements template.Repository for SQLite
type TemplateRepository struct {
	db *DB
}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(db *DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// List returns all templates ordered by name. Content bodies are left out
// of listings; Get loads them.
func (r *TemplateRepository) List(ctx context.Context) ([]template.Template, error) {
	query := `
		SELECT id, name, document_type, description, created_at
		FROM templates
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []template.Template
	for rows.Next() {
		var tpl template.Template
		var description sql.NullString
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.DocumentType, &description, &tpl.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		tpl.Description = description.String
		templates = append(templates, tpl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", err)
	}

	return templates, nil
}

// Get retrieves a template by ID
func (r *TemplateRepository) Get(ctx context.Context, id string) (*template.Template, error) {
	query := `
		SELECT id, name, document_type, content, description, created_at
		FROM templates
		WHERE id = ?
	`

	tpl, err := scanTemplate(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return tpl, nil
}

func scanTemplate(row rowScanner) (*template.Template, error) {
	var tpl template.Template
	var description sql.NullString

	err := row.Scan(
		&tpl.ID,
		&tpl.Name,
		&tpl.DocumentType,
		&tpl.Content,
		&description,
		&tpl.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	tpl.Description = description.String
	return &tpl, nil
}

// defaultTemplates is the curated catalog seeded at startup.
var defaultTemplates = []template.Template{
	{
		ID:           "article_basic",
		Name:         "Basic Article",
		DocumentType: "article",
		Description:  "Basic LaTeX article template",
		Content: `\documentclass{article}
\usepackage[utf8]{inputenc}
\usepackage{amsmath}
\usepackage{amsfonts}
\usepackage{amssymb}
\usepackage{graphicx}

\title{Document Title}
\author{Author Name}
\date{\today}

\begin{document}

\maketitle

\begin{abstract}
Your abstract goes here.
\end{abstract}

\section{Introduction}
Your introduction goes here.

\section{Methodology}
Your methodology goes here.

\section{Results}
Your results go here.

\section{Conclusion}
Your conclusion goes here.

\bibliographystyle{plain}
\bibliography{references}

\end{document}`,
	},
	{
		ID:           "report_basic",
		Name:         "Basic Report",
		DocumentType: "report",
		Description:  "Basic LaTeX report template",
		Content: `\documentclass{report}
\usepackage[utf8]{inputenc}
\usepackage{amsmath}
\usepackage{amsfonts}
\usepackage{amssymb}
\usepackage{graphicx}

\title{Report Title}
\author{Author Name}
\date{\today}

\begin{document}

\maketitle

\tableofcontents

\chapter{Introduction}
Your introduction goes here.

\chapter{Background}
Your background goes here.

\chapter{Methodology}
Your methodology goes here.

\chapter{Results}
Your results go here.

\chapter{Discussion}
Your discussion goes here.

\chapter{Conclusion}
Your conclusion goes here.

\bibliographystyle{plain}
\bibliography{references}

\end{document}`,
	},
}
