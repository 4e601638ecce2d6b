package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/texkit/overleaf-mcp/internal/domain/document"
	"github.com/texkit/overleaf-mcp/internal/domain/project"
	"github.com/texkit/overleaf-mcp/internal/overleaf"
)

// Scheme is the URI scheme all resources live under.
const Scheme = "overleaf-remote"

// Resources enumerates and resolves resource URIs against the stores.
type Resources struct {
	projects  ProjectService
	documents DocumentService
	templates TemplateService
	overleaf  overleaf.Service
	logger    *slog.Logger
}

// NewResources creates the resource resolver.
func NewResources(projects ProjectService, documents DocumentService, templates TemplateService, ol overleaf.Service, logger *slog.Logger) *Resources {
	return &Resources{projects: projects, documents: documents, templates: templates, overleaf: ol, logger: logger}
}

// List enumerates every addressable resource for the current store state.
// Each active project contributes metadata, per-document, history and
// compilation entries, followed by the template catalog.
func (r *Resources) List(ctx context.Context) (*ListResourcesResult, error) {
	projects, err := r.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	resources := []Resource{}
	for _, p := range projects {
		resources = append(resources, Resource{
			URI:         fmt.Sprintf("%s:///projects/%s/metadata", Scheme, p.ID),
			Name:        fmt.Sprintf("Project: %s", p.Title),
			Description: fmt.Sprintf("Metadata for project '%s'", p.Title),
			MimeType:    "application/json",
		})

		docs, err := r.documents.List(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("listing documents for project %s: %w", p.ID, err)
		}
		for _, d := range docs {
			resources = append(resources, Resource{
				URI:         fmt.Sprintf("%s:///projects/%s/documents/%s", Scheme, p.ID, d.Filename),
				Name:        fmt.Sprintf("Document: %s", d.Filename),
				Description: fmt.Sprintf("LaTeX document '%s' in project '%s'", d.Filename, p.Title),
				MimeType:    fileMimeType(d.Filename),
			})
		}

		resources = append(resources,
			Resource{
				URI:         fmt.Sprintf("%s:///projects/%s/history", Scheme, p.ID),
				Name:        fmt.Sprintf("Version History: %s", p.Title),
				Description: fmt.Sprintf("Version history for project '%s'", p.Title),
				MimeType:    "application/json",
			},
			Resource{
				URI:         fmt.Sprintf("%s:///projects/%s/compilation", Scheme, p.ID),
				Name:        fmt.Sprintf("Compilation Status: %s", p.Title),
				Description: fmt.Sprintf("Compilation status and results for project '%s'", p.Title),
				MimeType:    "application/json",
			},
		)
	}

	templates, err := r.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	for _, t := range templates {
		resources = append(resources, Resource{
			URI:         fmt.Sprintf("%s:///templates/%s", Scheme, t.ID),
			Name:        fmt.Sprintf("Template: %s", t.Name),
			Description: fmt.Sprintf("LaTeX template for %s", t.DocumentType),
			MimeType:    "text/x-latex",
		})
	}

	r.logger.Debug("listed resources", "count", len(resources))
	return &ListResourcesResult{Resources: resources}, nil
}

// Read resolves a resource URI to its textual content. Unknown shapes and
// missing entities are errors.
func (r *Resources) Read(ctx context.Context, uri string) (string, error) {
	scheme, path, ok := parseURI(uri)
	if !ok {
		return "", fmt.Errorf("invalid URI format: %s", uri)
	}
	if scheme != Scheme {
		return "", fmt.Errorf("unsupported URI scheme: %s", scheme)
	}

	parts := splitPath(path)
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid URI format: %s", uri)
	}

	switch parts[0] {
	case "projects":
		return r.readProject(ctx, parts[1:])
	case "templates":
		return r.readTemplate(ctx, parts[1])
	default:
		return "", fmt.Errorf("unknown resource type: %s", parts[0])
	}
}

func (r *Resources) readProject(ctx context.Context, parts []string) (string, error) {
	if len(parts) < 2 {
		return "", fmt.Errorf("invalid project resource path")
	}
	projectID := parts[0]

	proj, err := r.projects.Get(ctx, projectID)
	if err != nil {
		return "", err
	}
	if proj == nil {
		return "", fmt.Errorf("project not found: %s", projectID)
	}

	switch parts[1] {
	case "metadata":
		if len(parts) != 2 {
			return "", fmt.Errorf("invalid project resource path")
		}
		return r.projectMetadata(ctx, proj)
	case "documents":
		if len(parts) != 3 {
			return "", fmt.Errorf("document filename required")
		}
		doc, err := r.documents.Get(ctx, projectID, parts[2])
		if err != nil {
			return "", err
		}
		if doc == nil {
			return "", fmt.Errorf("document not found: %s", parts[2])
		}
		return doc.Content, nil
	case "history":
		if len(parts) != 2 {
			return "", fmt.Errorf("invalid project resource path")
		}
		return r.projectHistory(ctx, projectID)
	case "compilation":
		if len(parts) != 2 {
			return "", fmt.Errorf("invalid project resource path")
		}
		return r.compilationStatus(ctx, proj)
	default:
		return "", fmt.Errorf("unknown project resource type: %s", parts[1])
	}
}

func (r *Resources) readTemplate(ctx context.Context, id string) (string, error) {
	tmpl, err := r.templates.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if tmpl == nil {
		return "", fmt.Errorf("template not found: %s", id)
	}
	return tmpl.Content, nil
}

func (r *Resources) projectMetadata(ctx context.Context, proj *project.Project) (string, error) {
	docs, err := r.documents.List(ctx, proj.ID)
	if err != nil {
		return "", fmt.Errorf("listing documents: %w", err)
	}
	filenames := make([]string, 0, len(docs))
	for _, d := range docs {
		filenames = append(filenames, d.Filename)
	}

	metadata := map[string]any{
		"id":             proj.ID,
		"title":          proj.Title,
		"type":           proj.Type,
		"template_id":    proj.TemplateID,
		"created_at":     proj.CreatedAt,
		"updated_at":     proj.UpdatedAt,
		"overleaf_id":    proj.OverleafID,
		"status":         proj.Status,
		"settings":       proj.Settings,
		"document_count": len(docs),
		"documents":      filenames,
	}

	out, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding metadata: %w", err)
	}
	return string(out), nil
}

func (r *Resources) projectHistory(ctx context.Context, projectID string) (string, error) {
	entries, err := r.documents.History(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("loading history: %w", err)
	}
	if entries == nil {
		entries = []document.HistoryEntry{}
	}

	out, err := json.MarshalIndent(map[string]any{
		"project_id": projectID,
		"versions":   entries,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding history: %w", err)
	}
	return string(out), nil
}

func (r *Resources) compilationStatus(ctx context.Context, proj *project.Project) (string, error) {
	var status any
	switch {
	case r.overleaf == nil || !r.overleaf.IsAvailable():
		status = map[string]string{
			"status":  "offline",
			"message": "Overleaf service not available",
		}
	case proj.OverleafID == "":
		status = map[string]string{
			"status":  "not_synced",
			"message": "Project not synced to Overleaf",
		}
	default:
		s, err := r.overleaf.Status(ctx, proj.OverleafID)
		if err != nil {
			return "", fmt.Errorf("querying compilation status: %w", err)
		}
		status = s
	}

	out, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding status: %w", err)
	}
	return string(out), nil
}

// MimeType reports the mime type for a resource URI. It never fails: parse
// errors fall back to text/plain and non-document resources to JSON.
func MimeType(uri string) string {
	_, path, ok := parseURI(uri)
	if !ok {
		return "text/plain"
	}
	parts := splitPath(path)

	if len(parts) >= 4 && parts[0] == "projects" && parts[2] == "documents" {
		return fileMimeType(parts[3])
	}
	if len(parts) >= 2 && parts[0] == "templates" {
		return "text/x-latex"
	}
	return "application/json"
}

func fileMimeType(filename string) string {
	ext := ""
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = strings.ToLower(filename[i+1:])
	}
	switch ext {
	case "tex", "cls", "sty":
		return "text/x-latex"
	case "bib":
		return "text/x-bibtex"
	case "txt":
		return "text/plain"
	case "md":
		return "text/markdown"
	case "json":
		return "application/json"
	case "pdf":
		return "application/pdf"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "svg":
		return "image/svg+xml"
	default:
		return "text/plain"
	}
}

// parseURI splits a resource URI into scheme and path. Segments are taken
// verbatim, with no percent decoding, so any filename a listing emits reads
// back unchanged.
func parseURI(uri string) (scheme, path string, ok bool) {
	i := strings.Index(uri, "://")
	if i <= 0 {
		return "", "", false
	}
	rest := uri[i+3:]
	j := strings.Index(rest, "/")
	if j < 0 {
		return uri[:i], "", true
	}
	return uri[:i], rest[j:], true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
