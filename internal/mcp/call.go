package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/texkit/overleaf-mcp/internal/domain/project"
	"github.com/texkit/overleaf-mcp/internal/overleaf"
)

// Dispatcher maps tool names to store mutations and collaborator actions.
// Tool-level failures are reported as content, never as protocol errors.
type Dispatcher struct {
	projects  ProjectService
	documents DocumentService
	templates TemplateService
	overleaf  overleaf.Service
	generator Generator
	logger    *slog.Logger
}

// NewDispatcher creates the tool dispatcher.
func NewDispatcher(projects ProjectService, documents DocumentService, templates TemplateService, ol overleaf.Service, gen Generator, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		projects:  projects,
		documents: documents,
		templates: templates,
		overleaf:  ol,
		generator: gen,
		logger:    logger,
	}
}

// Call runs one tool. Every failure, including unknown tools and missing
// arguments, comes back as a single error content block.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) []TextContent {
	d.logger.Info("calling tool", "tool", name)

	text, err := d.dispatch(ctx, name, args)
	if err != nil {
		d.logger.Error("tool failed", "tool", name, "error", err)
		return []TextContent{NewText("Error: " + err.Error())}
	}
	return []TextContent{NewText(text)}
}

func (d *Dispatcher) dispatch(ctx context.Context, name string, args map[string]any) (string, error) {
	switch name {
	case "create_project":
		return d.createProject(ctx, args)
	case "list_projects":
		return d.listProjects(ctx)
	case "get_project":
		return d.getProject(ctx, args)
	case "create_document":
		return d.createDocument(ctx, args)
	case "update_document":
		return d.updateDocument(ctx, args)
	case "get_document":
		return d.getDocument(ctx, args)
	case "list_documents":
		return d.listDocuments(ctx, args)
	case "generate_section":
		return d.generateSection(args)
	case "improve_content":
		return d.improveContent(args)
	case "list_templates":
		return d.listTemplates(ctx)
	case "get_template":
		return d.getTemplate(ctx, args)
	case "sync_to_overleaf":
		return d.syncToOverleaf(ctx, args)
	case "compile_project":
		return d.compileProject(ctx, args)
	default:
		return "", fmt.Errorf("Unknown tool: %s", name)
	}
}

func (d *Dispatcher) createProject(ctx context.Context, args map[string]any) (string, error) {
	title, err := requiredString(args, "title")
	if err != nil {
		return "", err
	}
	docType, err := requiredString(args, "document_type")
	if err != nil {
		return "", err
	}
	templateID := optionalString(args, "template_id", "")

	proj, err := d.projects.Create(ctx, title, project.DocumentType(docType), templateID)
	if err != nil {
		return "", err
	}

	out, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created project '%s' with ID: %s\n\n%s", title, proj.ID, out), nil
}

func (d *Dispatcher) listProjects(ctx context.Context) (string, error) {
	projects, err := d.projects.List(ctx)
	if err != nil {
		return "", err
	}
	if len(projects) == 0 {
		return "No projects found.", nil
	}

	lines := make([]string, 0, len(projects))
	for _, p := range projects {
		lines = append(lines, fmt.Sprintf("- %s (ID: %s, Type: %s)", p.Title, p.ID, p.Type))
	}

	out, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Found %d projects:\n\n%s\n\n%s", len(projects), strings.Join(lines, "\n"), out), nil
}

func (d *Dispatcher) getProject(ctx context.Context, args map[string]any) (string, error) {
	projectID, err := requiredString(args, "project_id")
	if err != nil {
		return "", err
	}

	proj, err := d.projects.Get(ctx, projectID)
	if err != nil {
		return "", err
	}
	if proj == nil {
		return fmt.Sprintf("Project not found: %s", projectID), nil
	}

	docs, err := d.documents.List(ctx, projectID)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(docs))
	for _, doc := range docs {
		lines = append(lines, fmt.Sprintf("- %s", doc.Filename))
	}

	out, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Project: %s\n\nDocuments (%d):\n%s\n\nProject Details:\n%s",
		proj.Title, len(docs), strings.Join(lines, "\n"), out), nil
}

func (d *Dispatcher) createDocument(ctx context.Context, args map[string]any) (string, error) {
	projectID, err := requiredString(args, "project_id")
	if err != nil {
		return "", err
	}
	filename, err := requiredString(args, "filename")
	if err != nil {
		return "", err
	}
	content := optionalString(args, "content", "")

	doc, err := d.documents.Create(ctx, projectID, filename, content)
	if err != nil {
		return "", err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created document '%s' in project %s\n\n%s", filename, projectID, out), nil
}

func (d *Dispatcher) updateDocument(ctx context.Context, args map[string]any) (string, error) {
	projectID, err := requiredString(args, "project_id")
	if err != nil {
		return "", err
	}
	filename, err := requiredString(args, "filename")
	if err != nil {
		return "", err
	}
	content, err := requiredString(args, "content")
	if err != nil {
		return "", err
	}
	commitMessage := optionalString(args, "commit_message", "Updated via MCP")

	ok, err := d.documents.Update(ctx, projectID, filename, content, commitMessage)
	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("Failed to update document '%s' in project %s", filename, projectID), nil
	}
	return fmt.Sprintf("Successfully updated document '%s' in project %s", filename, projectID), nil
}

func (d *Dispatcher) getDocument(ctx context.Context, args map[string]any) (string, error) {
	projectID, err := requiredString(args, "project_id")
	if err != nil {
		return "", err
	}
	filename, err := requiredString(args, "filename")
	if err != nil {
		return "", err
	}

	doc, err := d.documents.Get(ctx, projectID, filename)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return fmt.Sprintf("Document not found: %s in project %s", filename, projectID), nil
	}
	return fmt.Sprintf("Document: %s\n\n%s", filename, doc.Content), nil
}

func (d *Dispatcher) listDocuments(ctx context.Context, args map[string]any) (string, error) {
	projectID, err := requiredString(args, "project_id")
	if err != nil {
		return "", err
	}

	docs, err := d.documents.List(ctx, projectID)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return fmt.Sprintf("No documents found in project %s", projectID), nil
	}

	lines := make([]string, 0, len(docs))
	for _, doc := range docs {
		lines = append(lines, fmt.Sprintf("- %s (Created: %s)", doc.Filename, doc.CreatedAt.Format("2006-01-02 15:04:05")))
	}
	return fmt.Sprintf("Documents in project %s:\n\n%s", projectID, strings.Join(lines, "\n")), nil
}

func (d *Dispatcher) generateSection(args map[string]any) (string, error) {
	sectionType, err := requiredString(args, "section_type")
	if err != nil {
		return "", err
	}
	topic, err := requiredString(args, "topic")
	if err != nil {
		return "", err
	}
	sectionContext := optionalString(args, "context", "")
	length := optionalString(args, "length", "medium")

	content := d.generator.Section(sectionType, topic, sectionContext, length)
	return fmt.Sprintf("Generated %s section for '%s':\n\n%s", sectionType, topic, content), nil
}

func (d *Dispatcher) improveContent(args map[string]any) (string, error) {
	content, err := requiredString(args, "content")
	if err != nil {
		return "", err
	}
	improvementType, err := requiredString(args, "improvement_type")
	if err != nil {
		return "", err
	}
	instructions := optionalString(args, "instructions", "")

	improved := d.generator.Improve(content, improvementType, instructions)
	return fmt.Sprintf("Improved content (%s):\n\n%s", improvementType, improved), nil
}

func (d *Dispatcher) listTemplates(ctx context.Context) (string, error) {
	templates, err := d.templates.List(ctx)
	if err != nil {
		return "", err
	}
	if len(templates) == 0 {
		return "No templates available.", nil
	}

	lines := make([]string, 0, len(templates))
	for _, t := range templates {
		lines = append(lines, fmt.Sprintf("- %s (ID: %s, Type: %s)", t.Name, t.ID, t.DocumentType))
	}
	return fmt.Sprintf("Available templates:\n\n%s", strings.Join(lines, "\n")), nil
}

func (d *Dispatcher) getTemplate(ctx context.Context, args map[string]any) (string, error) {
	templateID, err := requiredString(args, "template_id")
	if err != nil {
		return "", err
	}

	tmpl, err := d.templates.Get(ctx, templateID)
	if err != nil {
		return "", err
	}
	if tmpl == nil {
		return fmt.Sprintf("Template not found: %s", templateID), nil
	}
	return fmt.Sprintf("Template: %s\n\n%s", tmpl.Name, tmpl.Content), nil
}

func (d *Dispatcher) syncToOverleaf(ctx context.Context, args map[string]any) (string, error) {
	projectID, err := requiredString(args, "project_id")
	if err != nil {
		return "", err
	}

	proj, err := d.projects.Get(ctx, projectID)
	if err != nil {
		return "", err
	}
	if proj == nil {
		return fmt.Sprintf("Project not found: %s", projectID), nil
	}

	docs, err := d.documents.List(ctx, projectID)
	if err != nil {
		return "", err
	}

	overleafID, err := d.overleaf.Sync(ctx, proj, docs)
	if err != nil {
		return "", err
	}
	if overleafID == "" {
		return "Failed to sync project to Overleaf. Check Overleaf service configuration.", nil
	}

	if overleafID != proj.OverleafID {
		if err := d.projects.SetOverleafID(ctx, projectID, overleafID); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Successfully synced project to Overleaf. Overleaf ID: %s", overleafID), nil
}

func (d *Dispatcher) compileProject(ctx context.Context, args map[string]any) (string, error) {
	projectID, err := requiredString(args, "project_id")
	if err != nil {
		return "", err
	}

	proj, err := d.projects.Get(ctx, projectID)
	if err != nil {
		return "", err
	}
	if proj == nil {
		return fmt.Sprintf("Project not found: %s", projectID), nil
	}
	if proj.OverleafID == "" {
		return "Project not synced to Overleaf. Use sync_to_overleaf tool first.", nil
	}

	result, err := d.overleaf.Compile(ctx, proj.OverleafID)
	if err != nil {
		return "", err
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Unknown error"
		}
		return fmt.Sprintf("Compilation failed: %s", msg), nil
	}

	pdfURL := result.PDFURL
	if pdfURL == "" {
		pdfURL = "N/A"
	}
	log := result.Log
	if log == "" {
		log = "N/A"
	}
	return fmt.Sprintf("Compilation successful!\nPDF URL: %s\nLog: %s", pdfURL, log), nil
}

// requiredString pulls a mandatory string argument. The error message is the
// quoted key alone so the content block reads like a missing-key lookup.
func requiredString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("'%s'", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("'%s'", key)
	}
	return s, nil
}

func optionalString(args map[string]any, key, fallback string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}
