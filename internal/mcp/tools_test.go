package mcp_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/texkit/overleaf-mcp/internal/domain/project"
	"github.com/texkit/overleaf-mcp/internal/mcp"
)

func callTool(t *testing.T, env *testEnv, name string, args map[string]any) string {
	t.Helper()

	result, err := env.handler.Handle(context.Background(), "tools/call",
		rawParams(t, map[string]any{"name": name, "arguments": args}))
	require.NoError(t, err)

	call, ok := result.(*mcp.CallToolResult)
	require.True(t, ok)
	require.Len(t, call.Content, 1)
	require.Equal(t, "text", call.Content[0].Type)
	return call.Content[0].Text
}

func TestToolCatalogNames(t *testing.T) {
	names := make(map[string]bool)
	for _, tool := range mcp.ToolCatalog() {
		require.NotEmpty(t, tool.Description)
		require.Equal(t, "object", tool.InputSchema["type"])
		names[tool.Name] = true
	}
	for _, want := range []string{
		"create_project", "list_projects", "get_project",
		"create_document", "update_document", "get_document", "list_documents",
		"generate_section", "improve_content",
		"list_templates", "get_template",
		"sync_to_overleaf", "compile_project",
	} {
		require.True(t, names[want], "missing tool %s", want)
	}
}

func TestUnknownTool(t *testing.T) {
	env := newTestEnv(t, false)
	text := callTool(t, env, "bogus_tool", map[string]any{})
	require.Equal(t, "Error: Unknown tool: bogus_tool", text)
}

func TestCreateProjectTool(t *testing.T) {
	env := newTestEnv(t, false)

	text := callTool(t, env, "create_project", map[string]any{
		"title":         "My Paper",
		"document_type": "article",
	})
	require.True(t, strings.HasPrefix(text, "Created project 'My Paper' with ID: "))
	require.Contains(t, text, `"title": "My Paper"`)

	// Invalid type surfaces as error content
	text = callTool(t, env, "create_project", map[string]any{
		"title":         "Bad",
		"document_type": "poem",
	})
	require.True(t, strings.HasPrefix(text, "Error: "))
}

func TestListProjectsTool(t *testing.T) {
	env := newTestEnv(t, false)

	require.Equal(t, "No projects found.", callTool(t, env, "list_projects", map[string]any{}))

	_, err := env.projects.Create(context.Background(), "Listed", project.TypeReport, "")
	require.NoError(t, err)

	text := callTool(t, env, "list_projects", map[string]any{})
	require.Contains(t, text, "Found 1 projects:")
	require.Contains(t, text, "- Listed (ID: ")
	require.Contains(t, text, "Type: report)")
}

func TestGetProjectTool(t *testing.T) {
	env := newTestEnv(t, false)

	require.Equal(t, "Project not found: nope", callTool(t, env, "get_project", map[string]any{"project_id": "nope"}))

	proj, err := env.projects.Create(context.Background(), "Found", project.TypeArticle, "")
	require.NoError(t, err)

	text := callTool(t, env, "get_project", map[string]any{"project_id": proj.ID})
	require.Contains(t, text, "Project: Found")
	require.Contains(t, text, "Documents (1):")
	require.Contains(t, text, "- main.tex")
}

func TestDocumentTools(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	proj, err := env.projects.Create(ctx, "Docs", project.TypeArticle, "")
	require.NoError(t, err)

	text := callTool(t, env, "create_document", map[string]any{
		"project_id": proj.ID,
		"filename":   "chapter1.tex",
		"content":    "\\chapter{One}",
	})
	require.Contains(t, text, "Created document 'chapter1.tex' in project "+proj.ID)

	text = callTool(t, env, "update_document", map[string]any{
		"project_id": proj.ID,
		"filename":   "chapter1.tex",
		"content":    "\\chapter{One, revised}",
	})
	require.Equal(t, "Successfully updated document 'chapter1.tex' in project "+proj.ID, text)

	text = callTool(t, env, "update_document", map[string]any{
		"project_id": proj.ID,
		"filename":   "missing.tex",
		"content":    "x",
	})
	require.Equal(t, "Failed to update document 'missing.tex' in project "+proj.ID, text)

	text = callTool(t, env, "get_document", map[string]any{
		"project_id": proj.ID,
		"filename":   "chapter1.tex",
	})
	require.Equal(t, "Document: chapter1.tex\n\n\\chapter{One, revised}", text)

	text = callTool(t, env, "get_document", map[string]any{
		"project_id": proj.ID,
		"filename":   "nope.tex",
	})
	require.Equal(t, "Document not found: nope.tex in project "+proj.ID, text)

	text = callTool(t, env, "list_documents", map[string]any{"project_id": proj.ID})
	require.Contains(t, text, "Documents in project "+proj.ID)
	require.Contains(t, text, "- chapter1.tex (Created: ")
	require.Contains(t, text, "- main.tex (Created: ")
}

func TestGenerateSectionTool(t *testing.T) {
	env := newTestEnv(t, false)

	text := callTool(t, env, "generate_section", map[string]any{
		"section_type": "introduction",
		"topic":        "graph coloring",
	})
	require.Contains(t, text, "Generated introduction section for 'graph coloring':")
	require.Contains(t, text, "\\section{Introduction}")
	require.Contains(t, text, "graph coloring has become increasingly important")

	// Enum values without a skeleton fall back to a comment header
	text = callTool(t, env, "generate_section", map[string]any{
		"section_type": "bibliography",
		"topic":        "graph coloring",
	})
	require.Contains(t, text, "% Bibliography section for graph coloring")
}

func TestImproveContentTool(t *testing.T) {
	env := newTestEnv(t, false)

	text := callTool(t, env, "improve_content", map[string]any{
		"content":          "\\section{Draft}",
		"improvement_type": "clarity",
		"instructions":     "tighten prose",
	})
	require.Contains(t, text, "Improved content (clarity):")
	require.Contains(t, text, "% Improved for clarity\n% tighten prose\n\n\\section{Draft}")
}

func TestTemplateTools(t *testing.T) {
	env := newTestEnv(t, false)

	text := callTool(t, env, "list_templates", map[string]any{})
	require.Contains(t, text, "Available templates:")
	require.Contains(t, text, "- Basic Article (ID: article_basic, Type: article)")
	require.Contains(t, text, "- Basic Report (ID: report_basic, Type: report)")

	text = callTool(t, env, "get_template", map[string]any{"template_id": "article_basic"})
	require.Contains(t, text, "Template: Basic Article")
	require.Contains(t, text, "\\documentclass{article}")

	require.Equal(t, "Template not found: nope", callTool(t, env, "get_template", map[string]any{"template_id": "nope"}))
}

func TestSyncToolUnauthenticated(t *testing.T) {
	env := newTestEnv(t, false)

	proj, err := env.projects.Create(context.Background(), "Unsyncable", project.TypeArticle, "")
	require.NoError(t, err)

	text := callTool(t, env, "sync_to_overleaf", map[string]any{"project_id": proj.ID})
	require.Equal(t, "Failed to sync project to Overleaf. Check Overleaf service configuration.", text)
}

func TestSyncAndCompileTools(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	proj, err := env.projects.Create(ctx, "Syncable", project.TypeArticle, "")
	require.NoError(t, err)

	// Compile before sync
	text := callTool(t, env, "compile_project", map[string]any{"project_id": proj.ID})
	require.Equal(t, "Project not synced to Overleaf. Use sync_to_overleaf tool first.", text)

	text = callTool(t, env, "sync_to_overleaf", map[string]any{"project_id": proj.ID})
	require.Contains(t, text, "Successfully synced project to Overleaf. Overleaf ID: overleaf_project_")

	// The assigned id must be persisted
	got, err := env.projects.Get(ctx, proj.ID)
	require.NoError(t, err)
	require.NotEmpty(t, got.OverleafID)

	text = callTool(t, env, "compile_project", map[string]any{"project_id": proj.ID})
	require.Contains(t, text, "Compilation successful!")
	require.Contains(t, text, "https://www.overleaf.com/project/"+got.OverleafID+"/output.pdf")

	// A second sync reuses the stored id
	text = callTool(t, env, "sync_to_overleaf", map[string]any{"project_id": proj.ID})
	require.Equal(t, "Successfully synced project to Overleaf. Overleaf ID: "+got.OverleafID, text)
}
