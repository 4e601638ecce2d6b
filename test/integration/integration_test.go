package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/texkit/overleaf-mcp/internal/domain/document"
	"github.com/texkit/overleaf-mcp/internal/domain/project"
	"github.com/texkit/overleaf-mcp/internal/domain/template"
	"github.com/texkit/overleaf-mcp/internal/mcp"
	"github.com/texkit/overleaf-mcp/internal/overleaf"
	"github.com/texkit/overleaf-mcp/internal/sqlite"
	"github.com/texkit/overleaf-mcp/internal/transport"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	storage := t.TempDir()
	logLevel := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	templateSvc := template.NewService(sqlite.NewTemplateRepository(db), logger)
	documentSvc := document.NewService(sqlite.NewDocumentRepository(db), storage, logger)
	projectSvc := project.NewService(sqlite.NewProjectRepository(db), templateSvc, documentSvc, storage, logger)
	overleafSvc := overleaf.NewStubService("user@example.com", "secret", logger)

	handler := mcp.NewHandler(projectSvc, documentSvc, templateSvc, overleafSvc, logLevel, logger)

	srv := httptest.NewServer(transport.NewRouter(handler, logger))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method string, params any) json.RawMessage {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
		"id":      1,
	})
	require.NoError(t, err)

	resp, err := srv.Client().Post(srv.URL+"/jsonrpc", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Nil(t, envelope.Error, "method %s failed: %+v", method, envelope.Error)
	return envelope.Result
}

func toolText(t *testing.T, srv *httptest.Server, name string, args map[string]any) string {
	t.Helper()

	result := call(t, srv, "tools/call", map[string]any{"name": name, "arguments": args})
	var payload struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(result, &payload))
	require.Len(t, payload.Content, 1)
	return payload.Content[0].Text
}

func TestIntegration_AuthoringWorkflow(t *testing.T) {
	srv := newTestServer(t)

	result := call(t, srv, "initialize", map[string]any{
		"clientInfo": map[string]string{"name": "integration", "version": "1.0"},
	})
	require.Contains(t, string(result), `"protocolVersion":"1.1.0"`)

	// Create a thesis project and pull its id out of the tool response
	text := toolText(t, srv, "create_project", map[string]any{
		"title":         "Thesis Draft",
		"document_type": "thesis",
	})
	require.Contains(t, text, "Created project 'Thesis Draft' with ID: ")
	idLine := strings.SplitN(text, "\n", 2)[0]
	projectID := strings.TrimPrefix(idLine, "Created project 'Thesis Draft' with ID: ")

	// Initial document exists with the placeholder
	text = toolText(t, srv, "get_document", map[string]any{
		"project_id": projectID,
		"filename":   "main.tex",
	})
	require.Equal(t, "Document: main.tex\n\n% Main document\n", text)

	// Update and verify the version trail through the history resource
	text = toolText(t, srv, "update_document", map[string]any{
		"project_id":     projectID,
		"filename":       "main.tex",
		"content":        "\\section{Intro}",
		"commit_message": "first pass",
	})
	require.Equal(t, "Successfully updated document 'main.tex' in project "+projectID, text)

	result = call(t, srv, "resources/read", map[string]any{
		"uri": "overleaf-remote:///projects/" + projectID + "/history",
	})
	var read struct {
		Contents []struct {
			Text string `json:"text"`
		} `json:"contents"`
	}
	require.NoError(t, json.Unmarshal(result, &read))
	require.Len(t, read.Contents, 1)
	require.Contains(t, read.Contents[0].Text, `"version": 1`)
	require.Contains(t, read.Contents[0].Text, `"message": "first pass"`)

	// Sync and compile through the collaborator
	text = toolText(t, srv, "sync_to_overleaf", map[string]any{"project_id": projectID})
	require.Contains(t, text, "Successfully synced project to Overleaf.")

	text = toolText(t, srv, "compile_project", map[string]any{"project_id": projectID})
	require.Contains(t, text, "Compilation successful!")

	// Compilation resource now reflects the synced state
	result = call(t, srv, "resources/read", map[string]any{
		"uri": "overleaf-remote:///projects/" + projectID + "/compilation",
	})
	require.Contains(t, string(result), `success`)
}
