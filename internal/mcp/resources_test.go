package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/texkit/overleaf-mcp/internal/domain/project"
	"github.com/texkit/overleaf-mcp/internal/mcp"
)

func TestResourceEnumerationReadTotality(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	proj, err := env.projects.Create(ctx, "Survey Paper", project.TypeArticle, "article_basic")
	require.NoError(t, err)
	_, err = env.documents.Create(ctx, proj.ID, "refs.bib", "@article{x}")
	require.NoError(t, err)

	result, err := env.handler.Handle(ctx, "resources/list", nil)
	require.NoError(t, err)
	list, ok := result.(*mcp.ListResourcesResult)
	require.True(t, ok)

	// metadata + 2 documents + history + compilation + 2 templates
	require.Len(t, list.Resources, 7)

	// Every enumerated URI must be readable
	for _, res := range list.Resources {
		readResult, err := env.handler.Handle(ctx, "resources/read", rawParams(t, map[string]string{"uri": res.URI}))
		require.NoError(t, err, "read failed for %s", res.URI)

		read, ok := readResult.(*mcp.ReadResourceResult)
		require.True(t, ok)
		require.Len(t, read.Contents, 1)
		require.Equal(t, res.URI, read.Contents[0].URI)
		require.Equal(t, res.MimeType, read.Contents[0].MimeType)
	}
}

func TestReadRoundTripsPercentFilename(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	proj, err := env.projects.Create(ctx, "Odd Names", project.TypeArticle, "")
	require.NoError(t, err)
	_, err = env.documents.Create(ctx, proj.ID, "50%.tex", "\\section{Half}")
	require.NoError(t, err)

	result, err := env.handler.Handle(ctx, "resources/list", nil)
	require.NoError(t, err)
	list := result.(*mcp.ListResourcesResult)

	var docURI string
	for _, res := range list.Resources {
		if res.Name == "Document: 50%.tex" {
			docURI = res.URI
		}
	}
	require.NotEmpty(t, docURI)
	require.Equal(t, "text/x-latex", mcp.MimeType(docURI))

	readResult, err := env.handler.Handle(ctx, "resources/read", rawParams(t, map[string]string{"uri": docURI}))
	require.NoError(t, err)
	read := readResult.(*mcp.ReadResourceResult)
	require.Equal(t, "\\section{Half}", read.Contents[0].Text)
}

func TestReadProjectMetadata(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	proj, err := env.projects.Create(ctx, "Meta Project", project.TypeReport, "")
	require.NoError(t, err)

	result, err := env.handler.Handle(ctx, "resources/read",
		rawParams(t, map[string]string{"uri": "overleaf-remote:///projects/" + proj.ID + "/metadata"}))
	require.NoError(t, err)

	read := result.(*mcp.ReadResourceResult)
	require.Equal(t, "application/json", read.Contents[0].MimeType)

	var metadata map[string]any
	require.NoError(t, json.Unmarshal([]byte(read.Contents[0].Text), &metadata))
	require.Equal(t, proj.ID, metadata["id"])
	require.Equal(t, "Meta Project", metadata["title"])
	require.Equal(t, float64(1), metadata["document_count"])
	require.Equal(t, []any{"main.tex"}, metadata["documents"])
}

func TestReadDocumentContent(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	proj, err := env.projects.Create(ctx, "Doc Project", project.TypeArticle, "")
	require.NoError(t, err)

	result, err := env.handler.Handle(ctx, "resources/read",
		rawParams(t, map[string]string{"uri": "overleaf-remote:///projects/" + proj.ID + "/documents/main.tex"}))
	require.NoError(t, err)

	read := result.(*mcp.ReadResourceResult)
	require.Equal(t, "text/x-latex", read.Contents[0].MimeType)
	require.Equal(t, "% Main document\n", read.Contents[0].Text)
}

func TestReadProjectHistory(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	proj, err := env.projects.Create(ctx, "History Project", project.TypeArticle, "")
	require.NoError(t, err)

	ok, err := env.documents.Update(ctx, proj.ID, "main.tex", "\\section{Intro}", "first pass")
	require.NoError(t, err)
	require.True(t, ok)

	result, err := env.handler.Handle(ctx, "resources/read",
		rawParams(t, map[string]string{"uri": "overleaf-remote:///projects/" + proj.ID + "/history"}))
	require.NoError(t, err)

	read := result.(*mcp.ReadResourceResult)
	var history struct {
		ProjectID string `json:"project_id"`
		Versions  []struct {
			Filename string `json:"filename"`
			Version  int    `json:"version"`
			Message  string `json:"message"`
		} `json:"versions"`
	}
	require.NoError(t, json.Unmarshal([]byte(read.Contents[0].Text), &history))
	require.Equal(t, proj.ID, history.ProjectID)
	require.Len(t, history.Versions, 1)
	require.Equal(t, "main.tex", history.Versions[0].Filename)
	require.Equal(t, 1, history.Versions[0].Version)
	require.Equal(t, "first pass", history.Versions[0].Message)
}

func TestReadCompilationStatusNotSynced(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	proj, err := env.projects.Create(ctx, "Unsynced", project.TypeArticle, "")
	require.NoError(t, err)

	result, err := env.handler.Handle(ctx, "resources/read",
		rawParams(t, map[string]string{"uri": "overleaf-remote:///projects/" + proj.ID + "/compilation"}))
	require.NoError(t, err)

	read := result.(*mcp.ReadResourceResult)
	var status map[string]string
	require.NoError(t, json.Unmarshal([]byte(read.Contents[0].Text), &status))
	require.Equal(t, "not_synced", status["status"])
}

func TestReadTemplate(t *testing.T) {
	env := newTestEnv(t, false)

	result, err := env.handler.Handle(context.Background(), "resources/read",
		rawParams(t, map[string]string{"uri": "overleaf-remote:///templates/article_basic"}))
	require.NoError(t, err)

	read := result.(*mcp.ReadResourceResult)
	require.Equal(t, "text/x-latex", read.Contents[0].MimeType)
	require.Contains(t, read.Contents[0].Text, "\\documentclass{article}")
}

func TestReadRejectsBadURIs(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	for _, uri := range []string{
		"http:///projects/p1/metadata",
		"overleaf-remote:///unknown/p1",
		"overleaf-remote:///projects",
		"overleaf-remote:///projects/p1",
		"overleaf-remote:///templates/missing",
	} {
		_, err := env.handler.Handle(ctx, "resources/read", rawParams(t, map[string]string{"uri": uri}))
		require.Error(t, err, "expected error for %s", uri)
	}
}

func TestMimeType(t *testing.T) {
	cases := map[string]string{
		"overleaf-remote:///projects/p1/documents/main.tex":  "text/x-latex",
		"overleaf-remote:///projects/p1/documents/refs.bib":  "text/x-bibtex",
		"overleaf-remote:///projects/p1/documents/notes.md":  "text/markdown",
		"overleaf-remote:///projects/p1/documents/out.pdf":   "application/pdf",
		"overleaf-remote:///projects/p1/documents/fig.png":   "image/png",
		"overleaf-remote:///projects/p1/documents/unknown":   "text/plain",
		"overleaf-remote:///projects/p1/metadata":            "application/json",
		"overleaf-remote:///projects/p1/history":             "application/json",
		"overleaf-remote:///templates/article_basic":         "text/x-latex",
		"://not a uri":                                       "text/plain",
	}
	for uri, want := range cases {
		require.Equal(t, want, mcp.MimeType(uri), "uri %s", uri)
	}
}
