package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/texkit/overleaf-mcp/internal/repository"
)

func TestTemplateList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTemplateRepository(db)

	templates, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 2)

	// Ordered by name
	require.Equal(t, "Basic Article", templates[0].Name)
	require.Equal(t, "Basic Report", templates[1].Name)

	// Listings omit content
	require.Empty(t, templates[0].Content)
}

func TestTemplateGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTemplateRepository(db)

	tmpl, err := repo.Get(context.Background(), "article_basic")
	require.NoError(t, err)
	require.Equal(t, "Basic Article", tmpl.Name)
	require.Equal(t, "article", tmpl.DocumentType)
	require.Contains(t, tmpl.Content, "\\documentclass{article}")
}

func TestTemplateGetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTemplateRepository(db)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
