// Package overleaf defines the integration surface for the Overleaf sync and
// compilation backend. The wire client is not implemented yet; StubService
// stands in with deterministic responses.
package overleaf

import (
	"context"

	"github.com/texkit/overleaf-mcp/internal/domain/document"
	"github.com/texkit/overleaf-mcp/internal/domain/project"
)

// CompileResult reports the outcome of one compilation request.
type CompileResult struct {
	Success  bool     `json:"success"`
	PDFURL   string   `json:"pdf_url,omitempty"`
	Log      string   `json:"log,omitempty"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// CompilationStatus describes the latest known compile state of a synced project.
type CompilationStatus struct {
	Status       string `json:"status"`
	LastCompiled string `json:"last_compiled"`
	PDFAvailable bool   `json:"pdf_available"`
	LogAvailable bool   `json:"log_available"`
}

// Service is the backend used for project sync and remote compilation.
type Service interface {
	// IsAvailable reports whether the backend is reachable at all.
	IsAvailable() bool

	// Authenticated reports whether credentials are configured for the
	// backend. Unauthenticated services still answer sync and compile
	// requests, with degraded results.
	Authenticated() bool

	// Sync pushes a project and its documents to the backend and returns
	// the remote project id. An empty id with a nil error means the
	// backend refused the sync (for example, missing credentials).
	Sync(ctx context.Context, proj *project.Project, docs []document.Info) (string, error)

	// Compile triggers a compilation of a previously synced project.
	Compile(ctx context.Context, overleafID string) (*CompileResult, error)

	// Status reports the latest compilation state of a synced project.
	Status(ctx context.Context, overleafID string) (*CompilationStatus, error)
}
