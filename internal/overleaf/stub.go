package overleaf

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/texkit/overleaf-mcp/internal/domain/document"
	"github.com/texkit/overleaf-mcp/internal/domain/project"
)

// StubService simulates the Overleaf backend. It is authenticated when
// credentials are configured and fabricates stable-looking identifiers and
// compile results so the rest of the system can be exercised end to end.
type StubService struct {
	email    string
	password string
	logger   *slog.Logger
}

// NewStubService creates a stub backend. Authentication is assumed when both
// credentials are present.
func NewStubService(email, password string, logger *slog.Logger) *StubService {
	return &StubService{email: email, password: password, logger: logger}
}

// Authenticated reports whether both credentials are present.
func (s *StubService) Authenticated() bool {
	return s.email != "" && s.password != ""
}

// IsAvailable always reports true for the stub.
func (s *StubService) IsAvailable() bool { return true }

// Sync returns the project's existing remote id when present, otherwise mints
// a new one. Without credentials it returns an empty id.
func (s *StubService) Sync(ctx context.Context, proj *project.Project, docs []document.Info) (string, error) {
	if !s.Authenticated() {
		return "", nil
	}
	if proj.OverleafID != "" {
		s.logger.Info("reusing overleaf project", "project_id", proj.ID, "overleaf_id", proj.OverleafID)
		return proj.OverleafID, nil
	}
	id := fmt.Sprintf("overleaf_project_%d", time.Now().Unix())
	s.logger.Info("synced project", "project_id", proj.ID, "overleaf_id", id, "documents", len(docs))
	return id, nil
}

// Compile fabricates a successful compile when authenticated.
func (s *StubService) Compile(ctx context.Context, overleafID string) (*CompileResult, error) {
	if !s.Authenticated() {
		return &CompileResult{
			Success:  false,
			Error:    "Not authenticated with Overleaf",
			Warnings: []string{},
			Errors:   []string{},
		}, nil
	}
	return &CompileResult{
		Success:  true,
		PDFURL:   fmt.Sprintf("https://www.overleaf.com/project/%s/output.pdf", overleafID),
		Log:      "Compilation successful",
		Warnings: []string{},
		Errors:   []string{},
	}, nil
}

// Status reports the last compile as successful.
func (s *StubService) Status(ctx context.Context, overleafID string) (*CompilationStatus, error) {
	return &CompilationStatus{
		Status:       "success",
		LastCompiled: time.Now().UTC().Format(time.RFC3339),
		PDFAvailable: true,
		LogAvailable: true,
	}, nil
}
