// Package transport carries JSON-RPC requests over HTTP, SSE and stdio.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/texkit/overleaf-mcp/internal/mcp"
)

// ProtocolHandler dispatches protocol methods and exposes discovery payloads.
type ProtocolHandler interface {
	Handle(ctx context.Context, method string, params json.RawMessage) (any, error)
	Capabilities() any
	Status() any
}

// Server wires HTTP handlers.
type Server struct {
	handler ProtocolHandler
	logger  *slog.Logger
}

// NewRouter creates the HTTP router.
func NewRouter(handler ProtocolHandler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(LogRequests(logger))

	srv := &Server{handler: handler, logger: logger}

	r.Post("/jsonrpc", srv.handleJSONRPC)
	r.Get("/sse", srv.handleSSE)
	r.Post("/sse", srv.handleJSONRPC)
	r.Get("/health", srv.handleHealth)
	r.Get("/capabilities", srv.handleCapabilities)
	r.Get("/status", srv.handleStatus)

	return r
}

// LogRequests logs each HTTP request with its duration.
func LogRequests(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleCapabilities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.handler.Capabilities())
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.handler.Status())
}

func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, NewError(nil, ErrInternal, "Internal error: "+err.Error()))
		return
	}

	WriteResponse(w, Dispatch(r.Context(), s.handler, body))
}

// Dispatch runs one raw JSON-RPC payload through the handler and maps
// failures to protocol error responses. Shared by the HTTP and stdio loops.
func Dispatch(ctx context.Context, handler ProtocolHandler, payload []byte) Response {
	req, err := DecodeRequest(payload)
	if err != nil {
		return NewError(nil, ErrParseCode, "Parse error")
	}
	if err := req.Validate(); err != nil {
		return NewError(req.ID, ErrInvalidReq, "Invalid request")
	}

	result, err := handler.Handle(ctx, req.Method, req.Params)
	if err != nil {
		if errors.Is(err, mcp.ErrMethodNotFound) {
			return NewError(req.ID, ErrMethodNotFound, "Method not found: "+req.Method)
		}
		return NewError(req.ID, ErrInternal, "Internal error: "+err.Error())
	}
	return NewResult(req.ID, result)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(payload)
}
