// Package mcp implements the protocol surface: method dispatch, resource
// addressing, the tool catalog, and the prompt catalog.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/texkit/overleaf-mcp/internal/domain/document"
	"github.com/texkit/overleaf-mcp/internal/domain/project"
	"github.com/texkit/overleaf-mcp/internal/domain/template"
	"github.com/texkit/overleaf-mcp/internal/overleaf"
)

const protocolVersion = "1.1.0"

// ProjectService is the project surface the handler needs.
type ProjectService interface {
	Create(ctx context.Context, title string, docType project.DocumentType, templateID string) (*project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
	SetOverleafID(ctx context.Context, id, overleafID string) error
}

// DocumentService is the document surface the handler needs.
type DocumentService interface {
	Create(ctx context.Context, projectID, filename, content string) (*document.Document, error)
	Get(ctx context.Context, projectID, filename string) (*document.Document, error)
	List(ctx context.Context, projectID string) ([]document.Info, error)
	Update(ctx context.Context, projectID, filename, content, commitMessage string) (bool, error)
	History(ctx context.Context, projectID string) ([]document.HistoryEntry, error)
}

// TemplateService is the template surface the handler needs.
type TemplateService interface {
	List(ctx context.Context) ([]template.Template, error)
	Get(ctx context.Context, id string) (*template.Template, error)
}

// Handler routes protocol methods to their implementations.
type Handler struct {
	projects   ProjectService
	documents  DocumentService
	templates  TemplateService
	overleaf   overleaf.Service
	resources  *Resources
	dispatcher *Dispatcher
	prompts    *Prompts
	logLevel   *slog.LevelVar
	logger     *slog.Logger
	serverInfo ServerInfo
	started    time.Time
}

// NewHandler wires the protocol handler to the domain services.
func NewHandler(projects ProjectService, documents DocumentService, templates TemplateService, ol overleaf.Service, logLevel *slog.LevelVar, logger *slog.Logger) *Handler {
	h := &Handler{
		projects:  projects,
		documents: documents,
		templates: templates,
		overleaf:  ol,
		logLevel:  logLevel,
		logger:    logger,
		serverInfo: ServerInfo{
			Name:        "overleaf-mcp",
			Version:     "1.0.0",
			Description: "Remote MCP server for Overleaf integration",
		},
		started: time.Now().UTC(),
	}
	h.resources = NewResources(projects, documents, templates, ol, logger)
	h.dispatcher = NewDispatcher(projects, documents, templates, ol, NewTemplateGenerator(), logger)
	h.prompts = NewPrompts()
	return h
}

// Handle executes one protocol method. Unknown methods return
// ErrMethodNotFound; any other error is an internal handler failure.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "initialize":
		return h.initialize(params)
	case "resources/list":
		return h.resources.List(ctx)
	case "resources/read":
		return h.readResource(ctx, params)
	case "resources/subscribe":
		return h.subscribe(params)
	case "resources/unsubscribe":
		return h.unsubscribe(params)
	case "tools/list":
		return &ListToolsResult{Tools: ToolCatalog()}, nil
	case "tools/call":
		return h.callTool(ctx, params)
	case "prompts/list":
		return &ListPromptsResult{Prompts: h.prompts.List()}, nil
	case "prompts/get":
		return h.getPrompt(params)
	case "logging/setLevel":
		return h.setLogLevel(params)
	case "ping":
		return map[string]any{
			"status":    "pong",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}
}

// Capabilities reports the handshake payload for HTTP discovery.
func (h *Handler) Capabilities() any {
	return h.capabilities()
}

// Status reports runtime health for HTTP discovery.
func (h *Handler) Status() any {
	return map[string]any{
		"status":         "running",
		"uptime_seconds": time.Since(h.started).Seconds(),
		"start_time":     h.started.Format(time.RFC3339),
		"config": map[string]any{
			"overleaf_configured": h.overleaf.Authenticated(),
			"log_level":           h.logLevel.Level().String(),
		},
	}
}

func (h *Handler) capabilities() *InitializeResult {
	return &InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities: Capabilities{
			Resources: &ResourcesCapability{Subscribe: true, ListChanged: true},
			Tools:     &ToolsCapability{ListChanged: true},
			Prompts:   &PromptsCapability{ListChanged: true},
			Logging:   map[string]any{},
		},
		ServerInfo: h.serverInfo,
	}
}

func (h *Handler) initialize(params json.RawMessage) (any, error) {
	var p struct {
		ClientInfo struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"clientInfo"`
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid initialize params: %w", err)
		}
	}
	h.logger.Info("client initialized", "client", p.ClientInfo.Name, "client_version", p.ClientInfo.Version)
	return h.capabilities(), nil
}

func (h *Handler) readResource(ctx context.Context, params json.RawMessage) (any, error) {
	uri, err := uriParam(params)
	if err != nil {
		return nil, err
	}
	text, err := h.resources.Read(ctx, uri)
	if err != nil {
		return nil, err
	}
	return &ReadResourceResult{Contents: []ResourceContents{{
		URI:      uri,
		MimeType: MimeType(uri),
		Text:     text,
	}}}, nil
}

func (h *Handler) subscribe(params json.RawMessage) (any, error) {
	uri, err := uriParam(params)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("resource subscribed", "uri", uri)
	return map[string]any{"subscribed": true}, nil
}

func (h *Handler) unsubscribe(params json.RawMessage) (any, error) {
	uri, err := uriParam(params)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("resource unsubscribed", "uri", uri)
	return map[string]any{"unsubscribed": true}, nil
}

func (h *Handler) callTool(ctx context.Context, params json.RawMessage) (any, error) {
	var p struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid tools/call params: %w", err)
		}
	}
	if p.Name == "" {
		return nil, fmt.Errorf("tool name is required")
	}
	if p.Arguments == nil {
		p.Arguments = map[string]any{}
	}
	return &CallToolResult{Content: h.dispatcher.Call(ctx, p.Name, p.Arguments)}, nil
}

func (h *Handler) getPrompt(params json.RawMessage) (any, error) {
	var p struct {
		Name      string            `json:"name"`
		Arguments map[string]string `json:"arguments"`
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid prompts/get params: %w", err)
		}
	}
	if p.Name == "" {
		return nil, fmt.Errorf("prompt name is required")
	}
	if p.Arguments == nil {
		p.Arguments = map[string]string{}
	}
	return h.prompts.Get(p.Name, p.Arguments), nil
}

func (h *Handler) setLogLevel(params json.RawMessage) (any, error) {
	var p struct {
		Level string `json:"level"`
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid logging/setLevel params: %w", err)
		}
	}
	if p.Level == "" {
		return nil, fmt.Errorf("log level is required")
	}

	level, err := parseLogLevel(p.Level)
	if err != nil {
		return nil, err
	}
	h.logLevel.Set(level)
	h.logger.Info("log level changed", "level", p.Level)
	return map[string]any{"level": p.Level}, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "notice":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	case "error", "critical":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

func uriParam(params json.RawMessage) (string, error) {
	var p struct {
		URI string `json:"uri"`
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return "", fmt.Errorf("invalid params: %w", err)
		}
	}
	if p.URI == "" {
		return "", fmt.Errorf("URI parameter is required")
	}
	return p.URI, nil
}
