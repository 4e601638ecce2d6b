package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/texkit/overleaf-mcp/internal/config"
	"github.com/texkit/overleaf-mcp/internal/domain/document"
	"github.com/texkit/overleaf-mcp/internal/domain/project"
	"github.com/texkit/overleaf-mcp/internal/domain/template"
	"github.com/texkit/overleaf-mcp/internal/mcp"
	"github.com/texkit/overleaf-mcp/internal/overleaf"
	"github.com/texkit/overleaf-mcp/internal/sqlite"
	"github.com/texkit/overleaf-mcp/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Server.Transport == "stdio" {
		logWriter = os.Stderr
	}

	logLevel := new(slog.LevelVar)
	logLevel.Set(parseLogLevel(cfg.Log.Level))
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := ensureDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		logger.Error("failed to prepare storage path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	projectRepo := sqlite.NewProjectRepository(db)
	documentRepo := sqlite.NewDocumentRepository(db)
	templateRepo := sqlite.NewTemplateRepository(db)

	templateSvc := template.NewService(templateRepo, logger)
	documentSvc := document.NewService(documentRepo, cfg.Storage.Path, logger)
	projectSvc := project.NewService(projectRepo, templateSvc, documentSvc, cfg.Storage.Path, logger)

	overleafSvc := overleaf.NewStubService(cfg.Overleaf.Email, cfg.Overleaf.Password, logger)

	handler := mcp.NewHandler(projectSvc, documentSvc, templateSvc, overleafSvc, logLevel, logger)

	if cfg.Server.Transport == "stdio" {
		runStdioMode(logger, handler)
	} else {
		runHTTPMode(logger, handler, cfg.Server.Host, cfg.Server.Port)
	}
}

func runStdioMode(logger *slog.Logger, handler transport.ProtocolHandler) {
	logger.Info("starting stdio transport")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	if err := transport.StdioLoop(ctx, handler, os.Stdin, os.Stdout, logger); err != nil && ctx.Err() == nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, handler transport.ProtocolHandler, host string, port int) {
	router := transport.NewRouter(handler, logger)

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
