// Package server exposes the Sentry tool surface over the model context
// protocol, with stdio and HTTP transports.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/spo0nman/mcp-sentry/internal/config"
	"github.com/spo0nman/mcp-sentry/internal/sentry"
)

// Name and Version identify the MCP server to clients.
const (
	Name    = "mcp-sentry"
	Version = "0.1.0"
)

// Server wires the tool definitions to the Sentry API client. It holds no
// per-invocation state; concurrent tool calls need no coordination.
type Server struct {
	cfg    config.Config
	api    *sentry.Client
	mcp    *mcpserver.MCPServer
	logger zerolog.Logger
}

// New constructs a Server with all tools registered.
func New(cfg config.Config, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		api:    sentry.New(cfg.BaseURL, cfg.AuthToken, nil, logger),
		logger: logger,
	}
	s.mcp = mcpserver.NewMCPServer(Name, Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	s.registerTools()
	return s
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcp)
}

// Router exposes the HTTP transport: a health endpoint plus the streamable
// MCP handler, optionally gated behind a bearer token.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.With(s.auth).Handle("/mcp", mcpserver.NewStreamableHTTPServer(s.mcp))

	return r
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.MCPToken == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.cfg.MCPToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
