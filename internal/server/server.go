// Package server provides the HTTP API for certificate extraction.
package server

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pajakio/bupot-extract/internal/config"
	"github.com/pajakio/bupot-extract/internal/extract"
	"go.uber.org/zap"
)

// Server is the HTTP server for the extraction API.
type Server struct {
	service *extract.Service
	config  *config.Config
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(service *extract.Service, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		service: service,
		config:  cfg,
		logger:  logger,
	}
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAPIKey)
		r.Post("/api/v1/extract", s.handleExtractText)
		r.Post("/api/v1/extract/file", s.handleExtractFile)
		r.Post("/api/v1/validate/file", s.handleValidateFile)
		r.Get("/api/v1/info", s.handleInfo)
	})

	return r
}

// requireAPIKey rejects requests whose X-API-Key header does not match the
// configured key. An empty configured key disables the check.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.APIKey != "" {
			key := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(key), []byte(s.config.APIKey)) != 1 {
				s.respondError(w, http.StatusUnauthorized, "invalid or missing API key")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.config.Address(),
		Handler: s.router(),
	}
	s.logger.Info("Starting server", zap.String("addr", s.config.Address()))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
