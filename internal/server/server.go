// Package server provides the HTTP API for Hondana.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/hondana/internal/catalog"
	"github.com/hyperjump/hondana/internal/chat"
	"github.com/hyperjump/hondana/internal/config"
	"github.com/hyperjump/hondana/internal/recommend"
)

// Server is the HTTP server for the Hondana API.
type Server struct {
	catalog   *catalog.Service
	recommend *recommend.Service
	chat      *chat.Router
	config    *config.ServerConfig
	logger    *zap.Logger
	instance  string
	server    *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	catalogSvc *catalog.Service,
	recommendSvc *recommend.Service,
	chatRouter *chat.Router,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		catalog:   catalogSvc,
		recommend: recommendSvc,
		chat:      chatRouter,
		config:    cfg,
		logger:    logger,
		instance:  uuid.NewString(),
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/", s.handleListCategories)
	r.Get("/category/{category}", s.handleCategoryQuery)
	r.Post("/recommendations", s.handleRecommendations)
	r.Post("/api/chat", s.handleChat)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr), zap.String("instance", s.instance))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
