// Package server is the campus map HTTP server: the JSON API the viewer
// talks to, the HTML page, the standalone export and the live layer stream.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"campusmap/internal/catalog"
)

type Config struct {
	Addr     string
	AllowAll bool // allow all CORS origins (dev mode)
}

type Server struct {
	cfg        Config
	repo       catalog.Repository
	filters    *catalog.FilterState
	hub        *Hub
	upgrader   *websocket.Upgrader
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

func New(cfg Config, repo catalog.Repository, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		repo:     repo,
		filters:  catalog.NewFilterState(),
		hub:      NewHub(logger),
		upgrader: newUpgrader(cfg.AllowAll),
		logger:   logger,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The layer stream outlives any request timeout.
	r.Get("/ws/layer", s.handleLayerStream)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		RegisterRoutes(r, s)
	})

	return r
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Filters is the server-side category filter.
func (s *Server) Filters() *catalog.FilterState { return s.filters }

// Start serves until Shutdown. After Shutdown it returns http.ErrServerClosed,
// even when Shutdown ran first.
func (s *Server) Start() error {
	s.logger.Info("campus map server listening", zap.String("addr", s.cfg.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown closes open layer streams and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}
