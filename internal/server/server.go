package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ziadkadry99/synthesis/internal/boot"
	"github.com/ziadkadry99/synthesis/internal/content"
	"github.com/ziadkadry99/synthesis/internal/logging"
	"github.com/ziadkadry99/synthesis/internal/scheduler"
	"github.com/ziadkadry99/synthesis/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port        int
	AllowAll    bool   // allow all CORS origins (dev mode)
	Watch       bool   // reload ContentFile when it changes
	ContentFile string // optional YAML overlay for the built-in content
	DefaultSkin string // skin served at /{unknown}
	BaseURL     string
	Timing      boot.Timing
	AssetsDir   string // extra files served under /static/
}

// Server is the live preview of every skin.
type Server struct {
	cfg      Config
	log      *slog.Logger
	content  atomic.Pointer[content.Content]
	renderer *site.Renderer
	metrics  *metrics
	registry *prometheus.Registry
	router   chi.Router

	// sched backs every boot session; tests swap in a fake clock.
	sched scheduler.Scheduler

	mu         sync.Mutex
	sessions   map[*session]struct{}
	closing    bool
	httpServer *http.Server
	watcher    *watcher
}

// New creates a server serving c. A nil logger discards output.
func New(cfg Config, c *content.Content, log *slog.Logger) (*Server, error) {
	if c == nil {
		return nil, fmt.Errorf("server: no content")
	}
	if log == nil {
		log = logging.NewNop()
	}
	if cfg.Timing == (boot.Timing{}) {
		cfg.Timing = boot.DefaultTiming()
	}
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		log:      log,
		renderer: renderer,
		registry: reg,
		metrics:  newMetrics(reg),
		sched:    scheduler.Real{},
		sessions: make(map[*session]struct{}),
	}
	s.content.Store(c)
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/ws/boot", s.handleBoot)

	// The websocket route must stay outside the timeout.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Handle("/metrics", s.metricsHandler())
		s.registerRoutes(r)
	})

	return r
}

// requestLogger logs one line per request with the chi request id.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Content returns the content currently served.
func (s *Server) Content() *content.Content { return s.content.Load() }

// SetContent swaps the served content. Requests already in flight keep the
// value they started with.
func (s *Server) SetContent(c *content.Content) {
	if c != nil {
		s.content.Store(c)
	}
}

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)

	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	if s.cfg.Watch && s.cfg.ContentFile != "" {
		w, err := s.watchContent(s.cfg.ContentFile)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.watcher = w
		s.mu.Unlock()
	}

	s.log.Info("synthesis preview listening", "addr", addr)
	return srv.ListenAndServe()
}

// Shutdown stops every boot session, the content watcher and the HTTP
// server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	sessions := make([]*session, 0, len(s.sessions))
	for sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	srv, w := s.httpServer, s.watcher
	s.watcher = nil
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.stop(outcomeShutdown)
	}
	if w != nil {
		w.Close()
	}
	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}

// ActiveSessions returns the number of boot sessions in progress.
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
