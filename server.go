package transitplanner

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"
)

// Server exposes a Planner over HTTP
type Server struct {
	planner *Planner
	server  *http.Server
}

// NewServer creates a server for p listening on port
func NewServer(p *Planner, port int) *Server {
	s := &Server{planner: p}
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Router returns the request router with every API route registered
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)
	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes adds the API routes to router
func (s *Server) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/stops", s.handleStops).Methods(http.MethodGet)
	api.HandleFunc("/paths", s.handlePaths).Methods(http.MethodGet)
	api.HandleFunc("/shortest", s.handleShortest).Methods(http.MethodGet)
	api.HandleFunc("/transfers", s.handleTransfers).Methods(http.MethodGet)
	api.HandleFunc("/through", s.handleThrough).Methods(http.MethodGet)
}

// Start serves in the background
func (s *Server) Start() {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()
	slog.Info("server listening", "addr", s.server.Addr)
}

// Shutdown stops the server, waiting for in-flight requests until ctx is done
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then shuts down
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	slog.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "err", err)
	} else {
		slog.Info("server shut down successfully")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", rec.status,
			"took", time.Since(start),
		)
	})
}
