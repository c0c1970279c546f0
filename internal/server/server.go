// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
	"mergington-activities/internal/handlers/listactivities"
	"mergington-activities/internal/handlers/signup"
	"mergington-activities/internal/handlers/unregister"
	"mergington-activities/internal/notifications"
	"mergington-activities/internal/registry"
)

// Server owns the HTTP surface: the four registry operations, static
// assets, and the health/metrics endpoints.
type Server struct {
	cfg     *config.Config
	logger  logger.Logger
	tracing *observability.Tracing
	obs     *observability.Observability
	handler http.Handler
	httpSrv *http.Server
}

func New(
	cfg *config.Config,
	reg *registry.Registry,
	notifier notifications.Notifier,
	log logger.Logger,
	obs *observability.Observability,
	tracing *observability.Tracing,
) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  log,
		tracing: tracing,
		obs:     obs,
	}
	s.handler = s.withMiddleware(s.buildMux(reg, notifier))
	return s
}

func (s *Server) buildMux(reg *registry.Registry, notifier notifications.Notifier) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)

	if hc := s.cfg.Handlers[listactivities.HandlerName]; hc.Enabled {
		h := listactivities.NewHandler(
			&listactivities.Config{Timeout: time.Duration(hc.Timeout) * time.Millisecond},
			reg, s.logger,
		)
		mux.HandleFunc("GET /activities", h.Handle)
	}

	if hc := s.cfg.Handlers[signup.HandlerName]; hc.Enabled {
		h := signup.NewHandler(
			&signup.Config{Timeout: time.Duration(hc.Timeout) * time.Millisecond},
			reg, notifier, s.logger,
		)
		mux.HandleFunc("POST /activities/{activity_name}/signup", h.Handle)
	}

	if hc := s.cfg.Handlers[unregister.HandlerName]; hc.Enabled {
		h := unregister.NewHandler(
			&unregister.Config{Timeout: time.Duration(hc.Timeout) * time.Millisecond},
			reg, s.logger,
		)
		mux.HandleFunc("DELETE /activities/{activity_name}/unregister", h.Handle)
	}

	mux.Handle("GET /static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir(s.cfg.Server.StaticDir))))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// handleRoot redirects the base path to the landing page.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// Handler returns the fully wired handler chain, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.httpSrv = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.handler,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeout) * time.Millisecond,
	}

	s.logger.Info("HTTP server listening", map[string]interface{}{
		"addr": s.cfg.Server.Addr(),
	})

	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
