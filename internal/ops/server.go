// Package ops provides the operational HTTP endpoint for the pulsegate
// binaries: liveness and a Prometheus metrics scrape target. It carries no
// application API; the product surface of this system is the gateway
// connection, not HTTP.
package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pulsegate/internal/config"
	"pulsegate/internal/types"
)

// shutdownTimeout bounds graceful shutdown of the ops listener.
const shutdownTimeout = 5 * time.Second

// HealthProbe reports whether a subsystem is currently operational. The
// gateway session registers one so /healthz reflects connection state.
type HealthProbe interface {
	// Name returns a human-readable identifier for the probe.
	Name() string

	// Healthy reports the subsystem's current state.
	Healthy() bool
}

// Server is the ops HTTP server.
type Server struct {
	cfg    config.OpsConfig
	logger types.Logger
	probes []HealthProbe
	router *chi.Mux
}

// NewServer builds the ops server with its routes mounted.
func NewServer(cfg config.OpsConfig, logger types.Logger, probes ...HealthProbe) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		probes: probes,
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.Recoverer)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return s
}

// Handler returns the http.Handler for the router. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// componentStatus is one subsystem's health state in the response body.
type componentStatus struct {
	Status string `json:"status"`
}

// healthResponse is the JSON body of /healthz.
type healthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components,omitempty"`
}

// handleHealth reports 200 when every registered probe is healthy and 503
// otherwise. With no probes registered it reports healthy, which keeps the
// endpoint useful during startup before the session is wired in.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "healthy"}
	status := http.StatusOK

	if len(s.probes) > 0 {
		resp.Components = make(map[string]componentStatus, len(s.probes))
		for _, probe := range s.probes {
			if probe.Healthy() {
				resp.Components[probe.Name()] = componentStatus{Status: "healthy"}
				continue
			}
			resp.Components[probe.Name()] = componentStatus{Status: "unhealthy"}
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// Run serves the ops endpoint until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("ops endpoint listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
