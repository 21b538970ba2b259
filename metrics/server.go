package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the recorder measurements on /metrics and a liveness probe on /health
type Server struct {
	httpServer *http.Server
	startedAt  time.Time
}

func NewServer(address string, recorder *PrometheusRecorder) *Server {
	server := &Server{startedAt: time.Now().UTC()}
	server.httpServer = &http.Server{
		Addr:              address,
		Handler:           server.Routes(recorder),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server
}

// Routes sets up the metrics routes
func (s *Server) Routes(recorder *PrometheusRecorder) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", s.GetHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(recorder.GetRegistry(), promhttp.HandlerOpts{}))
	return r
}

// GetHealth returns basic health status
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":     "ok",
		"started_at": s.startedAt.Format(time.RFC3339),
	})
}

// Start serves in background until Shutdown is called
func (s *Server) Start() {
	go func() {
		log.Infof("[component: metrics][method: Start][status: OK] serving metrics on %s", s.httpServer.Addr)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("[component: metrics][method: Start][status: ERROR] metrics server stopped: %s", err)
		}
	}()
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down metrics server: %w", err)
	}
	return nil
}
