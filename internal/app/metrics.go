package app

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the collectors registered on reg.
func MetricsHandler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return mux
}

// ServeMetrics starts a metrics server in the background. The returned
// server should be shut down on exit.
func ServeMetrics(addr string, reg *prometheus.Registry, log *slog.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           MetricsHandler(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "error", err)
		}
	}()
	return srv
}
