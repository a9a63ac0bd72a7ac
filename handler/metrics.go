package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the default registry, API error counters included.
// It writes the Prometheus text format directly instead of going through the
// JSON error pipeline.
type MetricsHandler struct {
	handler http.Handler
}

func NewMetricsHandler() MetricsHandler {
	return MetricsHandler{
		handler: promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{}),
	}
}

func (h MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}
