package endpoint

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Number of API errors rendered, partitioned by status code and method.",
	},
	[]string{"status", "method"},
)

func recordApiError(method string, status int) {
	apiErrorsTotal.WithLabelValues(strconv.Itoa(status), method).Inc()
}
