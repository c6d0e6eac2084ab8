package apiclient

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type clientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	logouts  prometheus.Counter
}

func newClientMetrics(reg prometheus.Registerer) *clientMetrics {
	m := &clientMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_api_requests_total",
			Help: "Outbound admin API requests by method and status class.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_api_request_duration_seconds",
			Help:    "Outbound admin API request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "admin_api_forced_logouts_total",
			Help: "Sessions cleared after a 401 on a non-login endpoint.",
		}),
	}
	if reg == nil {
		return m
	}
	m.requests = register(reg, m.requests)
	m.duration = register(reg, m.duration)
	m.logouts = register(reg, m.logouts)
	return m
}

// register returns the already registered collector when another client
// registered the same metric first.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

func statusClass(status int) string {
	switch {
	case status == 0:
		return "error"
	case status == 401:
		return "401"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
