package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the site's collectors on a private registry.
//
//   - portfolio_toggles_total{action} - card expand/collapse clicks
//   - portfolio_project_views_total{layout} - projects section renders
//   - portfolio_http_request_duration_seconds{route,method,status}
type Metrics struct {
	Registry        *prometheus.Registry
	Toggles         *prometheus.CounterVec
	ProjectViews    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Toggles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_toggles_total",
				Help: "Project card toggles by resulting action",
			},
			[]string{"action"}, // "expand" or "collapse"
		),
		ProjectViews: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_project_views_total",
				Help: "Projects section renders by layout",
			},
			[]string{"layout"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
	}
}
