// Package metrics exposes the service's Prometheus collectors.
// Collectors are registered on a private registry rather than the global
// default one.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "logistics"

// Recorder holds the request and package collectors.
type Recorder struct {
	registry *prometheus.Registry

	// Labels: method, route, code
	requestsTotal *prometheus.CounterVec

	// Labels: method, route
	requestDuration *prometheus.HistogramVec

	// Labels: status
	packagesByStatus *prometheus.GaugeVec

	lastStatusRefresh prometheus.Gauge
}

// NewRecorder creates the collectors and registers them together with the Go
// runtime and process collectors.
func NewRecorder() (*Recorder, error) {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Number of HTTP requests handled, by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		packagesByStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "packages_by_status",
				Help:      "Number of stored packages in each lifecycle status",
			},
			[]string{"status"},
		),

		lastStatusRefresh: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "packages_by_status_last_refresh_timestamp_seconds",
				Help:      "Unix time of the last successful package status refresh",
			},
		),
	}

	cs := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requestsTotal,
		r.requestDuration,
		r.packagesByStatus,
		r.lastStatusRefresh,
	}
	for _, c := range cs {
		if err := r.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveRequest records one handled HTTP request.
func (r *Recorder) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	r.requestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// SetPackagesByStatus replaces the per-status package gauge.
// Statuses missing from counts are reset to zero.
func (r *Recorder) SetPackagesByStatus(counts map[string]int64, at time.Time) {
	r.packagesByStatus.Reset()
	for status, count := range counts {
		r.packagesByStatus.WithLabelValues(status).Set(float64(count))
	}
	r.lastStatusRefresh.Set(float64(at.Unix()))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
