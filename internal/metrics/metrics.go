// Package metrics records dashboard activity as prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "worldcup_dashboard"

// Recorder owns a private registry so that tests and multiple servers do not
// collide on the global one.
type Recorder struct {
	registry        *prometheus.Registry
	finals          prometheus.Gauge
	countries       prometheus.Gauge
	loadSeconds     prometheus.Gauge
	lookups         *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with all collectors registered
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		finals: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "finals_records",
			Help:      "Finals records loaded at startup.",
		}),
		countries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "winning_countries",
			Help:      "Distinct countries with at least one title.",
		}),
		loadSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time taken to fetch and aggregate the finals table.",
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_invocations_total",
			Help:      "Update handler invocations by handler and outcome.",
		}, []string{"handler", "outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	r.registry.MustRegister(
		r.finals,
		r.countries,
		r.loadSeconds,
		r.lookups,
		r.requests,
		r.requestDuration,
		collectors.NewGoCollector(),
	)

	return r
}

// Handler serves the registry in the prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveLoad records the outcome of the startup load
func (r *Recorder) ObserveLoad(records, countries int, took time.Duration) {
	r.finals.Set(float64(records))
	r.countries.Set(float64(countries))
	r.loadSeconds.Set(took.Seconds())
}

// ObserveLookup counts one handler invocation. found is false for lookup misses.
func (r *Recorder) ObserveLookup(handler string, found bool) {
	outcome := "hit"
	if !found {
		outcome = "miss"
	}
	r.lookups.WithLabelValues(handler, outcome).Inc()
}

// ObserveRequest records one served HTTP request
func (r *Recorder) ObserveRequest(route string, status int, took time.Duration) {
	r.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(route).Observe(took.Seconds())
}
