// Package metrics exposes Prometheus collectors for HTTP traffic and engine
// outcomes on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/conlang-backend/internal/domain"
)

const namespace = "conlang"

// Metrics holds every collector the application reports.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	pronunciations *prometheus.CounterVec
	declensions    *prometheus.CounterVec
	reportWords    prometheus.Counter
	reportDuration prometheus.Histogram
}

// New creates the collectors and registers them, plus the Go runtime and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		pronunciations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "pronunciations_total",
			Help:      "Pronounced words by guide kind and outcome.",
		}, []string{"kind", "outcome"}),
		declensions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "declensions_total",
			Help:      "Declined forms by source (override, rule, identity).",
		}, []string{"source"}),
		reportWords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "words_total",
			Help:      "Words processed by lexicon reports.",
		}),
		reportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "duration_seconds",
			Help:      "Wall time of lexicon reports.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.pronunciations,
		m.declensions,
		m.reportWords,
		m.reportDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one finished request. route is the matched mux
// pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordPronunciation counts one pronounced word.
func (m *Metrics) RecordPronunciation(kind domain.GuideKind, outcome domain.PronunciationOutcome) {
	m.pronunciations.WithLabelValues(kind.String(), outcome.String()).Inc()
}

// RecordDeclension counts one declined form.
func (m *Metrics) RecordDeclension(source domain.FormSource) {
	m.declensions.WithLabelValues(source.String()).Inc()
}

// ObserveReport records one finished lexicon report.
func (m *Metrics) ObserveReport(words int, d time.Duration) {
	m.reportWords.Add(float64(words))
	m.reportDuration.Observe(d.Seconds())
}
