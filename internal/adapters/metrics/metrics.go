// Package metrics holds the Prometheus collectors for the explorer.
// Every Metrics owns its registry so tests and multiple instances never
// collide on the global default registerer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for the upstream client, catalog and API.
type Metrics struct {
	Registry *prometheus.Registry

	// Upstream requests by endpoint and outcome ("ok", "not_found", "error")
	Upstream *prometheus.CounterVec

	// Detail cache lookups by result ("hit", "miss")
	DetailCache *prometheus.CounterVec

	// Records currently held by the catalog
	CatalogSize prometheus.Gauge

	// Catalog loads by origin ("cache", "upstream", "stale")
	CatalogRefresh *prometheus.CounterVec

	// Geometries currently loaded
	Geometries prometheus.Gauge

	// API handler latency by route and status code
	RequestDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with every collector registered on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Upstream: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wce_upstream_requests_total",
			Help: "Requests made to the country catalog service by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),

		DetailCache: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wce_detail_cache_total",
			Help: "Country detail cache lookups by result",
		}, []string{"result"}),

		CatalogSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "wce_catalog_countries",
			Help: "Number of country records in the loaded catalog",
		}),

		CatalogRefresh: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wce_catalog_loads_total",
			Help: "Catalog loads by origin",
		}, []string{"origin"}),

		Geometries: f.NewGauge(prometheus.GaugeOpts{
			Name: "wce_geometries",
			Help: "Number of map geometries loaded",
		}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wce_http_request_duration_seconds",
			Help:    "Duration of API requests by route and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "status"}),
	}
}

// IncUpstream records one upstream request outcome.
func (m *Metrics) IncUpstream(endpoint, outcome string) {
	if m != nil {
		m.Upstream.WithLabelValues(endpoint, outcome).Inc()
	}
}

// IncDetailCache records a detail cache hit or miss.
func (m *Metrics) IncDetailCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.DetailCache.WithLabelValues("hit").Inc()
	} else {
		m.DetailCache.WithLabelValues("miss").Inc()
	}
}

// SetCatalogSize records the current catalog size.
func (m *Metrics) SetCatalogSize(n int) {
	if m != nil {
		m.CatalogSize.Set(float64(n))
	}
}

// IncCatalogLoad records where a catalog load was served from.
func (m *Metrics) IncCatalogLoad(origin string) {
	if m != nil {
		m.CatalogRefresh.WithLabelValues(origin).Inc()
	}
}

// SetGeometries records the number of loaded geometries.
func (m *Metrics) SetGeometries(n int) {
	if m != nil {
		m.Geometries.Set(float64(n))
	}
}

// ObserveRequest records the latency of one API request.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, status).Observe(d.Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
