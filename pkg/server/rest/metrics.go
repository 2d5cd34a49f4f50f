package rest

import (
	"net/http"
	"strconv"
	"time"

	"lintang/roadgraph/pkg/engine/routingalgorithm"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	searches      *prometheus.CounterVec
	settledNodes  *prometheus.HistogramVec
	pathCacheHits *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roadgraph_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roadgraph_http_request_duration_seconds",
			Help:    "HTTP request duration by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roadgraph_shortest_path_queries_total",
			Help: "Shortest path queries by algorithm and outcome",
		}, []string{"algorithm", "result"}),
		settledNodes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roadgraph_shortest_path_settled_nodes",
			Help:    "Nodes expanded per shortest path query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		pathCacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roadgraph_path_cache_lookups_total",
			Help: "A* queries completed from the path cache (hit) or by a full search (miss)",
		}, []string{"result"}),
	}
}

func (m *Metrics) ObserveSearch(algorithm string, stats routingalgorithm.Stats) {
	m.searches.WithLabelValues(algorithm, "found").Inc()
	m.settledNodes.WithLabelValues(algorithm).Observe(float64(stats.Settled))
	if algorithm != "astar" {
		return
	}
	if stats.CacheHit {
		m.pathCacheHits.WithLabelValues("hit").Inc()
	} else {
		m.pathCacheHits.WithLabelValues("miss").Inc()
	}
}

func (m *Metrics) ObserveSearchError(algorithm string) {
	m.searches.WithLabelValues(algorithm, "error").Inc()
}

// PromeHttpMiddleware records request counts and latency per chi route pattern.
func PromeHttpMiddleware(m *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := "unknown"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
