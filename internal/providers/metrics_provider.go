package providers

import (
	"dialogd/internal/services"
	"dialogd/internal/structures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveGenerationDuration(duration time.Duration)
	ObserveDialogShape(utterances int, duration float64)
}

type MetricsProvider struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	generationDuration prometheus.Histogram
	dialogUtterances   prometheus.Histogram
	dialogDuration     prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveGenerationDuration(duration time.Duration) {
	m.generationDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) ObserveDialogShape(utterances int, duration float64) {
	m.dialogUtterances.Observe(float64(utterances))
	m.dialogDuration.Observe(duration)
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, service services.DialogServiceInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dialogd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dialogd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dialogd_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dialogd_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		generationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dialogd_generation_duration_seconds",
			Help:    "Time spent generating a fake dialog",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),

		dialogUtterances: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dialogd_dialog_utterances",
			Help:    "Number of utterances per generated dialog",
			Buckets: prometheus.LinearBuckets(2, 1, 6),
		}),

		dialogDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dialogd_dialog_duration_seconds",
			Help:    "Duration of generated dialogs",
			Buckets: prometheus.LinearBuckets(60, 10, 7),
		}),
	}

	promauto.NewCounterFunc(prometheus.CounterOpts{
		Name: "dialogd_generated_dialogs_total",
		Help: "Total number of generated dialogs",
	}, func() float64 {
		return float64(service.GetGeneratedCount())
	})

	promauto.NewCounterFunc(prometheus.CounterOpts{
		Name: "dialogd_rotations_total",
		Help: "Total number of current dialog rotations",
	}, func() float64 {
		return float64(service.GetRotationCount())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveGenerationDuration(_ time.Duration)        {}
func (n *noopMetrics) ObserveDialogShape(_ int, _ float64)              {}
