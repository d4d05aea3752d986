package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Dispatch Metrics
	DispatchTotal        *prometheus.CounterVec
	DispatchDuration     prometheus.Histogram
	DuplicateHits        prometheus.Counter
	SuppressionBlocks    prometheus.Counter
	MessageParts         prometheus.Histogram
	DeliveryErrorsByCode *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatcher_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dispatcher_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "dispatcher_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		DispatchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatcher_dispatch_total",
				Help: "Total number of dispatch calls by outcome",
			},
			[]string{"outcome"},
		),
		DispatchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dispatcher_dispatch_duration_seconds",
				Help:    "Duration of dispatch calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		DuplicateHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dispatcher_duplicate_hits_total",
				Help: "Total number of dispatch calls short-circuited by the idempotency key",
			},
		),
		SuppressionBlocks: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dispatcher_suppression_blocks_total",
				Help: "Total number of dispatch calls blocked by the suppression list",
			},
		),
		MessageParts: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dispatcher_message_parts",
				Help:    "Billable part count of rendered messages",
				Buckets: []float64{1, 2, 3, 4, 5, 10},
			},
		),
		DeliveryErrorsByCode: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatcher_delivery_errors_total",
				Help: "Total number of provider delivery failures by error code",
			},
			[]string{"code"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordDispatch(outcome string, duration time.Duration) {
	m.DispatchTotal.WithLabelValues(outcome).Inc()
	m.DispatchDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordDuplicateHit() {
	m.DuplicateHits.Inc()
}

func (m *Metrics) RecordSuppressionBlock() {
	m.SuppressionBlocks.Inc()
}

func (m *Metrics) RecordMessageParts(parts int) {
	m.MessageParts.Observe(float64(parts))
}

func (m *Metrics) RecordDeliveryError(code string) {
	m.DeliveryErrorsByCode.WithLabelValues(code).Inc()
}
