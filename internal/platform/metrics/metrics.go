package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	OrdersCreated    prometheus.Counter
	OrderFailures    *prometheus.CounterVec
	EstablishLatency prometheus.Histogram
	PublishFailures  prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "coffeeshop_orders_created_total",
			Help: "Total number of orders successfully created",
		}),
		OrderFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "coffeeshop_order_failures_total",
			Help: "Order creation failures by error code",
		}, []string{"code"}),
		EstablishLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "coffeeshop_establish_order_duration_ms",
			Help:    "End-to-end latency of order establishment in milliseconds",
			Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "coffeeshop_event_publish_failures_total",
			Help: "Domain event publish failures after a committed save",
		}),
	}
}

// Handler exposes the default registry for the metrics listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
