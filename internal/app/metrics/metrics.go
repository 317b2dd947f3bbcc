package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "printshop"

type Metrics struct {
	Requests    *prometheus.CounterVec
	LatencyMS   *prometheus.HistogramVec
	Orders      *prometheus.CounterVec
	OrderValue  *prometheus.CounterVec
	Uploads     *prometheus.CounterVec
	UploadBytes *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the collectors on their own registry.
func New() *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
		Orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_total",
			Help:      "Orders stored, by service type.",
		}, []string{"service_type"}),
		OrderValue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_value_rupees_total",
			Help:      "Sum of order totals in rupees, by service type.",
		}, []string{"service_type"}),
		Uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Files uploaded, by order type tag.",
		}, []string{"order_type"}),
		UploadBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_bytes_total",
			Help:      "Bytes uploaded, by order type tag.",
		}, []string{"order_type"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(m.Requests, m.LatencyMS, m.Orders, m.OrderValue, m.Uploads, m.UploadBytes)
	return m
}

func (m *Metrics) ObserveOrder(serviceType string, total float64) {
	m.Orders.WithLabelValues(serviceType).Inc()
	m.OrderValue.WithLabelValues(serviceType).Add(total)
}

func (m *Metrics) ObserveUpload(orderType string, size int64) {
	m.Uploads.WithLabelValues(orderType).Inc()
	m.UploadBytes.WithLabelValues(orderType).Add(float64(size))
}

// Middleware counts requests per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
