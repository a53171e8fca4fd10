package metrics

import (
	"net/http"
	"strconv"
	"time"

	"print3d_quote/internal/domain/entities"
	"print3d_quote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "print3d_quote"

// UploadMetrics counts staged upload outcomes per file.
type UploadMetrics struct {
	Files        *prometheus.CounterVec
	BytesSent    prometheus.Counter
	SizeMismatch prometheus.Counter
}

var _ interfaces.IUploadMetrics = (*UploadMetrics)(nil)

func NewUploadMetrics(reg prometheus.Registerer) *UploadMetrics {
	m := &UploadMetrics{
		Files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upload",
			Name:      "files_total",
			Help:      "Uploaded files by outcome, last reached step and error kind.",
		}, []string{"outcome", "step", "error_kind"}),
		BytesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upload",
			Name:      "bytes_sent_total",
			Help:      "Bytes transferred to upload slots.",
		}),
		SizeMismatch: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upload",
			Name:      "size_mismatch_total",
			Help:      "Registered files whose reported size differs from the bytes sent.",
		}),
	}
	reg.MustRegister(m.Files, m.BytesSent, m.SizeMismatch)
	return m
}

func (m *UploadMetrics) ObserveFile(r entities.UploadFileResult) {
	outcome := "failure"
	if r.Success {
		outcome = "success"
	}
	m.Files.WithLabelValues(outcome, string(r.Step), string(r.ErrorKind)).Inc()
	if r.BytesSent > 0 {
		m.BytesSent.Add(float64(r.BytesSent))
	}
	if r.SizeMismatch {
		m.SizeMismatch.Inc()
	}
}

// HTTPMetrics records request counts and latency per route.
type HTTPMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 15000},
		}, []string{"route"}),
	}
	reg.MustRegister(m.Requests, m.LatencyMS)
	return m
}

func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
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

func Handler() http.Handler {
	return promhttp.Handler()
}
