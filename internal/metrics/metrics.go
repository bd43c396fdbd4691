// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GRPCServerHandlingSeconds is a histogram for gRPC server request latencies
	GRPCServerHandlingSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_server_handling_seconds",
			Help:    "Histogram of response latency (seconds) of gRPC that had been application-level handled by the server.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "code"},
	)

	// InferenceLatencySeconds is a histogram for backend-only inference latency
	InferenceLatencySeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inference_latency_seconds",
			Help:    "Histogram of inference latency (seconds) excluding gRPC overhead.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	// InferenceInputElements tracks the flattened size of input tensors
	InferenceInputElements = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inference_input_elements",
			Help:    "Histogram of flattened input tensor element counts.",
			Buckets: []float64{1024, 4096, 16384, 65536, 150528, 262144, 602112, 1048576},
		},
	)

	// CacheHitsTotal counts inference results served from the result cache
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inference_cache_hits_total",
			Help: "Total number of inference results served from the cache.",
		},
	)

	// CacheMissesTotal counts inference calls that went to the backend
	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inference_cache_misses_total",
			Help: "Total number of inference calls not served from the cache.",
		},
	)

	// HealthStatus is a gauge indicating the health status of the service
	HealthStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "health_status",
			Help: "Health status of the service (1 = healthy, 0 = unhealthy).",
		},
	)
)

// RecordGRPCLatency records the latency of a gRPC method call
func RecordGRPCLatency(method, code string, seconds float64) {
	GRPCServerHandlingSeconds.WithLabelValues(method, code).Observe(seconds)
}

// RecordInferenceLatency records the latency of a backend inference call
func RecordInferenceLatency(seconds float64) {
	InferenceLatencySeconds.Observe(seconds)
}

// RecordInputElements records the flattened size of an input tensor
func RecordInputElements(count int) {
	InferenceInputElements.Observe(float64(count))
}

// RecordCacheHit counts a result served from the cache
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss counts a call that reached the backend
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// SetHealthy sets the health status to healthy
func SetHealthy() {
	HealthStatus.Set(1)
}

// SetUnhealthy sets the health status to unhealthy
func SetUnhealthy() {
	HealthStatus.Set(0)
}
