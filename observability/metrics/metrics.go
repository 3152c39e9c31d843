package metrics

import (
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var codecBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}

// --- Codec ---

var CodecOps = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "beacontypes_codec_ops_total",
	Help: "Completed codec operations by op and format",
}, []string{"op", "format"})

var CodecErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "beacontypes_codec_errors_total",
	Help: "Failed codec operations by op and format",
}, []string{"op", "format"})

var CodecDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "beacontypes_codec_duration_seconds",
	Help:    "Time spent in a codec operation",
	Buckets: codecBuckets,
}, []string{"op", "format"})

var EncodedSizeBytes = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "beacontypes_encoded_size_bytes",
	Help:    "Size of encoded output by format",
	Buckets: prometheus.ExponentialBuckets(256, 4, 10),
}, []string{"format"})

// --- Hashing ---

var HashTreeRoots = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "beacontypes_hash_tree_roots_total",
	Help: "Hash tree root computations",
})

func init() {
	prometheus.MustRegister(
		// Codec
		CodecOps,
		CodecErrors,
		CodecDuration,
		EncodedSizeBytes,
		// Hashing
		HashTreeRoots,
	)
}

// Serve starts the Prometheus metrics HTTP server on the given port.
func Serve(port int) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil); err != nil {
			log.Printf("metrics server error: %v", err)
		}
	}()
}
