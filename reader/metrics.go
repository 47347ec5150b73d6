package reader

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics of one or more readers.
type Metrics struct {
	Reads         *prometheus.CounterVec
	ReadErrors    *prometheus.CounterVec
	BlocksFetched *prometheus.CounterVec
	BlockBytes    *prometheus.CounterVec
	DecodeSeconds prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the provided registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	reads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seiscube_reads_total",
		Help: "Total read operations by kind",
	}, []string{"op"})

	readErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seiscube_read_errors_total",
		Help: "Total failed read operations by kind",
	}, []string{"op"})

	blocksFetched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seiscube_blocks_fetched_total",
		Help: "Total blocks fetched from the block store",
	}, []string{"mode"})

	blockBytes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seiscube_block_bytes_total",
		Help: "Total compressed block bytes fetched from the block store",
	}, []string{"mode"})

	decodeSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "seiscube_block_decode_seconds",
		Help:    "Time spent decoding a single block",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	})

	reg.MustRegister(reads, readErrors, blocksFetched, blockBytes, decodeSeconds)

	return &Metrics{
		Reads:         reads,
		ReadErrors:    readErrors,
		BlocksFetched: blocksFetched,
		BlockBytes:    blockBytes,
		DecodeSeconds: decodeSeconds,
	}
}

func (m *Metrics) observeRead(op string, err error) {
	if m == nil {
		return
	}

	m.Reads.WithLabelValues(op).Inc()
	if err != nil {
		m.ReadErrors.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) observeFetch(mode string, size int) {
	if m == nil {
		return
	}

	m.BlocksFetched.WithLabelValues(mode).Inc()
	m.BlockBytes.WithLabelValues(mode).Add(float64(size))
}

func (m *Metrics) observeDecode(d time.Duration) {
	if m == nil {
		return
	}

	m.DecodeSeconds.Observe(d.Seconds())
}
