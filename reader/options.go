package reader

import (
	"errors"

	"github.com/go-kit/log"

	"github.com/arloliu/seiscube/codec"
	"github.com/arloliu/seiscube/internal/options"
)

// config holds the construction settings of a Reader.
type config struct {
	preload     bool
	parallelism int
	decoder     codec.Decoder
	logger      log.Logger
	metrics     *Metrics
}

func defaultConfig() *config {
	return &config{
		preload:     false,
		parallelism: 1,
		logger:      log.NewNopLogger(),
	}
}

// Option represents a functional option for configuring a Reader.
type Option = options.Option[*config]

// WithPreload selects preload mode when enabled, streaming mode otherwise.
// Streaming is the default.
func WithPreload(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.preload = enabled
	})
}

// WithParallelism sets the number of blocks fetched and decoded concurrently by one read.
// The default of 1 decodes blocks sequentially on the calling goroutine.
func WithParallelism(n int) Option {
	return options.New(func(c *config) error {
		if n < 1 {
			return errors.New("parallelism must be at least 1")
		}
		c.parallelism = n

		return nil
	})
}

// WithDecoder overrides the block decoder. By default the reader builds a codec.Quantizer
// from the compression type and byte order recorded in the container header.
func WithDecoder(d codec.Decoder) Option {
	return options.NoError(func(c *config) {
		c.decoder = d
	})
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger log.Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			logger = log.NewNopLogger()
		}
		c.logger = logger
	})
}

// WithMetrics enables Prometheus instrumentation. A nil value disables it.
func WithMetrics(m *Metrics) Option {
	return options.NoError(func(c *config) {
		c.metrics = m
	})
}
