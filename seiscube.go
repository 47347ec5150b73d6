// Package seiscube provides random-access reads of compressed, block-tiled 3-D seismic
// amplitude cubes.
//
// A cube container stores a (n_inlines, n_crosslines, n_samples) float32 volume as a grid of
// independently compressed blocks, addressed through a checksummed block index. Readers
// decode only the blocks a request touches, so an inline, crossline, depth slice, diagonal
// or sub-volume is served without decompressing the whole cube.
//
// # Core Features
//
//   - Inline, crossline, z-slice, correlated and anticorrelated diagonal reads
//   - Axis-aligned sub-volume and single trace reads
//   - Lossless and 1/2/4/8/16-bit quantized precision tiers
//   - Byte-stage compression (None, Zstd, S2, LZ4)
//   - Preload and streaming block retrieval
//   - Optional parallel block decoding, go-kit logging and Prometheus metrics
//
// # Basic Usage
//
//	r, err := seiscube.OpenStreaming("survey.scube")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	inline, _ := r.ReadInline(120)           // (n_crosslines, n_samples)
//	diag, _ := r.ReadCorrelatedDiagonal(-3)  // traces with il - xl == -3
//	box, _ := r.ReadSubvolume(0, 10, 0, 10, 100, 200)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the reader package.
// For options such as parallelism, logging and metrics, use the reader package directly
// or load them from a file with the config package.
package seiscube

import (
	"github.com/arloliu/seiscube/config"
	"github.com/arloliu/seiscube/reader"
)

// Open opens the cube container at path with the given reader options.
// Without options the container is read in streaming mode.
func Open(path string, opts ...reader.Option) (*reader.Reader, error) {
	return reader.Open(path, opts...)
}

// OpenPreload opens the cube at path and loads its whole payload into memory.
// The file is closed before OpenPreload returns.
func OpenPreload(path string, opts ...reader.Option) (*reader.Reader, error) {
	return reader.Open(path, append([]reader.Option{reader.WithPreload(true)}, opts...)...)
}

// OpenStreaming opens the cube at path and reads each block from disk on demand.
// The file stays open until the reader is closed.
func OpenStreaming(path string, opts ...reader.Option) (*reader.Reader, error) {
	return reader.Open(path, append([]reader.Option{reader.WithPreload(false)}, opts...)...)
}

// OpenWithConfig opens the cube at path using settings loaded from the YAML file at
// configPath. Log records are discarded unless opts install a logger.
func OpenWithConfig(path, configPath string, opts ...reader.Option) (*reader.Reader, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return reader.Open(path, append(cfg.Options(nil), opts...)...)
}
