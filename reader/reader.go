package reader

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/arloliu/seiscube/blockstore"
	"github.com/arloliu/seiscube/codec"
	"github.com/arloliu/seiscube/errs"
	"github.com/arloliu/seiscube/format"
	"github.com/arloliu/seiscube/geometry"
	"github.com/arloliu/seiscube/internal/options"
	"github.com/arloliu/seiscube/section"
)

// Reader serves geometric reads from a block-compressed seismic cube.
//
// The geometry, block index and decoder are fixed at construction and never mutated,
// so a Reader is safe for concurrent reads.
type Reader struct {
	header      section.Header
	geo         *geometry.Geometry
	store       blockstore.Store
	decoder     codec.Decoder
	closer      io.Closer
	logger      log.Logger
	metrics     *Metrics
	parallelism int
	closed      atomic.Bool
}

// Open opens the container file at path.
//
// In preload mode the payload is read and the file closed before Open returns.
// In streaming mode the file stays open until Close.
//
// Parameters:
//   - path: Container file path
//   - opts: Reader options
//
// Returns:
//   - *Reader: Reader ready for queries
//   - error: errs.ErrStorage if the file cannot be read, errs.ErrMalformedContainer
//     if its header or index is inconsistent
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}

	r, err := New(f, info.Size(), opts...)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if r.Mode() == blockstore.ModePreload {
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrStorage, err)
		}

		return r, nil
	}

	r.closer = f

	return r, nil
}

// New creates a Reader over src, whose total length is size bytes.
//
// The header and block index are read and validated immediately. In streaming mode src
// must remain readable for the lifetime of the Reader; Close does not close it.
//
// Parameters:
//   - src: Container source, safe for concurrent ReadAt in streaming mode
//   - size: Total length of the container in bytes
//   - opts: Reader options
//
// Returns:
//   - *Reader: Reader ready for queries
//   - error: Option, storage or container validation errors
func New(src io.ReaderAt, size int64, opts ...Option) (*Reader, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, index, err := readLayout(src, size)
	if err != nil {
		return nil, err
	}

	g, err := header.Geometry()
	if err != nil {
		return nil, err
	}

	decoder := cfg.decoder
	if decoder == nil {
		q, err := codec.New(header.Flag.Compression, header.Flag.GetEndianEngine())
		if err != nil {
			return nil, err
		}
		decoder = q
	}

	payloadOffset := int64(header.PayloadOffset) //nolint: gosec
	payloadSize := int64(header.PayloadSize)     //nolint: gosec

	var store blockstore.Store
	if cfg.preload {
		store, err = blockstore.NewPreload(src, g, index, payloadOffset, payloadSize)
		if err != nil {
			return nil, err
		}
	} else {
		store = blockstore.NewStreaming(src, g, index, payloadOffset, payloadSize)
	}

	r := &Reader{
		header:      header,
		geo:         g,
		store:       store,
		decoder:     decoder,
		logger:      cfg.logger,
		metrics:     cfg.metrics,
		parallelism: cfg.parallelism,
	}

	level.Debug(r.logger).Log(
		"msg", "opened cube",
		"dims", g.Dims,
		"block", g.Block,
		"grid", g.Grid,
		"tier", g.Tier,
		"compression", header.Flag.Compression,
		"mode", store.Mode(),
		"payload_bytes", store.PayloadSize(),
	)

	return r, nil
}

// readLayout reads and validates the header and block index.
func readLayout(src io.ReaderAt, size int64) (section.Header, []section.BlockIndexEntry, error) {
	if size < section.HeaderSize {
		return section.Header{}, nil, fmt.Errorf("%w: file is %d bytes", errs.ErrInvalidHeaderSize, size)
	}

	buf := make([]byte, section.HeaderSize)
	if err := blockstore.ReadFull(src, buf, 0); err != nil {
		return section.Header{}, nil, err
	}

	header, err := section.ParseHeader(buf)
	if err != nil {
		return section.Header{}, nil, err
	}

	// PayloadOffset is bounded by the validated block count, so the sum cannot overflow
	if header.PayloadSize > uint64(size) || header.PayloadOffset+header.PayloadSize > uint64(size) { //nolint: gosec
		return section.Header{}, nil, fmt.Errorf("%w: header needs %d bytes, file has %d",
			errs.ErrTruncatedPayload, header.PayloadOffset+header.PayloadSize, size)
	}

	indexBytes := make([]byte, header.IndexSize())
	if err := blockstore.ReadFull(src, indexBytes, int64(header.IndexOffset)); err != nil {
		return section.Header{}, nil, err
	}

	index, err := section.ParseBlockIndex(&header, indexBytes)
	if err != nil {
		return section.Header{}, nil, err
	}

	return header, index, nil
}

// Close releases the underlying file in streaming mode.
// Calling Close more than once returns errs.ErrClosed.
func (r *Reader) Close() error {
	if r.closed.Swap(true) {
		return errs.ErrClosed
	}

	level.Debug(r.logger).Log("msg", "closed cube", "mode", r.store.Mode())

	if r.closer == nil {
		return nil
	}

	if err := r.closer.Close(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrStorage, err)
	}

	return nil
}

// Read serves any Request and returns its result.
func (r *Reader) Read(req Request) (Array, error) {
	return req.read(r)
}

// Geometry returns the cube geometry. The returned value must not be modified.
func (r *Reader) Geometry() *geometry.Geometry { return r.geo }

// Header returns a copy of the container header.
func (r *Reader) Header() section.Header { return r.header }

// NInlines returns the number of inlines.
func (r *Reader) NInlines() int { return r.geo.NInlines() }

// NCrosslines returns the number of crosslines.
func (r *Reader) NCrosslines() int { return r.geo.NCrosslines() }

// NSamples returns the number of samples per trace.
func (r *Reader) NSamples() int { return r.geo.NSamples() }

// Tier returns the precision tier of the stored samples.
func (r *Reader) Tier() format.PrecisionTier { return r.geo.Tier }

// Compression returns the byte-stage compression of the stored blocks.
func (r *Reader) Compression() format.CompressionType { return r.header.Flag.Compression }

// BlockShape returns the compression tile extents.
func (r *Reader) BlockShape() geometry.Shape { return r.geo.Block }

// Mode returns the block retrieval mode.
func (r *Reader) Mode() blockstore.Mode { return r.store.Mode() }
