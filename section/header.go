package section

import (
	"fmt"
	"math"

	"github.com/arloliu/seiscube/endian"
	"github.com/arloliu/seiscube/errs"
	"github.com/arloliu/seiscube/format"
	"github.com/arloliu/seiscube/geometry"
)

// Header represents the fixed-size header section at the start of a cube container.
type Header struct {
	// Flag is a packed field for options, magic number, tier and compression.
	Flag Flag // byte offset 0-3, Options little-endian

	// NInlines, NCrosslines and NSamples are the logical cube extents.
	NInlines    uint32 // byte offset 4-7
	NCrosslines uint32 // byte offset 8-11
	NSamples    uint32 // byte offset 12-15

	// BlockInlines, BlockCrosslines and BlockSamples are the compression tile extents.
	BlockInlines    uint16 // byte offset 16-17
	BlockCrosslines uint16 // byte offset 18-19
	BlockSamples    uint16 // byte offset 20-21

	// BlockCount is the number of entries in the block index.
	BlockCount uint32 // byte offset 24-27
	// IndexOffset is the byte offset to the start of the block index section.
	IndexOffset uint32 // byte offset 28-31
	// PayloadOffset is the byte offset to the start of the compressed block payloads.
	// It records the offset after the block index section.
	PayloadOffset uint64 // byte offset 32-39
	// PayloadSize is the total byte length of the concatenated block payloads.
	PayloadSize uint64 // byte offset 40-47
	// IndexChecksum is the xxHash64 of the raw block index bytes.
	IndexChecksum uint64 // byte offset 48-55

	// FirstInline and InlineStep map inline indices to inline numbers.
	FirstInline int32 // byte offset 56-59
	InlineStep  int32 // byte offset 60-63
	// FirstCrossline and CrosslineStep map crossline indices to crossline numbers.
	FirstCrossline int32 // byte offset 64-67
	CrosslineStep  int32 // byte offset 68-71

	// SampleStart and SampleInterval give the time or depth of each sample.
	SampleStart    float32 // byte offset 72-75
	SampleInterval float32 // byte offset 76-79
}

// NewHeader creates a Header for the given flag, cube and block shapes.
//
// The block count and index offset are derived from the shapes; payload offset,
// payload size and the index checksum must be set by the writer.
// Line metadata defaults to 1-based line numbers with unit steps and unit sample interval.
func NewHeader(flag Flag, dims, block geometry.Shape) *Header {
	grid := geometry.GridShape(dims, block)

	return &Header{
		Flag:            flag,
		NInlines:        uint32(dims[0]),  //nolint: gosec
		NCrosslines:     uint32(dims[1]),  //nolint: gosec
		NSamples:        uint32(dims[2]),  //nolint: gosec
		BlockInlines:    uint16(block[0]), //nolint: gosec
		BlockCrosslines: uint16(block[1]), //nolint: gosec
		BlockSamples:    uint16(block[2]), //nolint: gosec
		BlockCount:      uint32(grid.Volume()), //nolint: gosec
		IndexOffset:     IndexOffsetOffset,
		PayloadOffset:   uint64(IndexOffsetOffset + grid.Volume()*BlockIndexEntrySize), //nolint: gosec
		FirstInline:     1,
		InlineStep:      1,
		FirstCrossline:  1,
		CrosslineStep:   1,
		SampleStart:     0,
		SampleInterval:  1,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 96 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 96 bytes, or flag/consistency errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian so the byte order can be discovered
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Tier = format.PrecisionTier(data[2])
	h.Flag.Compression = format.CompressionType(data[3])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.NInlines = engine.Uint32(data[4:8])
	h.NCrosslines = engine.Uint32(data[8:12])
	h.NSamples = engine.Uint32(data[12:16])
	h.BlockInlines = engine.Uint16(data[16:18])
	h.BlockCrosslines = engine.Uint16(data[18:20])
	h.BlockSamples = engine.Uint16(data[20:22])
	h.BlockCount = engine.Uint32(data[24:28])
	h.IndexOffset = engine.Uint32(data[28:32])
	h.PayloadOffset = engine.Uint64(data[32:40])
	h.PayloadSize = engine.Uint64(data[40:48])
	h.IndexChecksum = engine.Uint64(data[48:56])
	h.FirstInline = endian.Int32(engine, data[56:60])
	h.InlineStep = endian.Int32(engine, data[60:64])
	h.FirstCrossline = endian.Int32(engine, data[64:68])
	h.CrosslineStep = endian.Int32(engine, data[68:72])
	h.SampleStart = endian.Float32(engine, data[72:76])
	h.SampleInterval = endian.Float32(engine, data[76:80])

	return h.Validate()
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = uint8(h.Flag.Tier)
	b[3] = uint8(h.Flag.Compression)
	engine.PutUint32(b[4:8], h.NInlines)
	engine.PutUint32(b[8:12], h.NCrosslines)
	engine.PutUint32(b[12:16], h.NSamples)
	engine.PutUint16(b[16:18], h.BlockInlines)
	engine.PutUint16(b[18:20], h.BlockCrosslines)
	engine.PutUint16(b[20:22], h.BlockSamples)
	engine.PutUint32(b[24:28], h.BlockCount)
	engine.PutUint32(b[28:32], h.IndexOffset)
	engine.PutUint64(b[32:40], h.PayloadOffset)
	engine.PutUint64(b[40:48], h.PayloadSize)
	engine.PutUint64(b[48:56], h.IndexChecksum)
	endian.PutInt32(engine, b[56:60], h.FirstInline)
	endian.PutInt32(engine, b[60:64], h.InlineStep)
	endian.PutInt32(engine, b[64:68], h.FirstCrossline)
	endian.PutInt32(engine, b[68:72], h.CrosslineStep)
	endian.PutFloat32(engine, b[72:76], h.SampleStart)
	endian.PutFloat32(engine, b[76:80], h.SampleInterval)

	return b
}

// Dims returns the cube extents.
func (h *Header) Dims() geometry.Shape {
	return geometry.Shape{int(h.NInlines), int(h.NCrosslines), int(h.NSamples)}
}

// BlockShape returns the compression tile extents.
func (h *Header) BlockShape() geometry.Shape {
	return geometry.Shape{int(h.BlockInlines), int(h.BlockCrosslines), int(h.BlockSamples)}
}

// IndexSize returns the byte length of the block index section.
func (h *Header) IndexSize() int {
	return int(h.BlockCount) * BlockIndexEntrySize
}

// Geometry builds the cube geometry described by the header.
func (h *Header) Geometry() (*geometry.Geometry, error) {
	return geometry.New(h.Dims(), h.BlockShape(), h.Flag.Tier)
}

// Validate checks that the header fields are mutually consistent.
//
// Returns:
//   - error: ErrInvalidDimensions, ErrInvalidBlockCount, ErrInvalidIndexOffset or
//     ErrInvalidLineMetadata, each wrapping ErrMalformedContainer
func (h *Header) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	g, err := h.Geometry()
	if err != nil {
		return err
	}

	if int(h.BlockCount) != g.BlockCount() {
		return fmt.Errorf("%w: header declares %d blocks, grid %s holds %d",
			errs.ErrInvalidBlockCount, h.BlockCount, g.Grid, g.BlockCount())
	}

	if h.IndexOffset != IndexOffsetOffset {
		return fmt.Errorf("%w: index offset %d", errs.ErrInvalidIndexOffset, h.IndexOffset)
	}

	if h.PayloadOffset != uint64(h.IndexOffset)+uint64(h.IndexSize()) { //nolint: gosec
		return fmt.Errorf("%w: payload offset %d, expected %d",
			errs.ErrInvalidIndexOffset, h.PayloadOffset, int(h.IndexOffset)+h.IndexSize())
	}

	if h.InlineStep == 0 || h.CrosslineStep == 0 {
		return fmt.Errorf("%w: zero line step", errs.ErrInvalidLineMetadata)
	}

	interval := float64(h.SampleInterval)
	if !(interval > 0) || math.IsInf(interval, 0) || math.IsNaN(float64(h.SampleStart)) {
		return fmt.Errorf("%w: sample interval %v", errs.ErrInvalidLineMetadata, h.SampleInterval)
	}

	return nil
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 96 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
