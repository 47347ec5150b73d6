package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/seiscube/compress"
	"github.com/arloliu/seiscube/endian"
	"github.com/arloliu/seiscube/errs"
	"github.com/arloliu/seiscube/format"
	"github.com/arloliu/seiscube/geometry"
	"github.com/arloliu/seiscube/internal/pool"
)

// Quantizer is the block codec used by seiscube containers.
//
// It reduces samples to the precision tier and applies the byte-stage compression
// recorded in the container header. A Quantizer holds no mutable state and is safe
// for concurrent use.
type Quantizer struct {
	compression format.CompressionType
	compressor  compress.Codec
	engine      endian.EndianEngine
}

var _ Codec = (*Quantizer)(nil)

// New creates a Quantizer for the given byte-stage compression and byte order.
//
// Parameters:
//   - compression: Byte-stage compression type from the container header
//   - engine: Byte order of the container
//
// Returns:
//   - *Quantizer: The codec
//   - error: ErrUnsupportedCompression for unknown compression types
func New(compression format.CompressionType, engine endian.EndianEngine) (*Quantizer, error) {
	compressor, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	return &Quantizer{
		compression: compression,
		compressor:  compressor,
		engine:      engine,
	}, nil
}

// Compression returns the byte-stage compression type.
func (q *Quantizer) Compression() format.CompressionType {
	return q.compression
}

// Encode quantizes and compresses one block.
//
// Quantized tiers reject NaN and infinite samples with ErrNonFiniteSample, since they
// have no code; the lossless tier stores them verbatim.
func (q *Quantizer) Encode(samples []float32, shape geometry.Shape, tier format.PrecisionTier) ([]byte, error) {
	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: unsupported tier %d", errs.ErrCodec, tier)
	}

	n := shape.Volume()
	if len(samples) != n {
		return nil, fmt.Errorf("%w: got %d samples for block %s", errs.ErrInvalidBlockSize, len(samples), shape)
	}

	raw := make([]byte, EncodedSize(n, tier))
	if tier.IsLossless() {
		for i, v := range samples {
			endian.PutFloat32(q.engine, raw[i*4:], v)
		}
	} else if err := q.quantize(raw, samples, tier); err != nil {
		return nil, err
	}

	out, err := q.compressor.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s compression failed: %w", errs.ErrCodec, q.compression, err)
	}

	return out, nil
}

func (q *Quantizer) quantize(raw []byte, samples []float32, tier format.PrecisionTier) error {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range samples {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: sample %d is %v", errs.ErrNonFiniteSample, i, v)
		}
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
	}

	endian.PutFloat32(q.engine, raw[0:4], float32(lo))
	endian.PutFloat32(q.engine, raw[4:8], float32(hi))

	top := levels(tier)
	g := tier.GroupSize()
	codes := make([]uint32, codeCount(len(samples), tier))
	if hi > lo {
		scale := float64(top) / (hi - lo)
		for i := range codes {
			group := samples[i*g : min((i+1)*g, len(samples))]

			var sum float64
			for _, v := range group {
				sum += float64(v)
			}

			c := math.Round((sum/float64(len(group)) - lo) * scale)
			codes[i] = uint32(min(max(c, 0), float64(top)))
		}
	}
	packCodes(raw[quantizedHeaderSize:], codes, tier.Bits())

	return nil
}

// Decode decompresses and reconstructs one block.
//
// The decompressed length must equal EncodedSize for the block, otherwise
// ErrInvalidBlockSize is returned. All failures wrap errs.ErrCodec.
func (q *Quantizer) Decode(dst []float32, data []byte, shape geometry.Shape, tier format.PrecisionTier) ([]float32, error) {
	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: unsupported tier %d", errs.ErrCodec, tier)
	}

	n := shape.Volume()
	size := EncodedSize(n, tier)

	scratch, cleanup := pool.GetByteSlice(size)
	defer cleanup()

	// the capacity bounds how far the byte stage may expand a corrupt payload
	raw, err := q.compressor.Decompress(scratch[:0:size], data)
	if err != nil {
		return nil, err
	}
	if len(raw) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for block %s at %s",
			errs.ErrInvalidBlockSize, len(raw), size, shape, tier)
	}

	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]

	if tier.IsLossless() {
		for i := range dst {
			dst[i] = endian.Float32(q.engine, raw[i*4:])
		}

		return dst, nil
	}

	lo := float64(endian.Float32(q.engine, raw[0:4]))
	hi := float64(endian.Float32(q.engine, raw[4:8]))
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi < lo {
		return nil, fmt.Errorf("%w: block range [%v, %v]", errs.ErrNonFiniteSample, lo, hi)
	}

	step := (hi - lo) / float64(levels(tier))
	g := tier.GroupSize()
	if g == 1 {
		unpackCodes(raw[quantizedHeaderSize:], n, tier.Bits(), func(i int, code uint32) {
			dst[i] = float32(lo + float64(code)*step)
		})

		return dst, nil
	}

	unpackCodes(raw[quantizedHeaderSize:], codeCount(n, tier), tier.Bits(), func(i int, code uint32) {
		v := float32(lo + float64(code)*step)
		for j := i * g; j < min((i+1)*g, n); j++ {
			dst[j] = v
		}
	})

	return dst, nil
}
