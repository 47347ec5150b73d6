package codec

import (
	"github.com/arloliu/seiscube/format"
	"github.com/arloliu/seiscube/geometry"
)

// Decoder reconstructs the samples of one block from its stored bytes.
//
// Implementations must be deterministic and side-effect free, and safe for concurrent use.
type Decoder interface {
	// Decode decodes data into dst and returns the filled slice.
	//
	// Parameters:
	//   - dst: Destination buffer, reused when its capacity is at least shape.Volume()
	//   - data: Stored block bytes as read from the container
	//   - shape: Full block extents, padding included
	//   - tier: File-wide precision tier
	//
	// Returns:
	//   - []float32: shape.Volume() samples, inline-major, sample axis fastest
	//   - error: Any failure, wrapping errs.ErrCodec
	Decode(dst []float32, data []byte, shape geometry.Shape, tier format.PrecisionTier) ([]float32, error)
}

// Encoder produces the stored bytes of one block.
type Encoder interface {
	// Encode encodes samples, laid out like Decode's output, into stored block bytes.
	Encode(samples []float32, shape geometry.Shape, tier format.PrecisionTier) ([]byte, error)
}

// Codec combines both encoding and decoding capabilities.
type Codec interface {
	Encoder
	Decoder
}

// quantizedHeaderSize is the byte length of the min/max pair preceding quantized codes.
const quantizedHeaderSize = 8

// EncodedSize returns the byte length of an encoded block of n samples, before the
// byte-stage compression.
func EncodedSize(n int, tier format.PrecisionTier) int {
	if tier.IsLossless() {
		return n * 4
	}

	return quantizedHeaderSize + (codeCount(n, tier)*tier.Bits()+7)/8
}

// MaxError returns the largest absolute reconstruction error of a quantized block
// whose samples span [lo, hi]. It is zero for the lossless tier.
//
// Fractional tiers reconstruct every sample of a group from the group mean, so the only
// bound is the block range itself.
func MaxError(lo, hi float64, tier format.PrecisionTier) float64 {
	if tier.IsLossless() || hi <= lo {
		return 0
	}
	if tier.IsFractional() {
		return hi - lo
	}

	return (hi - lo) / (2 * float64(levels(tier)))
}

// codeCount returns the number of codes stored for n samples.
func codeCount(n int, tier format.PrecisionTier) int {
	g := tier.GroupSize()
	return (n + g - 1) / g
}

// levels returns the largest code of a quantized tier, 2^b-1.
func levels(tier format.PrecisionTier) uint32 {
	return uint32(1)<<tier.Bits() - 1
}
