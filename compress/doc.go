// Package compress provides the byte-stage codecs applied to encoded cube blocks.
//
// A block goes through two stages on its way to disk:
//
//  1. **Encoding**: the codec package quantizes samples to the file's precision tier
//  2. **Compression**: this package shrinks the encoded bytes with a general-purpose algorithm
//
// The compression type is recorded once in the container header and applies to every block:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(dst, data []byte) ([]byte, error)
//	}
//
// Decompress takes a destination buffer because the decoded size of every block is known
// up front from the geometry. Readers pass pooled buffers of that capacity so steady-state
// decoding does not allocate.
//
// # Zstandard builds
//
// The default build uses github.com/klauspost/compress/zstd with pooled encoders and
// decoders. Building with -tags gozstd switches to github.com/valyala/gozstd, a cgo
// binding to the reference libzstd.
//
// # Thread Safety
//
// All codecs returned by GetCodec are stateless values and safe for concurrent use.
package compress
