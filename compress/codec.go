package compress

import (
	"fmt"

	"github.com/arloliu/seiscube/errs"
	"github.com/arloliu/seiscube/format"
)

// Compressor applies the byte-stage compression to an encoded block.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller, except for the no-op codec
//   - Input slice is not modified
type Compressor interface {
	// Compress compresses one encoded block and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses the byte-stage compression of a single block.
//
// Every encoded block has a size fully determined by the cube geometry and precision tier,
// so callers pass a destination buffer whose capacity is that size. The capacity is also
// the limit: output that would exceed it fails with errs.ErrInvalidBlockSize before the
// whole payload is expanded. A destination without capacity is limited to MaxDecodedSize.
//
// Thread Safety: Decompressor implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data, appending to dst[:0].
	//
	// Parameters:
	//   - dst: Destination buffer, its capacity is the expected decoded size (may be nil)
	//   - data: Compressed block payload
	//
	// Returns:
	//   - []byte: Decompressed bytes, sharing dst's backing array when it was large enough
	//   - error: Decompression failure wrapping errs.ErrCodec
	Decompress(dst, data []byte) ([]byte, error)
}

// MaxDecodedSize bounds the output of a Decompress call whose destination has no capacity.
// It matches the lossless encoding of the largest block a container may declare.
const MaxDecodedSize = 64 << 20

// decodeLimit returns the largest decoded size accepted for dst.
func decodeLimit(dst []byte) int {
	if cap(dst) > 0 {
		return cap(dst)
	}

	return MaxDecodedSize
}

// oversizeError reports a payload decoding to more than limit bytes.
func oversizeError(algo string, size uint64, limit int) error {
	return fmt.Errorf("%w: %s payload decodes to %d bytes, limit %d", errs.ErrInvalidBlockSize, algo, size, limit)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrUnsupportedCompression for unknown types
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

func decompressError(algo string, err error) error {
	return fmt.Errorf("%w: %s decompression failed: %w", errs.ErrCodec, algo, err)
}
