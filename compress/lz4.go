package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/seiscube/errs"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 block compression.
//
// Uses a pooled lz4.Compressor for better performance.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block.
//
// LZ4 blocks do not record their decoded size. When dst has capacity the block is decoded
// into exactly that space and a larger block fails. Without a destination the buffer starts
// at 4x the compressed size and doubles on ErrInvalidSourceShortBuffer up to MaxDecodedSize.
//
// Parameters:
//   - dst: Destination buffer sized to the expected decoded length
//   - data: Compressed data to decompress
//
// Returns:
//   - []byte: Decompressed data
//   - error: Decompression error wrapping errs.ErrCodec
func (c LZ4Compressor) Decompress(dst, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return dst[:0], nil
	}

	bounded := cap(dst) > 0
	buf := dst[:cap(dst)]
	if !bounded {
		buf = make([]byte, min(len(data)*4, MaxDecodedSize))
	}

	for {
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, decompressError("lz4", err)
		}
		if bounded || len(buf) >= MaxDecodedSize {
			return nil, fmt.Errorf("%w: lz4 payload exceeds %d bytes", errs.ErrInvalidBlockSize, len(buf))
		}

		buf = make([]byte, min(len(buf)*2, MaxDecodedSize))
	}
}
