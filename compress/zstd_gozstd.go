//go:build gozstd

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses the input data using libzstd at level 3.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses Zstd-compressed data into dst using libzstd.
func (c ZstdCompressor) Decompress(dst, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return dst[:0], nil
	}

	limit := decodeLimit(dst)
	if err := checkZstdFrame(data, limit); err != nil {
		return nil, err
	}

	out, err := gozstd.Decompress(dst[:0], data)
	if err != nil {
		return nil, decompressError("zstd", err)
	}
	if len(out) > limit {
		return nil, oversizeError("zstd", uint64(len(out)), limit)
	}

	return out, nil
}
