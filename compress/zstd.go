package compress

import (
	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor provides Zstandard compression.
//
// The default build uses the pure-Go klauspost/compress/zstd implementation with
// pooled encoders and decoders. Building with the gozstd tag switches to the cgo
// binding of the reference libzstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// checkZstdFrame rejects a frame whose declared content size exceeds limit. Frames without
// a content size are bounded after decoding.
func checkZstdFrame(data []byte, limit int) error {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return decompressError("zstd", err)
	}

	if h.HasFCS && h.FrameContentSize > uint64(limit) { //nolint: gosec
		return oversizeError("zstd", h.FrameContentSize, limit)
	}

	return nil
}
