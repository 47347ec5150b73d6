package compress

// NoOpCompressor stores encoded blocks without compression.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress copies data into dst.
//
// The source is never aliased, since preloaded payloads are shared by every read.
func (c NoOpCompressor) Decompress(dst, data []byte) ([]byte, error) {
	if limit := decodeLimit(dst); len(data) > limit {
		return nil, oversizeError("none", uint64(len(data)), limit)
	}

	return append(dst[:0], data...), nil
}
