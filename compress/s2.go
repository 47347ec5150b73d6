package compress

import "github.com/klauspost/compress/s2"

// S2Compressor provides S2 compression, a faster Snappy extension.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
//
// The decoded length recorded in the block is checked against the limit before decoding.
// s2.Decode writes into dst when its full length is large enough, so dst is
// resliced to its capacity first.
func (c S2Compressor) Decompress(dst, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return dst[:0], nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, decompressError("s2", err)
	}
	if limit := decodeLimit(dst); n > limit {
		return nil, oversizeError("s2", uint64(n), limit) //nolint: gosec
	}

	out, err := s2.Decode(dst[:cap(dst)], data)
	if err != nil {
		return nil, decompressError("s2", err)
	}

	return out, nil
}
