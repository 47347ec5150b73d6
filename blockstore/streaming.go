package blockstore

import (
	"io"

	"github.com/arloliu/seiscube/geometry"
	"github.com/arloliu/seiscube/section"
)

// Streaming reads each block from the source on demand.
type Streaming struct {
	base
	src           io.ReaderAt
	payloadOffset int64
	payloadSize   int64
}

var _ Store = (*Streaming)(nil)

// NewStreaming creates a store issuing one positional read per fetch.
//
// src must stay open for the lifetime of the store.
func NewStreaming(src io.ReaderAt, g *geometry.Geometry, index []section.BlockIndexEntry, payloadOffset, payloadSize int64) *Streaming {
	return &Streaming{
		base:          newBase(g, index),
		src:           src,
		payloadOffset: payloadOffset,
		payloadSize:   payloadSize,
	}
}

// Fetch reads exactly the block's stored length at its absolute offset.
func (s *Streaming) Fetch(c geometry.BlockCoord) ([]byte, error) {
	e := s.entry(c)

	buf := make([]byte, e.Length)
	if err := ReadFull(s.src, buf, s.payloadOffset+int64(e.Offset)); err != nil { //nolint: gosec
		return nil, err
	}

	return buf, nil
}

// Mode returns ModeStreaming.
func (s *Streaming) Mode() Mode { return ModeStreaming }

// PayloadSize returns the byte length of the payload section.
func (s *Streaming) PayloadSize() int64 { return s.payloadSize }
