package blockstore

import (
	"io"

	"github.com/arloliu/seiscube/geometry"
	"github.com/arloliu/seiscube/section"
)

// Preload serves blocks from an in-memory copy of the payload section.
type Preload struct {
	base
	payload []byte
}

var _ Store = (*Preload)(nil)

// NewPreload reads the payload section from src in a single read.
//
// The source is not retained; callers may close it once NewPreload returns.
//
// Parameters:
//   - src: Container source
//   - g: Cube geometry
//   - index: Validated block index, one entry per block in linear order
//   - payloadOffset: Absolute byte offset of the payload section
//   - payloadSize: Byte length of the payload section
//
// Returns:
//   - *Preload: The store
//   - error: Read failure wrapping errs.ErrStorage
func NewPreload(src io.ReaderAt, g *geometry.Geometry, index []section.BlockIndexEntry, payloadOffset, payloadSize int64) (*Preload, error) {
	b := newBase(g, index)

	payload := make([]byte, payloadSize)
	if err := ReadFull(src, payload, payloadOffset); err != nil {
		return nil, err
	}

	return &Preload{base: b, payload: payload}, nil
}

// Fetch returns a sub-slice of the preloaded payload.
// Its capacity is clipped so appends cannot clobber neighbouring blocks.
func (p *Preload) Fetch(c geometry.BlockCoord) ([]byte, error) {
	e := p.entry(c)

	return p.payload[e.Offset:e.End():e.End()], nil
}

// Mode returns ModePreload.
func (p *Preload) Mode() Mode { return ModePreload }

// PayloadSize returns the byte length of the payload section.
func (p *Preload) PayloadSize() int64 { return int64(len(p.payload)) }
