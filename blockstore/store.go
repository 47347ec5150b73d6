package blockstore

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/seiscube/errs"
	"github.com/arloliu/seiscube/geometry"
	"github.com/arloliu/seiscube/section"
)

// Mode selects how block payloads are retrieved.
type Mode uint8

const (
	ModePreload   Mode = 0x1 // ModePreload holds the whole payload in memory.
	ModeStreaming Mode = 0x2 // ModeStreaming reads each block from the source on demand.
)

func (m Mode) String() string {
	switch m {
	case ModePreload:
		return "preload"
	case ModeStreaming:
		return "streaming"
	default:
		return "Unknown"
	}
}

// Store returns the compressed bytes of a block given its grid coordinate.
type Store interface {
	// Fetch returns the stored bytes of block c.
	//
	// The returned slice must be treated as read-only. Fetch panics when c lies outside
	// the block grid; callers derive coordinates from validated requests.
	//
	// Returns:
	//   - []byte: Compressed block payload
	//   - error: Read failure wrapping errs.ErrStorage
	Fetch(c geometry.BlockCoord) ([]byte, error)

	// Mode reports the retrieval strategy.
	Mode() Mode

	// PayloadSize returns the byte length of the payload section.
	PayloadSize() int64
}

// base holds the block lookup shared by both stores.
type base struct {
	geo   *geometry.Geometry
	index []section.BlockIndexEntry
}

func newBase(g *geometry.Geometry, index []section.BlockIndexEntry) base {
	if len(index) != g.BlockCount() {
		panic(fmt.Sprintf("blockstore: index holds %d entries, grid %s needs %d", len(index), g.Grid, g.BlockCount()))
	}

	return base{geo: g, index: index}
}

func (b *base) entry(c geometry.BlockCoord) section.BlockIndexEntry {
	if !b.geo.ContainsBlock(c) {
		panic(fmt.Sprintf("blockstore: block %s outside grid %s", c, b.geo.Grid))
	}

	return b.index[b.geo.LinearIndex(c)]
}

// ReadFull reads exactly len(buf) bytes at off, mapping short reads to ErrStorage.
func ReadFull(src io.ReaderAt, buf []byte, off int64) error {
	n, err := src.ReadAt(buf, off)
	if n == len(buf) {
		// io.ReaderAt may return io.EOF alongside a full read at the end of input
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	return fmt.Errorf("%w: read %d of %d bytes at offset %d: %w", errs.ErrStorage, n, len(buf), off, err)
}
