package section

import (
	"fmt"

	"github.com/arloliu/seiscube/endian"
	"github.com/arloliu/seiscube/errs"
	"github.com/arloliu/seiscube/internal/hash"
)

// BlockIndexEntry locates one compressed block inside the payload section.
// It is a fixed size of 16 bytes.
type BlockIndexEntry struct {
	// Offset is the byte offset of the block payload, relative to the payload start.
	//
	// Offset: 0, Size: 8 bytes
	Offset uint64

	// Length is the byte length of the compressed block payload.
	//
	// Offset: 8, Size: 4 bytes
	Length uint32

	// bytes 12-15 are reserved and written as zero
}

// End returns the exclusive end offset of the block payload.
func (e BlockIndexEntry) End() uint64 {
	return e.Offset + uint64(e.Length)
}

// Bytes returns the index entry as a byte slice using the specified endian engine.
func (e *BlockIndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [BlockIndexEntrySize]byte // stack allocation, it's faster than heap allocation
	engine.PutUint64(b[0:8], e.Offset)
	engine.PutUint32(b[8:12], e.Length)

	return b[:]
}

// WriteToSlice writes to a pre-allocated slice and returns the next position.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 16 bytes at offset)
//   - offset: Starting position in data slice
//   - engine: Endian engine for byte order
//
// Returns:
//   - int: Next write position (offset + 16)
func (e *BlockIndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], e.Offset)
	engine.PutUint32(data[offset+8:offset+12], e.Length)
	clear(data[offset+12 : offset+16])

	return offset + BlockIndexEntrySize
}

// ParseBlockIndexEntry parses a BlockIndexEntry from a byte slice.
//
// Returns:
//   - BlockIndexEntry: Parsed index entry
//   - error: ErrInvalidIndexSize if data is shorter than 16 bytes
func ParseBlockIndexEntry(data []byte, engine endian.EndianEngine) (BlockIndexEntry, error) {
	if len(data) < BlockIndexEntrySize {
		return BlockIndexEntry{}, errs.ErrInvalidIndexSize
	}

	return BlockIndexEntry{
		Offset: engine.Uint64(data[0:8]),
		Length: engine.Uint32(data[8:12]),
	}, nil
}

// EncodeBlockIndex serializes entries into a contiguous index section.
func EncodeBlockIndex(entries []BlockIndexEntry, engine endian.EndianEngine) []byte {
	data := make([]byte, len(entries)*BlockIndexEntrySize)
	offset := 0
	for i := range entries {
		offset = entries[i].WriteToSlice(data, offset, engine)
	}

	return data
}

// ParseBlockIndex parses and validates the block index section described by h.
//
// The checksum is verified before any entry is decoded, and every entry must lie
// entirely inside the payload section. Entries may appear in any payload order and
// zero-length entries are rejected, since every block carries at least its codec header.
//
// Parameters:
//   - h: Validated container header
//   - data: Raw index bytes (must be exactly h.IndexSize() bytes)
//
// Returns:
//   - []BlockIndexEntry: Entries in linear block order
//   - error: ErrInvalidIndexSize, ErrIndexChecksum or ErrInvalidBlockEntry
func ParseBlockIndex(h *Header, data []byte) ([]BlockIndexEntry, error) {
	if len(data) != h.IndexSize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidIndexSize, len(data), h.IndexSize())
	}

	if sum := hash.Checksum(data); sum != h.IndexChecksum {
		return nil, fmt.Errorf("%w: got 0x%016X, want 0x%016X", errs.ErrIndexChecksum, sum, h.IndexChecksum)
	}

	engine := h.Flag.GetEndianEngine()
	entries := make([]BlockIndexEntry, h.BlockCount)
	for i := range entries {
		start := i * BlockIndexEntrySize
		entry, err := ParseBlockIndexEntry(data[start:start+BlockIndexEntrySize], engine)
		if err != nil {
			return nil, err
		}

		if entry.Length == 0 || entry.Offset > h.PayloadSize || entry.End() > h.PayloadSize {
			return nil, fmt.Errorf("%w: block %d spans [%d, %d) of %d payload bytes",
				errs.ErrInvalidBlockEntry, i, entry.Offset, entry.End(), h.PayloadSize)
		}

		entries[i] = entry
	}

	return entries, nil
}
