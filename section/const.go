package section

const (
	// Bit masks for the Options field
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicCubeV1Opt is the version 1 magic number for the seismic cube container.
	MagicCubeV1Opt = 0x5A10
)

// offset and section sizes in the container file
const (
	HeaderSize          = 96         // fixed header size in bytes
	BlockIndexEntrySize = 16         // fixed block index entry size in bytes
	IndexOffsetOffset   = HeaderSize // byte offset where the block index starts
)
