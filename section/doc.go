// Package section defines the low-level binary structures and constants of the cube container.
//
// This package handles binary serialization and deserialization of the container header,
// its packed flag, and the block index entries. It knows nothing about decoding samples;
// it only answers where each compressed block lives and whether the file is self-consistent.
//
// # Container Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (96 bytes, fixed)                                │
//	│  - Flag (4 bytes): options/magic, tier, compression     │
//	│  - Cube and block extents                               │
//	│  - Block count, index/payload offsets, index checksum   │
//	│  - Line numbering and sample axis metadata              │
//	├─────────────────────────────────────────────────────────┤
//	│ Block Index (BlockCount × 16 bytes)                     │
//	│  - One entry per block, linear block order              │
//	│  - Offset (relative to payload start) and length        │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (variable)                                      │
//	│  - Compressed blocks, any order                         │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field           | Type    | Description
//	-------|-----------------|---------|-------------------------------------------
//	0-1    | Options         | uint16  | Magic (bits 4-15) and endianness (bit 1)
//	2      | Tier            | uint8   | Bits per sample; 0x84, 0x88 for 0.5, 0.25 bit
//	3      | Compression     | uint8   | Byte-stage compression type
//	4-15   | Dims            | 3×u32   | n_inlines, n_crosslines, n_samples
//	16-21  | Block           | 3×u16   | Block extents per axis
//	22-23  | Reserved        |         | Written as zero
//	24-27  | BlockCount      | uint32  | Number of index entries
//	28-31  | IndexOffset     | uint32  | Always 96
//	32-39  | PayloadOffset   | uint64  | IndexOffset + 16 × BlockCount
//	40-47  | PayloadSize     | uint64  | Byte length of the payload section
//	48-55  | IndexChecksum   | uint64  | xxHash64 of the raw index bytes
//	56-71  | Line metadata   | 4×i32   | First inline, inline step, first xl, xl step
//	72-79  | Sample axis     | 2×f32   | Sample start and interval
//	80-95  | Reserved        |         | Written as zero
//
// The Options field is always stored little-endian so a reader can discover the
// byte order before decoding anything else.
//
// Blocks are ordered in the index by (I*GridJ + J)*GridK + K, with the sample axis
// varying fastest.
package section
