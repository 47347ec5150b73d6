package section

import (
	"fmt"

	"github.com/arloliu/seiscube/endian"
	"github.com/arloliu/seiscube/errs"
	"github.com/arloliu/seiscube/format"
)

// Flag represents the packed first four bytes of the container header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved, must be set to 0.
	// Bits 4-15 are the magic number, 0x5A10 for container format v1.
	Options uint16

	// Tier is the precision tier used for every block in the file.
	Tier format.PrecisionTier

	// Compression is the byte-stage compression applied after block encoding.
	Compression format.CompressionType
}

// NewFlag creates a little-endian Flag with the given tier and compression.
func NewFlag(tier format.PrecisionTier, compression format.CompressionType) Flag {
	return Flag{
		Options:     MagicCubeV1Opt,
		Tier:        tier,
		Compression: compression,
	}
}

// IsLittleEndian returns whether the container is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the container is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks the magic number, reserved bits, tier and compression.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicCubeV1Opt || f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: options 0x%04X", errs.ErrInvalidMagic, f.Options)
	}

	if !f.Tier.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedTier, f.Tier)
	}

	if !f.Compression.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedCompression, f.Compression)
	}

	return nil
}

// GetEndianEngine returns the endian engine selected by the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
