package format

type (
	// PrecisionTier is the file-wide bit rate used by the block codec.
	PrecisionTier uint8
	// CompressionType is the byte-stage compression applied to every encoded block.
	CompressionType uint8
)

const (
	Tier1Bit     PrecisionTier = 1  // Tier1Bit quantizes each sample to 1 bit.
	Tier2Bit     PrecisionTier = 2  // Tier2Bit quantizes each sample to 2 bits.
	Tier4Bit     PrecisionTier = 4  // Tier4Bit quantizes each sample to 4 bits.
	Tier8Bit     PrecisionTier = 8  // Tier8Bit quantizes each sample to 8 bits.
	Tier16Bit    PrecisionTier = 16 // Tier16Bit quantizes each sample to 16 bits.
	TierLossless PrecisionTier = 32 // TierLossless stores the raw IEEE 754 float32 bits.

	// Fractional tiers set bit 7 and keep the number of samples sharing one 2-bit code in
	// the low bits. Each code quantizes the mean of its group.
	TierHalfBit    PrecisionTier = 0x84 // TierHalfBit stores one 2-bit code per 4 samples.
	TierQuarterBit PrecisionTier = 0x88 // TierQuarterBit stores one 2-bit code per 8 samples.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Tiers lists every supported precision tier from coarsest to finest.
var Tiers = []PrecisionTier{
	TierQuarterBit, TierHalfBit, Tier1Bit, Tier2Bit, Tier4Bit, Tier8Bit, Tier16Bit, TierLossless,
}

const fractionalTierFlag = 0x80

// fractionalCodeBits is the code width of the fractional tiers.
const fractionalCodeBits = 2

// Bits returns the width of one stored code. For whole-bit tiers this is the number of
// bits per sample; fractional tiers share one code across GroupSize samples.
func (t PrecisionTier) Bits() int {
	if t.IsFractional() {
		return fractionalCodeBits
	}

	return int(t)
}

// GroupSize returns the number of consecutive samples represented by one code.
func (t PrecisionTier) GroupSize() int {
	if t.IsFractional() {
		return int(t &^ fractionalTierFlag)
	}

	return 1
}

// BitsPerSample returns the average storage cost of one sample, before compression.
func (t PrecisionTier) BitsPerSample() float64 {
	return float64(t.Bits()) / float64(t.GroupSize())
}

// IsFractional reports whether t stores less than one bit per sample.
func (t PrecisionTier) IsFractional() bool {
	return t == TierHalfBit || t == TierQuarterBit
}

// IsValid reports whether t is one of the supported tiers.
func (t PrecisionTier) IsValid() bool {
	switch t {
	case TierQuarterBit, TierHalfBit, Tier1Bit, Tier2Bit, Tier4Bit, Tier8Bit, Tier16Bit, TierLossless:
		return true
	default:
		return false
	}
}

// IsLossless reports whether decoding at this tier reproduces the input bit-exactly.
func (t PrecisionTier) IsLossless() bool {
	return t == TierLossless
}

func (t PrecisionTier) String() string {
	switch t {
	case TierQuarterBit:
		return "0.25bit"
	case TierHalfBit:
		return "0.5bit"
	case Tier1Bit:
		return "1bit"
	case Tier2Bit:
		return "2bit"
	case Tier4Bit:
		return "4bit"
	case Tier8Bit:
		return "8bit"
	case Tier16Bit:
		return "16bit"
	case TierLossless:
		return "lossless"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
