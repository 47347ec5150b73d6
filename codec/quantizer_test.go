package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seiscube/compress"
	"github.com/arloliu/seiscube/endian"
	"github.com/arloliu/seiscube/errs"
	"github.com/arloliu/seiscube/format"
	"github.com/arloliu/seiscube/geometry"
)

var testShape = geometry.Shape{3, 4, 10}

func wavelet(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		x := float64(i) / 7
		out[i] = float32(1000 * math.Sin(x) * math.Exp(-x/20))
	}

	return out
}

func span(samples []float32) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range samples {
		lo = math.Min(lo, float64(v))
		hi = math.Max(hi, float64(v))
	}

	return lo, hi
}

func TestNew_UnknownCompression(t *testing.T) {
	_, err := New(format.CompressionType(0x42), endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestQuantizer_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	}
	engines := map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}
	samples := wavelet(testShape.Volume())
	lo, hi := span(samples)

	for engineName, engine := range engines {
		for _, c := range compressions {
			for _, tier := range format.Tiers {
				t.Run(engineName+"/"+c.String()+"/"+tier.String(), func(t *testing.T) {
					q, err := New(c, engine)
					require.NoError(t, err)
					require.Equal(t, c, q.Compression())

					data, err := q.Encode(samples, testShape, tier)
					require.NoError(t, err)

					got, err := q.Decode(nil, data, testShape, tier)
					require.NoError(t, err)
					require.Len(t, got, len(samples))

					if tier.IsLossless() {
						require.Equal(t, samples, got)
						return
					}

					tol := MaxError(lo, hi, tier) + 1e-5*math.Max(math.Abs(lo), math.Abs(hi))
					for i := range samples {
						require.InDelta(t, samples[i], got[i], tol, "sample %d", i)
					}
				})
			}
		}
	}
}

func TestQuantizer_ConstantBlock(t *testing.T) {
	q, err := New(format.CompressionZstd, endian.GetLittleEndianEngine())
	require.NoError(t, err)

	samples := make([]float32, testShape.Volume())
	for i := range samples {
		samples[i] = -3.25
	}

	for _, tier := range format.Tiers {
		data, err := q.Encode(samples, testShape, tier)
		require.NoError(t, err)

		got, err := q.Decode(nil, data, testShape, tier)
		require.NoError(t, err)
		require.Equal(t, samples, got, "tier %s", tier)
	}
}

func TestQuantizer_LosslessKeepsNaN(t *testing.T) {
	q, err := New(format.CompressionNone, endian.GetLittleEndianEngine())
	require.NoError(t, err)

	samples := wavelet(testShape.Volume())
	samples[5] = float32(math.NaN())

	data, err := q.Encode(samples, testShape, format.TierLossless)
	require.NoError(t, err)

	got, err := q.Decode(nil, data, testShape, format.TierLossless)
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(got[5])))
	require.Equal(t, samples[6], got[6])

	_, err = q.Encode(samples, testShape, format.Tier8Bit)
	require.ErrorIs(t, err, errs.ErrNonFiniteSample)
	require.ErrorIs(t, err, errs.ErrCodec)
}

func TestQuantizer_ReusesDestination(t *testing.T) {
	q, err := New(format.CompressionS2, endian.GetLittleEndianEngine())
	require.NoError(t, err)

	samples := wavelet(testShape.Volume())
	data, err := q.Encode(samples, testShape, format.Tier16Bit)
	require.NoError(t, err)

	dst := make([]float32, 0, testShape.Volume()+5)
	got, err := q.Decode(dst, data, testShape, format.Tier16Bit)
	require.NoError(t, err)
	require.Same(t, &dst[:1][0], &got[0])
}

func TestQuantizer_Errors(t *testing.T) {
	q, err := New(format.CompressionNone, endian.GetLittleEndianEngine())
	require.NoError(t, err)

	samples := wavelet(testShape.Volume())

	t.Run("wrong sample count", func(t *testing.T) {
		_, err := q.Encode(samples[1:], testShape, format.Tier8Bit)
		require.ErrorIs(t, err, errs.ErrInvalidBlockSize)
	})

	t.Run("invalid tier", func(t *testing.T) {
		_, err := q.Encode(samples, testShape, format.PrecisionTier(3))
		require.ErrorIs(t, err, errs.ErrCodec)

		_, err = q.Decode(nil, []byte{1}, testShape, format.PrecisionTier(0))
		require.ErrorIs(t, err, errs.ErrCodec)
	})

	t.Run("truncated block", func(t *testing.T) {
		data, err := q.Encode(samples, testShape, format.Tier4Bit)
		require.NoError(t, err)

		_, err = q.Decode(nil, data[:len(data)-1], testShape, format.Tier4Bit)
		require.ErrorIs(t, err, errs.ErrInvalidBlockSize)
		require.ErrorIs(t, err, errs.ErrCodec)
	})

	t.Run("decoded with wrong tier", func(t *testing.T) {
		data, err := q.Encode(samples, testShape, format.Tier4Bit)
		require.NoError(t, err)

		_, err = q.Decode(nil, data, testShape, format.Tier8Bit)
		require.ErrorIs(t, err, errs.ErrInvalidBlockSize)
	})

	t.Run("corrupt range", func(t *testing.T) {
		data, err := q.Encode(samples, testShape, format.Tier2Bit)
		require.NoError(t, err)

		endian.PutFloat32(endian.GetLittleEndianEngine(), data[0:4], float32(math.Inf(1)))
		_, err = q.Decode(nil, data, testShape, format.Tier2Bit)
		require.ErrorIs(t, err, errs.ErrNonFiniteSample)
	})

	t.Run("corrupt zstd stream", func(t *testing.T) {
		zq, err := New(format.CompressionZstd, endian.GetLittleEndianEngine())
		require.NoError(t, err)

		_, err = zq.Decode(nil, []byte("not a zstd frame"), testShape, format.Tier8Bit)
		require.ErrorIs(t, err, errs.ErrCodec)
	})
}

func TestEncodedSize(t *testing.T) {
	require.Equal(t, 400, EncodedSize(100, format.TierLossless))
	require.Equal(t, 8+13, EncodedSize(100, format.Tier1Bit))
	require.Equal(t, 8+50, EncodedSize(100, format.Tier4Bit))
	require.Equal(t, 8+200, EncodedSize(100, format.Tier16Bit))

	// 100 samples in groups of 4 and 8: 25 and 13 two-bit codes
	require.Equal(t, 8+7, EncodedSize(100, format.TierHalfBit))
	require.Equal(t, 8+4, EncodedSize(100, format.TierQuarterBit))
	require.Equal(t, 8+1, EncodedSize(1, format.TierQuarterBit))

	// the largest block a container may declare fits the byte-stage decode limit
	for _, tier := range format.Tiers {
		require.LessOrEqual(t, EncodedSize(geometry.MaxBlockSamples, tier), compress.MaxDecodedSize, "tier %s", tier)
	}
}

func TestMaxError(t *testing.T) {
	require.Zero(t, MaxError(-1, 1, format.TierLossless))
	require.Zero(t, MaxError(2, 2, format.Tier8Bit))
	require.InDelta(t, 1.0, MaxError(0, 2, format.Tier1Bit), 1e-12)
	require.InDelta(t, 2.0/(2*255), MaxError(-1, 1, format.Tier8Bit), 1e-12)
	require.InDelta(t, 2.0, MaxError(-1, 1, format.TierHalfBit), 1e-12)
	require.Zero(t, MaxError(3, 3, format.TierQuarterBit))
}

func TestQuantizer_FractionalTiers(t *testing.T) {
	q, err := New(format.CompressionNone, endian.GetLittleEndianEngine())
	require.NoError(t, err)

	shape := geometry.Shape{2, 3, 16}
	for _, tier := range []format.PrecisionTier{format.TierHalfBit, format.TierQuarterBit} {
		t.Run(tier.String(), func(t *testing.T) {
			g := tier.GroupSize()

			// every group holds one of four evenly spaced levels, so the group mean is exact
			samples := make([]float32, shape.Volume())
			for i := range samples {
				samples[i] = float32((i/g)%4) - 1.5
			}

			data, err := q.Encode(samples, shape, tier)
			require.NoError(t, err)
			require.Len(t, data, EncodedSize(shape.Volume(), tier))

			got, err := q.Decode(nil, data, shape, tier)
			require.NoError(t, err)
			require.Equal(t, samples, got)
		})
	}

	t.Run("group mean", func(t *testing.T) {
		// groups of 4: {0,0,0,4} has mean 1, quantized on [0, 4] with 3 steps to 4/3
		samples := []float32{0, 0, 0, 4, 4, 4, 4, 4}
		data, err := q.Encode(samples, geometry.Shape{1, 1, 8}, format.TierHalfBit)
		require.NoError(t, err)

		got, err := q.Decode(nil, data, geometry.Shape{1, 1, 8}, format.TierHalfBit)
		require.NoError(t, err)
		for i := range 4 {
			require.InDelta(t, 4.0/3, got[i], 1e-6)
			require.InDelta(t, 4.0, got[i+4], 1e-6)
		}
	})

	t.Run("partial last group", func(t *testing.T) {
		samples := []float32{1, 1, 1, 1, 1, 1, 1, 1, -2, -2}
		shape := geometry.Shape{1, 1, 10}
		data, err := q.Encode(samples, shape, format.TierQuarterBit)
		require.NoError(t, err)

		got, err := q.Decode(nil, data, shape, format.TierQuarterBit)
		require.NoError(t, err)
		require.Equal(t, samples, got)
	})

	t.Run("smaller than whole-bit tiers", func(t *testing.T) {
		n := testShape.Volume()
		require.Less(t, EncodedSize(n, format.TierQuarterBit), EncodedSize(n, format.TierHalfBit))
		require.Less(t, EncodedSize(n, format.TierHalfBit), EncodedSize(n, format.Tier1Bit))
	})
}
