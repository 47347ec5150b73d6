package reader

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seiscube/format"
	"github.com/arloliu/seiscube/geometry"
	"github.com/arloliu/seiscube/internal/cubetest"
)

type readCase struct {
	name string
	cube *cubetest.Cube
	opts cubetest.BuildOptions
}

func readCases() []readCase {
	var cases []readCase
	for i, tier := range format.Tiers {
		cases = append(cases, readCase{
			name: fmt.Sprintf("5x5x50/%s", tier),
			cube: cubetest.Synthetic(5, 5, 50),
			opts: cubetest.BuildOptions{
				Block:       geometry.Shape{4, 4, 16},
				Tier:        tier,
				Compression: allCompressions[i%len(allCompressions)],
				BigEndian:   i%2 == 1,
			},
		})
	}

	for _, dims := range []geometry.Shape{{7, 3, 20}, {3, 7, 20}} {
		for _, tier := range []format.PrecisionTier{format.TierLossless, format.Tier8Bit} {
			cases = append(cases, readCase{
				name: fmt.Sprintf("%dx%dx%d/%s", dims[0], dims[1], dims[2], tier),
				cube: cubetest.Synthetic(dims[0], dims[1], dims[2]),
				opts: cubetest.BuildOptions{
					Block:          geometry.Shape{2, 2, 8},
					Tier:           tier,
					Compression:    format.CompressionS2,
					ReversePayload: true,
				},
			})
		}
	}

	// a single block larger than the cube
	cases = append(cases, readCase{
		name: "4x3x10/one-block",
		cube: cubetest.Synthetic(4, 3, 10),
		opts: cubetest.BuildOptions{
			Block:       geometry.Shape{8, 8, 32},
			Tier:        format.Tier16Bit,
			Compression: format.CompressionLZ4,
		},
	})

	return cases
}

func TestReader_MatchesReference(t *testing.T) {
	for _, tc := range readCases() {
		t.Run(tc.name, func(t *testing.T) {
			cube := tc.cube
			tol := cubetest.Tolerance(cube, tc.opts.Tier)

			for mode, r := range openModes(t, cube, tc.opts) {
				t.Run(mode, func(t *testing.T) {
					for il := range cube.NI {
						s, err := r.ReadInline(il)
						require.NoError(t, err)
						require.Equal(t, []int{cube.NX, cube.NZ}, s.Shape())
						requireApprox(t, cube.Inline(il), s.Data, tol, "inline %d", il)
					}

					for xl := range cube.NX {
						s, err := r.ReadCrossline(xl)
						require.NoError(t, err)
						require.Equal(t, []int{cube.NI, cube.NZ}, s.Shape())
						requireApprox(t, cube.Crossline(xl), s.Data, tol, "crossline %d", xl)
					}

					for z := range cube.NZ {
						s, err := r.ReadZSlice(z)
						require.NoError(t, err)
						require.Equal(t, []int{cube.NI, cube.NX}, s.Shape())
						requireApprox(t, cube.ZSlice(z), s.Data, tol, "zslice %d", z)
					}

					for d := -(cube.NX - 1); d <= cube.NI-1; d++ {
						s, err := r.ReadCorrelatedDiagonal(d)
						require.NoError(t, err)
						rows, want := cube.CorrelatedDiagonal(d)
						require.Equal(t, rows, s.Rows, "correlated %d", d)
						require.Equal(t, geometry.CorrelatedDiagonalLength(d, cube.NI, cube.NX), s.Rows)
						requireApprox(t, want, s.Data, tol, "correlated %d", d)
					}

					for d := 0; d <= cube.NI+cube.NX-2; d++ {
						s, err := r.ReadAnticorrelatedDiagonal(d)
						require.NoError(t, err)
						rows, want := cube.AnticorrelatedDiagonal(d)
						require.Equal(t, rows, s.Rows, "anticorrelated %d", d)
						require.Equal(t, geometry.AnticorrelatedDiagonalLength(d, cube.NI, cube.NX), s.Rows)
						requireApprox(t, want, s.Data, tol, "anticorrelated %d", d)
					}

					for il := range cube.NI {
						for xl := range cube.NX {
							trace, err := r.ReadTrace(il, xl)
							require.NoError(t, err)
							requireApprox(t, cube.Trace(il, xl), trace, tol, "trace (%d, %d)", il, xl)
						}
					}

					v, err := r.ReadVolume()
					require.NoError(t, err)
					require.Equal(t, []int{cube.NI, cube.NX, cube.NZ}, v.Shape())
					requireApprox(t, cube.Data, v.Data, tol, "volume")
				})
			}
		})
	}
}

func TestReader_Subvolume(t *testing.T) {
	for _, tc := range readCases() {
		t.Run(tc.name, func(t *testing.T) {
			cube := tc.cube
			tol := cubetest.Tolerance(cube, tc.opts.Tier)
			boxes := [][6]int{
				{0, cube.NI, 0, cube.NX, 0, cube.NZ},
				{cube.NI - 1, cube.NI, cube.NX - 1, cube.NX, cube.NZ - 1, cube.NZ},
				{1, cube.NI, 0, cube.NX - 1, 3, cube.NZ - 2},
				{0, 1, 1, 2, 0, 1},
			}
			if cube.NI >= 3 && cube.NX >= 2 && cube.NZ >= 20 {
				boxes = append(boxes, [6]int{2, 3, 1, 2, 10, 20})
			}

			for mode, r := range openModes(t, cube, tc.opts) {
				for _, b := range boxes {
					v, err := r.ReadSubvolume(b[0], b[1], b[2], b[3], b[4], b[5])
					require.NoError(t, err, "%s %v", mode, b)
					require.Equal(t, []int{b[1] - b[0], b[3] - b[2], b[5] - b[4]}, v.Shape())
					requireApprox(t, cube.Sub(b[0], b[1], b[2], b[3], b[4], b[5]), v.Data, tol, "%s %v", mode, b)
				}
			}
		})
	}
}

func TestReader_PreloadEqualsStreaming(t *testing.T) {
	cube, opts := scenarioCube()
	opts.Tier = format.Tier2Bit

	readers := openModes(t, cube, opts)
	preload, streaming := readers["preload"], readers["streaming"]

	requests := []Request{
		InlineRequest{IL: 3},
		CrosslineRequest{XL: 4},
		ZSliceRequest{Z: 49},
		CorrelatedDiagonalRequest{D: -2},
		AnticorrelatedDiagonalRequest{D: 6},
		SubvolumeRequest{MinIL: 1, MaxIL: 5, MinXL: 2, MaxXL: 5, MinZ: 15, MaxZ: 33},
		TraceRequest{IL: 4, XL: 0},
	}

	for _, req := range requests {
		a, err := preload.Read(req)
		require.NoError(t, err)
		b, err := streaming.Read(req)
		require.NoError(t, err)

		require.Equal(t, a.Shape(), b.Shape(), req.Op())
		require.Equal(t, a.Values(), b.Values(), req.Op())
	}
}

func TestReader_Parallelism(t *testing.T) {
	cube := cubetest.Synthetic(7, 3, 20)
	opts := cubetest.BuildOptions{
		Block:       geometry.Shape{2, 2, 8},
		Tier:        format.Tier8Bit,
		Compression: format.CompressionZstd,
	}

	sequential := newMemReader(t, cube, opts)
	parallel := newMemReader(t, cube, opts, WithParallelism(4))

	want, err := sequential.ReadVolume()
	require.NoError(t, err)
	got, err := parallel.ReadVolume()
	require.NoError(t, err)
	require.Equal(t, want.Data, got.Data)

	for d := -2; d <= 6; d++ {
		a, err := sequential.ReadCorrelatedDiagonal(d)
		require.NoError(t, err)
		b, err := parallel.ReadCorrelatedDiagonal(d)
		require.NoError(t, err)
		require.Equal(t, a.Data, b.Data)
	}
}

func TestReader_NaNPaddingNeverCopied(t *testing.T) {
	cube, opts := scenarioCube()
	opts.PadNaN = true
	opts.Compression = format.CompressionNone

	for mode, r := range openModes(t, cube, opts, WithParallelism(2)) {
		t.Run(mode, func(t *testing.T) {
			var results []Array
			for il := range cube.NI {
				s, err := r.ReadInline(il)
				require.NoError(t, err)
				results = append(results, s)
			}
			for xl := range cube.NX {
				s, err := r.ReadCrossline(xl)
				require.NoError(t, err)
				results = append(results, s)
			}
			for z := range cube.NZ {
				s, err := r.ReadZSlice(z)
				require.NoError(t, err)
				results = append(results, s)
			}
			for d := -4; d <= 4; d++ {
				s, err := r.ReadCorrelatedDiagonal(d)
				require.NoError(t, err)
				results = append(results, s)
			}
			for d := 0; d <= 8; d++ {
				s, err := r.ReadAnticorrelatedDiagonal(d)
				require.NoError(t, err)
				results = append(results, s)
			}
			v, err := r.ReadSubvolume(3, 5, 2, 5, 40, 50)
			require.NoError(t, err)
			results = append(results, v)

			for i, res := range results {
				for j, x := range res.Values() {
					require.False(t, math.IsNaN(float64(x)), "result %d sample %d is NaN", i, j)
				}
			}

			full, err := r.ReadVolume()
			require.NoError(t, err)
			require.Equal(t, cube.Data, full.Data)
		})
	}
}
