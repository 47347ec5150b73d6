package reader

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/arloliu/seiscube/format"
	"github.com/arloliu/seiscube/geometry"
	"github.com/arloliu/seiscube/internal/cubetest"
)

func newBenchReader(b *testing.B, tier format.PrecisionTier, opts ...Option) *Reader {
	b.Helper()

	cube := cubetest.Synthetic(64, 64, 256)
	data, err := cubetest.Build(cube, cubetest.BuildOptions{
		Block:       geometry.Shape{16, 16, 64},
		Tier:        tier,
		Compression: format.CompressionZstd,
	})
	if err != nil {
		b.Fatal(err)
	}

	r, err := New(bytes.NewReader(data), int64(len(data)), opts...)
	if err != nil {
		b.Fatal(err)
	}

	return r
}

// BenchmarkReader_Reads measures each read kind over a 64x64x256 cube in both modes.
func BenchmarkReader_Reads(b *testing.B) {
	reads := []struct {
		name string
		read func(r *Reader) error
	}{
		{"inline", func(r *Reader) error { _, err := r.ReadInline(31); return err }},
		{"crossline", func(r *Reader) error { _, err := r.ReadCrossline(31); return err }},
		{"zslice", func(r *Reader) error { _, err := r.ReadZSlice(128); return err }},
		{"correlated", func(r *Reader) error { _, err := r.ReadCorrelatedDiagonal(5); return err }},
		{"anticorrelated", func(r *Reader) error { _, err := r.ReadAnticorrelatedDiagonal(70); return err }},
		{"subvolume", func(r *Reader) error { _, err := r.ReadSubvolume(8, 40, 8, 40, 32, 160); return err }},
		{"trace", func(r *Reader) error { _, err := r.ReadTrace(17, 45); return err }},
	}

	for _, preload := range []bool{true, false} {
		r := newBenchReader(b, format.Tier8Bit, WithPreload(preload))
		for _, rd := range reads {
			b.Run(fmt.Sprintf("%s/%s", r.Mode(), rd.name), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()

				for b.Loop() {
					if err := rd.read(r); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkReader_Parallelism measures a full inline read as decode workers increase.
func BenchmarkReader_Parallelism(b *testing.B) {
	for _, n := range []int{1, 2, 4, 8} {
		r := newBenchReader(b, format.TierLossless, WithPreload(true), WithParallelism(n))
		b.Run(fmt.Sprintf("workers_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for b.Loop() {
				if _, err := r.ReadInline(10); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
