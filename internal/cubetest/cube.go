// Package cubetest provides an in-memory reference cube and a container writer for tests.
//
// The reference cube answers every read by direct indexing, independent of the block
// math under test, so reader results can be compared against ground truth.
package cubetest

import (
	"math"
)

// Cube is a dense reference cube laid out inline-major with the sample axis fastest.
type Cube struct {
	NI, NX, NZ int
	Data       []float32
}

// NewCube creates a cube whose samples are given by fn.
func NewCube(ni, nx, nz int, fn func(il, xl, z int) float32) *Cube {
	c := &Cube{NI: ni, NX: nx, NZ: nz, Data: make([]float32, ni*nx*nz)}
	for il := range ni {
		for xl := range nx {
			for z := range nz {
				c.Data[(il*nx+xl)*nz+z] = fn(il, xl, z)
			}
		}
	}

	return c
}

// Synthetic creates a cube of decaying wavelets whose phase varies with the trace
// position, so no two traces are identical.
func Synthetic(ni, nx, nz int) *Cube {
	return NewCube(ni, nx, nz, func(il, xl, z int) float32 {
		phase := 0.7*float64(il) + 0.3*float64(xl)
		t := float64(z) / 4

		return float32(100*math.Sin(t+phase)*math.Exp(-t/40) + float64(il) - 0.5*float64(xl))
	})
}

// At returns the sample at (il, xl, z).
func (c *Cube) At(il, xl, z int) float32 {
	return c.Data[(il*c.NX+xl)*c.NZ+z]
}

// Trace returns a copy of trace (il, xl).
func (c *Cube) Trace(il, xl int) []float32 {
	start := (il*c.NX + xl) * c.NZ

	return append([]float32(nil), c.Data[start:start+c.NZ]...)
}

// Inline returns inline il as an (NX, NZ) row-major array.
func (c *Cube) Inline(il int) []float32 {
	return c.Sub(il, il+1, 0, c.NX, 0, c.NZ)
}

// Crossline returns crossline xl as an (NI, NZ) row-major array.
func (c *Cube) Crossline(xl int) []float32 {
	return c.Sub(0, c.NI, xl, xl+1, 0, c.NZ)
}

// ZSlice returns depth slice z as an (NI, NX) row-major array.
func (c *Cube) ZSlice(z int) []float32 {
	return c.Sub(0, c.NI, 0, c.NX, z, z+1)
}

// Sub returns the half-open box [minIL,maxIL) x [minXL,maxXL) x [minZ,maxZ).
func (c *Cube) Sub(minIL, maxIL, minXL, maxXL, minZ, maxZ int) []float32 {
	out := make([]float32, 0, (maxIL-minIL)*(maxXL-minXL)*(maxZ-minZ))
	for il := minIL; il < maxIL; il++ {
		for xl := minXL; xl < maxXL; xl++ {
			for z := minZ; z < maxZ; z++ {
				out = append(out, c.At(il, xl, z))
			}
		}
	}

	return out
}

// CorrelatedDiagonal returns the traces with il - xl == d, ordered by inline, as a
// (rows, NZ) array.
func (c *Cube) CorrelatedDiagonal(d int) (rows int, data []float32) {
	return c.diagonal(func(il, xl int) bool { return il-xl == d })
}

// AnticorrelatedDiagonal returns the traces with il + xl == d, ordered by inline, as a
// (rows, NZ) array.
func (c *Cube) AnticorrelatedDiagonal(d int) (rows int, data []float32) {
	return c.diagonal(func(il, xl int) bool { return il+xl == d })
}

func (c *Cube) diagonal(keep func(il, xl int) bool) (int, []float32) {
	var rows int
	var data []float32
	for il := range c.NI {
		for xl := range c.NX {
			if keep(il, xl) {
				rows++
				data = append(data, c.Trace(il, xl)...)
			}
		}
	}

	return rows, data
}

// Range returns the smallest and largest sample of the cube.
func (c *Cube) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range c.Data {
		lo = math.Min(lo, float64(v))
		hi = math.Max(hi, float64(v))
	}

	return lo, hi
}
