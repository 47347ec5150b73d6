package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type trace struct{ il, xl int }

// enumerate walks the whole trace grid in inline-major order and keeps the traces
// accepted by keep, which yields each diagonal ordered by increasing inline.
func enumerate(nIL, nXL int, keep func(il, xl int) bool) []trace {
	var out []trace
	for il := 0; il < nIL; il++ {
		for xl := 0; xl < nXL; xl++ {
			if keep(il, xl) {
				out = append(out, trace{il, xl})
			}
		}
	}

	return out
}

var diagonalGrids = []struct {
	name     string
	nIL, nXL int
}{
	{"5x5", 5, 5},
	{"7x3", 7, 3},
	{"3x7", 3, 7},
	{"1x6", 1, 6},
	{"6x1", 6, 1},
	{"1x1", 1, 1},
}

func TestCorrelatedDiagonal(t *testing.T) {
	for _, grid := range diagonalGrids {
		t.Run(grid.name, func(t *testing.T) {
			lo, hi := CorrelatedDiagonalBounds(grid.nIL, grid.nXL)
			require.Equal(t, -(grid.nXL - 1), lo)
			require.Equal(t, grid.nIL-1, hi)

			total := 0
			for d := lo; d <= hi; d++ {
				want := enumerate(grid.nIL, grid.nXL, func(il, xl int) bool { return il-xl == d })
				n := CorrelatedDiagonalLength(d, grid.nIL, grid.nXL)
				require.Equal(t, len(want), n, "d=%d", d)
				require.Positive(t, n)

				for k := 0; k < n; k++ {
					il, xl := CorrelatedDiagonalTrace(d, k)
					require.Equal(t, want[k], trace{il, xl}, "d=%d k=%d", d, k)
				}
				total += n
			}
			require.Equal(t, grid.nIL*grid.nXL, total, "every trace lies on exactly one diagonal")

			require.Zero(t, CorrelatedDiagonalLength(lo-1, grid.nIL, grid.nXL))
			require.Zero(t, CorrelatedDiagonalLength(hi+1, grid.nIL, grid.nXL))
		})
	}
}

func TestAnticorrelatedDiagonal(t *testing.T) {
	for _, grid := range diagonalGrids {
		t.Run(grid.name, func(t *testing.T) {
			lo, hi := AnticorrelatedDiagonalBounds(grid.nIL, grid.nXL)
			require.Equal(t, 0, lo)
			require.Equal(t, grid.nIL+grid.nXL-2, hi)

			total := 0
			for d := lo; d <= hi; d++ {
				want := enumerate(grid.nIL, grid.nXL, func(il, xl int) bool { return il+xl == d })
				n := AnticorrelatedDiagonalLength(d, grid.nIL, grid.nXL)
				require.Equal(t, len(want), n, "d=%d", d)
				require.Positive(t, n)

				for k := 0; k < n; k++ {
					il, xl := AnticorrelatedDiagonalTrace(d, k, grid.nXL)
					require.Equal(t, want[k], trace{il, xl}, "d=%d k=%d", d, k)
					// Same trace as flat inline-major index d + k*(nXL-1) in the first regime.
					if d < grid.nXL {
						require.Equal(t, d+k*(grid.nXL-1), il*grid.nXL+xl)
					}
				}
				total += n
			}
			require.Equal(t, grid.nIL*grid.nXL, total)

			require.Zero(t, AnticorrelatedDiagonalLength(lo-1, grid.nIL, grid.nXL))
			require.Zero(t, AnticorrelatedDiagonalLength(hi+1, grid.nIL, grid.nXL))
		})
	}
}

func TestDiagonal_5x5Scenario(t *testing.T) {
	require.Equal(t, 1, CorrelatedDiagonalLength(-4, 5, 5))
	require.Equal(t, 5, CorrelatedDiagonalLength(0, 5, 5))
	require.Equal(t, 1, AnticorrelatedDiagonalLength(0, 5, 5))
	require.Equal(t, 1, AnticorrelatedDiagonalLength(8, 5, 5))
	require.Zero(t, AnticorrelatedDiagonalLength(9, 5, 5))

	il, xl := CorrelatedDiagonalTrace(-4, 0)
	require.Equal(t, trace{0, 4}, trace{il, xl})

	il, xl = AnticorrelatedDiagonalTrace(8, 0, 5)
	require.Equal(t, trace{4, 4}, trace{il, xl})
}
