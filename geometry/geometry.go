package geometry

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/seiscube/errs"
	"github.com/arloliu/seiscube/format"
)

// Axis indices into a Shape.
const (
	AxisInline    = 0
	AxisCrossline = 1
	AxisSample    = 2
)

const (
	// MaxBlockSamples bounds the samples in one decoded block, padding included.
	// A lossless block of this size decodes from 64 MiB.
	MaxBlockSamples = 1 << 24
	// MaxBlockCount bounds the number of blocks, which the header stores as uint32.
	MaxBlockCount = math.MaxUint32
)

// Shape is an extent along the inline, crossline and sample axes.
type Shape [3]int

// Volume returns the number of samples covered by the shape.
func (s Shape) Volume() int {
	return s[0] * s[1] * s[2]
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s[0], s[1], s[2])
}

// BlockCoord addresses one block in the block grid.
type BlockCoord struct {
	I, J, K int
}

func (c BlockCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.I, c.J, c.K)
}

// Geometry is the immutable description of a cube and its block tiling.
type Geometry struct {
	// Dims is (n_inlines, n_crosslines, n_samples).
	Dims Shape
	// Block is the compression tile extent along each axis.
	Block Shape
	// Grid is the number of blocks along each axis, ceil(Dims/Block).
	Grid Shape
	// Tier is the file-wide codec precision tier.
	Tier format.PrecisionTier
}

// New creates a Geometry after validating the cube and block extents.
//
// Parameters:
//   - dims: Cube extents, all positive
//   - block: Block extents, all positive
//   - tier: Precision tier, must be a supported tier
//
// Returns:
//   - *Geometry: The validated geometry
//   - error: ErrInvalidDimensions or ErrUnsupportedTier
func New(dims, block Shape, tier format.PrecisionTier) (*Geometry, error) {
	for axis := range dims {
		if dims[axis] <= 0 {
			return nil, fmt.Errorf("%w: axis %d extent %d", errs.ErrInvalidDimensions, axis, dims[axis])
		}
		if block[axis] <= 0 {
			return nil, fmt.Errorf("%w: axis %d block extent %d", errs.ErrInvalidDimensions, axis, block[axis])
		}
	}

	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedTier, tier)
	}

	if n, ok := checkedVolume(block); !ok || n > MaxBlockSamples {
		return nil, fmt.Errorf("%w: block %s exceeds %d samples", errs.ErrInvalidDimensions, block, MaxBlockSamples)
	}

	grid := GridShape(dims, block)
	if n, ok := checkedVolume(grid); !ok || n > MaxBlockCount {
		return nil, fmt.Errorf("%w: grid %s exceeds %d blocks", errs.ErrInvalidBlockCount, grid, uint64(MaxBlockCount))
	}

	return &Geometry{
		Dims:  dims,
		Block: block,
		Grid:  grid,
		Tier:  tier,
	}, nil
}

// checkedVolume multiplies the positive extents of s, reporting false on uint64 overflow.
func checkedVolume(s Shape) (uint64, bool) {
	n := uint64(1)
	for _, v := range s {
		hi, lo := bits.Mul64(n, uint64(v)) //nolint: gosec
		if hi != 0 {
			return 0, false
		}
		n = lo
	}

	return n, true
}

// GridShape returns ceil(dims/block) per axis.
func GridShape(dims, block Shape) Shape {
	var grid Shape
	for axis := range dims {
		grid[axis] = (dims[axis] + block[axis] - 1) / block[axis]
	}

	return grid
}

// NInlines returns the number of inlines.
func (g *Geometry) NInlines() int { return g.Dims[AxisInline] }

// NCrosslines returns the number of crosslines.
func (g *Geometry) NCrosslines() int { return g.Dims[AxisCrossline] }

// NSamples returns the number of samples per trace.
func (g *Geometry) NSamples() int { return g.Dims[AxisSample] }

// BlockCount returns the total number of blocks in the grid.
func (g *Geometry) BlockCount() int {
	return g.Grid.Volume()
}

// BlockLen returns the number of samples in one decoded block, padding included.
func (g *Geometry) BlockLen() int {
	return g.Block.Volume()
}

// ContainsBlock reports whether c lies inside the block grid.
func (g *Geometry) ContainsBlock(c BlockCoord) bool {
	return c.I >= 0 && c.I < g.Grid[0] &&
		c.J >= 0 && c.J < g.Grid[1] &&
		c.K >= 0 && c.K < g.Grid[2]
}

// LinearIndex returns the position of c in the block index table.
//
// Blocks are ordered inline-major with the sample axis varying fastest.
func (g *Geometry) LinearIndex(c BlockCoord) int {
	return (c.I*g.Grid[1]+c.J)*g.Grid[2] + c.K
}

// BlockOf returns the block containing sample (il, xl, z).
// The caller must have range-checked the coordinates.
func (g *Geometry) BlockOf(il, xl, z int) BlockCoord {
	return BlockCoord{
		I: il / g.Block[0],
		J: xl / g.Block[1],
		K: z / g.Block[2],
	}
}

// BlockOrigin returns the cube coordinate of the first sample of block c.
func (g *Geometry) BlockOrigin(c BlockCoord) Shape {
	return Shape{c.I * g.Block[0], c.J * g.Block[1], c.K * g.Block[2]}
}

// BlockExtent returns the half-open real extent [lo, hi) of block c, clipped to the
// cube. Samples of the decoded block outside this range are padding.
func (g *Geometry) BlockExtent(c BlockCoord) (lo, hi Shape) {
	lo = g.BlockOrigin(c)
	for axis := range lo {
		hi[axis] = min(lo[axis]+g.Block[axis], g.Dims[axis])
	}

	return lo, hi
}

// BlockRange returns the inclusive range of block indices along axis that intersect
// the half-open sample range [from, to). The range must be non-empty and in bounds.
func (g *Geometry) BlockRange(axis, from, to int) (first, last int) {
	return from / g.Block[axis], (to - 1) / g.Block[axis]
}

// Offset returns the position of local coordinate (i, j, k) inside a decoded block.
func (g *Geometry) Offset(i, j, k int) int {
	return (i*g.Block[1]+j)*g.Block[2] + k
}

// TraceIndex returns the inline-major flat index of trace (il, xl), the order used by
// trace-sequential formats.
func (g *Geometry) TraceIndex(il, xl int) int {
	return il*g.Dims[AxisCrossline] + xl
}
