// Package geometry models the shape of a seismic cube and its compression blocks.
//
// A cube is indexed by (inline, crossline, sample). Samples are tiled into fixed-size
// blocks; the number of blocks along each axis is ceil(n/block). Boundary blocks may
// extend past the real cube extent, and the padded region is never part of the cube:
// BlockExtent always clips to the real extent.
//
//	g, _ := geometry.New(geometry.Shape{5, 5, 50}, geometry.Shape{4, 4, 16}, format.Tier8Bit)
//	g.Grid                         // Shape{2, 2, 4}
//	c := g.BlockOf(4, 1, 49)       // BlockCoord{1, 0, 3}
//	lo, hi := g.BlockExtent(c)     // Shape{4, 0, 48}, Shape{5, 4, 50}
//
// The two diagonal traversal families are defined by small pure functions in
// diagonal.go so that length and coordinate mapping are derived from the same
// arithmetic.
package geometry
