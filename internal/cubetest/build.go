package cubetest

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seiscube/codec"
	"github.com/arloliu/seiscube/format"
	"github.com/arloliu/seiscube/geometry"
	"github.com/arloliu/seiscube/internal/hash"
	"github.com/arloliu/seiscube/section"
)

// BuildOptions controls how Build lays out a container.
type BuildOptions struct {
	Block       geometry.Shape
	Tier        format.PrecisionTier
	Compression format.CompressionType
	BigEndian   bool

	// PadNaN fills samples beyond the cube extent with NaN instead of replicating the
	// nearest edge sample. Only the lossless tier can store NaN.
	PadNaN bool

	// ReversePayload stores block payloads in reverse linear order.
	ReversePayload bool

	// Line metadata; a zero step keeps the header defaults.
	FirstInline, InlineStep       int32
	FirstCrossline, CrosslineStep int32
	SampleStart, SampleInterval   float32
}

// Build encodes cube into a complete container image.
//
// Returns:
//   - []byte: Header, block index and payload
//   - error: Geometry or codec errors
func Build(cube *Cube, opts BuildOptions) ([]byte, error) {
	g, err := geometry.New(geometry.Shape{cube.NI, cube.NX, cube.NZ}, opts.Block, opts.Tier)
	if err != nil {
		return nil, err
	}

	flag := section.NewFlag(opts.Tier, opts.Compression)
	if opts.BigEndian {
		flag.WithBigEndian()
	}
	engine := flag.GetEndianEngine()

	q, err := codec.New(opts.Compression, engine)
	if err != nil {
		return nil, err
	}

	header := section.NewHeader(flag, g.Dims, g.Block)
	if opts.InlineStep != 0 {
		header.FirstInline, header.InlineStep = opts.FirstInline, opts.InlineStep
	}
	if opts.CrosslineStep != 0 {
		header.FirstCrossline, header.CrosslineStep = opts.FirstCrossline, opts.CrosslineStep
	}
	if opts.SampleInterval != 0 {
		header.SampleStart, header.SampleInterval = opts.SampleStart, opts.SampleInterval
	}

	coords := make([]geometry.BlockCoord, 0, g.BlockCount())
	for i := range g.Grid[0] {
		for j := range g.Grid[1] {
			for k := range g.Grid[2] {
				coords = append(coords, geometry.BlockCoord{I: i, J: j, K: k})
			}
		}
	}

	order := coords
	if opts.ReversePayload {
		order = make([]geometry.BlockCoord, len(coords))
		for i, c := range coords {
			order[len(coords)-1-i] = c
		}
	}

	index := make([]section.BlockIndexEntry, g.BlockCount())
	var payload []byte
	for _, c := range order {
		data, err := q.Encode(blockSamples(cube, g, c, opts.PadNaN), g.Block, g.Tier)
		if err != nil {
			return nil, err
		}

		index[g.LinearIndex(c)] = section.BlockIndexEntry{
			Offset: uint64(len(payload)),
			Length: uint32(len(data)), //nolint: gosec
		}
		payload = append(payload, data...)
	}

	indexBytes := section.EncodeBlockIndex(index, engine)
	header.PayloadSize = uint64(len(payload))
	header.IndexChecksum = hash.Checksum(indexBytes)

	out := make([]byte, 0, section.HeaderSize+len(indexBytes)+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, indexBytes...)
	out = append(out, payload...)

	return out, nil
}

// blockSamples gathers the full, padded block c from the cube.
func blockSamples(cube *Cube, g *geometry.Geometry, c geometry.BlockCoord, padNaN bool) []float32 {
	origin := g.BlockOrigin(c)
	out := make([]float32, g.BlockLen())
	nan := float32(math.NaN())

	for i := range g.Block[0] {
		for j := range g.Block[1] {
			for k := range g.Block[2] {
				il, xl, z := origin[0]+i, origin[1]+j, origin[2]+k
				inside := il < cube.NI && xl < cube.NX && z < cube.NZ
				switch {
				case inside:
					out[g.Offset(i, j, k)] = cube.At(il, xl, z)
				case padNaN:
					out[g.Offset(i, j, k)] = nan
				default:
					out[g.Offset(i, j, k)] = cube.At(min(il, cube.NI-1), min(xl, cube.NX-1), min(z, cube.NZ-1))
				}
			}
		}
	}

	return out
}

// MustBuild is like Build but fails the test on error.
func MustBuild(tb testing.TB, cube *Cube, opts BuildOptions) []byte {
	tb.Helper()

	data, err := Build(cube, opts)
	require.NoError(tb, err)

	return data
}

// WriteFile builds the container into a file under tb.TempDir and returns its path.
func WriteFile(tb testing.TB, cube *Cube, opts BuildOptions) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "cube.scube")
	require.NoError(tb, os.WriteFile(path, MustBuild(tb, cube, opts), 0o600))

	return path
}

// Tolerance returns the largest permitted absolute error when reading cube back at tier.
//
// Edge-replicated padding keeps every block inside the cube's global range, so the global
// quantization step bounds every block. A small relative slack absorbs float32 rounding.
func Tolerance(cube *Cube, tier format.PrecisionTier) float64 {
	if tier.IsLossless() {
		return 0
	}

	lo, hi := cube.Range()

	return codec.MaxError(lo, hi, tier) + 1e-5*math.Max(math.Abs(lo), math.Abs(hi))
}
