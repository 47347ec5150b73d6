package reader

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/seiscube/format"
	"github.com/arloliu/seiscube/geometry"
	"github.com/arloliu/seiscube/internal/cubetest"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
}

// requireApprox fails unless got matches want within tol at every position.
func requireApprox(t *testing.T, want, got []float32, tol float64, msgAndArgs ...any) {
	t.Helper()

	require.Len(t, got, len(want), msgAndArgs...)
	if len(want) == 0 {
		return
	}

	w := make([]float64, len(want))
	g := make([]float64, len(got))
	for i := range want {
		w[i] = float64(want[i])
		g[i] = float64(got[i])
	}

	if !floats.EqualApprox(w, g, tol) {
		diff := make([]float64, len(w))
		floats.SubTo(diff, w, g)
		require.Failf(t, "values differ",
			"max abs diff %g exceeds tolerance %g: %v", floats.Norm(diff, math.Inf(1)), tol, msgAndArgs)
	}
}

// openModes opens the same container in preload and streaming mode.
func openModes(t *testing.T, cube *cubetest.Cube, opts cubetest.BuildOptions, extra ...Option) map[string]*Reader {
	t.Helper()

	path := cubetest.WriteFile(t, cube, opts)

	preload, err := Open(path, append([]Option{WithPreload(true)}, extra...)...)
	require.NoError(t, err)
	streaming, err := Open(path, append([]Option{WithPreload(false)}, extra...)...)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = preload.Close()
		_ = streaming.Close()
	})

	return map[string]*Reader{"preload": preload, "streaming": streaming}
}

// newMemReader builds a container in memory and opens it over a bytes.Reader.
func newMemReader(t *testing.T, cube *cubetest.Cube, opts cubetest.BuildOptions, extra ...Option) *Reader {
	t.Helper()

	data := cubetest.MustBuild(t, cube, opts)
	r, err := New(bytes.NewReader(data), int64(len(data)), extra...)
	require.NoError(t, err)

	return r
}

// scenarioCube is the 5x5x50 cube with 4x4x16 blocks, so every axis has a partial block.
func scenarioCube() (*cubetest.Cube, cubetest.BuildOptions) {
	return cubetest.Synthetic(5, 5, 50), cubetest.BuildOptions{
		Block:       geometry.Shape{4, 4, 16},
		Tier:        format.TierLossless,
		Compression: format.CompressionZstd,
	}
}
