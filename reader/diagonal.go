package reader

import (
	"github.com/arloliu/seiscube/geometry"
)

// tracePos addresses one trace of the cube.
type tracePos struct {
	il, xl int
}

// ReadCorrelatedDiagonal returns the traces with il - xl == d as a (rows, n_samples) slice,
// ordered by inline.
//
// Valid d range over [-(n_crosslines-1), n_inlines-1]. Row k is trace (k+d, k) for d >= 0
// and (k, k-d) otherwise.
func (r *Reader) ReadCorrelatedDiagonal(d int) (*Slice, error) {
	return track(r, opCorrelatedDiagonal, func() (*Slice, error) {
		if err := (CorrelatedDiagonalRequest{D: d}).Validate(r.geo); err != nil {
			return nil, err
		}

		n := geometry.CorrelatedDiagonalLength(d, r.geo.NInlines(), r.geo.NCrosslines())
		traces := make([]tracePos, n)
		for k := range traces {
			il, xl := geometry.CorrelatedDiagonalTrace(d, k)
			traces[k] = tracePos{il: il, xl: xl}
		}

		return r.readDiagonal(traces)
	})
}

// ReadAnticorrelatedDiagonal returns the traces with il + xl == d as a (rows, n_samples)
// slice, ordered by inline.
//
// Valid d range over [0, n_inlines+n_crosslines-2].
func (r *Reader) ReadAnticorrelatedDiagonal(d int) (*Slice, error) {
	return track(r, opAnticorrelatedDiagonal, func() (*Slice, error) {
		if err := (AnticorrelatedDiagonalRequest{D: d}).Validate(r.geo); err != nil {
			return nil, err
		}

		nXL := r.geo.NCrosslines()
		n := geometry.AnticorrelatedDiagonalLength(d, r.geo.NInlines(), nXL)
		traces := make([]tracePos, n)
		for k := range traces {
			il, xl := geometry.AnticorrelatedDiagonalTrace(d, k, nXL)
			traces[k] = tracePos{il: il, xl: xl}
		}

		return r.readDiagonal(traces)
	})
}

func (r *Reader) readDiagonal(traces []tracePos) (*Slice, error) {
	data, err := r.readTraces(traces)
	if err != nil {
		return nil, err
	}

	return &Slice{Rows: len(traces), Cols: r.geo.NSamples(), Data: data}, nil
}

// readTraces gathers full traces into a (len(traces), n_samples) row-major array.
//
// Traces sharing a block column are grouped, so every block is decoded at most once
// however many requested traces pass through it.
func (r *Reader) readTraces(traces []tracePos) ([]float32, error) {
	g := r.geo
	nz := g.NSamples()
	out := make([]float32, len(traces)*nz)

	type column struct{ bi, bj int }
	rowsByColumn := make(map[column][]int)
	var columns []column
	for row, t := range traces {
		col := column{bi: t.il / g.Block[0], bj: t.xl / g.Block[1]}
		if _, ok := rowsByColumn[col]; !ok {
			columns = append(columns, col)
		}
		rowsByColumn[col] = append(rowsByColumn[col], row)
	}

	jobs := make([]blockJob, 0, len(columns)*g.Grid[2])
	for _, col := range columns {
		rows := rowsByColumn[col]
		for bk := range g.Grid[2] {
			c := geometry.BlockCoord{I: col.bi, J: col.bj, K: bk}
			blo, bhi := g.BlockExtent(c)
			run := bhi[2] - blo[2]

			jobs = append(jobs, blockJob{
				coord: c,
				scatter: func(block []float32) {
					for _, row := range rows {
						t := traces[row]
						src := g.Offset(t.il-blo[0], t.xl-blo[1], 0)
						dst := row*nz + blo[2]
						copy(out[dst:dst+run], block[src:src+run])
					}
				},
			})
		}
	}

	if err := r.gather(jobs); err != nil {
		return nil, err
	}

	return out, nil
}
