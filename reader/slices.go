package reader

import (
	"github.com/arloliu/seiscube/geometry"
)

// ReadInline returns inline il as an (n_crosslines, n_samples) slice.
//
// Only the row of blocks containing il is decoded.
func (r *Reader) ReadInline(il int) (*Slice, error) {
	return track(r, opInline, func() (*Slice, error) {
		if err := (InlineRequest{IL: il}).Validate(r.geo); err != nil {
			return nil, err
		}

		g := r.geo
		data, err := r.readBox(geometry.Shape{il, 0, 0}, geometry.Shape{il + 1, g.NCrosslines(), g.NSamples()})
		if err != nil {
			return nil, err
		}

		return &Slice{Rows: g.NCrosslines(), Cols: g.NSamples(), Data: data}, nil
	})
}

// ReadCrossline returns crossline xl as an (n_inlines, n_samples) slice.
func (r *Reader) ReadCrossline(xl int) (*Slice, error) {
	return track(r, opCrossline, func() (*Slice, error) {
		if err := (CrosslineRequest{XL: xl}).Validate(r.geo); err != nil {
			return nil, err
		}

		g := r.geo
		data, err := r.readBox(geometry.Shape{0, xl, 0}, geometry.Shape{g.NInlines(), xl + 1, g.NSamples()})
		if err != nil {
			return nil, err
		}

		return &Slice{Rows: g.NInlines(), Cols: g.NSamples(), Data: data}, nil
	})
}

// ReadZSlice returns the depth slice at sample z as an (n_inlines, n_crosslines) slice.
//
// Only the layer of blocks containing z is decoded.
func (r *Reader) ReadZSlice(z int) (*Slice, error) {
	return track(r, opZSlice, func() (*Slice, error) {
		if err := (ZSliceRequest{Z: z}).Validate(r.geo); err != nil {
			return nil, err
		}

		g := r.geo
		data, err := r.readBox(geometry.Shape{0, 0, z}, geometry.Shape{g.NInlines(), g.NCrosslines(), z + 1})
		if err != nil {
			return nil, err
		}

		return &Slice{Rows: g.NInlines(), Cols: g.NCrosslines(), Data: data}, nil
	})
}

// ReadTrace returns the n_samples values of trace (il, xl).
func (r *Reader) ReadTrace(il, xl int) ([]float32, error) {
	return track(r, opTrace, func() ([]float32, error) {
		if err := (TraceRequest{IL: il, XL: xl}).Validate(r.geo); err != nil {
			return nil, err
		}

		return r.readTraces([]tracePos{{il: il, xl: xl}})
	})
}
