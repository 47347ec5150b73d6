package reader

import (
	"github.com/arloliu/seiscube/geometry"
)

// Request is one of the read requests a Reader can serve.
//
// The set of implementations is closed: InlineRequest, CrosslineRequest, ZSliceRequest,
// CorrelatedDiagonalRequest, AnticorrelatedDiagonalRequest, SubvolumeRequest and
// TraceRequest. Each validates its own parameters against the cube geometry.
type Request interface {
	// Op returns the operation name used in errors and metrics.
	Op() string
	// Validate reports errs.ErrOutOfRange if the request does not fit g.
	Validate(g *geometry.Geometry) error

	read(r *Reader) (Array, error)
}

// InlineRequest reads inline IL.
type InlineRequest struct{ IL int }

// CrosslineRequest reads crossline XL.
type CrosslineRequest struct{ XL int }

// ZSliceRequest reads the depth slice at sample Z.
type ZSliceRequest struct{ Z int }

// CorrelatedDiagonalRequest reads the diagonal of traces with il - xl == D.
type CorrelatedDiagonalRequest struct{ D int }

// AnticorrelatedDiagonalRequest reads the diagonal of traces with il + xl == D.
type AnticorrelatedDiagonalRequest struct{ D int }

// SubvolumeRequest reads the half-open box [MinIL,MaxIL) x [MinXL,MaxXL) x [MinZ,MaxZ).
type SubvolumeRequest struct {
	MinIL, MaxIL int
	MinXL, MaxXL int
	MinZ, MaxZ   int
}

// TraceRequest reads the single trace (IL, XL) as a one-row slice.
type TraceRequest struct{ IL, XL int }

func (InlineRequest) Op() string                 { return opInline }
func (CrosslineRequest) Op() string              { return opCrossline }
func (ZSliceRequest) Op() string                 { return opZSlice }
func (CorrelatedDiagonalRequest) Op() string     { return opCorrelatedDiagonal }
func (AnticorrelatedDiagonalRequest) Op() string { return opAnticorrelatedDiagonal }
func (SubvolumeRequest) Op() string              { return opSubvolume }
func (TraceRequest) Op() string                  { return opTrace }

func (q InlineRequest) Validate(g *geometry.Geometry) error {
	return checkIndex(opInline, "il", q.IL, 0, g.NInlines()-1)
}

func (q CrosslineRequest) Validate(g *geometry.Geometry) error {
	return checkIndex(opCrossline, "xl", q.XL, 0, g.NCrosslines()-1)
}

func (q ZSliceRequest) Validate(g *geometry.Geometry) error {
	return checkIndex(opZSlice, "z", q.Z, 0, g.NSamples()-1)
}

func (q CorrelatedDiagonalRequest) Validate(g *geometry.Geometry) error {
	lo, hi := geometry.CorrelatedDiagonalBounds(g.NInlines(), g.NCrosslines())

	return checkIndex(opCorrelatedDiagonal, "d", q.D, lo, hi)
}

func (q AnticorrelatedDiagonalRequest) Validate(g *geometry.Geometry) error {
	lo, hi := geometry.AnticorrelatedDiagonalBounds(g.NInlines(), g.NCrosslines())

	return checkIndex(opAnticorrelatedDiagonal, "d", q.D, lo, hi)
}

func (q SubvolumeRequest) Validate(g *geometry.Geometry) error {
	if err := checkRange(opSubvolume, "min_il", "max_il", q.MinIL, q.MaxIL, g.NInlines()); err != nil {
		return err
	}
	if err := checkRange(opSubvolume, "min_xl", "max_xl", q.MinXL, q.MaxXL, g.NCrosslines()); err != nil {
		return err
	}

	return checkRange(opSubvolume, "min_z", "max_z", q.MinZ, q.MaxZ, g.NSamples())
}

func (q TraceRequest) Validate(g *geometry.Geometry) error {
	if err := checkIndex(opTrace, "il", q.IL, 0, g.NInlines()-1); err != nil {
		return err
	}

	return checkIndex(opTrace, "xl", q.XL, 0, g.NCrosslines()-1)
}

// asArray keeps a typed nil result from turning into a non-nil Array.
func asArray[T Array](v T, err error) (Array, error) {
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (q InlineRequest) read(r *Reader) (Array, error)    { return asArray(r.ReadInline(q.IL)) }
func (q CrosslineRequest) read(r *Reader) (Array, error) { return asArray(r.ReadCrossline(q.XL)) }
func (q ZSliceRequest) read(r *Reader) (Array, error)    { return asArray(r.ReadZSlice(q.Z)) }

func (q SubvolumeRequest) read(r *Reader) (Array, error) {
	return asArray(r.ReadSubvolume(q.MinIL, q.MaxIL, q.MinXL, q.MaxXL, q.MinZ, q.MaxZ))
}

func (q CorrelatedDiagonalRequest) read(r *Reader) (Array, error) {
	return asArray(r.ReadCorrelatedDiagonal(q.D))
}

func (q AnticorrelatedDiagonalRequest) read(r *Reader) (Array, error) {
	return asArray(r.ReadAnticorrelatedDiagonal(q.D))
}

func (q TraceRequest) read(r *Reader) (Array, error) {
	trace, err := r.ReadTrace(q.IL, q.XL)
	if err != nil {
		return nil, err
	}

	return &Slice{Rows: 1, Cols: len(trace), Data: trace}, nil
}
