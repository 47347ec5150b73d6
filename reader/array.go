package reader

import (
	"gonum.org/v1/gonum/mat"
)

// Array is the common view of every read result.
type Array interface {
	// Shape returns the extent along each dimension of the result.
	Shape() []int
	// Values returns the samples in row-major order. The slice is owned by the array.
	Values() []float32
}

// Slice is a 2-D read result in row-major order.
//
// For inlines the rows are crosslines, for crosslines and diagonals they are traces
// ordered by inline, and for depth slices they are inlines. Columns are samples,
// except for depth slices where they are crosslines.
type Slice struct {
	Rows, Cols int
	Data       []float32
}

var _ Array = (*Slice)(nil)

// At returns the value at row r, column c.
func (s *Slice) At(r, c int) float32 {
	return s.Data[r*s.Cols+c]
}

// Row returns row r. The returned slice aliases the slice data.
func (s *Slice) Row(r int) []float32 {
	return s.Data[r*s.Cols : (r+1)*s.Cols]
}

// Shape returns [Rows, Cols].
func (s *Slice) Shape() []int {
	return []int{s.Rows, s.Cols}
}

// Values returns the row-major samples.
func (s *Slice) Values() []float32 {
	return s.Data
}

// Dense converts the slice to a float64 gonum matrix.
// It returns nil for a slice with no rows or columns.
func (s *Slice) Dense() *mat.Dense {
	if s.Rows == 0 || s.Cols == 0 {
		return nil
	}

	data := make([]float64, len(s.Data))
	for i, v := range s.Data {
		data[i] = float64(v)
	}

	return mat.NewDense(s.Rows, s.Cols, data)
}

// Volume is a 3-D read result laid out inline-major with the sample axis fastest.
type Volume struct {
	NI, NX, NZ int
	Data       []float32
}

var _ Array = (*Volume)(nil)

// At returns the sample at (i, j, k) relative to the volume origin.
func (v *Volume) At(i, j, k int) float32 {
	return v.Data[(i*v.NX+j)*v.NZ+k]
}

// Trace returns trace (i, j). The returned slice aliases the volume data.
func (v *Volume) Trace(i, j int) []float32 {
	start := (i*v.NX + j) * v.NZ

	return v.Data[start : start+v.NZ]
}

// Shape returns [NI, NX, NZ].
func (v *Volume) Shape() []int {
	return []int{v.NI, v.NX, v.NZ}
}

// Values returns the inline-major samples.
func (v *Volume) Values() []float32 {
	return v.Data
}
