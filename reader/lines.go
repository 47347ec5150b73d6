package reader

import (
	"github.com/arloliu/seiscube/errs"
)

// Inlines returns the inline number of every inline index.
func (r *Reader) Inlines() []int {
	return lineNumbers(r.header.FirstInline, r.header.InlineStep, r.NInlines())
}

// Crosslines returns the crossline number of every crossline index.
func (r *Reader) Crosslines() []int {
	return lineNumbers(r.header.FirstCrossline, r.header.CrosslineStep, r.NCrosslines())
}

// Samples returns the time or depth of every sample index.
func (r *Reader) Samples() []float64 {
	start := float64(r.header.SampleStart)
	interval := float64(r.header.SampleInterval)

	out := make([]float64, r.NSamples())
	for k := range out {
		out[k] = start + float64(k)*interval
	}

	return out
}

// InlineIndex returns the 0-based index of the inline numbered number.
func (r *Reader) InlineIndex(number int) (int, error) {
	return lineIndex("inline_index", number, r.header.FirstInline, r.header.InlineStep, r.NInlines())
}

// CrosslineIndex returns the 0-based index of the crossline numbered number.
func (r *Reader) CrosslineIndex(number int) (int, error) {
	return lineIndex("crossline_index", number, r.header.FirstCrossline, r.header.CrosslineStep, r.NCrosslines())
}

func lineNumbers(first, step int32, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = int(first) + i*int(step)
	}

	return out
}

// lineIndex inverts number = first + i*step. Numbers between lines or beyond the last
// line are out of range; the reported interval spans the first and last line numbers.
func lineIndex(op string, number int, first, step int32, n int) (int, error) {
	offset := number - int(first)
	if offset%int(step) == 0 {
		if i := offset / int(step); i >= 0 && i < n {
			return i, nil
		}
	}

	last := int(first) + (n-1)*int(step)

	return 0, errs.NewOutOfRange(op, "number", number, min(int(first), last), max(int(first), last))
}
