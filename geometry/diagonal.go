package geometry

// Correlated diagonals run through traces where inline and crossline increase
// together. Diagonal d holds the traces with il - xl == d.

// CorrelatedDiagonalBounds returns the inclusive range of valid correlated diagonal
// indices, [-(nXL-1), nIL-1].
func CorrelatedDiagonalBounds(nIL, nXL int) (lo, hi int) {
	return -(nXL - 1), nIL - 1
}

// CorrelatedDiagonalLength returns the number of traces on correlated diagonal d.
// The result is zero for d outside CorrelatedDiagonalBounds.
func CorrelatedDiagonalLength(d, nIL, nXL int) int {
	var n int
	if d >= 0 {
		n = min(nIL-d, nXL)
	} else {
		n = min(nIL, nXL+d)
	}

	return max(n, 0)
}

// CorrelatedDiagonalTrace returns the (il, xl) coordinate of trace k on correlated
// diagonal d.
func CorrelatedDiagonalTrace(d, k int) (il, xl int) {
	if d >= 0 {
		return k + d, k
	}

	return k, k - d
}

// Anticorrelated diagonals run through traces where inline increases while crossline
// decreases. Diagonal d holds the traces with il + xl == d, which is the d-th
// anti-diagonal of the inline-major trace grid.

// AnticorrelatedDiagonalBounds returns the inclusive range of valid anticorrelated
// diagonal indices, [0, nIL+nXL-2].
func AnticorrelatedDiagonalBounds(nIL, nXL int) (lo, hi int) {
	return 0, nIL + nXL - 2
}

// AnticorrelatedDiagonalLength returns the number of traces on anticorrelated
// diagonal d. The result is zero for d outside AnticorrelatedDiagonalBounds.
func AnticorrelatedDiagonalLength(d, nIL, nXL int) int {
	if d < 0 {
		return 0
	}

	var n int
	if d < nXL {
		n = min(d+1, nXL, nIL)
	} else {
		n = min(nIL-(d-nXL+1), nXL)
	}

	return max(n, 0)
}

// AnticorrelatedDiagonalTrace returns the (il, xl) coordinate of trace k on
// anticorrelated diagonal d.
//
// While d < nXL the diagonal starts on the first inline at crossline d; beyond that
// it starts on the last crossline at inline d-nXL+1.
func AnticorrelatedDiagonalTrace(d, k, nXL int) (il, xl int) {
	if d < nXL {
		return k, d - k
	}

	return d - nXL + 1 + k, nXL - 1 - k
}
