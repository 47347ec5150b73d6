package reader

import (
	"github.com/arloliu/seiscube/errs"
)

// Operation names used in errors, logs and metric labels.
const (
	opInline                 = "inline"
	opCrossline              = "crossline"
	opZSlice                 = "zslice"
	opCorrelatedDiagonal     = "correlated_diagonal"
	opAnticorrelatedDiagonal = "anticorrelated_diagonal"
	opSubvolume              = "subvolume"
	opTrace                  = "trace"
	opVolume                 = "volume"
)

// checkIndex validates lo <= v <= hi.
func checkIndex(op, param string, v, lo, hi int) error {
	if v < lo || v > hi {
		return errs.NewOutOfRange(op, param, v, lo, hi)
	}

	return nil
}

// checkRange validates the half-open range 0 <= from < to <= n.
func checkRange(op, fromParam, toParam string, from, to, n int) error {
	if err := checkIndex(op, fromParam, from, 0, n-1); err != nil {
		return err
	}

	return checkIndex(op, toParam, to, from+1, n)
}
