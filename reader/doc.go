// Package reader provides random access to seismic cubes stored as compressed block tiles.
//
// A Reader answers six kinds of geometric queries against a cube without decoding the
// whole volume: inlines, crosslines, depth slices, the two families of vertical diagonal
// sections, and axis-aligned subvolumes. Each query touches only the blocks that
// intersect it, and copies only the real samples of each block into the result.
//
// # Opening
//
//	r, err := reader.Open("survey.scube", reader.WithPreload(true))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	inline, err := r.ReadInline(120)
//
// In preload mode the whole compressed payload is read into memory once and the file is
// closed before Open returns. In streaming mode every block fetch is one positional read
// against the still-open file. Results are identical in both modes.
//
// # Indices
//
// All read operations take 0-based indices. Inlines() and Crosslines() map them to the
// line numbers recorded in the container, and InlineIndex/CrosslineIndex go the other way.
//
// # Errors
//
// Requests outside the cube fail with errs.ErrOutOfRange before any I/O. Storage and
// decoding failures surface as errs.ErrStorage and errs.ErrCodec; no partial result is
// ever returned.
//
// # Thread Safety
//
// A Reader is safe for concurrent reads. Close must not race in-flight reads.
package reader
