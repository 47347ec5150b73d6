package pool

import "sync"

// Slice pools for the per-block scratch buffers used while decoding.
// A read decodes one block at a time per worker, so the pools stay small and warm.
var (
	float32SlicePool = sync.Pool{
		New: func() any { return &[]float32{} },
	}
	byteSlicePool = sync.Pool{
		New: func() any { return &[]byte{} },
	}
)

// GetFloat32Slice retrieves and resizes a float32 slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// Contents are not cleared. The caller must call the returned cleanup function to
// return the slice to the pool, and must not retain the slice afterwards.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []float32: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	block, cleanup := pool.GetFloat32Slice(g.BlockLen())
//	defer cleanup()
func GetFloat32Slice(size int) ([]float32, func()) {
	ptr, _ := float32SlicePool.Get().(*[]float32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float32SlicePool.Put(ptr) }
}

// GetByteSlice retrieves a byte slice with length zero and capacity of at least size.
//
// It is intended as the destination of a decompression call whose output size is known.
// The caller must call the returned cleanup function to return the slice to the pool.
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, 0, size)
		*ptr = slice
	}

	return slice, func() { byteSlicePool.Put(ptr) }
}
