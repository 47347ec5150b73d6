// Package blockstore fetches the compressed bytes of individual cube blocks.
//
// Two Store implementations share one contract and are observationally equivalent:
//
//   - Preload reads the whole payload section into memory at construction and serves
//     every fetch as a sub-slice lookup.
//   - Streaming keeps a positional reader and issues one ReadAt per fetch, with no caching.
//
// Both are safe for concurrent Fetch calls provided the underlying io.ReaderAt is, which
// holds for *os.File and *bytes.Reader.
package blockstore
