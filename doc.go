// Package vecx provides fixed-length numeric vectors for Go.
//
// A Vec is an ordered tuple of numeric scalars whose length is fixed at
// construction. Vecs support elementwise arithmetic against another Vec of
// the same length, broadcast arithmetic against a single scalar,
// lexicographic ordering, and explicit per-element numeric conversion.
//
// # Quick Start
//
//	a := vecx.New(1, 2, 3)
//	b := vecx.New(4, 5, 6)
//
//	sum, _ := a.Add(b)          // [5 7 9]
//	shifted := a.AddScalar(1)   // [2 3 4]
//
//	a.Less(b)                   // true, decided at position 0
//
// # Unique Indexing
//
// Indexed compresses a sequence of Vecs into the distinct values in order of
// first appearance plus one index per input element (palette + indices). This
// layout is common in 3D data formats where many vertices share the same
// coordinate or color:
//
//	colors := []vecx.Vec[uint8]{
//	    vecx.New[uint8](255, 0, 0),
//	    vecx.New[uint8](0, 255, 0),
//	    vecx.New[uint8](255, 0, 0),
//	}
//	ix, _ := vecx.FromVecs(colors)
//	ix.Values()  // [[255 0 0] [0 255 0]]
//	ix.Indices() // [0 1 0]
//
// Deduplication keys floating-point elements by bit pattern, so distinct NaN
// payloads and the two signed zeros occupy distinct palette slots. This keeps
// indexing deterministic in the presence of NaN; see Indexed for details.
//
// The snapshot subpackage serializes an Indexed to a compact, checksummed
// binary form with optional LZ4 or ZSTD compression.
package vecx
