// Package snapshot provides binary serialization for indexed vector sets.
//
// A snapshot stores the palette and index sequence of a vecx.Indexed in a
// self-describing format: a fixed header carrying the element type, vector
// length and counts, followed by a CRC32-checksummed payload with optional
// LZ4 or ZSTD block compression.
//
//	ix, _ := vecx.FromVecs(colors)
//	_ = snapshot.Save("colors.vxi", ix, snapshot.WithCompression(snapshot.CompressionLZ4))
//	ix2, _ := snapshot.Load[uint8]("colors.vxi")
//
// The element type is part of the format: reading a snapshot with a
// different type parameter than it was written with fails with
// ErrElementTypeMismatch rather than reinterpreting bytes.
package snapshot
