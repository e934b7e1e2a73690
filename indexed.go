package vecx

import "iter"

// Indexed is a deduplicated set of Vecs plus one index per input element
// (palette + indices). The palette lists distinct values in order of first
// appearance, and Indices()[i] is the palette slot of input element i, so
// the original sequence is Values()[Indices()[i]] for every i.
//
// Deduplication compares element content by bit pattern. For floating-point
// element types this makes indexing deterministic in the presence of NaN:
// bitwise-identical NaNs share a palette slot, NaNs with different payloads
// and the two signed zeros get distinct slots.
//
// An Indexed is not safe for concurrent mutation.
type Indexed[T Scalar] struct {
	values  []Vec[T]
	indices []uint32
	lookup  map[string]uint32

	// dim is the common vector length, or -1 before the first insert.
	dim int
}

// NewIndexed returns an empty Indexed.
func NewIndexed[T Scalar]() *Indexed[T] {
	return &Indexed[T]{
		lookup: make(map[string]uint32),
		dim:    -1,
	}
}

// FromVecs builds an Indexed from vecs in a single linear pass.
//
// All input Vecs must have the same length; a mixed-length input yields
// ErrLengthMismatch. An empty input is valid and yields an empty Indexed.
func FromVecs[T Scalar](vecs []Vec[T]) (*Indexed[T], error) {
	ix := &Indexed[T]{
		indices: make([]uint32, 0, len(vecs)),
		lookup:  make(map[string]uint32, len(vecs)),
		dim:     -1,
	}
	for _, v := range vecs {
		if _, _, err := ix.Insert(v); err != nil {
			return nil, err
		}
	}
	return ix, nil
}

// Insert appends v to the indexed sequence. It returns the palette slot
// assigned to v and whether a new palette entry was created.
//
// The first inserted Vec fixes the common length; later Vecs of a different
// length yield ErrLengthMismatch and leave the Indexed unchanged.
func (ix *Indexed[T]) Insert(v Vec[T]) (uint32, bool, error) {
	if ix.dim >= 0 && v.Len() != ix.dim {
		return 0, false, &ErrLengthMismatch{Expected: ix.dim, Actual: v.Len()}
	}

	k := v.key()
	if slot, ok := ix.lookup[k]; ok {
		ix.indices = append(ix.indices, slot)
		return slot, false, nil
	}

	slot := uint32(len(ix.values))
	ix.values = append(ix.values, v.Clone())
	ix.lookup[k] = slot
	ix.indices = append(ix.indices, slot)
	ix.dim = v.Len()

	return slot, true, nil
}

// Values returns the palette: the distinct Vecs in order of first appearance.
// The returned slice is owned by the Indexed and must not be modified.
func (ix *Indexed[T]) Values() []Vec[T] {
	return ix.values
}

// Indices returns one palette slot per input element.
// The returned slice is owned by the Indexed and must not be modified.
func (ix *Indexed[T]) Indices() []uint32 {
	return ix.indices
}

// Len returns the number of indexed input elements.
func (ix *Indexed[T]) Len() int {
	return len(ix.indices)
}

// UniqueLen returns the number of distinct palette entries.
func (ix *Indexed[T]) UniqueLen() int {
	return len(ix.values)
}

// At returns the reconstructed input element at position i.
// Returns ErrIndexOutOfBounds if i is outside [0, Len).
func (ix *Indexed[T]) At(i int) (Vec[T], error) {
	if i < 0 || i >= len(ix.indices) {
		return Vec[T]{}, &ErrIndexOutOfBounds{Index: i, Length: len(ix.indices)}
	}
	return ix.values[ix.indices[i]], nil
}

// Decode reconstructs the full original sequence.
func (ix *Indexed[T]) Decode() []Vec[T] {
	out := make([]Vec[T], len(ix.indices))
	for i, slot := range ix.indices {
		out[i] = ix.values[slot]
	}
	return out
}

// All returns an iterator over the reconstructed input sequence in order.
func (ix *Indexed[T]) All() iter.Seq[Vec[T]] {
	return func(yield func(Vec[T]) bool) {
		for _, slot := range ix.indices {
			if !yield(ix.values[slot]) {
				return
			}
		}
	}
}
