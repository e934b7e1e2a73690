package vecx

import (
	"encoding/binary"
	"fmt"
)

// Vec is a fixed-length, ordered tuple of numeric scalars.
//
// The length is fixed at construction and never changes. Arithmetic methods
// return a new Vec; the Assign variants mutate the receiver in place.
//
// Like a Go slice, assigning a Vec to another variable aliases the same
// backing elements. Use Clone before an in-place mutation when the original
// must stay intact. Vecs are safe for concurrent reads; concurrent in-place
// mutation requires external synchronization.
type Vec[T Scalar] struct {
	elems []T
}

// New builds a Vec from the given elements. The resulting length is
// len(elems) and is fixed for the lifetime of the value.
func New[T Scalar](elems ...T) Vec[T] {
	return FromSlice(elems)
}

// FromSlice builds a Vec by copying elems. The Vec does not alias the
// input slice.
func FromSlice[T Scalar](elems []T) Vec[T] {
	buf := make([]T, len(elems))
	copy(buf, elems)
	return Vec[T]{elems: buf}
}

// Broadcast builds a Vec of length n with every position set to s.
// Returns ErrInvalidLength if n is negative.
func Broadcast[T Scalar](s T, n int) (Vec[T], error) {
	if n < 0 {
		return Vec[T]{}, &ErrInvalidLength{Length: n}
	}
	buf := make([]T, n)
	for i := range buf {
		buf[i] = s
	}
	return Vec[T]{elems: buf}, nil
}

// Len returns the number of elements.
func (v Vec[T]) Len() int {
	return len(v.elems)
}

// At returns the element at position i.
// Returns ErrIndexOutOfBounds if i is outside [0, Len).
func (v Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.elems) {
		var zero T
		return zero, &ErrIndexOutOfBounds{Index: i, Length: len(v.elems)}
	}
	return v.elems[i], nil
}

// Elements returns a copy of the elements.
func (v Vec[T]) Elements() []T {
	out := make([]T, len(v.elems))
	copy(out, v.elems)
	return out
}

// Clone returns a Vec with its own copy of the elements.
func (v Vec[T]) Clone() Vec[T] {
	return FromSlice(v.elems)
}

// String returns a string representation of the Vec.
func (v Vec[T]) String() string {
	return fmt.Sprint(v.elems)
}

// combine applies op positionwise and returns the result as a new Vec.
func (v Vec[T]) combine(o Vec[T], op func(a, b T) T) (Vec[T], error) {
	if len(v.elems) != len(o.elems) {
		return Vec[T]{}, &ErrLengthMismatch{Expected: len(v.elems), Actual: len(o.elems)}
	}
	out := make([]T, len(v.elems))
	for i := range v.elems {
		out[i] = op(v.elems[i], o.elems[i])
	}
	return Vec[T]{elems: out}, nil
}

// checkDivisor rejects zero divisor elements for integer element types.
// Floating-point division follows IEEE semantics and is never rejected.
func checkDivisor[T Scalar](divisor []T) error {
	if isFloat[T]() {
		return nil
	}
	for i, e := range divisor {
		if e == 0 {
			return &ErrDivisionByZero{Position: i}
		}
	}
	return nil
}

// checkScalarDivisor rejects a zero scalar divisor for integer element types.
func checkScalarDivisor[T Scalar](s T) error {
	if !isFloat[T]() && s == 0 {
		return &ErrDivisionByZero{Position: -1}
	}
	return nil
}

// Add returns the elementwise sum of v and o.
// Returns ErrLengthMismatch if the lengths differ.
func (v Vec[T]) Add(o Vec[T]) (Vec[T], error) {
	return v.combine(o, func(a, b T) T { return a + b })
}

// Sub returns the elementwise difference of v and o.
func (v Vec[T]) Sub(o Vec[T]) (Vec[T], error) {
	return v.combine(o, func(a, b T) T { return a - b })
}

// Mul returns the elementwise product of v and o.
func (v Vec[T]) Mul(o Vec[T]) (Vec[T], error) {
	return v.combine(o, func(a, b T) T { return a * b })
}

// Div returns the elementwise quotient of v and o.
//
// For integer element types a zero element in o yields ErrDivisionByZero.
// Floating-point types follow IEEE semantics (±Inf, NaN) and never fail.
func (v Vec[T]) Div(o Vec[T]) (Vec[T], error) {
	if len(v.elems) != len(o.elems) {
		return Vec[T]{}, &ErrLengthMismatch{Expected: len(v.elems), Actual: len(o.elems)}
	}
	if err := checkDivisor(o.elems); err != nil {
		return Vec[T]{}, err
	}
	return v.combine(o, func(a, b T) T { return a / b })
}

// Mod returns the elementwise remainder of v and o.
// Same failure semantics as Div; floating-point types use math.Mod.
func (v Vec[T]) Mod(o Vec[T]) (Vec[T], error) {
	if len(v.elems) != len(o.elems) {
		return Vec[T]{}, &ErrLengthMismatch{Expected: len(v.elems), Actual: len(o.elems)}
	}
	if err := checkDivisor(o.elems); err != nil {
		return Vec[T]{}, err
	}
	return v.combine(o, scalarMod[T])
}

// AddScalar returns a Vec with s added to every element.
func (v Vec[T]) AddScalar(s T) Vec[T] {
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		out[i] = e + s
	}
	return Vec[T]{elems: out}
}

// SubScalar returns a Vec with s subtracted from every element.
func (v Vec[T]) SubScalar(s T) Vec[T] {
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		out[i] = e - s
	}
	return Vec[T]{elems: out}
}

// MulScalar returns a Vec with every element multiplied by s.
func (v Vec[T]) MulScalar(s T) Vec[T] {
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		out[i] = e * s
	}
	return Vec[T]{elems: out}
}

// DivScalar returns a Vec with every element divided by s.
// For integer element types a zero s yields ErrDivisionByZero.
func (v Vec[T]) DivScalar(s T) (Vec[T], error) {
	if err := checkScalarDivisor(s); err != nil {
		return Vec[T]{}, err
	}
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		out[i] = e / s
	}
	return Vec[T]{elems: out}, nil
}

// ModScalar returns a Vec with every element reduced modulo s.
// Same failure semantics as DivScalar.
func (v Vec[T]) ModScalar(s T) (Vec[T], error) {
	if err := checkScalarDivisor(s); err != nil {
		return Vec[T]{}, err
	}
	out := make([]T, len(v.elems))
	for i, e := range v.elems {
		out[i] = scalarMod(e, s)
	}
	return Vec[T]{elems: out}, nil
}

// AddAssign adds o to v in place.
// On error the receiver is left unchanged.
func (v *Vec[T]) AddAssign(o Vec[T]) error {
	if len(v.elems) != len(o.elems) {
		return &ErrLengthMismatch{Expected: len(v.elems), Actual: len(o.elems)}
	}
	for i, e := range o.elems {
		v.elems[i] += e
	}
	return nil
}

// SubAssign subtracts o from v in place.
func (v *Vec[T]) SubAssign(o Vec[T]) error {
	if len(v.elems) != len(o.elems) {
		return &ErrLengthMismatch{Expected: len(v.elems), Actual: len(o.elems)}
	}
	for i, e := range o.elems {
		v.elems[i] -= e
	}
	return nil
}

// MulAssign multiplies v by o in place.
func (v *Vec[T]) MulAssign(o Vec[T]) error {
	if len(v.elems) != len(o.elems) {
		return &ErrLengthMismatch{Expected: len(v.elems), Actual: len(o.elems)}
	}
	for i, e := range o.elems {
		v.elems[i] *= e
	}
	return nil
}

// DivAssign divides v by o in place. Same failure semantics as Div;
// on error the receiver is left unchanged.
func (v *Vec[T]) DivAssign(o Vec[T]) error {
	if len(v.elems) != len(o.elems) {
		return &ErrLengthMismatch{Expected: len(v.elems), Actual: len(o.elems)}
	}
	if err := checkDivisor(o.elems); err != nil {
		return err
	}
	for i, e := range o.elems {
		v.elems[i] /= e
	}
	return nil
}

// ModAssign reduces v modulo o in place. Same failure semantics as Mod.
func (v *Vec[T]) ModAssign(o Vec[T]) error {
	if len(v.elems) != len(o.elems) {
		return &ErrLengthMismatch{Expected: len(v.elems), Actual: len(o.elems)}
	}
	if err := checkDivisor(o.elems); err != nil {
		return err
	}
	for i, e := range o.elems {
		v.elems[i] = scalarMod(v.elems[i], e)
	}
	return nil
}

// AddScalarAssign adds s to every element in place.
func (v *Vec[T]) AddScalarAssign(s T) {
	for i := range v.elems {
		v.elems[i] += s
	}
}

// SubScalarAssign subtracts s from every element in place.
func (v *Vec[T]) SubScalarAssign(s T) {
	for i := range v.elems {
		v.elems[i] -= s
	}
}

// MulScalarAssign multiplies every element by s in place.
func (v *Vec[T]) MulScalarAssign(s T) {
	for i := range v.elems {
		v.elems[i] *= s
	}
}

// DivScalarAssign divides every element by s in place.
// Same failure semantics as DivScalar.
func (v *Vec[T]) DivScalarAssign(s T) error {
	if err := checkScalarDivisor(s); err != nil {
		return err
	}
	for i := range v.elems {
		v.elems[i] /= s
	}
	return nil
}

// ModScalarAssign reduces every element modulo s in place.
// Same failure semantics as DivScalar.
func (v *Vec[T]) ModScalarAssign(s T) error {
	if err := checkScalarDivisor(s); err != nil {
		return err
	}
	for i := range v.elems {
		v.elems[i] = scalarMod(v.elems[i], s)
	}
	return nil
}

// Equal reports whether v and o have the same length and every position
// compares equal. Note that NaN != NaN under IEEE semantics; for
// deduplication Indexed uses bit-pattern equality instead.
func (v Vec[T]) Equal(o Vec[T]) bool {
	if len(v.elems) != len(o.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != o.elems[i] {
			return false
		}
	}
	return true
}

// Compare performs a lexicographic comparison: the first differing position
// decides. It returns -1 if v < o, 0 if equal, and 1 if v > o. If one Vec is
// a prefix of the other, the shorter orders first.
//
// For example [1 2 3] > [1 2 2] (decided at position 2) even though not
// every element of [1 2 3] exceeds its counterpart.
func (v Vec[T]) Compare(o Vec[T]) int {
	n := min(len(v.elems), len(o.elems))
	for i := 0; i < n; i++ {
		switch {
		case v.elems[i] < o.elems[i]:
			return -1
		case v.elems[i] > o.elems[i]:
			return 1
		}
	}
	switch {
	case len(v.elems) < len(o.elems):
		return -1
	case len(v.elems) > len(o.elems):
		return 1
	}
	return 0
}

// Less reports whether v orders before o lexicographically.
func (v Vec[T]) Less(o Vec[T]) bool {
	return v.Compare(o) < 0
}

// LessOrEqual reports whether v orders before or equal to o.
func (v Vec[T]) LessOrEqual(o Vec[T]) bool {
	return v.Compare(o) <= 0
}

// Greater reports whether v orders after o lexicographically.
func (v Vec[T]) Greater(o Vec[T]) bool {
	return v.Compare(o) > 0
}

// GreaterOrEqual reports whether v orders after or equal to o.
func (v Vec[T]) GreaterOrEqual(o Vec[T]) bool {
	return v.Compare(o) >= 0
}

// Convert returns a Vec[U] with every element converted from T to U using Go
// numeric conversion rules (truncating float-to-int, widening and narrowing
// int-to-int). It is a package-level function because Go methods cannot
// introduce type parameters.
func Convert[U, T Scalar](v Vec[T]) Vec[U] {
	out := make([]U, len(v.elems))
	for i, e := range v.elems {
		out[i] = U(e)
	}
	return Vec[U]{elems: out}
}

// key returns the content key used for deduplication: the little-endian
// bit patterns of all elements. Two Vecs share a key iff they have the same
// length and bitwise-identical elements.
func (v Vec[T]) key() string {
	buf := make([]byte, 0, len(v.elems)*8)
	for _, e := range v.elems {
		buf = binary.LittleEndian.AppendUint64(buf, scalarBits(e))
	}
	return string(buf)
}
