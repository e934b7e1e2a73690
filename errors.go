package vecx

import "fmt"

// ErrLengthMismatch indicates an elementwise operation between two vectors of
// different lengths, or an indexing input mixing vector lengths.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfBounds indicates element access outside [0, Len).
type ErrIndexOutOfBounds struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("index out of bounds: index %d, length %d", e.Index, e.Length)
}

// ErrDivisionByZero indicates integer division or modulo by zero.
// Position is the element position of the zero divisor, or -1 for a
// zero scalar divisor.
type ErrDivisionByZero struct {
	Position int
}

func (e *ErrDivisionByZero) Error() string {
	if e.Position < 0 {
		return "division by zero: scalar divisor is zero"
	}
	return fmt.Sprintf("division by zero: divisor element %d is zero", e.Position)
}

// ErrInvalidLength indicates an invalid requested vector length.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid length: %d", e.Length)
}
