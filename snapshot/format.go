package snapshot

import (
	"errors"

	"github.com/hupe1980/vecx"
)

const (
	// MagicNumber identifies vecx snapshot files (ASCII: "VXI1").
	MagicNumber = 0x56584931
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000

	// headerSize is the fixed byte length of the file header.
	headerSize = 44
)

var (
	ErrInvalidMagic        = errors.New("invalid magic number")
	ErrInvalidVersion      = errors.New("unsupported version")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrChecksumMismatch    = errors.New("payload checksum mismatch")
	ErrElementTypeMismatch = errors.New("element type mismatch")
	ErrCorruptPayload      = errors.New("corrupt payload")
)

// fileHeader is the fixed header at the start of every snapshot.
// Layout (little-endian):
//
//	Magic       uint32
//	Version     uint32
//	ElemType    uint8
//	Compression uint8
//	Reserved    [2]byte
//	Dim         uint32
//	ValueCount  uint64
//	IndexCount  uint64
//	PayloadSize uint64
//	Checksum    uint32  (CRC32-IEEE of the stored payload)
type fileHeader struct {
	Magic       uint32
	Version     uint32
	ElemType    elemType
	Compression CompressionType
	Dim         uint32
	ValueCount  uint64
	IndexCount  uint64
	PayloadSize uint64
	Checksum    uint32
}

// elemType encodes the scalar element type of the stored vectors.
type elemType uint8

const (
	elemInvalid elemType = iota
	elemInt
	elemInt8
	elemInt16
	elemInt32
	elemInt64
	elemUint
	elemUint8
	elemUint16
	elemUint32
	elemUint64
	elemFloat32
	elemFloat64
)

// elemTypeOf returns the wire code for T.
func elemTypeOf[T vecx.Scalar]() elemType {
	var zero T
	switch any(zero).(type) {
	case int:
		return elemInt
	case int8:
		return elemInt8
	case int16:
		return elemInt16
	case int32:
		return elemInt32
	case int64:
		return elemInt64
	case uint:
		return elemUint
	case uint8:
		return elemUint8
	case uint16:
		return elemUint16
	case uint32:
		return elemUint32
	case uint64:
		return elemUint64
	case float32:
		return elemFloat32
	case float64:
		return elemFloat64
	default:
		return elemInvalid
	}
}

// width returns the stored byte width per element.
// int and uint are stored as 8 bytes for portability across platforms.
func (e elemType) width() int {
	switch e {
	case elemInt8, elemUint8:
		return 1
	case elemInt16, elemUint16:
		return 2
	case elemInt32, elemUint32, elemFloat32:
		return 4
	default:
		return 8
	}
}
