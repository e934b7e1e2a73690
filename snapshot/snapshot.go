package snapshot

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"

	"github.com/hupe1980/vecx"
)

// Write serializes ix to w.
func Write[T vecx.Scalar](w io.Writer, ix *vecx.Indexed[T], optFns ...Option) error {
	opts := applyOptions(optFns)

	et := elemTypeOf[T]()
	values := ix.Values()
	indices := ix.Indices()

	dim := 0
	if len(values) > 0 {
		dim = values[0].Len()
	}

	payload := make([]byte, 0, len(values)*dim*et.width()+len(indices)*4)
	for _, v := range values {
		for _, e := range v.Elements() {
			payload = appendScalar(payload, e, et)
		}
	}
	for _, idx := range indices {
		payload = binary.LittleEndian.AppendUint32(payload, idx)
	}

	stored, err := compressBlock(payload, opts.Compression)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	hdr := fileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		ElemType:    et,
		Compression: opts.Compression,
		Dim:         uint32(dim),
		ValueCount:  uint64(len(values)),
		IndexCount:  uint64(len(indices)),
		PayloadSize: uint64(len(stored)),
		Checksum:    crc32.ChecksumIEEE(stored),
	}

	if _, err := w.Write(hdr.encode()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	return nil
}

// Read deserializes an Indexed from r.
//
// The type parameter must match the element type the snapshot was written
// with; otherwise Read fails with ErrElementTypeMismatch.
func Read[T vecx.Scalar](r io.Reader) (*vecx.Indexed[T], error) {
	var hdrBuf [headerSize]byte
	if _, err := io.ReadFull(r, hdrBuf[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var hdr fileHeader
	if err := hdr.decode(hdrBuf[:]); err != nil {
		return nil, err
	}
	if hdr.ElemType != elemTypeOf[T]() {
		return nil, ErrElementTypeMismatch
	}

	stored := make([]byte, hdr.PayloadSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if crc32.ChecksumIEEE(stored) != hdr.Checksum {
		return nil, ErrChecksumMismatch
	}

	payload, err := decompressBlock(stored, hdr.Compression)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	width := hdr.ElemType.width()
	dim := int(hdr.Dim)
	valueBytes := int(hdr.ValueCount) * dim * width
	indexBytes := int(hdr.IndexCount) * 4
	if len(payload) != valueBytes+indexBytes {
		return nil, fmt.Errorf("%w: payload size %d, expected %d", ErrCorruptPayload, len(payload), valueBytes+indexBytes)
	}

	values := make([]vecx.Vec[T], hdr.ValueCount)
	off := 0
	for i := range values {
		elems := make([]T, dim)
		for j := range elems {
			elems[j] = readScalar[T](payload[off:off+width], hdr.ElemType)
			off += width
		}
		values[i] = vecx.FromSlice(elems)
	}

	ix := vecx.NewIndexed[T]()
	for i := uint64(0); i < hdr.IndexCount; i++ {
		slot := binary.LittleEndian.Uint32(payload[off:])
		off += 4
		if uint64(slot) >= hdr.ValueCount {
			return nil, fmt.Errorf("%w: index %d out of range (%d values)", ErrCorruptPayload, slot, hdr.ValueCount)
		}
		if _, _, err := ix.Insert(values[slot]); err != nil {
			return nil, err
		}
	}

	return ix, nil
}

// Save writes ix to the file at path, replacing any existing file.
func Save[T vecx.Scalar](path string, ix *vecx.Indexed[T], optFns ...Option) error {
	opts := applyOptions(optFns)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()

	if err := Write(f, ix, optFns...); err != nil {
		opts.Logger.Error("snapshot save failed", "filename", path, "error", err)
		return err
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync snapshot file: %w", err)
	}

	opts.Logger.Info("snapshot saved",
		"filename", path,
		"values", ix.UniqueLen(),
		"indices", ix.Len(),
	)

	return nil
}

// Load reads an Indexed from the file at path.
func Load[T vecx.Scalar](path string, optFns ...Option) (*vecx.Indexed[T], error) {
	opts := applyOptions(optFns)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot file: %w", err)
	}
	defer f.Close()

	ix, err := Read[T](f)
	if err != nil {
		opts.Logger.Error("snapshot load failed", "filename", path, "error", err)
		return nil, err
	}

	opts.Logger.Info("snapshot loaded",
		"filename", path,
		"values", ix.UniqueLen(),
		"indices", ix.Len(),
	)

	return ix, nil
}

func (h fileHeader) encode() []byte {
	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(buf[0:], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:], h.Version)
	buf[8] = byte(h.ElemType)
	buf[9] = byte(h.Compression)
	// buf[10:12] reserved
	binary.LittleEndian.PutUint32(buf[12:], h.Dim)
	binary.LittleEndian.PutUint64(buf[16:], h.ValueCount)
	binary.LittleEndian.PutUint64(buf[24:], h.IndexCount)
	binary.LittleEndian.PutUint64(buf[32:], h.PayloadSize)
	binary.LittleEndian.PutUint32(buf[40:], h.Checksum)
	return buf
}

func (h *fileHeader) decode(buf []byte) error {
	h.Magic = binary.LittleEndian.Uint32(buf[0:])
	if h.Magic != MagicNumber {
		return ErrInvalidMagic
	}
	h.Version = binary.LittleEndian.Uint32(buf[4:])
	if h.Version != Version {
		return ErrInvalidVersion
	}
	h.ElemType = elemType(buf[8])
	if h.ElemType == elemInvalid || h.ElemType > elemFloat64 {
		return ErrElementTypeMismatch
	}
	h.Compression = CompressionType(buf[9])
	if h.Compression > CompressionZSTD {
		return ErrInvalidCompression
	}
	h.Dim = binary.LittleEndian.Uint32(buf[12:])
	h.ValueCount = binary.LittleEndian.Uint64(buf[16:])
	h.IndexCount = binary.LittleEndian.Uint64(buf[24:])
	h.PayloadSize = binary.LittleEndian.Uint64(buf[32:])
	h.Checksum = binary.LittleEndian.Uint32(buf[40:])
	return nil
}

// appendScalar appends the little-endian wire encoding of v.
func appendScalar[T vecx.Scalar](buf []byte, v T, et elemType) []byte {
	var bits uint64
	switch x := any(v).(type) {
	case int:
		bits = uint64(x)
	case int8:
		bits = uint64(x)
	case int16:
		bits = uint64(x)
	case int32:
		bits = uint64(x)
	case int64:
		bits = uint64(x)
	case uint:
		bits = uint64(x)
	case uint8:
		bits = uint64(x)
	case uint16:
		bits = uint64(x)
	case uint32:
		bits = uint64(x)
	case uint64:
		bits = x
	case float32:
		bits = uint64(math.Float32bits(x))
	case float64:
		bits = math.Float64bits(x)
	}

	switch et.width() {
	case 1:
		return append(buf, byte(bits))
	case 2:
		return binary.LittleEndian.AppendUint16(buf, uint16(bits))
	case 4:
		return binary.LittleEndian.AppendUint32(buf, uint32(bits))
	default:
		return binary.LittleEndian.AppendUint64(buf, bits)
	}
}

// readScalar decodes one element from its wire encoding.
func readScalar[T vecx.Scalar](buf []byte, et elemType) T {
	var bits uint64
	switch et.width() {
	case 1:
		bits = uint64(buf[0])
	case 2:
		bits = uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		bits = uint64(binary.LittleEndian.Uint32(buf))
	default:
		bits = binary.LittleEndian.Uint64(buf)
	}

	var r any
	var zero T
	switch any(zero).(type) {
	case int:
		r = int(int64(bits))
	case int8:
		r = int8(bits)
	case int16:
		r = int16(bits)
	case int32:
		r = int32(bits)
	case int64:
		r = int64(bits)
	case uint:
		r = uint(bits)
	case uint8:
		r = uint8(bits)
	case uint16:
		r = uint16(bits)
	case uint32:
		r = uint32(bits)
	case uint64:
		r = bits
	case float32:
		r = math.Float32frombits(uint32(bits))
	case float64:
		r = math.Float64frombits(bits)
	}
	return r.(T)
}
