package binary

import (
	"encoding/binary"
	"math"
)

// Writer encodes primitive values into a growing in-memory buffer.
//
// Writes cannot fail; callers read the accumulated bytes with Bytes.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated output. The slice is owned by the
// Writer and is only valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) WriteI8(v int8) {
	w.WriteU8(uint8(v))
}

func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) WriteI16(v int16) {
	w.WriteU16(uint16(v))
}

func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) WriteI32(v int32) {
	w.WriteU32(uint32(v))
}

func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) WriteI64(v int64) {
	w.WriteU64(uint64(v))
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

func (w *Writer) WriteF32(v float32) {
	w.WriteU32(math.Float32bits(v))
}

func (w *Writer) WriteF64(v float64) {
	w.WriteU64(math.Float64bits(v))
}

// WriteVarint writes v in the minimal number of 7-bit groups, setting
// the continuation bit on every byte but the last. Zero encodes as a
// single 0x00 byte.
func (w *Writer) WriteVarint(v uint32) {
	for {
		b := uint8(v & 0x7F)
		v >>= 7
		if v != 0 {
			w.WriteU8(b | 0x80)
		} else {
			w.WriteU8(b)
			return
		}
	}
}

// WriteString writes a varint character count followed by the raw
// bytes of s.
func (w *Writer) WriteString(s string) {
	w.WriteVarint(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteLengthEncodedString writes s run-length encoded: a u16 payload
// byte length followed by (count, char) pairs. Consecutive equal
// characters group into one run; a run is closed at 255 repeats even
// if the character continues. The empty string encodes as a zero
// length with no pairs.
func (w *Writer) WriteLengthEncodedString(s string) {
	type run struct {
		count uint8
		char  byte
	}

	var runs []run
	for i := 0; i < len(s); {
		char := s[i]
		count := 0
		for i < len(s) && s[i] == char && count < 255 {
			count++
			i++
		}
		runs = append(runs, run{uint8(count), char})
	}

	w.WriteU16(uint16(len(runs) * 2))
	for _, r := range runs {
		w.WriteU8(r.count)
		w.WriteU8(r.char)
	}
}
