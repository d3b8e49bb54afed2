package binary

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/maddymakesgames/celeste-go/errors"
)

// Reader decodes primitive values from an in-memory buffer.
//
// All reads advance an internal cursor. A read past the end of the
// buffer fails with an end_of_buffer error and leaves the cursor
// unspecified.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current cursor offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Restart moves the cursor back to the start of the buffer.
func (r *Reader) Restart() {
	r.pos = 0
}

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(pos int) {
	r.pos = pos
}

func (r *Reader) ReadU8() (uint8, error) {
	if r.pos >= len(r.data) {
		return 0, errors.EndOfBuffer(r.pos)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *Reader) ReadI8() (int8, error) {
	b, err := r.ReadU8()
	return int8(b), err
}

func (r *Reader) ReadU16() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, errors.EndOfBuffer(r.pos)
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *Reader) ReadU32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, errors.EndOfBuffer(r.pos)
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *Reader) ReadU64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.EndOfBuffer(r.pos)
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadBool reads a single byte as a bool.
//
// Only 0 and 1 are valid, anything else is an invalid_bool error.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	if b > 1 {
		return false, errors.InvalidBool(b)
	}
	return b == 1, nil
}

func (r *Reader) ReadF32() (float32, error) {
	bits, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (r *Reader) ReadF64() (float64, error) {
	bits, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// ReadVarint reads a 7-bits-per-byte variable-length integer, maxing
// out at a u32.
//
// Up to five bytes are consumed. The fifth byte may only use its low
// four bits (4*7+4 = 32); a fifth byte with any of its high four bits
// set is an invalid_varint error.
func (r *Reader) ReadVarint() (uint32, error) {
	var result uint32
	for i := 0; i < 5; i++ {
		b, err := r.ReadU8()
		if err != nil {
			return 0, err
		}
		if i == 4 && b&0xF0 != 0 {
			return 0, errors.InvalidVarint(result, b)
		}
		result |= uint32(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return result, nil
		}
	}
	// Unreachable: the fifth byte either returned or errored above.
	return 0, errors.InvalidVarint(result, 0)
}

// ReadString reads a varint character count followed by that many
// single-byte characters.
func (r *Reader) ReadString() (string, error) {
	length, err := r.ReadVarint()
	if err != nil {
		return "", err
	}
	if int(length) > r.Remaining() {
		return "", errors.EndOfBuffer(r.pos)
	}
	s := string(r.data[r.pos : r.pos+int(length)])
	r.pos += int(length)
	return s, nil
}

// ReadLengthEncodedString reads a run-length encoded string: a u16
// payload byte length followed by (count, char) pairs, each pair
// expanding to count repetitions of char.
func (r *Reader) ReadLengthEncodedString() (string, error) {
	payload, err := r.ReadU16()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	// Every pair produces at least one character.
	b.Grow(int(payload) / 2)

	for read := 0; read < int(payload); read += 2 {
		count, err := r.ReadU8()
		if err != nil {
			return "", err
		}
		char, err := r.ReadU8()
		if err != nil {
			return "", err
		}
		for i := 0; i < int(count); i++ {
			b.WriteByte(char)
		}
	}

	return b.String(), nil
}
