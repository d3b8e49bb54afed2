package binary

import (
	"bytes"
	stderrors "errors"
	"math"
	"strings"
	"testing"

	"github.com/maddymakesgames/celeste-go/errors"
)

func TestVarintRoundTrip(t *testing.T) {
	tests := []struct {
		value uint32
		bytes []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{1<<21 - 1, []byte{0xFF, 0xFF, 0x7F}},
		{1 << 21, []byte{0x80, 0x80, 0x80, 0x01}},
		{1 << 28, []byte{0x80, 0x80, 0x80, 0x80, 0x01}},
		{math.MaxUint32, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	}

	for _, tc := range tests {
		w := NewWriter()
		w.WriteVarint(tc.value)
		if !bytes.Equal(w.Bytes(), tc.bytes) {
			t.Errorf("WriteVarint(%d) = %#v, want %#v", tc.value, w.Bytes(), tc.bytes)
		}

		got, err := NewReader(tc.bytes).ReadVarint()
		if err != nil {
			t.Fatalf("ReadVarint(%#v): %v", tc.bytes, err)
		}
		if got != tc.value {
			t.Errorf("ReadVarint(%#v) = %d, want %d", tc.bytes, got, tc.value)
		}
	}
}

func TestVarintMinimalLength(t *testing.T) {
	// The encoded length is ceil(bits/7), capped at 5 bytes.
	for _, v := range []uint32{0, 1, 127, 128, 300, 1 << 14, 1 << 20, 1 << 27, 1 << 31, math.MaxUint32} {
		want := 1
		for x := v >> 7; x != 0; x >>= 7 {
			want++
		}

		w := NewWriter()
		w.WriteVarint(v)
		if got := w.Len(); got != want {
			t.Errorf("WriteVarint(%d) wrote %d bytes, want %d", v, got, want)
		}
	}
}

func TestVarintInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		// Fifth byte may only use its low four bits.
		{"fifth byte overflow", []byte{0x80, 0x80, 0x80, 0x80, 0x10}},
		{"fifth byte continues", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReader(tc.data).ReadVarint()
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindInvalidVarint}) {
				t.Errorf("ReadVarint = %v, want invalid_varint", err)
			}
		})
	}
}

func TestVarintTruncated(t *testing.T) {
	_, err := NewReader([]byte{0x80, 0x80}).ReadVarint()
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindEndOfBuffer}) {
		t.Errorf("ReadVarint = %v, want end_of_buffer", err)
	}
}

func TestBool(t *testing.T) {
	for _, tc := range []struct {
		b    byte
		want bool
	}{{0, false}, {1, true}} {
		got, err := NewReader([]byte{tc.b}).ReadBool()
		if err != nil || got != tc.want {
			t.Errorf("ReadBool(%d) = %v, %v", tc.b, got, err)
		}
	}

	_, err := NewReader([]byte{2}).ReadBool()
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindInvalidBool}) {
		t.Errorf("ReadBool(2) = %v, want invalid_bool", err)
	}
}

func TestFixedWidthLittleEndian(t *testing.T) {
	w := NewWriter()
	w.WriteU16(0x1234)
	w.WriteI32(-2)
	w.WriteF32(1.5)

	want := []byte{
		0x34, 0x12,
		0xFE, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0xC0, 0x3F,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("bytes = %#v, want %#v", w.Bytes(), want)
	}

	r := NewReader(w.Bytes())
	if v, _ := r.ReadU16(); v != 0x1234 {
		t.Errorf("ReadU16 = %#x", v)
	}
	if v, _ := r.ReadI32(); v != -2 {
		t.Errorf("ReadI32 = %d", v)
	}
	if v, _ := r.ReadF32(); v != 1.5 {
		t.Errorf("ReadF32 = %v", v)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d", r.Remaining())
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "CELESTE MAP", "lvl1", strings.Repeat("x", 200)} {
		w := NewWriter()
		w.WriteString(s)

		got, err := NewReader(w.Bytes()).ReadString()
		if err != nil {
			t.Fatalf("ReadString(%q): %v", s, err)
		}
		if got != s {
			t.Errorf("round trip = %q, want %q", got, s)
		}
	}
}

func TestStringTruncated(t *testing.T) {
	// Length claims 5 characters but only 2 are present.
	_, err := NewReader([]byte{0x05, 'a', 'b'}).ReadString()
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindEndOfBuffer}) {
		t.Errorf("ReadString = %v, want end_of_buffer", err)
	}
}

func TestLengthEncodedString(t *testing.T) {
	// 3*'a', 9*'b', 1*'c' encodes as three pairs: a 6-byte payload.
	w := NewWriter()
	w.WriteLengthEncodedString("aaabbbbbbbbbc")

	want := []byte{0x06, 0x00, 3, 'a', 9, 'b', 1, 'c'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("encoded = %#v, want %#v", w.Bytes(), want)
	}

	got, err := NewReader(w.Bytes()).ReadLengthEncodedString()
	if err != nil {
		t.Fatalf("ReadLengthEncodedString: %v", err)
	}
	if got != "aaabbbbbbbbbc" {
		t.Errorf("round trip = %q", got)
	}
}

func TestLengthEncodedStringEmpty(t *testing.T) {
	w := NewWriter()
	w.WriteLengthEncodedString("")

	if !bytes.Equal(w.Bytes(), []byte{0x00, 0x00}) {
		t.Fatalf("encoded = %#v, want zero length and no pairs", w.Bytes())
	}

	got, err := NewReader(w.Bytes()).ReadLengthEncodedString()
	if err != nil || got != "" {
		t.Errorf("round trip = %q, %v", got, err)
	}
}

func TestLengthEncodedStringLongRun(t *testing.T) {
	// A run longer than 255 closes and reopens; no run may exceed 255.
	s := strings.Repeat("z", 300)

	w := NewWriter()
	w.WriteLengthEncodedString(s)

	r := NewReader(w.Bytes())
	payload, _ := r.ReadU16()
	if payload != 4 {
		t.Fatalf("payload length = %d, want 4 (two pairs)", payload)
	}
	for r.Remaining() > 0 {
		count, _ := r.ReadU8()
		if _, err := r.ReadU8(); err != nil {
			t.Fatal(err)
		}
		if count == 0 {
			t.Error("zero-length run emitted")
		}
	}

	got, err := NewReader(w.Bytes()).ReadLengthEncodedString()
	if err != nil || got != s {
		t.Errorf("round trip failed: len=%d err=%v", len(got), err)
	}
}

func TestRLERoundTripVaried(t *testing.T) {
	for _, s := range []string{
		"a",
		"abc",
		"aabbcc",
		strings.Repeat("ab", 50),
		strings.Repeat(" ", 255),
		strings.Repeat("0", 256),
	} {
		w := NewWriter()
		w.WriteLengthEncodedString(s)
		got, err := NewReader(w.Bytes()).ReadLengthEncodedString()
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if got != s {
			t.Errorf("round trip of %q failed", s)
		}
	}
}

func TestReaderCursor(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	r.ReadU8()
	r.ReadU8()
	if r.Pos() != 2 {
		t.Errorf("Pos = %d", r.Pos())
	}
	r.Restart()
	if v, _ := r.ReadU8(); v != 1 {
		t.Errorf("after Restart, ReadU8 = %d", v)
	}
	r.Seek(3)
	if v, _ := r.ReadU8(); v != 4 {
		t.Errorf("after Seek(3), ReadU8 = %d", v)
	}
	if _, err := r.ReadU8(); err == nil {
		t.Error("expected end_of_buffer at end")
	}
}
