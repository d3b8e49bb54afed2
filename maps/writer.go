package maps

import (
	"github.com/maddymakesgames/celeste-go/binary"
	"github.com/maddymakesgames/celeste-go/errors"
)

// Writer encodes map-level structures on top of the binary primitives.
//
// Element and attribute names must already be unresolved to lookup
// indices; an inline name anywhere in the tree fails the write.
type Writer struct {
	*binary.Writer
}

func NewWriter() *Writer {
	return &Writer{binary.NewWriter()}
}

// WriteEncodedValue writes the value's tag byte and payload.
func (w *Writer) WriteEncodedValue(v EncodedValue) {
	w.WriteU8(uint8(v.kind))

	switch v.kind {
	case KindBool:
		w.WriteBool(v.b)
	case KindByte:
		w.WriteU8(uint8(v.n))
	case KindShort:
		w.WriteI16(int16(v.n))
	case KindInt:
		w.WriteI32(v.n)
	case KindFloat:
		w.WriteF32(v.f)
	case KindLookup:
		w.WriteLookupIndex(v.idx)
	case KindString:
		w.WriteString(v.s)
	case KindRLEString:
		w.WriteLengthEncodedString(v.s)
	}
}

// WriteLookupTable writes a u16 string count followed by the stored
// strings in table order. Pending strings are not written.
func (w *Writer) WriteLookupTable(t *LookupTable) {
	w.WriteU16(uint16(t.Len()))
	for _, s := range t.Strings() {
		w.WriteString(s)
	}
}

func (w *Writer) WriteLookupIndex(idx LookupIndex) {
	w.WriteU16(uint16(idx))
}

// WriteElement writes one element and its subtree.
func (w *Writer) WriteElement(el *RawElement) error {
	idx, ok := el.Name.Index()
	if !ok {
		s, _ := el.Name.Inline()
		return errors.UnresolvedName(s)
	}
	w.WriteLookupIndex(idx)

	w.WriteU8(uint8(len(el.Attributes)))
	for i := range el.Attributes {
		if err := w.WriteAttribute(el.Attributes[i]); err != nil {
			return err
		}
	}

	w.WriteU16(uint16(len(el.Children)))
	for _, c := range el.Children {
		if err := w.WriteElement(c); err != nil {
			return err
		}
	}

	return nil
}

// WriteAttribute writes a name index and an encoded value.
func (w *Writer) WriteAttribute(attr Attribute) error {
	idx, ok := attr.Name.Index()
	if !ok {
		s, _ := attr.Name.Inline()
		return errors.UnresolvedName(s)
	}
	w.WriteLookupIndex(idx)
	w.WriteEncodedValue(attr.Value)
	return nil
}
