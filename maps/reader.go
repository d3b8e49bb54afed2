package maps

import (
	"github.com/maddymakesgames/celeste-go/binary"
	"github.com/maddymakesgames/celeste-go/errors"
)

// Reader decodes map-level structures on top of the binary primitives.
type Reader struct {
	*binary.Reader
}

func NewReader(data []byte) *Reader {
	return &Reader{binary.NewReader(data)}
}

// ReadEncodedValue reads a tag byte and the payload it announces.
func (r *Reader) ReadEncodedValue() (EncodedValue, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return EncodedValue{}, err
	}

	switch ValueKind(tag) {
	case KindBool:
		v, err := r.ReadBool()
		return BoolValue(v), err
	case KindByte:
		v, err := r.ReadU8()
		return ByteValue(v), err
	case KindShort:
		v, err := r.ReadI16()
		return ShortValue(v), err
	case KindInt:
		v, err := r.ReadI32()
		return IntValue(v), err
	case KindFloat:
		v, err := r.ReadF32()
		return FloatValue(v), err
	case KindLookup:
		v, err := r.ReadLookupIndex()
		return LookupValue(v), err
	case KindString:
		v, err := r.ReadString()
		return StringValue(v), err
	case KindRLEString:
		v, err := r.ReadLengthEncodedString()
		return RLEStringValue(v), err
	default:
		return EncodedValue{}, errors.InvalidValueTag(tag)
	}
}

// ReadLookupTable reads a u16 string count followed by that many plain
// strings, kept in file order.
func (r *Reader) ReadLookupTable() (*LookupTable, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	strings := make([]string, 0, count)
	for i := 0; i < int(count); i++ {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		strings = append(strings, s)
	}

	return TableFromSlice(strings), nil
}

func (r *Reader) ReadLookupIndex() (LookupIndex, error) {
	v, err := r.ReadU16()
	return LookupIndex(v), err
}

// ReadElement reads one element and its subtree: a name index, a u8
// attribute count and the attributes, then a u16 child count and the
// children, recursively.
func (r *Reader) ReadElement() (*RawElement, error) {
	nameIdx, err := r.ReadLookupIndex()
	if err != nil {
		return nil, err
	}

	attrCount, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	attrs := make([]Attribute, 0, attrCount)
	for i := 0; i < int(attrCount); i++ {
		attr, err := r.ReadAttribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}

	childCount, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	children := make([]*RawElement, 0, childCount)
	for i := 0; i < int(childCount); i++ {
		child, err := r.ReadElement()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return &RawElement{
		Name:       IndexName(nameIdx),
		Attributes: attrs,
		Children:   children,
	}, nil
}

// ReadAttribute reads a name index and an encoded value.
func (r *Reader) ReadAttribute() (Attribute, error) {
	nameIdx, err := r.ReadLookupIndex()
	if err != nil {
		return Attribute{}, err
	}
	value, err := r.ReadEncodedValue()
	if err != nil {
		return Attribute{}, err
	}
	return Attribute{Name: IndexName(nameIdx), Value: value}, nil
}
