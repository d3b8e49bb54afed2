package maps

import (
	"fmt"
)

// Encoder accumulates one raw element being built from a typed
// Element. Child elements encode through a fork that is folded back
// into the parent's child list; every name passing through the encoder
// is interned into the shared lookup table as it is written.
type Encoder struct {
	lookup   *LookupTable
	name     ResolvableName
	attrs    []Attribute
	children []*RawElement
}

// Lookup returns the shared lookup table.
func (e *Encoder) Lookup() *LookupTable {
	return e.lookup
}

// SetName overrides the element name. The name is set from the
// element's ElementName when the encoder is created, so this is only
// needed when that name is not the one to write.
func (e *Encoder) SetName(name string) {
	e.name = e.lookup.IndexString(name)
}

// Attribute appends an attribute. The value may be a bool, any
// integral or float type the format can carry, a string, or one of the
// wrapper types (Integer, Number, Character, ResolvableName,
// EncodedValue). Anything else panics: attribute types are fixed at
// compile time in element code, so an unsupported one is a bug there.
func (e *Encoder) Attribute(name string, value any) {
	e.attrs = append(e.attrs, Attribute{
		Name:  e.lookup.IndexString(name),
		Value: encodeValue(value),
	})
}

// OptionalAttribute appends an attribute only when the pointer is
// non-nil.
func (e *Encoder) OptionalAttribute(name string, value any) {
	switch v := value.(type) {
	case nil:
	case *bool:
		if v != nil {
			e.Attribute(name, *v)
		}
	case *uint8:
		if v != nil {
			e.Attribute(name, *v)
		}
	case *int16:
		if v != nil {
			e.Attribute(name, *v)
		}
	case *int32:
		if v != nil {
			e.Attribute(name, *v)
		}
	case *float32:
		if v != nil {
			e.Attribute(name, *v)
		}
	case *string:
		if v != nil {
			e.Attribute(name, *v)
		}
	case *Integer:
		if v != nil {
			e.Attribute(name, *v)
		}
	case *Number:
		if v != nil {
			e.Attribute(name, *v)
		}
	case *Character:
		if v != nil {
			e.Attribute(name, *v)
		}
	case *ResolvableName:
		if v != nil {
			e.Attribute(name, *v)
		}
	default:
		panic(fmt.Sprintf("unsupported optional attribute type %T for %q", value, name))
	}
}

// RLEAttribute appends a string attribute marked for run-length
// encoding on the wire.
func (e *Encoder) RLEAttribute(name, value string) {
	e.attrs = append(e.attrs, Attribute{
		Name:  e.lookup.IndexString(name),
		Value: RLEStringValue(value),
	})
}

// OptionalRLEAttribute is RLEAttribute for a possibly-absent value.
func (e *Encoder) OptionalRLEAttribute(name string, value *string) {
	if value != nil {
		e.RLEAttribute(name, *value)
	}
}

func encodeValue(value any) EncodedValue {
	switch v := value.(type) {
	case bool:
		return BoolValue(v)
	case uint8:
		return ByteValue(v)
	case int16:
		return ShortValue(v)
	case int32:
		return IntValue(v)
	case int:
		return IntValue(int32(v))
	case float32:
		return FloatValue(v)
	case string:
		return StringValue(v)
	case LookupIndex:
		return LookupValue(v)
	case ResolvableName:
		return NameValue(v)
	case Integer:
		return v.Value()
	case Number:
		return v.Value()
	case Character:
		return v.Value()
	case EncodedValue:
		return v
	default:
		panic(fmt.Sprintf("unsupported attribute value type %T", value))
	}
}

// Child encodes el into a new raw element appended to the child list.
func (e *Encoder) Child(el Element) {
	fork := e.fork(e.lookup.IndexString(el.ElementName()))
	el.ToRaw(fork)
	e.children = append(e.children, fork.resolve())
}

// Children encodes every element in the list as a child.
func (e *Encoder) Children(els []Element) {
	for _, el := range els {
		e.Child(el)
	}
}

// EncodeChildren encodes a slice of concrete elements as children.
func EncodeChildren[T any, PT ElementPtr[T]](e *Encoder, els []T) {
	for i := range els {
		e.Child(PT(&els[i]))
	}
}

func (e *Encoder) fork(name ResolvableName) *Encoder {
	return &Encoder{lookup: e.lookup, name: name}
}

// resolve folds the encoder's state into a raw element.
func (e *Encoder) resolve() *RawElement {
	return &RawElement{
		Name:       e.name,
		Attributes: e.attrs,
		Children:   e.children,
	}
}

// loadRaw replays an existing raw element into the encoder, used by
// the RawElement fallback to round-trip unrecognized elements.
func (e *Encoder) loadRaw(raw *RawElement) {
	e.name = raw.Name
	e.attrs = append([]Attribute(nil), raw.Attributes...)
	e.children = make([]*RawElement, len(raw.Children))
	for i, c := range raw.Children {
		e.children[i] = c.Clone()
	}
}
