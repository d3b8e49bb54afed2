package maps

import (
	"fmt"

	"github.com/maddymakesgames/celeste-go/errors"
)

// ValueKind is the wire tag of an encoded attribute value.
type ValueKind uint8

const (
	KindBool ValueKind = iota
	KindByte
	KindShort
	KindInt
	KindFloat
	KindLookup
	KindString
	KindRLEString
)

var kindNames = [...]string{
	KindBool:      "bool",
	KindByte:      "byte",
	KindShort:     "short",
	KindInt:       "int",
	KindFloat:     "float",
	KindLookup:    "lookup index",
	KindString:    "string",
	KindRLEString: "rle string",
}

func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// EncodedValue is the tagged union of attribute value kinds the map
// format supports. Conversions to semantic types are fallible and
// report the requested kind against the actual one.
type EncodedValue struct {
	kind ValueKind
	b    bool
	n    int32
	f    float32
	idx  LookupIndex
	s    string
}

func BoolValue(v bool) EncodedValue {
	return EncodedValue{kind: KindBool, b: v}
}

func ByteValue(v uint8) EncodedValue {
	return EncodedValue{kind: KindByte, n: int32(v)}
}

func ShortValue(v int16) EncodedValue {
	return EncodedValue{kind: KindShort, n: int32(v)}
}

func IntValue(v int32) EncodedValue {
	return EncodedValue{kind: KindInt, n: v}
}

func FloatValue(v float32) EncodedValue {
	return EncodedValue{kind: KindFloat, f: v}
}

func LookupValue(i LookupIndex) EncodedValue {
	return EncodedValue{kind: KindLookup, idx: i}
}

func StringValue(s string) EncodedValue {
	return EncodedValue{kind: KindString, s: s}
}

// RLEStringValue marks s for run-length encoding on the wire. Decoded
// text is identical to a plain string, only the wire form differs.
func RLEStringValue(s string) EncodedValue {
	return EncodedValue{kind: KindRLEString, s: s}
}

// NameValue converts a resolvable name to its value form: inline names
// become strings, index names become lookup indices.
func NameValue(n ResolvableName) EncodedValue {
	if idx, ok := n.Index(); ok {
		return LookupValue(idx)
	}
	s, _ := n.Inline()
	return StringValue(s)
}

func (v EncodedValue) Kind() ValueKind {
	return v.kind
}

func (v EncodedValue) mismatch(expected string) error {
	return errors.ValueMismatch(expected, v.kind.String())
}

func (v EncodedValue) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch("bool")
	}
	return v.b, nil
}

func (v EncodedValue) Byte() (uint8, error) {
	if v.kind != KindByte {
		return 0, v.mismatch("byte")
	}
	return uint8(v.n), nil
}

func (v EncodedValue) Short() (int16, error) {
	if v.kind != KindShort {
		return 0, v.mismatch("short")
	}
	return int16(v.n), nil
}

func (v EncodedValue) Int() (int32, error) {
	if v.kind != KindInt {
		return 0, v.mismatch("int")
	}
	return v.n, nil
}

func (v EncodedValue) Float() (float32, error) {
	if v.kind != KindFloat {
		return 0, v.mismatch("float")
	}
	return v.f, nil
}

func (v EncodedValue) LookupIndex() (LookupIndex, error) {
	if v.kind != KindLookup {
		return 0, v.mismatch("lookup index")
	}
	return v.idx, nil
}

// Text returns the string payload of a plain or run-length encoded
// string value.
func (v EncodedValue) Text() (string, error) {
	if v.kind != KindString && v.kind != KindRLEString {
		return "", v.mismatch("string")
	}
	return v.s, nil
}

// IndexedString returns the value as a resolvable name: string values
// become inline names, lookup values become index names.
func (v EncodedValue) IndexedString() (ResolvableName, error) {
	switch v.kind {
	case KindString:
		return InlineName(v.s), nil
	case KindLookup:
		return IndexName(v.idx), nil
	default:
		return ResolvableName{}, v.mismatch("indexed string")
	}
}

// AsInteger widens any integral value kind into an Integer.
func (v EncodedValue) AsInteger() (Integer, error) {
	switch v.kind {
	case KindByte, KindShort, KindInt:
		return Integer{kind: v.kind, value: v.n}, nil
	default:
		return Integer{}, v.mismatch("integer")
	}
}

// AsNumber widens any numeric value kind into a Number.
func (v EncodedValue) AsNumber() (Number, error) {
	switch v.kind {
	case KindByte, KindShort, KindInt:
		return Number{kind: v.kind, i: v.n}, nil
	case KindFloat:
		return Number{kind: KindFloat, f: v.f}, nil
	default:
		return Number{}, v.mismatch("float")
	}
}

// AsCharacter interprets the value as a single character, which on the
// wire may be a byte, a one-character string, or a lookup index.
func (v EncodedValue) AsCharacter() (Character, error) {
	switch v.kind {
	case KindByte:
		return Character{isByte: true, b: uint8(v.n)}, nil
	case KindString:
		return Character{name: InlineName(v.s)}, nil
	case KindLookup:
		return Character{name: IndexName(v.idx)}, nil
	default:
		return Character{}, v.mismatch("character")
	}
}

// Display renders the value for tree dumps, suffixing numerics with
// their width and resolving lookup indices through the table.
func (v EncodedValue) Display(t *LookupTable) string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindByte:
		return fmt.Sprintf("%d_u8", uint8(v.n))
	case KindShort:
		return fmt.Sprintf("%d_i16", int16(v.n))
	case KindInt:
		return fmt.Sprintf("%d_i32", v.n)
	case KindFloat:
		return fmt.Sprintf("%v_f32", v.f)
	case KindLookup:
		s, _ := t.Get(v.idx)
		return s
	default:
		return v.s
	}
}

// Integer is a width-preserving integral attribute value. The original
// wire width is kept so an untouched value re-encodes byte-identically.
type Integer struct {
	kind  ValueKind
	value int32
}

// Int creates an Integer that encodes as a 32-bit int.
func Int(v int32) Integer {
	return Integer{kind: KindInt, value: v}
}

// ByteInt creates an Integer that encodes as a byte.
func ByteInt(v uint8) Integer {
	return Integer{kind: KindByte, value: int32(v)}
}

// ShortInt creates an Integer that encodes as a 16-bit short.
func ShortInt(v int16) Integer {
	return Integer{kind: KindShort, value: int32(v)}
}

func (i Integer) Kind() ValueKind {
	return i.kind
}

func (i Integer) Int32() int32 {
	return i.value
}

// Value re-encodes the Integer at its original width.
func (i Integer) Value() EncodedValue {
	switch i.kind {
	case KindByte:
		return ByteValue(uint8(i.value))
	case KindShort:
		return ShortValue(int16(i.value))
	default:
		return IntValue(i.value)
	}
}

func (i Integer) String() string {
	switch i.kind {
	case KindByte:
		return fmt.Sprintf("%d_u8", uint8(i.value))
	case KindShort:
		return fmt.Sprintf("%d_i16", int16(i.value))
	default:
		return fmt.Sprintf("%d_i32", i.value)
	}
}

// Number is a width-preserving numeric attribute value: any integral
// width or a 32-bit float. Maps in the wild store float-typed fields
// with whichever narrower encoding fits the literal.
type Number struct {
	kind ValueKind
	i    int32
	f    float32
}

// Float creates a Number that encodes as a 32-bit float.
func Float(v float32) Number {
	return Number{kind: KindFloat, f: v}
}

// NumberFromInteger widens an Integer into a Number, keeping its width.
func NumberFromInteger(i Integer) Number {
	return Number{kind: i.kind, i: i.value}
}

func (n Number) Kind() ValueKind {
	return n.kind
}

// Float32 returns the numeric value regardless of wire width.
func (n Number) Float32() float32 {
	if n.kind == KindFloat {
		return n.f
	}
	return float32(n.i)
}

// Value re-encodes the Number at its original width.
func (n Number) Value() EncodedValue {
	switch n.kind {
	case KindByte:
		return ByteValue(uint8(n.i))
	case KindShort:
		return ShortValue(int16(n.i))
	case KindInt:
		return IntValue(n.i)
	default:
		return FloatValue(n.f)
	}
}

func (n Number) String() string {
	if n.kind == KindFloat {
		return fmt.Sprintf("%v_f32", n.f)
	}
	return Integer{kind: n.kind, value: n.i}.String()
}

// Character is a single-character attribute value, stored on the wire
// as either a byte or a (possibly interned) one-character string.
type Character struct {
	name   ResolvableName
	b      uint8
	isByte bool
}

// ByteCharacter creates a Character backed by a raw byte.
func ByteCharacter(b uint8) Character {
	return Character{isByte: true, b: b}
}

// StringCharacter creates a Character backed by a one-character string.
func StringCharacter(s string) Character {
	return Character{name: InlineName(s)}
}

// Rune returns the character, looking into the table if it is backed
// by an interned string. Reports false if the backing string does not
// hold exactly one character.
func (c Character) Rune(t *LookupTable) (rune, bool) {
	if c.isByte {
		return rune(c.b), true
	}
	s := c.name.Text(t)
	if len(s) != 1 {
		return 0, false
	}
	return rune(s[0]), true
}

// Resolve resolves the backing name if the character is string-backed.
func (c *Character) Resolve(t *LookupTable) {
	if !c.isByte {
		c.name.Resolve(t)
	}
}

// Unresolve converts the backing name to an index if the character is
// string-backed and the string is in the table.
func (c *Character) Unresolve(t *LookupTable) {
	if !c.isByte {
		c.name.Unresolve(t)
	}
}

// Value re-encodes the Character in its original form.
func (c Character) Value() EncodedValue {
	if c.isByte {
		return ByteValue(c.b)
	}
	return NameValue(c.name)
}
