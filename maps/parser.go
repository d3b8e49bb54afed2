package maps

import (
	"go.uber.org/zap"

	"github.com/maddymakesgames/celeste-go/errors"
)

// Parser is a read-only view over one raw element, used by Element
// implementations to pull typed attributes and child elements out of
// the tree. Child parses fork a new Parser scoped to the child node;
// the lookup table and registry are shared down the tree.
type Parser struct {
	logger *zap.Logger
	lookup *LookupTable
	raw    *RawElement
	reg    *Registry
}

// Raw returns the raw element the parser is scoped to.
func (p *Parser) Raw() *RawElement {
	return p.raw
}

// Lookup returns the shared lookup table.
func (p *Parser) Lookup() *LookupTable {
	return p.lookup
}

// Name returns the scoped element's name.
func (p *Parser) Name() string {
	return p.raw.Name.Text(p.lookup)
}

func (p *Parser) fork(raw *RawElement) *Parser {
	return &Parser{logger: p.logger, lookup: p.lookup, raw: raw, reg: p.reg}
}

// Attr returns the raw value of the named attribute.
func (p *Parser) Attr(name string) (EncodedValue, error) {
	p.logger.Debug("reading attribute", zap.String("element", p.Name()), zap.String("attribute", name))

	if v, ok := p.lookupAttr(name); ok {
		return v, nil
	}
	return EncodedValue{}, errors.AttributeMissing(name)
}

func (p *Parser) lookupAttr(name string) (EncodedValue, bool) {
	for i := range p.raw.Attributes {
		if p.raw.Attributes[i].Name.Text(p.lookup) == name {
			return p.raw.Attributes[i].Value, true
		}
	}
	return EncodedValue{}, false
}

// Typed attribute getters. Each fails with attribute_missing if the
// attribute is absent and value_mismatch if it holds the wrong kind.
// The Optional variants return nil instead of attribute_missing but
// still reject wrong kinds.

func (p *Parser) Bool(name string) (bool, error) {
	v, err := p.Attr(name)
	if err != nil {
		return false, err
	}
	return v.Bool()
}

func (p *Parser) Byte(name string) (uint8, error) {
	v, err := p.Attr(name)
	if err != nil {
		return 0, err
	}
	return v.Byte()
}

func (p *Parser) Short(name string) (int16, error) {
	v, err := p.Attr(name)
	if err != nil {
		return 0, err
	}
	return v.Short()
}

// Int accepts any integral wire width and widens it to an int32.
func (p *Parser) Int(name string) (int32, error) {
	v, err := p.Attr(name)
	if err != nil {
		return 0, err
	}
	i, err := v.AsInteger()
	if err != nil {
		return 0, err
	}
	return i.Int32(), nil
}

// Integer accepts any integral wire width and keeps it.
func (p *Parser) Integer(name string) (Integer, error) {
	v, err := p.Attr(name)
	if err != nil {
		return Integer{}, err
	}
	return v.AsInteger()
}

// Float accepts any numeric wire width and widens it to a float32.
func (p *Parser) Float(name string) (float32, error) {
	v, err := p.Attr(name)
	if err != nil {
		return 0, err
	}
	n, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	return n.Float32(), nil
}

// Number accepts any numeric wire width and keeps it.
func (p *Parser) Number(name string) (Number, error) {
	v, err := p.Attr(name)
	if err != nil {
		return Number{}, err
	}
	return v.AsNumber()
}

// Text accepts plain and run-length encoded strings.
func (p *Parser) Text(name string) (string, error) {
	v, err := p.Attr(name)
	if err != nil {
		return "", err
	}
	return v.Text()
}

// IndexedString accepts plain strings and lookup indices, keeping the
// interned form.
func (p *Parser) IndexedString(name string) (ResolvableName, error) {
	v, err := p.Attr(name)
	if err != nil {
		return ResolvableName{}, err
	}
	return v.IndexedString()
}

// Character accepts bytes, one-character strings, and lookup indices.
func (p *Parser) Character(name string) (Character, error) {
	v, err := p.Attr(name)
	if err != nil {
		return Character{}, err
	}
	return v.AsCharacter()
}

func (p *Parser) OptionalBool(name string) (*bool, error) {
	v, ok := p.lookupAttr(name)
	if !ok {
		return nil, nil
	}
	b, err := v.Bool()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (p *Parser) OptionalByte(name string) (*uint8, error) {
	v, ok := p.lookupAttr(name)
	if !ok {
		return nil, nil
	}
	b, err := v.Byte()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (p *Parser) OptionalShort(name string) (*int16, error) {
	v, ok := p.lookupAttr(name)
	if !ok {
		return nil, nil
	}
	s, err := v.Short()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *Parser) OptionalInt(name string) (*int32, error) {
	v, ok := p.lookupAttr(name)
	if !ok {
		return nil, nil
	}
	i, err := v.AsInteger()
	if err != nil {
		return nil, err
	}
	n := i.Int32()
	return &n, nil
}

func (p *Parser) OptionalInteger(name string) (*Integer, error) {
	v, ok := p.lookupAttr(name)
	if !ok {
		return nil, nil
	}
	i, err := v.AsInteger()
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (p *Parser) OptionalFloat(name string) (*float32, error) {
	v, ok := p.lookupAttr(name)
	if !ok {
		return nil, nil
	}
	n, err := v.AsNumber()
	if err != nil {
		return nil, err
	}
	f := n.Float32()
	return &f, nil
}

func (p *Parser) OptionalNumber(name string) (*Number, error) {
	v, ok := p.lookupAttr(name)
	if !ok {
		return nil, nil
	}
	n, err := v.AsNumber()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (p *Parser) OptionalIndexedString(name string) (*ResolvableName, error) {
	v, ok := p.lookupAttr(name)
	if !ok {
		return nil, nil
	}
	n, err := v.IndexedString()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (p *Parser) OptionalText(name string) (*string, error) {
	v, ok := p.lookupAttr(name)
	if !ok {
		return nil, nil
	}
	s, err := v.Text()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *Parser) OptionalCharacter(name string) (*Character, error) {
	v, ok := p.lookupAttr(name)
	if !ok {
		return nil, nil
	}
	c, err := v.AsCharacter()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ForkChildren returns a parser scoped to each child element, in
// order. For element types whose children vary by name, like entity
// containers, where the generic Parse functions cannot match.
func (p *Parser) ForkChildren() []*Parser {
	out := make([]*Parser, len(p.raw.Children))
	for i, c := range p.raw.Children {
		out[i] = p.fork(c)
	}
	return out
}

// ParseElement decodes the first child whose name matches T's element
// name. A missing child is a no_matching_element error.
func ParseElement[T any, PT ElementPtr[T]](p *Parser) (*T, error) {
	name := PT(new(T)).ElementName()
	p.logger.Debug("parsing element", zap.String("name", name))

	for _, child := range p.raw.Children {
		if child.Name.Text(p.lookup) == name {
			el := PT(new(T))
			if err := el.FromRaw(p.fork(child)); err != nil {
				return nil, err
			}
			return el, nil
		}
	}

	return nil, errors.NoMatchingElement(name, p.Name())
}

// ParseOptionalElement is ParseElement returning nil, nil when no
// child matches instead of an error.
func ParseOptionalElement[T any, PT ElementPtr[T]](p *Parser) (*T, error) {
	name := PT(new(T)).ElementName()

	for _, child := range p.raw.Children {
		if child.Name.Text(p.lookup) == name {
			p.logger.Debug("parsing element", zap.String("name", name))
			el := PT(new(T))
			if err := el.FromRaw(p.fork(child)); err != nil {
				return nil, err
			}
			return el, nil
		}
	}

	return nil, nil
}

// ParseAllElements decodes every child whose name matches T's element
// name. The first failed child fails the whole call.
func ParseAllElements[T any, PT ElementPtr[T]](p *Parser) ([]T, error) {
	name := PT(new(T)).ElementName()
	p.logger.Debug("parsing element list", zap.String("name", name))

	var out []T
	for _, child := range p.raw.Children {
		if child.Name.Text(p.lookup) != name {
			continue
		}
		el := PT(new(T))
		if err := el.FromRaw(p.fork(child)); err != nil {
			return nil, err
		}
		out = append(out, *el)
	}

	return out, nil
}

// ParseAny decodes every child through the registry: children with a
// registered parser become their typed element, the rest stay raw
// copies. Every child is attempted even after failures; if any child
// fails, the successes are returned alongside an aggregate error
// naming each failed element.
func (p *Parser) ParseAny() ([]Element, error) {
	parsed := make([]Element, 0, len(p.raw.Children))
	var failures []errors.ElementFailure

	for _, child := range p.raw.Children {
		name := child.Name.Text(p.lookup)

		parse, ok := p.reg.Get(name)
		if !ok {
			parsed = append(parsed, child.Clone())
			continue
		}

		p.logger.Debug("parsing dynamic element", zap.String("name", name))
		el, err := parse(p.fork(child))
		if err != nil {
			failures = append(failures, errors.ElementFailure{Element: name, Err: err})
			continue
		}
		parsed = append(parsed, el)
	}

	if me := errors.NewMultiError(failures); me != nil {
		return parsed, me
	}
	return parsed, nil
}
