package maps

// Attribute is a named, typed value attached to an element.
type Attribute struct {
	Name  ResolvableName
	Value EncodedValue
}

func NewAttribute(name ResolvableName, value EncodedValue) Attribute {
	return Attribute{Name: name, Value: value}
}

// RawElement is the generic tree node every element decodes to before
// any typed parsing happens. It carries exactly what the wire does, so
// an untouched RawElement re-encodes without loss.
type RawElement struct {
	Name       ResolvableName
	Attributes []Attribute
	Children   []*RawElement
}

// Clone deep-copies the element and its subtree.
func (el *RawElement) Clone() *RawElement {
	out := &RawElement{
		Name:       el.Name,
		Attributes: make([]Attribute, len(el.Attributes)),
		Children:   make([]*RawElement, len(el.Children)),
	}
	copy(out.Attributes, el.Attributes)
	for i, c := range el.Children {
		out.Children[i] = c.Clone()
	}
	return out
}

// resolveNames replaces every index name in the subtree with its
// string from the table, and inlines lookup-typed attribute values as
// strings. The table is read-only here.
func (el *RawElement) resolveNames(t *LookupTable) {
	el.Name.Resolve(t)

	for i := range el.Attributes {
		attr := &el.Attributes[i]
		attr.Name.Resolve(t)

		if idx, err := attr.Value.LookupIndex(); err == nil {
			s, _ := t.Get(idx)
			attr.Value = StringValue(s)
		}
	}

	for _, c := range el.Children {
		c.resolveNames(t)
	}
}

// internNames walks the subtree registering strings with the table:
// element and attribute names unconditionally, string attribute values
// only once they repeat. This is the first pass of unresolving; the
// table must not grow after it.
func (el *RawElement) internNames(t *LookupTable) {
	if s, ok := el.Name.Inline(); ok {
		t.IndexString(s)
	}

	for i := range el.Attributes {
		attr := &el.Attributes[i]
		if s, ok := attr.Name.Inline(); ok {
			t.IndexString(s)
		}
		if attr.Value.Kind() == KindString {
			s, _ := attr.Value.Text()
			t.AddString(s)
		}
	}

	for _, c := range el.Children {
		c.internNames(t)
	}
}

// unresolveNames converts inline names back to table indices and
// rewrites string attribute values present in the table as lookup
// values. Runs after internNames, against the final table.
func (el *RawElement) unresolveNames(t *LookupTable) {
	el.Name.Unresolve(t)

	for i := range el.Attributes {
		attr := &el.Attributes[i]
		attr.Name.Unresolve(t)

		if attr.Value.Kind() == KindString {
			s, _ := attr.Value.Text()
			if idx, ok := t.IndexOf(s); ok {
				attr.Value = LookupValue(idx)
			}
		}
	}

	for _, c := range el.Children {
		c.unresolveNames(t)
	}
}

// Element is a typed view over one element of the map tree.
//
// FromRaw fills the receiver from the Parser's current raw element;
// ToRaw writes the receiver's state into an Encoder. ElementName must
// return the element's wire name and be callable on a zero value.
type Element interface {
	ElementName() string
	FromRaw(p *Parser) error
	ToRaw(e *Encoder)
}

// ElementPtr constrains a pointer to a concrete element type, letting
// generic parse functions allocate and fill a T while still calling
// its pointer-receiver Element methods.
type ElementPtr[T any] interface {
	*T
	Element
}

// RawElement doubles as the fallback Element for names with no
// registered parser: it decodes as a verbatim copy of the tree node
// and encodes by replaying that copy.

func (el *RawElement) ElementName() string {
	if s, ok := el.Name.Inline(); ok {
		return s
	}
	return "UNRESOLVED STRING"
}

func (el *RawElement) FromRaw(p *Parser) error {
	*el = *p.Raw().Clone()
	return nil
}

func (el *RawElement) ToRaw(e *Encoder) {
	e.loadRaw(el)
}
