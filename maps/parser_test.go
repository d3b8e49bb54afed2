package maps

import (
	stderrors "errors"
	"testing"

	"github.com/maddymakesgames/celeste-go/errors"
)

// testLevel and testDecal are small elements used across the parser
// and encoder tests.

type testLevel struct {
	Name  string
	Width int32
	Music *string
}

func (l *testLevel) ElementName() string { return "level" }

func (l *testLevel) FromRaw(p *Parser) error {
	var err error
	if l.Name, err = p.Text("name"); err != nil {
		return err
	}
	if l.Width, err = p.Int("width"); err != nil {
		return err
	}
	if l.Music, err = p.OptionalText("music"); err != nil {
		return err
	}
	return nil
}

func (l *testLevel) ToRaw(e *Encoder) {
	e.Attribute("name", l.Name)
	e.Attribute("width", l.Width)
	e.OptionalAttribute("music", l.Music)
}

type testDecal struct {
	Texture string
	X, Y    float32
}

func (d *testDecal) ElementName() string { return "decal" }

func (d *testDecal) FromRaw(p *Parser) error {
	var err error
	if d.Texture, err = p.Text("texture"); err != nil {
		return err
	}
	if d.X, err = p.Float("x"); err != nil {
		return err
	}
	if d.Y, err = p.Float("y"); err != nil {
		return err
	}
	return nil
}

func (d *testDecal) ToRaw(e *Encoder) {
	e.Attribute("texture", d.Texture)
	e.Attribute("x", d.X)
	e.Attribute("y", d.Y)
}

// testParser wraps a hand-built resolved tree in a Parser.
func testParser(raw *RawElement, reg *Registry) *Parser {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Parser{logger: Logger(), lookup: NewLookupTable(), raw: raw, reg: reg}
}

func levelNode(name string, width int32) *RawElement {
	return &RawElement{
		Name: InlineName("level"),
		Attributes: []Attribute{
			{Name: InlineName("name"), Value: StringValue(name)},
			{Name: InlineName("width"), Value: ShortValue(int16(width))},
		},
	}
}

func TestParseElement(t *testing.T) {
	parent := &RawElement{
		Name: InlineName("levels"),
		Children: []*RawElement{
			{Name: InlineName("decal")},
			levelNode("a-01", 320),
			levelNode("a-02", 480),
		},
	}
	p := testParser(parent, nil)

	// First matching child wins.
	level, err := ParseElement[testLevel](p)
	if err != nil {
		t.Fatal(err)
	}
	if level.Name != "a-01" || level.Width != 320 {
		t.Errorf("level = %+v", level)
	}
	if level.Music != nil {
		t.Errorf("Music = %q, want nil", *level.Music)
	}
}

func TestParseElementMissing(t *testing.T) {
	parent := &RawElement{
		Name:     InlineName("levels"),
		Children: []*RawElement{levelNode("a-01", 320)},
	}

	_, err := ParseElement[testDecal](testParser(parent, nil))
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindNoMatchingElement {
		t.Fatalf("ParseElement = %v, want no_matching_element", err)
	}
}

func TestParseOptionalElement(t *testing.T) {
	parent := &RawElement{
		Name:     InlineName("levels"),
		Children: []*RawElement{levelNode("a-01", 320)},
	}
	p := testParser(parent, nil)

	decal, err := ParseOptionalElement[testDecal](p)
	if err != nil || decal != nil {
		t.Errorf("absent optional = %v, %v, want nil, nil", decal, err)
	}

	level, err := ParseOptionalElement[testLevel](p)
	if err != nil || level == nil {
		t.Fatalf("present optional = %v, %v", level, err)
	}
	if level.Name != "a-01" {
		t.Errorf("level.Name = %q", level.Name)
	}
}

func TestParseAllElements(t *testing.T) {
	parent := &RawElement{
		Name: InlineName("levels"),
		Children: []*RawElement{
			levelNode("a-01", 320),
			{Name: InlineName("decal")},
			levelNode("a-02", 480),
		},
	}

	levels, err := ParseAllElements[testLevel](testParser(parent, nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != 2 || levels[0].Name != "a-01" || levels[1].Name != "a-02" {
		t.Errorf("levels = %+v", levels)
	}

	// One bad sibling fails the whole list.
	parent.Children = append(parent.Children, &RawElement{Name: InlineName("level")})
	if _, err := ParseAllElements[testLevel](testParser(parent, nil)); err == nil {
		t.Error("ParseAllElements succeeded with an invalid sibling")
	}
}

func TestAttributeGetters(t *testing.T) {
	raw := &RawElement{
		Name: InlineName("level"),
		Attributes: []Attribute{
			{Name: InlineName("dark"), Value: BoolValue(true)},
			{Name: InlineName("c"), Value: ByteValue(3)},
			{Name: InlineName("width"), Value: ShortValue(320)},
			{Name: InlineName("alpha"), Value: FloatValue(0.5)},
			{Name: InlineName("name"), Value: StringValue("a-01")},
		},
	}
	p := testParser(raw, nil)

	if v, err := p.Bool("dark"); err != nil || !v {
		t.Errorf("Bool = %v, %v", v, err)
	}
	if v, err := p.Byte("c"); err != nil || v != 3 {
		t.Errorf("Byte = %v, %v", v, err)
	}
	if v, err := p.Int("width"); err != nil || v != 320 {
		t.Errorf("Int widened = %v, %v", v, err)
	}
	if v, err := p.Float("c"); err != nil || v != 3 {
		t.Errorf("Float widened = %v, %v", v, err)
	}
	if v, err := p.Text("name"); err != nil || v != "a-01" {
		t.Errorf("Text = %v, %v", v, err)
	}

	_, err := p.Int("missing")
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindAttributeMissing {
		t.Errorf("Int(missing) = %v, want attribute_missing", err)
	}

	_, err = p.Int("name")
	if !stderrors.As(err, &e) || e.Kind != errors.KindValueMismatch {
		t.Errorf("Int(name) = %v, want value_mismatch", err)
	}
	if e.Expected != "integer" || e.Found != "string" {
		t.Errorf("expected/found = %q/%q", e.Expected, e.Found)
	}

	// Optional getters: nil when absent, still strict on kind.
	if v, err := p.OptionalText("missing"); err != nil || v != nil {
		t.Errorf("OptionalText(missing) = %v, %v", v, err)
	}
	if v, err := p.OptionalFloat("alpha"); err != nil || v == nil || *v != 0.5 {
		t.Errorf("OptionalFloat = %v, %v", v, err)
	}
	if _, err := p.OptionalBool("name"); err == nil {
		t.Error("OptionalBool accepted a string")
	}
}

func TestParseAny(t *testing.T) {
	reg := NewRegistry()
	Register[testLevel](reg)

	parent := &RawElement{
		Name: InlineName("levels"),
		Children: []*RawElement{
			// No parser registered: passes through as a raw node.
			{Name: InlineName("widget")},
			// Registered but missing its required attributes.
			{Name: InlineName("level")},
			levelNode("a-01", 320),
		},
	}

	parsed, err := testParser(parent, reg).ParseAny()

	// The failing child is reported without dropping the other two.
	if len(parsed) != 2 {
		t.Fatalf("parsed %d elements, want 2", len(parsed))
	}
	raw, ok := parsed[0].(*RawElement)
	if !ok || raw.ElementName() != "widget" {
		t.Errorf("parsed[0] = %T %q, want raw widget", parsed[0], parsed[0].ElementName())
	}
	level, ok := parsed[1].(*testLevel)
	if !ok || level.Name != "a-01" {
		t.Errorf("parsed[1] = %T, want *testLevel a-01", parsed[1])
	}

	var me *errors.MultiError
	if !stderrors.As(err, &me) {
		t.Fatalf("err = %v, want *errors.MultiError", err)
	}
	if len(me.Failures) != 1 || me.Failures[0].Element != "level" {
		t.Errorf("failures = %+v, want one failure for level", me.Failures)
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindAttributeMissing}) {
		t.Errorf("aggregate does not expose the underlying attribute_missing: %v", err)
	}
}

func TestParseAnyAllValid(t *testing.T) {
	reg := NewRegistry()
	Register[testLevel](reg)
	Register[testDecal](reg)

	parent := &RawElement{
		Name: InlineName("levels"),
		Children: []*RawElement{
			levelNode("a-01", 320),
			{
				Name: InlineName("decal"),
				Attributes: []Attribute{
					{Name: InlineName("texture"), Value: StringValue("snow")},
					{Name: InlineName("x"), Value: FloatValue(8)},
					{Name: InlineName("y"), Value: FloatValue(16)},
				},
			},
		},
	}

	parsed, err := testParser(parent, reg).ParseAny()
	if err != nil {
		t.Fatal(err)
	}
	if len(parsed) != 2 {
		t.Fatalf("parsed %d elements", len(parsed))
	}
	if _, ok := parsed[0].(*testLevel); !ok {
		t.Errorf("parsed[0] = %T", parsed[0])
	}
	if d, ok := parsed[1].(*testDecal); !ok || d.Texture != "snow" {
		t.Errorf("parsed[1] = %+v", parsed[1])
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	Register[testLevel](reg)
	Register[testDecal](reg)

	if !reg.Has("level") || !reg.Has("decal") {
		t.Error("registered names missing")
	}
	if reg.Has("entities") {
		t.Error("unregistered name reported present")
	}

	names := reg.Names()
	if len(names) != 2 || names[0] != "decal" || names[1] != "level" {
		t.Errorf("Names = %v", names)
	}
}
