package elements

import (
	"github.com/maddymakesgames/celeste-go/maps"
)

// Entity is a generic, attribute-preserving view of any entity or
// trigger element. The common fields every entity carries are typed;
// everything else the element had is kept verbatim in Extra so an
// unmodeled entity still round-trips losslessly.
//
// The wire name varies per entity, so Entity is not registered in any
// registry; containers parse their children through it directly.
type Entity struct {
	Name    string
	ID      maps.Integer
	X       maps.Number
	Y       maps.Number
	Width   *maps.Integer
	Height  *maps.Integer
	OriginX maps.Number
	OriginY maps.Number
	Nodes   []Node
	Extra   []maps.Attribute
}

// commonEntityAttrs are the attribute names lifted into typed fields.
var commonEntityAttrs = map[string]bool{
	"id":      true,
	"x":       true,
	"y":       true,
	"width":   true,
	"height":  true,
	"originX": true,
	"originY": true,
}

func (en *Entity) ElementName() string { return en.Name }

func (en *Entity) FromRaw(p *maps.Parser) error {
	en.Name = p.Name()

	var err error
	if en.ID, err = p.Integer("id"); err != nil {
		return err
	}
	if en.X, err = p.Number("x"); err != nil {
		return err
	}
	if en.Y, err = p.Number("y"); err != nil {
		return err
	}
	if en.Width, err = p.OptionalInteger("width"); err != nil {
		return err
	}
	if en.Height, err = p.OptionalInteger("height"); err != nil {
		return err
	}
	if en.OriginX, err = p.Number("originX"); err != nil {
		return err
	}
	if en.OriginY, err = p.Number("originY"); err != nil {
		return err
	}

	for _, attr := range p.Raw().Attributes {
		name := attr.Name.Text(p.Lookup())
		if commonEntityAttrs[name] {
			continue
		}
		en.Extra = append(en.Extra, maps.Attribute{
			Name:  maps.InlineName(name),
			Value: attr.Value,
		})
	}

	en.Nodes, err = maps.ParseAllElements[Node](p)
	return err
}

func (en *Entity) ToRaw(e *maps.Encoder) {
	e.Attribute("id", en.ID)
	e.Attribute("x", en.X)
	e.Attribute("y", en.Y)
	e.OptionalAttribute("width", en.Width)
	e.OptionalAttribute("height", en.Height)
	e.Attribute("originX", en.OriginX)
	e.Attribute("originY", en.OriginY)
	for _, attr := range en.Extra {
		s, _ := attr.Name.Inline()
		e.Attribute(s, attr.Value)
	}
	maps.EncodeChildren[Node](e, en.Nodes)
}

// Entities is the entity container of a room.
type Entities struct {
	OffsetX  *maps.Number
	OffsetY  *maps.Number
	Entities []Entity
}

func (en *Entities) ElementName() string { return "entities" }

func (en *Entities) FromRaw(p *maps.Parser) error {
	var err error
	if en.OffsetX, err = p.OptionalNumber("offsetX"); err != nil {
		return err
	}
	if en.OffsetY, err = p.OptionalNumber("offsetY"); err != nil {
		return err
	}

	for _, cp := range p.ForkChildren() {
		var ent Entity
		if err := ent.FromRaw(cp); err != nil {
			return err
		}
		en.Entities = append(en.Entities, ent)
	}
	return nil
}

func (en *Entities) ToRaw(e *maps.Encoder) {
	e.OptionalAttribute("offsetX", en.OffsetX)
	e.OptionalAttribute("offsetY", en.OffsetY)
	maps.EncodeChildren[Entity](e, en.Entities)
}

// Triggers is the trigger container of a room. Triggers share the
// entity wire layout, so the children reuse the Entity view.
type Triggers struct {
	OffsetX  maps.Number
	OffsetY  maps.Number
	Triggers []Entity
}

func (tr *Triggers) ElementName() string { return "triggers" }

func (tr *Triggers) FromRaw(p *maps.Parser) error {
	var err error
	if tr.OffsetX, err = p.Number("offsetX"); err != nil {
		return err
	}
	if tr.OffsetY, err = p.Number("offsetY"); err != nil {
		return err
	}

	for _, cp := range p.ForkChildren() {
		var ent Entity
		if err := ent.FromRaw(cp); err != nil {
			return err
		}
		tr.Triggers = append(tr.Triggers, ent)
	}
	return nil
}

func (tr *Triggers) ToRaw(e *maps.Encoder) {
	e.Attribute("offsetX", tr.OffsetX)
	e.Attribute("offsetY", tr.OffsetY)
	maps.EncodeChildren[Entity](e, tr.Triggers)
}
