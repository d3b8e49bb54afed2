package elements

import (
	"github.com/maddymakesgames/celeste-go/maps"
)

// FGTiles is a foreground tile layer exported from the editor.
type FGTiles struct {
	OffsetX    maps.Number
	OffsetY    maps.Number
	Tileset    maps.ResolvableName
	ExportMode maps.Integer
	InnerText  *string
}

func (f *FGTiles) ElementName() string { return "fgtiles" }

func (f *FGTiles) FromRaw(p *maps.Parser) error {
	var err error
	if f.OffsetX, err = p.Number("offsetX"); err != nil {
		return err
	}
	if f.OffsetY, err = p.Number("offsetY"); err != nil {
		return err
	}
	if f.Tileset, err = p.IndexedString("tileset"); err != nil {
		return err
	}
	if f.ExportMode, err = p.Integer("exportMode"); err != nil {
		return err
	}
	f.InnerText, err = p.OptionalText("innerText")
	return err
}

func (f *FGTiles) ToRaw(e *maps.Encoder) {
	e.Attribute("offsetX", f.OffsetX)
	e.Attribute("offsetY", f.OffsetY)
	e.Attribute("tileset", f.Tileset)
	e.Attribute("exportMode", f.ExportMode)
	e.OptionalAttribute("innerText", f.InnerText)
}

// BGTiles is a background tile layer.
type BGTiles struct {
	OffsetX    maps.Number
	OffsetY    maps.Number
	Tileset    maps.ResolvableName
	ExportMode maps.Integer
}

func (b *BGTiles) ElementName() string { return "bgtiles" }

func (b *BGTiles) FromRaw(p *maps.Parser) error {
	var err error
	if b.OffsetX, err = p.Number("offsetX"); err != nil {
		return err
	}
	if b.OffsetY, err = p.Number("offsetY"); err != nil {
		return err
	}
	if b.Tileset, err = p.IndexedString("tileset"); err != nil {
		return err
	}
	b.ExportMode, err = p.Integer("exportMode")
	return err
}

func (b *BGTiles) ToRaw(e *maps.Encoder) {
	e.Attribute("offsetX", b.OffsetX)
	e.Attribute("offsetY", b.OffsetY)
	e.Attribute("tileset", b.Tileset)
	e.Attribute("exportMode", b.ExportMode)
}

// ObjTiles is the object tile layer, a grid of tile ids.
type ObjTiles struct {
	OffsetX    *maps.Number
	OffsetY    *maps.Number
	Tileset    maps.ResolvableName
	ExportMode maps.Integer
	InnerText  *string
}

func (o *ObjTiles) ElementName() string { return "objtiles" }

func (o *ObjTiles) FromRaw(p *maps.Parser) error {
	var err error
	if o.OffsetX, err = p.OptionalNumber("offsetX"); err != nil {
		return err
	}
	if o.OffsetY, err = p.OptionalNumber("offsetY"); err != nil {
		return err
	}
	if o.Tileset, err = p.IndexedString("tileset"); err != nil {
		return err
	}
	if o.ExportMode, err = p.Integer("exportMode"); err != nil {
		return err
	}
	o.InnerText, err = p.OptionalText("innerText")
	return err
}

func (o *ObjTiles) ToRaw(e *maps.Encoder) {
	e.OptionalAttribute("offsetX", o.OffsetX)
	e.OptionalAttribute("offsetY", o.OffsetY)
	e.Attribute("tileset", o.Tileset)
	e.Attribute("exportMode", o.ExportMode)
	e.OptionalAttribute("innerText", o.InnerText)
}

// Solids is the solid tile grid of a room. Its text is run-length
// encoded on the wire.
type Solids struct {
	OffsetX   *maps.Number
	OffsetY   *maps.Number
	InnerText *string
}

func (s *Solids) ElementName() string { return "solids" }

func (s *Solids) FromRaw(p *maps.Parser) error {
	var err error
	if s.OffsetX, err = p.OptionalNumber("offsetX"); err != nil {
		return err
	}
	if s.OffsetY, err = p.OptionalNumber("offsetY"); err != nil {
		return err
	}
	s.InnerText, err = p.OptionalText("innerText")
	return err
}

func (s *Solids) ToRaw(e *maps.Encoder) {
	e.OptionalAttribute("offsetX", s.OffsetX)
	e.OptionalAttribute("offsetY", s.OffsetY)
	e.OptionalRLEAttribute("innerText", s.InnerText)
}

// Background is the background tile grid, also run-length encoded.
type Background struct {
	OffsetX   *maps.Number
	OffsetY   *maps.Number
	InnerText *string
}

func (b *Background) ElementName() string { return "bg" }

func (b *Background) FromRaw(p *maps.Parser) error {
	var err error
	if b.OffsetX, err = p.OptionalNumber("offsetX"); err != nil {
		return err
	}
	if b.OffsetY, err = p.OptionalNumber("offsetY"); err != nil {
		return err
	}
	b.InnerText, err = p.OptionalText("innerText")
	return err
}

func (b *Background) ToRaw(e *maps.Encoder) {
	e.OptionalAttribute("offsetX", b.OffsetX)
	e.OptionalAttribute("offsetY", b.OffsetY)
	e.OptionalRLEAttribute("innerText", b.InnerText)
}
