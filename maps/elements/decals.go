package elements

import (
	"github.com/maddymakesgames/celeste-go/maps"
)

// FGDecals is the foreground decal layer of a room.
type FGDecals struct {
	OffsetX maps.Number
	OffsetY maps.Number
	Decals  []Decal
}

func (d *FGDecals) ElementName() string { return "fgdecals" }

func (d *FGDecals) FromRaw(p *maps.Parser) error {
	var err error
	if d.OffsetX, err = p.Number("offsetX"); err != nil {
		return err
	}
	if d.OffsetY, err = p.Number("offsetY"); err != nil {
		return err
	}
	d.Decals, err = maps.ParseAllElements[Decal](p)
	return err
}

func (d *FGDecals) ToRaw(e *maps.Encoder) {
	e.Attribute("offsetX", d.OffsetX)
	e.Attribute("offsetY", d.OffsetY)
	maps.EncodeChildren[Decal](e, d.Decals)
}

// BGDecals is the background decal layer of a room.
type BGDecals struct {
	OffsetX maps.Number
	OffsetY maps.Number
	Decals  []Decal
}

func (d *BGDecals) ElementName() string { return "bgdecals" }

func (d *BGDecals) FromRaw(p *maps.Parser) error {
	var err error
	if d.OffsetX, err = p.Number("offsetX"); err != nil {
		return err
	}
	if d.OffsetY, err = p.Number("offsetY"); err != nil {
		return err
	}
	d.Decals, err = maps.ParseAllElements[Decal](p)
	return err
}

func (d *BGDecals) ToRaw(e *maps.Encoder) {
	e.Attribute("offsetX", d.OffsetX)
	e.Attribute("offsetY", d.OffsetY)
	maps.EncodeChildren[Decal](e, d.Decals)
}

// Decal is one placed decal texture.
type Decal struct {
	X        maps.Number
	Y        maps.Number
	ScaleX   maps.Number
	ScaleY   maps.Number
	Rotation *maps.Number
	Texture  maps.ResolvableName
}

func (d *Decal) ElementName() string { return "decal" }

func (d *Decal) FromRaw(p *maps.Parser) error {
	var err error
	if d.X, err = p.Number("x"); err != nil {
		return err
	}
	if d.Y, err = p.Number("y"); err != nil {
		return err
	}
	if d.ScaleX, err = p.Number("scaleX"); err != nil {
		return err
	}
	if d.ScaleY, err = p.Number("scaleY"); err != nil {
		return err
	}
	if d.Rotation, err = p.OptionalNumber("rotation"); err != nil {
		return err
	}
	d.Texture, err = p.IndexedString("texture")
	return err
}

func (d *Decal) ToRaw(e *maps.Encoder) {
	e.Attribute("x", d.X)
	e.Attribute("y", d.Y)
	e.Attribute("scaleX", d.ScaleX)
	e.Attribute("scaleY", d.ScaleY)
	e.OptionalAttribute("rotation", d.Rotation)
	e.Attribute("texture", d.Texture)
}
