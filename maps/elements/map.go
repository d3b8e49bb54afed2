package elements

import (
	"github.com/maddymakesgames/celeste-go/maps"
)

// MapRoot is the "Map" element at the top of every map file.
type MapRoot struct {
	Filler Filler
	Levels Levels
	Style  Styles
}

func (m *MapRoot) ElementName() string { return "Map" }

func (m *MapRoot) FromRaw(p *maps.Parser) error {
	filler, err := maps.ParseElement[Filler](p)
	if err != nil {
		return err
	}
	levels, err := maps.ParseElement[Levels](p)
	if err != nil {
		return err
	}
	style, err := maps.ParseElement[Styles](p)
	if err != nil {
		return err
	}

	m.Filler = *filler
	m.Levels = *levels
	m.Style = *style
	return nil
}

func (m *MapRoot) ToRaw(e *maps.Encoder) {
	e.Child(&m.Filler)
	e.Child(&m.Levels)
	e.Child(&m.Style)
}

// Filler holds the rectangles rendered in unexplored map cells.
type Filler struct {
	Rects []Rect
}

func (f *Filler) ElementName() string { return "Filler" }

func (f *Filler) FromRaw(p *maps.Parser) error {
	var err error
	f.Rects, err = maps.ParseAllElements[Rect](p)
	return err
}

func (f *Filler) ToRaw(e *maps.Encoder) {
	maps.EncodeChildren[Rect](e, f.Rects)
}

type Rect struct {
	X maps.Integer
	Y maps.Integer
	W maps.Integer
	H maps.Integer
}

func (r *Rect) ElementName() string { return "rect" }

func (r *Rect) FromRaw(p *maps.Parser) error {
	var err error
	if r.X, err = p.Integer("x"); err != nil {
		return err
	}
	if r.Y, err = p.Integer("y"); err != nil {
		return err
	}
	if r.W, err = p.Integer("w"); err != nil {
		return err
	}
	r.H, err = p.Integer("h")
	return err
}

func (r *Rect) ToRaw(e *maps.Encoder) {
	e.Attribute("x", r.X)
	e.Attribute("y", r.Y)
	e.Attribute("w", r.W)
	e.Attribute("h", r.H)
}

// Node is a positional child used by entities with paths or targets.
type Node struct {
	X maps.Number
	Y maps.Number
}

func (n *Node) ElementName() string { return "node" }

func (n *Node) FromRaw(p *maps.Parser) error {
	var err error
	if n.X, err = p.Number("x"); err != nil {
		return err
	}
	n.Y, err = p.Number("y")
	return err
}

func (n *Node) ToRaw(e *maps.Encoder) {
	e.Attribute("x", n.X)
	e.Attribute("y", n.Y)
}
