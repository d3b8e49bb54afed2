package elements

import (
	"github.com/maddymakesgames/celeste-go/maps"
)

// Styles is the "Style" section of the map root.
type Styles struct {
	Background Backgrounds
	Foreground Foregrounds
}

func (s *Styles) ElementName() string { return "Style" }

func (s *Styles) FromRaw(p *maps.Parser) error {
	bg, err := maps.ParseElement[Backgrounds](p)
	if err != nil {
		return err
	}
	fg, err := maps.ParseElement[Foregrounds](p)
	if err != nil {
		return err
	}
	s.Background = *bg
	s.Foreground = *fg
	return nil
}

func (s *Styles) ToRaw(e *maps.Encoder) {
	e.Child(&s.Background)
	e.Child(&s.Foreground)
}

// Backgrounds holds the background styleground layers.
type Backgrounds struct {
	Parallax []Parallax
	SnowBG   bool
}

func (b *Backgrounds) ElementName() string { return "Backgrounds" }

func (b *Backgrounds) FromRaw(p *maps.Parser) error {
	var err error
	if b.Parallax, err = maps.ParseAllElements[Parallax](p); err != nil {
		return err
	}
	snow, err := maps.ParseOptionalElement[SnowBG](p)
	if err != nil {
		return err
	}
	b.SnowBG = snow != nil
	return nil
}

func (b *Backgrounds) ToRaw(e *maps.Encoder) {
	maps.EncodeChildren[Parallax](e, b.Parallax)
	if b.SnowBG {
		e.Child(&SnowBG{})
	}
}

// Foregrounds holds the foreground styleground layers.
type Foregrounds struct {
	Parallax []Parallax
	SnowFG   bool
}

func (f *Foregrounds) ElementName() string { return "Foregrounds" }

func (f *Foregrounds) FromRaw(p *maps.Parser) error {
	var err error
	if f.Parallax, err = maps.ParseAllElements[Parallax](p); err != nil {
		return err
	}
	snow, err := maps.ParseOptionalElement[SnowFG](p)
	if err != nil {
		return err
	}
	f.SnowFG = snow != nil
	return nil
}

func (f *Foregrounds) ToRaw(e *maps.Encoder) {
	if f.SnowFG {
		e.Child(&SnowFG{})
	}
	maps.EncodeChildren[Parallax](e, f.Parallax)
}

// Parallax is one scrolling styleground texture.
type Parallax struct {
	BlendMode *maps.ResolvableName
	Texture   maps.ResolvableName
	X         maps.Number
	Y         maps.Number
	ScrollX   maps.Number
	ScrollY   maps.Number
	LoopX     bool
	LoopY     bool
	SpeedX    *maps.Number
	SpeedY    *maps.Number
	Color     *maps.ResolvableName
	Alpha     *maps.Number
}

func (px *Parallax) ElementName() string { return "parallax" }

func (px *Parallax) FromRaw(p *maps.Parser) error {
	var err error
	if px.BlendMode, err = p.OptionalIndexedString("blendmode"); err != nil {
		return err
	}
	if px.Texture, err = p.IndexedString("texture"); err != nil {
		return err
	}
	if px.X, err = p.Number("x"); err != nil {
		return err
	}
	if px.Y, err = p.Number("y"); err != nil {
		return err
	}
	if px.ScrollX, err = p.Number("scrollx"); err != nil {
		return err
	}
	if px.ScrollY, err = p.Number("scrolly"); err != nil {
		return err
	}
	if px.LoopX, err = p.Bool("loopx"); err != nil {
		return err
	}
	if px.LoopY, err = p.Bool("loopy"); err != nil {
		return err
	}
	if px.SpeedX, err = p.OptionalNumber("speedx"); err != nil {
		return err
	}
	if px.SpeedY, err = p.OptionalNumber("speedy"); err != nil {
		return err
	}
	if px.Color, err = p.OptionalIndexedString("color"); err != nil {
		return err
	}
	px.Alpha, err = p.OptionalNumber("alpha")
	return err
}

func (px *Parallax) ToRaw(e *maps.Encoder) {
	e.OptionalAttribute("blendmode", px.BlendMode)
	e.Attribute("texture", px.Texture)
	e.Attribute("x", px.X)
	e.Attribute("y", px.Y)
	e.Attribute("scrollx", px.ScrollX)
	e.Attribute("scrolly", px.ScrollY)
	e.Attribute("loopx", px.LoopX)
	e.Attribute("loopy", px.LoopY)
	e.OptionalAttribute("speedx", px.SpeedX)
	e.OptionalAttribute("speedy", px.SpeedY)
	e.OptionalAttribute("color", px.Color)
	e.OptionalAttribute("alpha", px.Alpha)
}

// SnowBG and SnowFG are marker layers with no data of their own.

type SnowBG struct{}

func (s *SnowBG) ElementName() string          { return "snowBg" }
func (s *SnowBG) FromRaw(p *maps.Parser) error { return nil }
func (s *SnowBG) ToRaw(e *maps.Encoder)        {}

type SnowFG struct{}

func (s *SnowFG) ElementName() string          { return "snowFg" }
func (s *SnowFG) FromRaw(p *maps.Parser) error { return nil }
func (s *SnowFG) ToRaw(e *maps.Encoder)        {}
