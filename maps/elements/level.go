package elements

import (
	"github.com/maddymakesgames/celeste-go/maps"
)

// Levels is the "levels" section of the map root, a list of rooms.
type Levels struct {
	Levels []Level
}

func (l *Levels) ElementName() string { return "levels" }

func (l *Levels) FromRaw(p *maps.Parser) error {
	var err error
	l.Levels, err = maps.ParseAllElements[Level](p)
	return err
}

func (l *Levels) ToRaw(e *maps.Encoder) {
	maps.EncodeChildren[Level](e, l.Levels)
}

// Level is a single room: its placement and music metadata plus the
// tile, decal, entity, and trigger layers.
type Level struct {
	Name                  maps.ResolvableName
	Width                 maps.Integer
	Height                maps.Integer
	WindPattern           *maps.ResolvableName
	Dark                  *bool
	CameraOffsetX         *maps.Number
	CameraOffsetY         *maps.Number
	AltMusic              *maps.ResolvableName
	Music                 *maps.ResolvableName
	MusicLayer1           *bool
	MusicLayer2           *bool
	MusicLayer3           *bool
	MusicLayer4           *bool
	MusicProgress         *maps.ResolvableName
	Ambience              *maps.ResolvableName
	AmbienceProgress      *maps.ResolvableName
	Underwater            *bool
	Space                 *bool
	DisableDownTransition *bool
	Whisper               *bool
	DelayAltMusicFade     *bool
	EnforceDashNumber     *maps.Integer
	X                     maps.Number
	Y                     maps.Number
	C                     maps.Integer

	Triggers *Triggers
	FGTiles  *FGTiles
	FGDecals *FGDecals
	Solids   Solids
	Entities *Entities
	BGTiles  *BGTiles
	BGDecals *BGDecals
	BG       Background
	ObjTiles *ObjTiles
}

func (l *Level) ElementName() string { return "level" }

func (l *Level) FromRaw(p *maps.Parser) error {
	var err error
	if l.Name, err = p.IndexedString("name"); err != nil {
		return err
	}
	if l.Width, err = p.Integer("width"); err != nil {
		return err
	}
	if l.Height, err = p.Integer("height"); err != nil {
		return err
	}
	if l.WindPattern, err = p.OptionalIndexedString("windPattern"); err != nil {
		return err
	}
	if l.Dark, err = p.OptionalBool("dark"); err != nil {
		return err
	}
	if l.CameraOffsetX, err = p.OptionalNumber("cameraOffsetX"); err != nil {
		return err
	}
	if l.CameraOffsetY, err = p.OptionalNumber("cameraOffsetY"); err != nil {
		return err
	}
	if l.AltMusic, err = p.OptionalIndexedString("alt_music"); err != nil {
		return err
	}
	if l.Music, err = p.OptionalIndexedString("music"); err != nil {
		return err
	}
	if l.MusicLayer1, err = p.OptionalBool("musicLayer1"); err != nil {
		return err
	}
	if l.MusicLayer2, err = p.OptionalBool("musicLayer2"); err != nil {
		return err
	}
	if l.MusicLayer3, err = p.OptionalBool("musicLayer3"); err != nil {
		return err
	}
	if l.MusicLayer4, err = p.OptionalBool("musicLayer4"); err != nil {
		return err
	}
	if l.MusicProgress, err = p.OptionalIndexedString("musicProgress"); err != nil {
		return err
	}
	if l.Ambience, err = p.OptionalIndexedString("ambience"); err != nil {
		return err
	}
	if l.AmbienceProgress, err = p.OptionalIndexedString("ambienceProgress"); err != nil {
		return err
	}
	if l.Underwater, err = p.OptionalBool("underwater"); err != nil {
		return err
	}
	if l.Space, err = p.OptionalBool("space"); err != nil {
		return err
	}
	if l.DisableDownTransition, err = p.OptionalBool("disableDownTransition"); err != nil {
		return err
	}
	if l.Whisper, err = p.OptionalBool("whisper"); err != nil {
		return err
	}
	if l.DelayAltMusicFade, err = p.OptionalBool("delayAltMusicFade"); err != nil {
		return err
	}
	if l.EnforceDashNumber, err = p.OptionalInteger("enforceDashNumber"); err != nil {
		return err
	}
	if l.X, err = p.Number("x"); err != nil {
		return err
	}
	if l.Y, err = p.Number("y"); err != nil {
		return err
	}
	if l.C, err = p.Integer("c"); err != nil {
		return err
	}

	if l.Triggers, err = maps.ParseOptionalElement[Triggers](p); err != nil {
		return err
	}
	if l.FGTiles, err = maps.ParseOptionalElement[FGTiles](p); err != nil {
		return err
	}
	if l.FGDecals, err = maps.ParseOptionalElement[FGDecals](p); err != nil {
		return err
	}
	solids, err := maps.ParseElement[Solids](p)
	if err != nil {
		return err
	}
	l.Solids = *solids
	if l.Entities, err = maps.ParseOptionalElement[Entities](p); err != nil {
		return err
	}
	if l.BGTiles, err = maps.ParseOptionalElement[BGTiles](p); err != nil {
		return err
	}
	if l.BGDecals, err = maps.ParseOptionalElement[BGDecals](p); err != nil {
		return err
	}
	bg, err := maps.ParseElement[Background](p)
	if err != nil {
		return err
	}
	l.BG = *bg
	l.ObjTiles, err = maps.ParseOptionalElement[ObjTiles](p)
	return err
}

func (l *Level) ToRaw(e *maps.Encoder) {
	e.Attribute("name", l.Name)
	e.Attribute("width", l.Width)
	e.Attribute("height", l.Height)
	e.OptionalAttribute("windPattern", l.WindPattern)
	e.OptionalAttribute("dark", l.Dark)
	e.OptionalAttribute("cameraOffsetX", l.CameraOffsetX)
	e.OptionalAttribute("cameraOffsetY", l.CameraOffsetY)
	e.OptionalAttribute("alt_music", l.AltMusic)
	e.OptionalAttribute("music", l.Music)
	e.OptionalAttribute("musicLayer1", l.MusicLayer1)
	e.OptionalAttribute("musicLayer2", l.MusicLayer2)
	e.OptionalAttribute("musicLayer3", l.MusicLayer3)
	e.OptionalAttribute("musicLayer4", l.MusicLayer4)
	e.OptionalAttribute("musicProgress", l.MusicProgress)
	e.OptionalAttribute("ambience", l.Ambience)
	e.OptionalAttribute("ambienceProgress", l.AmbienceProgress)
	e.OptionalAttribute("underwater", l.Underwater)
	e.OptionalAttribute("space", l.Space)
	e.OptionalAttribute("disableDownTransition", l.DisableDownTransition)
	e.OptionalAttribute("whisper", l.Whisper)
	e.OptionalAttribute("delayAltMusicFade", l.DelayAltMusicFade)
	e.OptionalAttribute("enforceDashNumber", l.EnforceDashNumber)
	e.Attribute("x", l.X)
	e.Attribute("y", l.Y)
	e.Attribute("c", l.C)

	if l.Triggers != nil {
		e.Child(l.Triggers)
	}
	if l.FGTiles != nil {
		e.Child(l.FGTiles)
	}
	if l.FGDecals != nil {
		e.Child(l.FGDecals)
	}
	e.Child(&l.Solids)
	if l.Entities != nil {
		e.Child(l.Entities)
	}
	if l.BGTiles != nil {
		e.Child(l.BGTiles)
	}
	if l.BGDecals != nil {
		e.Child(l.BGDecals)
	}
	e.Child(&l.BG)
	if l.ObjTiles != nil {
		e.Child(l.ObjTiles)
	}
}
