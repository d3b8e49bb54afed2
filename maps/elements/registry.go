package elements

import (
	"github.com/maddymakesgames/celeste-go/maps"
)

// DefaultRegistry returns a registry with every element type in this
// package registered. Entity is deliberately absent: its wire name
// varies per instance, so containers parse it directly.
func DefaultRegistry() *maps.Registry {
	reg := maps.NewRegistry()

	maps.Register[MapRoot](reg)
	maps.Register[Filler](reg)
	maps.Register[Rect](reg)
	maps.Register[Node](reg)
	maps.Register[Levels](reg)
	maps.Register[Level](reg)
	maps.Register[Triggers](reg)
	maps.Register[FGTiles](reg)
	maps.Register[BGTiles](reg)
	maps.Register[ObjTiles](reg)
	maps.Register[Solids](reg)
	maps.Register[Background](reg)
	maps.Register[FGDecals](reg)
	maps.Register[BGDecals](reg)
	maps.Register[Decal](reg)
	maps.Register[Entities](reg)
	maps.Register[Styles](reg)
	maps.Register[Backgrounds](reg)
	maps.Register[Foregrounds](reg)
	maps.Register[Parallax](reg)
	maps.Register[SnowBG](reg)
	maps.Register[SnowFG](reg)

	return reg
}
