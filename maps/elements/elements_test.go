package elements

import (
	"testing"

	"github.com/maddymakesgames/celeste-go/maps"
)

func emptyMapBytes() []byte {
	w := maps.NewWriter()
	w.WriteString(maps.Header)
	w.WriteString("lvl1")
	w.WriteU16(0) // empty lookup table
	w.WriteU16(0) // root name index
	w.WriteU8(0)
	w.WriteU16(0)
	return w.Bytes()
}

func sampleRoot() *MapRoot {
	solids := "00000000\n11111111"
	music := maps.InlineName("event:/music/lvl1/main")

	return &MapRoot{
		Filler: Filler{
			Rects: []Rect{
				{X: maps.Int(2), Y: maps.Int(3), W: maps.Int(4), H: maps.Int(1)},
			},
		},
		Levels: Levels{
			Levels: []Level{
				{
					Name:   maps.InlineName("a-01"),
					Width:  maps.Int(320),
					Height: maps.Int(184),
					Music:  &music,
					X:      maps.Float(0),
					Y:      maps.Float(0),
					C:      maps.ByteInt(0),
					Solids: Solids{InnerText: &solids},
					BG:     Background{},
					Entities: &Entities{
						Entities: []Entity{
							{
								Name:    "player",
								ID:      maps.Int(1),
								X:       maps.Float(40),
								Y:       maps.Float(168),
								OriginX: maps.Float(0.5),
								OriginY: maps.Float(1),
								Extra: []maps.Attribute{
									{Name: maps.InlineName("isDefaultSpawn"), Value: maps.BoolValue(true)},
								},
							},
							{
								Name:    "zipMover",
								ID:      maps.Int(2),
								X:       maps.Float(96),
								Y:       maps.Float(80),
								OriginX: maps.Float(0),
								OriginY: maps.Float(0),
								Nodes: []Node{
									{X: maps.Float(160), Y: maps.Float(80)},
								},
							},
						},
					},
					FGDecals: &FGDecals{
						Decals: []Decal{
							{
								X:       maps.Float(64),
								Y:       maps.Float(32),
								ScaleX:  maps.Float(1),
								ScaleY:  maps.Float(1),
								Texture: maps.InlineName("1-forsakencity/flag"),
							},
						},
					},
				},
			},
		},
		Style: Styles{
			Background: Backgrounds{
				Parallax: []Parallax{
					{
						Texture: maps.InlineName("bgs/07/00"),
						X:       maps.Float(0),
						Y:       maps.Float(0),
						ScrollX: maps.Float(0.1),
						ScrollY: maps.Float(0.1),
						LoopX:   true,
						LoopY:   true,
					},
				},
				SnowBG: true,
			},
			Foreground: Foregrounds{},
		},
	}
}

func TestRootRoundTrip(t *testing.T) {
	mgr, err := maps.NewManager(emptyMapBytes(), DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}
	mgr.EncodeRoot("lvl1", sampleRoot())

	data, err := mgr.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	mgr2, err := maps.NewManager(data, DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}
	root, err := maps.ParseRoot[MapRoot](mgr2)
	if err != nil {
		t.Fatal(err)
	}

	if len(root.Filler.Rects) != 1 {
		t.Fatalf("filler has %d rects", len(root.Filler.Rects))
	}
	if r := root.Filler.Rects[0]; r.W.Int32() != 4 || r.H.Int32() != 1 {
		t.Errorf("rect = %+v", r)
	}

	if len(root.Levels.Levels) != 1 {
		t.Fatalf("map has %d levels", len(root.Levels.Levels))
	}
	level := root.Levels.Levels[0]

	if s := level.Name.Text(mgr2.Map().Lookup); s != "a-01" {
		t.Errorf("level name = %q", s)
	}
	if level.Width.Int32() != 320 || level.Height.Int32() != 184 {
		t.Errorf("level size = %v x %v", level.Width, level.Height)
	}
	if level.Music == nil || level.Music.Text(mgr2.Map().Lookup) != "event:/music/lvl1/main" {
		t.Error("music attribute lost")
	}
	if level.Dark != nil {
		t.Error("absent optional decoded as present")
	}
	if level.Solids.InnerText == nil || *level.Solids.InnerText != "00000000\n11111111" {
		t.Error("solids text lost")
	}

	if level.Entities == nil || len(level.Entities.Entities) != 2 {
		t.Fatal("entities lost")
	}
	player := level.Entities.Entities[0]
	if player.Name != "player" || player.ID.Int32() != 1 {
		t.Errorf("player = %+v", player)
	}
	if len(player.Extra) != 1 {
		t.Fatalf("player extra attributes = %+v", player.Extra)
	}
	if extraName, _ := player.Extra[0].Name.Inline(); extraName != "isDefaultSpawn" {
		t.Errorf("player extra attribute name = %q", extraName)
	}
	if v, err := player.Extra[0].Value.Bool(); err != nil || !v {
		t.Errorf("isDefaultSpawn = %v, %v", v, err)
	}
	mover := level.Entities.Entities[1]
	if len(mover.Nodes) != 1 || mover.Nodes[0].X.Float32() != 160 {
		t.Errorf("zipMover nodes = %+v", mover.Nodes)
	}

	if level.FGDecals == nil || len(level.FGDecals.Decals) != 1 {
		t.Fatal("decals lost")
	}
	if s := level.FGDecals.Decals[0].Texture.Text(mgr2.Map().Lookup); s != "1-forsakencity/flag" {
		t.Errorf("decal texture = %q", s)
	}

	if !root.Style.Background.SnowBG {
		t.Error("snowBg flag lost")
	}
	if root.Style.Foreground.SnowFG {
		t.Error("snowFg flag appeared from nowhere")
	}
	if len(root.Style.Background.Parallax) != 1 {
		t.Fatal("parallax lost")
	}
	if px := root.Style.Background.Parallax[0]; !px.LoopX || px.ScrollX.Float32() != 0.1 {
		t.Errorf("parallax = %+v", px)
	}
}

func TestEncodeStableAcrossCycles(t *testing.T) {
	mgr, err := maps.NewManager(emptyMapBytes(), DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}
	mgr.EncodeRoot("lvl1", sampleRoot())
	first, err := mgr.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	// Decode, re-parse, re-encode: the second generation of bytes must
	// match the first exactly.
	mgr2, err := maps.NewManager(first, DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}
	root, err := maps.ParseRoot[MapRoot](mgr2)
	if err != nil {
		t.Fatal(err)
	}
	mgr2.EncodeRoot("lvl1", root)
	second, err := mgr2.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("re-encode of a parsed map is not byte-identical")
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	for _, name := range []string{
		"Map", "Filler", "rect", "node", "levels", "level", "triggers",
		"fgtiles", "bgtiles", "objtiles", "solids", "bg", "fgdecals",
		"bgdecals", "decal", "entities", "Style", "Backgrounds",
		"Foregrounds", "parallax", "snowBg", "snowFg",
	} {
		if !reg.Has(name) {
			t.Errorf("registry missing %q", name)
		}
	}
}

func TestLevelMissingSolids(t *testing.T) {
	mgr, err := maps.NewManager(emptyMapBytes(), DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}

	mgr.EncodeRoot("lvl1", sampleRoot())
	data, err := mgr.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	mgr2, err := maps.NewManager(data, DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}

	// Drop the solids child from the raw tree, then typed parsing of
	// the level must fail with no_matching_element.
	level := mgr2.Map().Root.Children[1].Children[0]
	kept := level.Children[:0]
	for _, c := range level.Children {
		if c.Name.Text(mgr2.Map().Lookup) != "solids" {
			kept = append(kept, c)
		}
	}
	level.Children = kept

	if _, err := maps.ParseRoot[MapRoot](mgr2); err == nil {
		t.Error("parse succeeded without a solids child")
	}
}
