package mods

import (
	"gopkg.in/yaml.v3"

	"github.com/maddymakesgames/celeste-go/errors"
)

// MapMeta is the per-map meta.yaml override file modded maps ship to
// customize presentation and audio without touching the map binary.
// Absent fields keep the game's defaults, so nearly everything is a
// pointer.
type MapMeta struct {
	Parent                  *string `yaml:"Parent,omitempty"`
	Icon                    *string `yaml:"Icon,omitempty"`
	Interlude               *bool   `yaml:"Interlude,omitempty"`
	CassetteCheckpointIndex *int32  `yaml:"CassetteCheckpointIndex,omitempty"`

	TitleBaseColor   *string `yaml:"TitleBaseColor,omitempty"`
	TitleAccentColor *string `yaml:"TitleAccentColor,omitempty"`
	TitleTextColor   *string `yaml:"TitleTextColor,omitempty"`

	IntroType *string `yaml:"IntroType,omitempty"`
	Dreaming  *bool   `yaml:"Dreaming,omitempty"`

	ColorGrade *string `yaml:"ColorGrade,omitempty"`
	Wipe       *string `yaml:"Wipe,omitempty"`

	DarknessAlpha *float32 `yaml:"DarknessAlpha,omitempty"`
	BloomBase     *float32 `yaml:"BloomBase,omitempty"`
	BloomStrength *float32 `yaml:"BloomStrength,omitempty"`

	JumpThru *string `yaml:"JumpThru,omitempty"`
	CoreMode *string `yaml:"CoreMode,omitempty"`

	CassetteNoteColor *string `yaml:"CassetteNoteColor,omitempty"`
	CassetteSong      *string `yaml:"CassetteSong,omitempty"`

	PostcardSoundID *string `yaml:"PostcardSoundID,omitempty"`

	ForegroundTiles *string `yaml:"ForegroundTiles,omitempty"`
	BackgroundTiles *string `yaml:"BackgroundTiles,omitempty"`
	AnimatedTiles   *string `yaml:"AnimatedTiles,omitempty"`
	Sprites         *string `yaml:"Sprites,omitempty"`
	Portraits       *string `yaml:"Portraits,omitempty"`

	OverrideASideMeta *bool `yaml:"OverrideASideMeta,omitempty"`

	Modes            []MapMetaMode     `yaml:"Modes,omitempty"`
	Mountain         *MountainData     `yaml:"Mountain,omitempty"`
	CassetteModifier *CassetteModifier `yaml:"CassetteModifier,omitempty"`
}

// MapMetaMode describes one side (A/B/C) of a map.
type MapMetaMode struct {
	AudioState                AudioState       `yaml:"AudioState"`
	Checkpoints               []CheckpointData `yaml:"Checkpoints,omitempty"`
	IgnoreLevelAudioLayerData *bool            `yaml:"IgnoreLevelAudioLayerData,omitempty"`
	Inventory                 string           `yaml:"Inventory"`
	Path                      *string          `yaml:"Path,omitempty"`
	PoemID                    *string          `yaml:"PoemID,omitempty"`
	StartLevel                *string          `yaml:"StartLevel,omitempty"`
	HeartIsEnd                *bool            `yaml:"HeartIsEnd,omitempty"`
	SeekerSlowdown            *bool            `yaml:"SeekerSlowdown,omitempty"`
	TheoInBubble              *bool            `yaml:"TheoInBubble,omitempty"`
}

type AudioState struct {
	Music    string `yaml:"Music"`
	Ambience string `yaml:"Ambience"`
}

type CheckpointData struct {
	Level      string     `yaml:"Level"`
	Name       string     `yaml:"Name"`
	Dreaming   *bool      `yaml:"Dreaming,omitempty"`
	Inventory  string     `yaml:"Inventory"`
	AudioState AudioState `yaml:"AudioState"`
	Flags      []string   `yaml:"Flags"`
	CoreMode   *string    `yaml:"CoreMode,omitempty"`
}

// MountainData positions the map on the overworld mountain.
type MountainData struct {
	MountainModelDirectory   *string            `yaml:"MountainModelDirectory,omitempty"`
	MountainTextureDirectory *string            `yaml:"MountainTextureDirectory,omitempty"`
	BackgroundMusic          *string            `yaml:"BackgroundMusic,omitempty"`
	BackgroundAmbience       *string            `yaml:"BackgroundAmbience,omitempty"`
	BackgroundMusicParams    map[string]float64 `yaml:"BackgroundMusicParams,omitempty"`
	FogColors                []string           `yaml:"FogColors,omitempty"`
	StarFogColor             *string            `yaml:"StarFogColor,omitempty"`
	StarStreamColors         []string           `yaml:"StarStreamColors,omitempty"`
	StarBeltColors1          []string           `yaml:"StarBeltColors1,omitempty"`
	StarBeltColors2          []string           `yaml:"StarBeltColors2,omitempty"`
	Idle                     *MountainPosition  `yaml:"Idle,omitempty"`
	Select                   *MountainPosition  `yaml:"Select,omitempty"`
	Zoom                     *MountainPosition  `yaml:"Zoom,omitempty"`
	Cursor                   []float64          `yaml:"Cursor,omitempty"`
	State                    *uint32            `yaml:"State,omitempty"`
	Rotate                   *bool              `yaml:"Rotate,omitempty"`
	ShowCore                 *bool              `yaml:"ShowCore,omitempty"`
	ShowSnow                 *bool              `yaml:"ShowSnow,omitempty"`
}

type MountainPosition struct {
	Position []float64 `yaml:"Position"`
	Target   []float64 `yaml:"Target"`
}

// CassetteModifier tweaks cassette block timing.
type CassetteModifier struct {
	TempoMult               *int32 `yaml:"TempoMult,omitempty"`
	LeadBeats               *int32 `yaml:"LeadBeats,omitempty"`
	BeatsPerTick            *int32 `yaml:"BeatsPerTick,omitempty"`
	TicksPerSwap            *int32 `yaml:"TicksPerSwap,omitempty"`
	Blocks                  *int32 `yaml:"Blocks,omitempty"`
	BeatsMax                *int32 `yaml:"BeatsMax,omitempty"`
	BeatIndexOffset         *int32 `yaml:"BeatIndexOffset,omitempty"`
	ActiveDuringTransitions *bool  `yaml:"ActiveDuringTransitions,omitempty"`
	OldBehavior             *bool  `yaml:"OldBehavior,omitempty"`
}

// ParseMapMeta parses a map's meta.yaml.
func ParseMapMeta(data []byte) (*MapMeta, error) {
	var meta MapMeta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrap(errors.PhaseMods, errors.KindInvalidData, err, "parsing map meta.yaml")
	}
	return &meta, nil
}

// Encode serializes the meta back to YAML.
func (m *MapMeta) Encode() ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseMods, errors.KindInvalidData, err, "encoding map meta.yaml")
	}
	return out, nil
}
