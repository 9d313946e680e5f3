package main

import (
	"image/color"
	"time"

	"github.com/cockroachdb/swiss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-theft-auto/probe"
	"github.com/go-theft-auto/probe/gui"
)

//go:generate go run github.com/go-theft-auto/probe/cmd/probegen

// Faction is who a character works for.
//
//probe:generate
//probe:enum
type Faction uint8

const (
	Civilian Faction = iota
	Police
	//probe:name=The Family
	Family
)

// Weapon is what a character holds.
//
//probe:generate
//probe:variants=Fists,Pistol,Launcher
//probe:tags=inlined
type Weapon interface{ isWeapon() }

type Fists struct{}

type Pistol struct {
	Ammo     int  `probe:"range=0..=120"`
	Silenced bool `probe:"toggle"`
}

//probe:transparent
//probe:name=launcher
type Launcher struct {
	Rockets uint8 `probe:"range=..9"`
}

// DefaultPistol is the pistol picked in the weapon selector.
func DefaultPistol() *Pistol { return &Pistol{Ammo: 12} }

func (*Fists) isWeapon()    {}
func (*Pistol) isWeapon()   {}
func (*Launcher) isWeapon() {}

// Character is the value the demo edits.
//
//probe:generate
//probe:rename_all=Train-Case
type Character struct {
	Name         string
	Bio          string  `probe:"multiline"`
	Health       float32 `probe:"range=0..100,step=0.5"`
	Heading      float64 `probe:"as=angle"`
	Mood         uint8   `probe:"with=moodSlider"`
	Faction      Faction
	Weapon       Weapon
	Tint         colorful.Color
	Badge        color.RGBA `probe:"rgba_premultiplied"`
	Glow         [4]float32 `probe:"rgba"`
	RespawnDelay time.Duration
	Pockets      []string
	SpawnPoint   [2]float32 `probe:"frozen"`
	Backup       *Character
	Stats        map[string]int
	VisitedZones *swiss.Map[uint16, string]
	Position     Position
	Password     string `probe:"skip"`
}

// Position is shown in place of its only field.
//
//probe:generate
//probe:transparent
type Position struct {
	XY gui.Vec2
}

// World is shared with the simulation goroutine.
//
//probe:generate
//probe:rename_all=lower
type World struct {
	Clock   time.Duration
	Paused  bool
	Gravity float32 `probe:"range=0..30"`
}

func moodSlider(v *uint8, s probe.Surface, style *probe.Style) probe.Response {
	return probe.Number(v).Range(0, 10).Probe(s, style)
}

func newCharacter() *Character {
	var zones swiss.Map[uint16, string]
	zones.Init(4)
	zones.Put(1, "Portland")
	zones.Put(2, "Staunton")

	return &Character{
		Name:         "Claude",
		Bio:          "Quiet.\nDrives fast.",
		Health:       100,
		Mood:         5,
		Faction:      Civilian,
		Weapon:       DefaultPistol(),
		Tint:         colorful.Color{R: 0.9, G: 0.6, B: 0.1},
		Badge:        color.RGBA{R: 0x20, G: 0x40, B: 0x80, A: 0x80},
		Glow:         [4]float32{0.2, 0.8, 1, 0.5},
		RespawnDelay: 5 * time.Second,
		Pockets:      []string{"phone", "keys"},
		Stats:        map[string]int{"kills": 0, "wanted": 1},
		VisitedZones: &zones,
		Position:     Position{XY: gui.Vec2{X: 120, Y: -40}},
		Password:     "hunter2",
	}
}
