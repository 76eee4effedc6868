// Package entity provides the actors that live in the dungeon: the player,
// monsters and their remains.
package entity

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/treasureshark/internal/gamedata"
)

// CorpseGlyph is drawn for anything that has died.
const CorpseGlyph = '%'

// CorpseColor is the color of remains.
var CorpseColor = tcell.ColorDarkRed

// Entity is anything positioned on the map. Combat and behavior are optional
// capabilities: a nil Fighter cannot fight or be attacked, a nil AI never acts.
type Entity struct {
	X, Y           int
	Glyph          rune
	Name           string
	Color          tcell.Color
	BlocksMovement bool
	Fighter        *Fighter
	AI             *AI
}

// New creates a plain entity without capabilities.
func New(x, y int, glyph rune, name string, color tcell.Color, blocks bool) *Entity {
	return &Entity{
		X:              x,
		Y:              y,
		Glyph:          glyph,
		Name:           name,
		Color:          color,
		BlocksMovement: blocks,
	}
}

// NewPlayer creates the player from its template.
func NewPlayer(def *gamedata.CreatureDef, x, y int) *Entity {
	e := New(x, y, def.GlyphRune(), def.Name, def.TCellColor(), true)
	e.Fighter = NewFighter(def.HP, def.Defense, def.Power, DeathPlayer)
	return e
}

// NewMonster creates a chasing monster from its species template.
func NewMonster(def *gamedata.CreatureDef, x, y int) *Entity {
	e := New(x, y, def.GlyphRune(), def.Name, def.TCellColor(), true)
	e.Fighter = NewFighter(def.HP, def.Defense, def.Power, DeathMonster)
	e.AI = &AI{Behavior: BehaviorBasicChase}
	return e
}

// At reports whether the entity occupies the position.
func (e *Entity) At(x, y int) bool {
	return e.X == x && e.Y == y
}

// Move updates the position by the given delta. Collision is the caller's job.
func (e *Entity) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// DistanceTo returns the Euclidean distance to another entity.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return math.Hypot(float64(other.X-e.X), float64(other.Y-e.Y))
}

// IsAlive returns true if the entity can still fight.
func (e *Entity) IsAlive() bool {
	return e.Fighter != nil && e.Fighter.HP > 0
}
