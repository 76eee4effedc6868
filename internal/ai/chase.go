// Package ai drives monster turns.
package ai

import (
	"context"
	"fmt"
	"math"

	"github.com/samdwyer/treasureshark/internal/combat"
	"github.com/samdwyer/treasureshark/internal/entity"
)

// attackRange is the Euclidean distance under which a monster attacks
// instead of stepping. It covers the eight neighboring cells.
const attackRange = 2.0

// Action is what a monster did with its turn.
type Action int

const (
	// ActionIdle means the monster neither moved nor attacked.
	ActionIdle Action = iota
	// ActionMoved means the monster stepped toward the player.
	ActionMoved
	// ActionAttacked means the monster attacked the player.
	ActionAttacked
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionMoved:
		return "moved"
	case ActionAttacked:
		return "attacked"
	default:
		return "unknown"
	}
}

// Visibility reports whether a tile is in the player's field of view.
type Visibility interface {
	IsVisible(x, y int) bool
}

// Blocker reports whether a tile is closed to movement.
type Blocker interface {
	IsBlocked(x, y int) bool
}

// Narrator receives human-readable events.
type Narrator interface {
	Narrate(text string)
}

// TakeTurn runs one turn for self. Monsters are dormant until they stand in
// the player's field of view; sight is taken to be mutual.
func TakeTurn(ctx context.Context, self, player *entity.Entity, vis Visibility, world Blocker,
	resolver *combat.Resolver, narrator Narrator) (Action, combat.Outcome) {
	if self.AI == nil || self.AI.Behavior != entity.BehaviorBasicChase {
		return ActionIdle, combat.Outcome{}
	}
	if !vis.IsVisible(self.X, self.Y) {
		return ActionIdle, combat.Outcome{}
	}

	if !self.AI.Alerted {
		self.AI.Alerted = true
		narrator.Narrate(fmt.Sprintf("The %s notices you.", self.Name))
	}

	if self.DistanceTo(player) >= attackRange {
		if moveTowards(self, player.X, player.Y, world) {
			return ActionMoved, combat.Outcome{}
		}
		return ActionIdle, combat.Outcome{}
	}

	if player.Fighter != nil && player.Fighter.HP > 0 {
		return ActionAttacked, resolver.Attack(ctx, self, player)
	}
	return ActionIdle, combat.Outcome{}
}

// StepTowards returns the unit step from (x, y) toward (tx, ty): the
// displacement normalized to length one, each axis rounded on its own.
func StepTowards(x, y, tx, ty int) (int, int) {
	dx := float64(tx - x)
	dy := float64(ty - y)
	distance := math.Hypot(dx, dy)
	if distance == 0 {
		return 0, 0
	}
	return int(math.Round(dx / distance)), int(math.Round(dy / distance))
}

// moveTowards steps e one cell toward the target unless the cell is blocked.
// A zero step counts as not moving.
func moveTowards(e *entity.Entity, tx, ty int, world Blocker) bool {
	dx, dy := StepTowards(e.X, e.Y, tx, ty)
	if dx == 0 && dy == 0 {
		return false
	}
	if world.IsBlocked(e.X+dx, e.Y+dy) {
		return false
	}
	e.Move(dx, dy)
	return true
}
