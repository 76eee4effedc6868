package ai

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/treasureshark/internal/combat"
	"github.com/samdwyer/treasureshark/internal/entity"
)

type fakeVisibility map[[2]int]bool

func (v fakeVisibility) IsVisible(x, y int) bool { return v[[2]int{x, y}] }

type allVisible struct{}

func (allVisible) IsVisible(int, int) bool { return true }

// fakeWorld blocks the listed cells plus any blocking entity.
type fakeWorld struct {
	walls    map[[2]int]bool
	entities *entity.List
}

func (w *fakeWorld) IsBlocked(x, y int) bool {
	return w.walls[[2]int{x, y}] || w.entities.BlockingAt(x, y) != nil
}

type recordingNarrator struct {
	lines []string
}

func (n *recordingNarrator) Narrate(text string) {
	n.lines = append(n.lines, text)
}

type fixture struct {
	player   *entity.Entity
	orc      *entity.Entity
	world    *fakeWorld
	narrator *recordingNarrator
	resolver *combat.Resolver
}

func newFixture(px, py, ox, oy int) *fixture {
	player := entity.New(px, py, '@', "player", tcell.ColorWhite, true)
	player.Fighter = entity.NewFighter(30, 2, 5, entity.DeathPlayer)
	orc := entity.New(ox, oy, 'o', "orc", tcell.ColorGreen, true)
	orc.Fighter = entity.NewFighter(10, 0, 3, entity.DeathMonster)
	orc.AI = &entity.AI{Behavior: entity.BehaviorBasicChase}

	list := entity.NewList(player, orc)
	n := &recordingNarrator{}
	return &fixture{
		player:   player,
		orc:      orc,
		world:    &fakeWorld{walls: map[[2]int]bool{}, entities: list},
		narrator: n,
		resolver: combat.NewResolver(list, n),
	}
}

func (f *fixture) turn(vis Visibility) (Action, combat.Outcome) {
	return TakeTurn(context.Background(), f.orc, f.player, vis, f.world, f.resolver, f.narrator)
}

func TestTakeTurnDormantOutOfSight(t *testing.T) {
	f := newFixture(5, 5, 10, 5)

	action, _ := f.turn(fakeVisibility{})

	assert.Equal(t, ActionIdle, action)
	assert.Equal(t, 10, f.orc.X)
	assert.False(t, f.orc.AI.Alerted)
	assert.Empty(t, f.narrator.lines)
}

func TestTakeTurnChasesWhenVisible(t *testing.T) {
	f := newFixture(5, 5, 10, 5)

	action, _ := f.turn(allVisible{})

	assert.Equal(t, ActionMoved, action)
	assert.Equal(t, 9, f.orc.X)
	assert.Equal(t, 5, f.orc.Y)
	assert.True(t, f.orc.AI.Alerted)
	assert.Equal(t, []string{"The orc notices you."}, f.narrator.lines)

	// Second sighting is silent.
	f.turn(allVisible{})
	assert.Equal(t, 8, f.orc.X)
	assert.Len(t, f.narrator.lines, 1)
}

func TestTakeTurnDiagonalStep(t *testing.T) {
	f := newFixture(5, 5, 9, 9)

	action, _ := f.turn(allVisible{})

	assert.Equal(t, ActionMoved, action)
	assert.Equal(t, [2]int{8, 8}, [2]int{f.orc.X, f.orc.Y})
}

func TestTakeTurnBlockedStep(t *testing.T) {
	f := newFixture(5, 5, 10, 5)
	f.world.walls[[2]int{9, 5}] = true

	action, _ := f.turn(allVisible{})

	assert.Equal(t, ActionIdle, action)
	assert.Equal(t, 10, f.orc.X)
}

func TestTakeTurnAttacksWhenAdjacent(t *testing.T) {
	tests := []struct {
		name   string
		ox, oy int
	}{
		{"orthogonal", 6, 5},
		{"diagonal", 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(5, 5, tt.ox, tt.oy)

			action, out := f.turn(allVisible{})

			assert.Equal(t, ActionAttacked, action)
			assert.Equal(t, 1, out.Damage, "power 3 against defense 2")
			assert.Equal(t, 29, f.player.Fighter.HP)
			assert.Equal(t, [2]int{tt.ox, tt.oy}, [2]int{f.orc.X, f.orc.Y}, "attacking does not move")
			require.Len(t, f.narrator.lines, 2)
			assert.Equal(t, "Orc attacks player for 1 hit points.", f.narrator.lines[1])
		})
	}
}

func TestTakeTurnSparesDeadPlayer(t *testing.T) {
	f := newFixture(5, 5, 6, 5)
	f.player.Fighter.HP = 0

	action, out := f.turn(allVisible{})

	assert.Equal(t, ActionIdle, action)
	assert.Equal(t, combat.Outcome{}, out)
	assert.Equal(t, 0, f.player.Fighter.HP)
}

func TestTakeTurnReportsPlayerDeath(t *testing.T) {
	f := newFixture(5, 5, 6, 5)
	f.player.Fighter.HP = 1

	_, out := f.turn(allVisible{})

	assert.True(t, out.PlayerDied)
}

func TestTakeTurnIgnoresEntitiesWithoutChase(t *testing.T) {
	f := newFixture(5, 5, 10, 5)
	f.orc.AI.Behavior = entity.BehaviorNone

	action, _ := f.turn(allVisible{})
	assert.Equal(t, ActionIdle, action)

	f.orc.AI = nil
	action, _ = f.turn(allVisible{})
	assert.Equal(t, ActionIdle, action)
	assert.Equal(t, 10, f.orc.X)
}

func TestStepTowards(t *testing.T) {
	tests := []struct {
		name           string
		x, y, tx, ty   int
		wantDx, wantDy int
	}{
		{"east", 0, 0, 7, 0, 1, 0},
		{"north", 0, 0, 0, -4, 0, -1},
		{"diagonal", 0, 0, 3, 3, 1, 1},
		{"steep", 0, 0, 1, 5, 0, 1},
		{"shallow", 0, 0, -6, 2, -1, 0},
		{"knight move", 0, 0, 2, 1, 1, 0},
		{"same cell", 3, 3, 3, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := StepTowards(tt.x, tt.y, tt.tx, tt.ty)
			assert.Equal(t, tt.wantDx, dx)
			assert.Equal(t, tt.wantDy, dy)
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "idle", ActionIdle.String())
	assert.Equal(t, "moved", ActionMoved.String())
	assert.Equal(t, "attacked", ActionAttacked.String())
	assert.Equal(t, "unknown", Action(42).String())
}
