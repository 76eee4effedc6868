package combat

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/treasureshark/internal/entity"
)

// recordingNarrator collects narration for assertions.
type recordingNarrator struct {
	lines []string
}

func (n *recordingNarrator) Narrate(text string) {
	n.lines = append(n.lines, text)
}

func newFighter(name string, hp, defense, power int, death entity.DeathPolicy) *entity.Entity {
	e := entity.New(0, 0, rune(name[0]), name, tcell.ColorWhite, true)
	e.Fighter = entity.NewFighter(hp, defense, power, death)
	if death == entity.DeathMonster {
		e.AI = &entity.AI{Behavior: entity.BehaviorBasicChase}
	}
	return e
}

func TestAttackDamage(t *testing.T) {
	tests := []struct {
		name       string
		power      int
		defense    int
		wantDamage int
		wantHP     int
		wantLine   string
	}{
		{"power beats defense", 5, 2, 3, 7, "Player attacks orc for 3 hit points."},
		{"defense absorbs", 2, 5, 0, 10, "Player attacks orc, to no effect."},
		{"equal", 4, 4, 0, 10, "Player attacks orc, to no effect."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := newFighter("player", 30, 0, tt.power, entity.DeathPlayer)
			orc := newFighter("orc", 10, tt.defense, 3, entity.DeathMonster)
			n := &recordingNarrator{}
			r := NewResolver(entity.NewList(player, orc), n)

			out := r.Attack(context.Background(), player, orc)

			assert.Equal(t, tt.wantDamage, out.Damage)
			assert.False(t, out.Killed)
			assert.Equal(t, tt.wantHP, orc.Fighter.HP)
			assert.Equal(t, []string{tt.wantLine}, n.lines)
		})
	}
}

func TestAttackKillsMonsterOnce(t *testing.T) {
	player := newFighter("player", 30, 2, 5, entity.DeathPlayer)
	orc := newFighter("orc", 3, 0, 3, entity.DeathMonster)
	orc.X, orc.Y = 4, 4
	troll := newFighter("troll", 16, 1, 4, entity.DeathMonster)
	list := entity.NewList(player, troll, orc)
	n := &recordingNarrator{}
	r := NewResolver(list, n)

	out := r.Attack(context.Background(), player, orc)

	assert.Equal(t, Outcome{Damage: 5, Killed: true}, out)
	assert.Equal(t, []string{"Player attacks orc for 5 hit points.", "Orc is dead!"}, n.lines)

	// Remains: no capabilities, no blocking, drawn beneath everything else.
	assert.Nil(t, orc.Fighter)
	assert.Nil(t, orc.AI)
	assert.False(t, orc.BlocksMovement)
	assert.Equal(t, entity.CorpseGlyph, orc.Glyph)
	assert.Equal(t, entity.CorpseColor, orc.Color)
	assert.Equal(t, "remains of orc", orc.Name)
	assert.Equal(t, []*entity.Entity{orc, player, troll}, list.All())
	assert.Nil(t, list.FighterAt(4, 4), "remains cannot be attacked")

	// A second attack through the resolver is a no-op.
	out = r.Attack(context.Background(), player, orc)
	assert.Equal(t, Outcome{}, out)
	assert.Len(t, n.lines, 2)
}

func TestAttackKillsPlayer(t *testing.T) {
	player := newFighter("player", 3, 0, 5, entity.DeathPlayer)
	troll := newFighter("troll", 16, 1, 4, entity.DeathMonster)
	list := entity.NewList(player, troll)
	n := &recordingNarrator{}
	r := NewResolver(list, n)

	out := r.Attack(context.Background(), troll, player)

	assert.True(t, out.Killed)
	assert.True(t, out.PlayerDied)
	assert.Equal(t, []string{"Troll attacks player for 4 hit points.", "You died!"}, n.lines)
	require.NotNil(t, player.Fighter, "player keeps stats for the status line")
	assert.Equal(t, 0, player.Fighter.HP)
	assert.Equal(t, entity.CorpseGlyph, player.Glyph)
	assert.False(t, player.IsAlive())

	// Further hits on a dead player never re-trigger death.
	out = r.Attack(context.Background(), troll, player)
	assert.False(t, out.Killed)
	assert.False(t, out.PlayerDied)
	assert.Equal(t, 1, countLine(n.lines, "You died!"))
}

func TestAttackWithoutFighter(t *testing.T) {
	player := newFighter("player", 30, 2, 5, entity.DeathPlayer)
	rock := entity.New(1, 1, '*', "rock", tcell.ColorGray, true)
	n := &recordingNarrator{}
	r := NewResolver(entity.NewList(player, rock), n)

	assert.Equal(t, Outcome{}, r.Attack(context.Background(), player, rock))
	assert.Equal(t, Outcome{}, r.Attack(context.Background(), rock, player))
	assert.Empty(t, n.lines)
}

func TestDamage(t *testing.T) {
	assert.Equal(t, 3, Damage(&entity.Fighter{Power: 5}, &entity.Fighter{Defense: 2}))
	assert.Equal(t, 0, Damage(&entity.Fighter{Power: 2}, &entity.Fighter{Defense: 5}))
}

func countLine(lines []string, want string) int {
	n := 0
	for _, l := range lines {
		if l == want {
			n++
		}
	}
	return n
}
