package entity

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func names(l *List) []string {
	out := make([]string, 0, l.Len())
	for _, e := range l.All() {
		out = append(out, e.Name)
	}
	return out
}

func TestSendToBack(t *testing.T) {
	a := New(0, 0, 'a', "a", tcell.ColorWhite, true)
	b := New(1, 0, 'b', "b", tcell.ColorWhite, true)
	c := New(2, 0, 'c', "c", tcell.ColorWhite, true)
	d := New(3, 0, 'd', "d", tcell.ColorWhite, true)

	tests := []struct {
		name   string
		target *Entity
		want   []string
	}{
		{"last", d, []string{"d", "a", "b", "c"}},
		{"middle", c, []string{"c", "a", "b", "d"}},
		{"already first", a, []string{"a", "b", "c", "d"}},
		{"not in list", New(9, 9, 'x', "x", tcell.ColorWhite, false), []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList(a, b, c, d)
			l.SendToBack(tt.target)
			assert.Equal(t, tt.want, names(l))
		})
	}
}

func TestBlockingAt(t *testing.T) {
	corpse := New(2, 2, CorpseGlyph, "remains of orc", CorpseColor, false)
	orc := New(3, 3, 'o', "orc", tcell.ColorGreen, true)
	l := NewList(corpse, orc)

	assert.Nil(t, l.BlockingAt(2, 2), "remains do not block")
	assert.Same(t, orc, l.BlockingAt(3, 3))
	assert.Nil(t, l.BlockingAt(4, 4))
}

func TestFighterAt(t *testing.T) {
	corpse := New(2, 2, CorpseGlyph, "remains of orc", CorpseColor, false)
	troll := New(2, 2, 'T', "troll", tcell.ColorGreen, true)
	troll.Fighter = NewFighter(16, 1, 4, DeathMonster)
	l := NewList(corpse, troll)

	assert.Same(t, troll, l.FighterAt(2, 2), "skips entities without a fighter")
	assert.Nil(t, l.FighterAt(0, 0))
}

func TestListAddAndIndex(t *testing.T) {
	l := NewList()
	a := New(0, 0, 'a', "a", tcell.ColorWhite, true)
	b := New(0, 0, 'b', "b", tcell.ColorWhite, true)

	l.Add(a)
	l.Add(b)

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 0, l.IndexOf(a))
	assert.Equal(t, 1, l.IndexOf(b))
}
