package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatures(t *testing.T) {
	file, err := LoadCreatures()
	require.NoError(t, err)

	assert.Equal(t, "player", file.Player.Name)
	assert.Equal(t, '@', file.Player.GlyphRune())
	assert.Equal(t, 30, file.Player.HP)
	assert.Equal(t, 2, file.Player.Defense)
	assert.Equal(t, 5, file.Player.Power)

	ids := make([]string, 0, len(file.Monsters))
	for _, m := range file.Monsters {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"orc", "troll", "ogre"}, ids, "weakest first")
}

func TestMonsterRegistryWeights(t *testing.T) {
	registry, err := LoadMonsterRegistry()
	require.NoError(t, err)
	require.Equal(t, 3, registry.Count())

	assert.Equal(t, 60, registry.GetByID("orc").SpawnWeight)
	assert.Equal(t, 30, registry.GetByID("troll").SpawnWeight)
	assert.Equal(t, 10, registry.GetByID("ogre").SpawnWeight)
	assert.Nil(t, registry.GetByID("dragon"))
	assert.Equal(t, "player", registry.Player().ID)
}

func TestSpawnRandomIsDeterministic(t *testing.T) {
	registry := MustLoadMonsterRegistry()

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 20; i++ {
		assert.Equal(t, registry.SpawnRandom(rng1).ID, registry.SpawnRandom(rng2).ID, "spawn %d", i)
	}
}

func TestSpawnRandomFollowsCumulativeTable(t *testing.T) {
	registry := NewMonsterRegistry(CreatureDef{ID: "player", HP: 1}, []CreatureDef{
		{ID: "weak", SpawnWeight: 60},
		{ID: "mid", SpawnWeight: 30},
		{ID: "strong", SpawnWeight: 10},
	})

	counts := make(map[string]int)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		counts[registry.SpawnRandom(rng).ID]++
	}

	assert.InDelta(t, 6000, counts["weak"], 300)
	assert.InDelta(t, 3000, counts["mid"], 300)
	assert.InDelta(t, 1000, counts["strong"], 200)
}

func TestSpawnRandomEmptyRegistry(t *testing.T) {
	registry := NewMonsterRegistry(CreatureDef{}, nil)
	assert.Nil(t, registry.SpawnRandom(rand.New(rand.NewSource(1))))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#3F7F3F", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, "ParseHexColor(%q)", tt.input)
		} else {
			assert.Error(t, err, "ParseHexColor(%q)", tt.input)
		}
	}

	c, err := ParseHexColor("#3F7F3F")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(0x3F, 0x7F, 0x3F), c)
}

func TestCreatureDefMethods(t *testing.T) {
	def := CreatureDef{Glyph: "T", Color: "#FF0000"}
	assert.Equal(t, 'T', def.GlyphRune())
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), def.TCellColor())

	bad := CreatureDef{Color: "nope"}
	assert.Equal(t, '?', bad.GlyphRune())
	assert.Equal(t, tcell.ColorWhite, bad.TCellColor())
}
