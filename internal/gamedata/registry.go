package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// MonsterRegistry holds loaded monster definitions and picks species by
// cumulative weight.
type MonsterRegistry struct {
	player      CreatureDef
	monsters    []CreatureDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded definitions.
func NewMonsterRegistry(player CreatureDef, monsters []CreatureDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		player:      player,
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry loads and creates a registry from the embedded creatures.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	file, err := LoadCreatures()
	if err != nil {
		return nil, err
	}
	if len(file.Monsters) == 0 {
		return nil, errors.New("no monsters loaded from creatures.json")
	}
	if file.Player.HP <= 0 {
		return nil, fmt.Errorf("player in creatures.json has non-positive hp %d", file.Player.HP)
	}
	return NewMonsterRegistry(file.Player, file.Monsters), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random monster definition using weighted probability.
// Monsters with higher spawnWeight are more likely to be selected.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *CreatureDef {
	if r.totalWeight <= 0 || len(r.monsters) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.monsters[0]
}

// Player returns the player template.
func (r *MonsterRegistry) Player() *CreatureDef {
	return &r.player
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *CreatureDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// All returns all monster definitions.
func (r *MonsterRegistry) All() []CreatureDef {
	return r.monsters
}

// Count returns the number of monster species in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
