package game

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/treasureshark/internal/entity"
	"github.com/samdwyer/treasureshark/internal/gamedata"
	"github.com/samdwyer/treasureshark/internal/world"
)

// Spawner places monsters in freshly carved rooms. It draws from the same
// random source as the generator so a seed reproduces the whole level.
type Spawner struct {
	registry    *gamedata.MonsterRegistry
	entities    *entity.List
	rng         *rand.Rand
	maxMonsters int
}

// NewSpawner creates a spawner adding monsters to entities.
func NewSpawner(registry *gamedata.MonsterRegistry, entities *entity.List, rng *rand.Rand, maxMonsters int) *Spawner {
	return &Spawner{
		registry:    registry,
		entities:    entities,
		rng:         rng,
		maxMonsters: maxMonsters,
	}
}

// Populate implements world.Populator. Positions are drawn over the room's
// outer bounds, walls included; blocked draws are dropped, not retried.
func (s *Spawner) Populate(ctx context.Context, d *world.Dungeon, room world.Rect) {
	if s.maxMonsters < 0 {
		return
	}

	count := s.rng.Intn(s.maxMonsters + 1)
	placed := 0
	for i := 0; i < count; i++ {
		x := room.X1 + s.rng.Intn(room.X2-room.X1+1)
		y := room.Y1 + s.rng.Intn(room.Y2-room.Y1+1)
		if s.occupied(d, x, y) {
			continue
		}

		def := s.registry.SpawnRandom(s.rng)
		if def == nil {
			break
		}
		s.entities.Add(entity.NewMonster(def, x, y))
		placed++
	}

	trace.SpanFromContext(ctx).AddEvent("room.populated", trace.WithAttributes(
		attribute.Int("room.requested", count),
		attribute.Int("room.placed", placed),
	))
}

// occupied treats the player start as taken; the player is placed after
// generation finishes.
func (s *Spawner) occupied(d *world.Dungeon, x, y int) bool {
	if !d.IsPassable(x, y) {
		return true
	}
	if len(d.Rooms) > 0 && x == d.StartX && y == d.StartY {
		return true
	}
	return s.entities.BlockingAt(x, y) != nil
}
