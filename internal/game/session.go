package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"codeberg.org/anaseto/gruid"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/treasureshark/internal/ai"
	"github.com/samdwyer/treasureshark/internal/combat"
	"github.com/samdwyer/treasureshark/internal/config"
	"github.com/samdwyer/treasureshark/internal/entity"
	"github.com/samdwyer/treasureshark/internal/gamedata"
	"github.com/samdwyer/treasureshark/internal/message"
	"github.com/samdwyer/treasureshark/internal/telemetry"
	"github.com/samdwyer/treasureshark/internal/vision"
	"github.com/samdwyer/treasureshark/internal/world"
)

// TurnResult reports what Advance did.
type TurnResult struct {
	Quit     bool // The player asked to leave; the loop should stop
	TookTurn bool // The player acted, so monsters acted too
}

// Stats is the player summary shown on the status line.
type Stats struct {
	HP    int
	MaxHP int
}

// Session owns everything that changes during a run: the map, the entities,
// the player's view and the turn state. It is driven from a single goroutine.
type Session struct {
	id       string
	seed     int64
	dungeon  *world.Dungeon
	entities *entity.List
	player   *entity.Entity
	field    *vision.Field
	state    State
	turn     int
	messages *message.Log
	resolver *combat.Resolver
	logger   *zap.Logger
}

// NewSession generates a level from cfg and places the player in its first room.
// An empty id gets a random UUID. A zero cfg.Seed picks a time-based seed;
// Seed reports the one used.
func NewSession(ctx context.Context, id string, cfg config.Config, registry *gamedata.MonsterRegistry,
	logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if id == "" {
		id = uuid.NewString()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	player := entity.NewPlayer(registry.Player(), 0, 0)
	entities := entity.NewList(player)

	d := world.NewDungeon(cfg.Dungeon.Width, cfg.Dungeon.Height, rng)
	params := world.Params{
		MaxRooms:    cfg.Dungeon.MaxRooms,
		RoomMinSize: cfg.Dungeon.RoomMinSize,
		RoomMaxSize: cfg.Dungeon.RoomMaxSize,
	}
	spawner := NewSpawner(registry, entities, rng, cfg.Dungeon.MaxRoomMonsters)
	if err := d.Generate(ctx, params, spawner); err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}
	player.X, player.Y = d.StartX, d.StartY

	s := newSession(id, seed, d, entities, player,
		vision.NewField(cfg.FOV.Radius, cfg.FOV.LightWalls), logger)

	s.logger.Info("session started",
		zap.Int64("seed", seed),
		zap.Int("rooms", len(d.Rooms)),
		zap.Int("monsters", entities.Len()-1),
		zap.Int("start_x", player.X),
		zap.Int("start_y", player.Y),
	)
	return s, nil
}

// newSession wires a session around an existing level. player must be in entities.
func newSession(id string, seed int64, d *world.Dungeon, entities *entity.List,
	player *entity.Entity, field *vision.Field, logger *zap.Logger) *Session {
	logger = logger.With(zap.String("session.id", id))
	messages := message.NewLog(message.DefaultCapacity, logger)
	return &Session{
		id:       id,
		seed:     seed,
		dungeon:  d,
		entities: entities,
		player:   player,
		field:    field,
		state:    StatePlaying,
		messages: messages,
		resolver: combat.NewResolver(entities, messages),
		logger:   logger,
	}
}

// ID returns the session identifier attached to logs and traces.
func (s *Session) ID() string { return s.id }

// Seed returns the seed the level was generated from.
func (s *Session) Seed() int64 { return s.seed }

// Dungeon returns the level.
func (s *Session) Dungeon() *world.Dungeon { return s.dungeon }

// Entities returns all entities in draw order.
func (s *Session) Entities() *entity.List { return s.entities }

// Player returns the player entity.
func (s *Session) Player() *entity.Entity { return s.player }

// Field returns the player's field of view.
func (s *Session) Field() *vision.Field { return s.field }

// State returns the current turn state.
func (s *Session) State() State { return s.state }

// Turn returns how many turns the player has taken.
func (s *Session) Turn() int { return s.turn }

// Stats returns the player's hit points.
func (s *Session) Stats() Stats {
	if s.player.Fighter == nil {
		return Stats{}
	}
	return Stats{HP: s.player.Fighter.HP, MaxHP: s.player.Fighter.MaxHP}
}

// Messages returns up to n of the latest narration lines, oldest first.
func (s *Session) Messages(n int) []string {
	return s.messages.Tail(n)
}

// IsBlocked reports whether the tile is a wall or holds a blocking entity.
func (s *Session) IsBlocked(x, y int) bool {
	if !s.dungeon.IsPassable(x, y) {
		return true
	}
	return s.entities.BlockingAt(x, y) != nil
}

// RefreshVisibility recomputes the field of view if the player has moved.
func (s *Session) RefreshVisibility(ctx context.Context) bool {
	return s.field.Refresh(ctx, s.dungeon, gruid.Point{X: s.player.X, Y: s.player.Y})
}

// PlayerMoveOrAttack attacks whatever can fight in the target cell, or else
// steps there if it is open. Walking into a wall does nothing.
func (s *Session) PlayerMoveOrAttack(ctx context.Context, dx, dy int) combat.Outcome {
	x, y := s.player.X+dx, s.player.Y+dy

	if target := s.entities.FighterAt(x, y); target != nil && target != s.player {
		return s.resolver.Attack(ctx, s.player, target)
	}

	if !s.IsBlocked(x, y) {
		s.player.Move(dx, dy)
		s.field.Invalidate()
	}
	return combat.Outcome{}
}

// Advance resolves one player intent and, when the player acted, every
// monster's reply. Movement intents always count as a turn, even into a wall.
func (s *Session) Advance(ctx context.Context, intent Intent) TurnResult {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	var result TurnResult
	switch {
	case intent == IntentQuit:
		result.Quit = true
	case s.state == StatePlaying:
		if dx, dy, ok := intent.Delta(); ok {
			s.PlayerMoveOrAttack(ctx, dx, dy)
			result.TookTurn = true
		}
	}

	if result.TookTurn {
		s.turn++
		if s.state == StatePlaying {
			s.monsterTurns(ctx)
		}
	}

	span.SetAttributes(
		attribute.String("game.intent", intent.String()),
		attribute.Bool("game.took_turn", result.TookTurn),
		attribute.String("game.state", s.state.String()),
		attribute.Int("game.turn", s.turn),
		attribute.String("session.id", s.id),
	)
	return result
}

// monsterTurns lets every entity with a behavior act, in draw order. The
// visible set is the one computed at the start of the turn.
func (s *Session) monsterTurns(ctx context.Context) {
	actors := make([]*entity.Entity, 0, s.entities.Len())
	for _, e := range s.entities.All() {
		if e.AI != nil && e != s.player {
			actors = append(actors, e)
		}
	}

	for _, e := range actors {
		// An earlier actor may have been killed this turn.
		if e.AI == nil {
			continue
		}
		action, outcome := ai.TakeTurn(ctx, e, s.player, s.field, s, s.resolver, s.messages)
		if action != ai.ActionIdle {
			s.logger.Debug("monster acted",
				zap.String("monster", e.Name),
				zap.Stringer("action", action),
				zap.Int("x", e.X),
				zap.Int("y", e.Y),
			)
		}
		if outcome.PlayerDied {
			s.state = StateDead
			s.logger.Info("player died", zap.Int("turn", s.turn), zap.String("killer", e.Name))
		}
	}
}
