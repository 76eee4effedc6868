package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/treasureshark/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 45

	// Default room placement parameters
	DefaultMaxRooms    = 30
	DefaultRoomMinSize = 6
	DefaultRoomMaxSize = 10
)

// ErrInvalidConfig is returned when generation parameters cannot produce a dungeon.
var ErrInvalidConfig = errors.New("invalid dungeon configuration")

// Params controls room placement.
type Params struct {
	MaxRooms    int // Placement attempts; rejected candidates still use one up
	RoomMinSize int
	RoomMaxSize int
}

// DefaultParams returns the standard placement parameters.
func DefaultParams() Params {
	return Params{
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
	}
}

// Populator is notified after each room is carved, before the next candidate
// is sampled, so it can place monsters with the same random source.
type Populator interface {
	Populate(ctx context.Context, d *Dungeon, room Rect)
}

// Dungeon represents the game map.
type Dungeon struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Rect
	StartX int // Player start, center of the first accepted room
	StartY int
	rng    *rand.Rand
}

// NewDungeon creates a new dungeon filled with walls.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Wall()
		}
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Rect, 0),
		rng:    rng,
	}
}

// Validate checks that params can be used on a grid of this size.
func (d *Dungeon) Validate(p Params) error {
	switch {
	case p.MaxRooms < 1:
		return fmt.Errorf("%w: max rooms must be positive, got %d", ErrInvalidConfig, p.MaxRooms)
	case p.RoomMinSize < 2:
		return fmt.Errorf("%w: room min size must be at least 2, got %d", ErrInvalidConfig, p.RoomMinSize)
	case p.RoomMinSize > p.RoomMaxSize:
		return fmt.Errorf("%w: room min size %d exceeds room max size %d",
			ErrInvalidConfig, p.RoomMinSize, p.RoomMaxSize)
	case d.Width <= p.RoomMaxSize || d.Height <= p.RoomMaxSize:
		return fmt.Errorf("%w: %dx%d grid cannot fit rooms up to %d tiles",
			ErrInvalidConfig, d.Width, d.Height, p.RoomMaxSize)
	}
	return nil
}

// Generate lays out rooms and tunnels. Rooms are placed greedily: a candidate
// that intersects an accepted room is dropped without retry, so the final
// room count is at most p.MaxRooms. pop may be nil.
func (d *Dungeon) Generate(ctx context.Context, p Params, pop Populator) error {
	if err := d.Validate(p); err != nil {
		return err
	}

	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	rejected := 0

	for i := 0; i < p.MaxRooms; i++ {
		w := p.RoomMinSize + d.rng.Intn(p.RoomMaxSize-p.RoomMinSize+1)
		h := p.RoomMinSize + d.rng.Intn(p.RoomMaxSize-p.RoomMinSize+1)
		x := d.rng.Intn(d.Width - w)
		y := d.rng.Intn(d.Height - h)
		room := NewRect(x, y, w, h)

		if d.overlapsRoom(room) {
			rejected++
			span.AddEvent("room.rejected", trace.WithAttributes(
				attribute.Int("room.x", x),
				attribute.Int("room.y", y),
				attribute.Int("room.w", w),
				attribute.Int("room.h", h),
			))
			continue
		}

		d.carveRoom(room)

		cx, cy := room.Center()
		if len(d.Rooms) == 0 {
			d.StartX, d.StartY = cx, cy
		} else {
			px, py := d.Rooms[len(d.Rooms)-1].Center()
			d.carveCorridor(px, py, cx, cy)
		}
		d.Rooms = append(d.Rooms, room)

		if pop != nil {
			pop.Populate(ctx, d, room)
		}
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.rejected_count", rejected),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// InBounds reports whether the position lies on the grid.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.Tiles[y][x].IsPassable()
}

// BlocksSight returns true if the position is opaque. Outside the grid
// everything is opaque.
func (d *Dungeon) BlocksSight(x, y int) bool {
	if !d.InBounds(x, y) {
		return true
	}
	return d.Tiles[y][x].BlockSight
}

// GetTile returns the tile at the given position.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.InBounds(x, y) {
		return Wall()
	}
	return d.Tiles[y][x]
}

// Explore marks the position as seen. Out-of-bounds positions are ignored.
func (d *Dungeon) Explore(x, y int) {
	if d.InBounds(x, y) {
		d.Tiles[y][x].Explored = true
	}
}

// IsExplored reports whether the position has ever been seen.
func (d *Dungeon) IsExplored(x, y int) bool {
	return d.InBounds(x, y) && d.Tiles[y][x].Explored
}

func (d *Dungeon) overlapsRoom(candidate Rect) bool {
	for _, room := range d.Rooms {
		if candidate.Intersects(room) {
			return true
		}
	}
	return false
}

// carveRoom opens the interior of the room, leaving its outline as wall.
func (d *Dungeon) carveRoom(room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			d.Tiles[y][x].carve()
		}
	}
}

// carveCorridor joins two points with an L-shaped tunnel.
func (d *Dungeon) carveCorridor(x1, y1, x2, y2 int) {
	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if d.rng.Intn(2) == 0 {
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel, both ends included.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if d.InBounds(x, y) {
			d.Tiles[y][x].carve()
		}
	}
}

// carveVerticalTunnel carves a vertical tunnel, both ends included.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if d.InBounds(x, y) {
			d.Tiles[y][x].carve()
		}
	}
}
