// Package vision computes the player's field of view and keeps the dungeon's
// explored memory up to date.
package vision

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/treasureshark/internal/world"
)

const (
	// DefaultRadius is the standard sight radius in tiles.
	DefaultRadius = 10
	// DefaultLightWalls lights the wall faces at the edge of the view.
	DefaultLightWalls = true
)

// Compute returns the tiles visible from origin and marks them explored.
//
// Line of sight uses symmetric shadow casting. The radius is Euclidean: a tile
// at (dx, dy) from origin is kept only when dx*dx+dy*dy <= radius*radius.
// With lightWalls set, opaque tiles that stop the light are included; tiles
// behind them never are. An origin outside the grid sees nothing.
func Compute(d *world.Dungeon, origin gruid.Point, radius int, lightWalls bool) mapset.Set[gruid.Point] {
	return compute(rl.NewFOV(gridRange(d)), d, origin, radius, lightWalls)
}

func compute(fov *rl.FOV, d *world.Dungeon, origin gruid.Point, radius int, lightWalls bool) mapset.Set[gruid.Point] {
	visible := mapset.New[gruid.Point]()
	if !d.InBounds(origin.X, origin.Y) || radius < 0 {
		return visible
	}

	passable := func(p gruid.Point) bool {
		return !d.BlocksSight(p.X, p.Y)
	}

	visible.Put(origin)
	// The shadow caster counts depth in rows; one extra row guarantees the
	// whole Euclidean disc is scanned before filtering.
	for _, p := range fov.SSCVisionMap(origin, radius+1, passable, false) {
		if !d.InBounds(p.X, p.Y) || !withinRadius(origin, p, radius) {
			continue
		}
		if !lightWalls && d.BlocksSight(p.X, p.Y) {
			continue
		}
		visible.Put(p)
	}

	visible.Each(func(p gruid.Point) {
		d.Explore(p.X, p.Y)
	})
	return visible
}

func withinRadius(origin, p gruid.Point, radius int) bool {
	delta := p.Sub(origin)
	return delta.X*delta.X+delta.Y*delta.Y <= radius*radius
}

func gridRange(d *world.Dungeon) gruid.Range {
	return gruid.NewRange(0, 0, d.Width, d.Height)
}
