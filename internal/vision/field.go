package vision

import (
	"context"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/treasureshark/internal/telemetry"
	"github.com/samdwyer/treasureshark/internal/world"
)

// Field caches the player's visible set between moves. It starts dirty and
// recomputes only after Invalidate.
type Field struct {
	radius     int
	lightWalls bool
	dirty      bool
	visible    mapset.Set[gruid.Point]
	fov        *rl.FOV
	fovRange   gruid.Range
}

// NewField creates an empty, dirty field of view.
func NewField(radius int, lightWalls bool) *Field {
	return &Field{
		radius:     radius,
		lightWalls: lightWalls,
		dirty:      true,
		visible:    mapset.New[gruid.Point](),
	}
}

// Invalidate marks the field for recomputation on the next Refresh.
func (f *Field) Invalidate() {
	f.dirty = true
}

// Dirty reports whether the next Refresh will recompute.
func (f *Field) Dirty() bool {
	return f.dirty
}

// Refresh recomputes the visible set from origin if the field is dirty.
// It returns true when a recomputation happened.
func (f *Field) Refresh(ctx context.Context, d *world.Dungeon, origin gruid.Point) bool {
	if !f.dirty {
		return false
	}

	tracer := telemetry.Tracer("vision")
	_, span := tracer.Start(ctx, "fov.compute")
	defer span.End()

	rg := gridRange(d)
	if f.fov == nil || f.fovRange != rg {
		f.fov = rl.NewFOV(rg)
		f.fovRange = rg
	}
	f.visible = compute(f.fov, d, origin, f.radius, f.lightWalls)
	f.dirty = false

	span.SetAttributes(
		attribute.Int("fov.origin_x", origin.X),
		attribute.Int("fov.origin_y", origin.Y),
		attribute.Int("fov.radius", f.radius),
		attribute.Int("fov.visible_count", f.visible.Size()),
	)
	return true
}

// IsVisible reports whether the position is in the current visible set.
func (f *Field) IsVisible(x, y int) bool {
	return f.visible.Has(gruid.Point{X: x, Y: y})
}

// Visible returns the current visible set. Callers must not modify it.
func (f *Field) Visible() mapset.Set[gruid.Point] {
	return f.visible
}
