package world

// Rect is an axis-aligned room outline in grid coordinates.
// The carved floor is the open interior (X1+1..X2-1, Y1+1..Y2-1).
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // X1+width, Y1+height
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center coordinates of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the point lies on or inside the outline.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Intersects returns true if the two outlines overlap. Bounds are inclusive,
// so rooms that share a border edge intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
