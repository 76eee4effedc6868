package entity

// List holds entities in draw order. Earlier entries are drawn first, so the
// last entry ends up on top. Monster turns follow the same order.
type List struct {
	items []*Entity
}

// NewList creates a list holding the given entities in order.
func NewList(entities ...*Entity) *List {
	l := &List{items: make([]*Entity, 0, len(entities))}
	l.items = append(l.items, entities...)
	return l
}

// Add appends an entity to the top of the draw order.
func (l *List) Add(e *Entity) {
	l.items = append(l.items, e)
}

// All returns the entities in draw order. Callers must not modify the slice.
func (l *List) All() []*Entity {
	return l.items
}

// Len returns the number of entities.
func (l *List) Len() int {
	return len(l.items)
}

// IndexOf returns the draw position of e, or -1 if it is not in the list.
func (l *List) IndexOf(e *Entity) int {
	for i, item := range l.items {
		if item == e {
			return i
		}
	}
	return -1
}

// SendToBack moves e to index 0 so everything else draws over it. The
// relative order of the other entities is unchanged.
func (l *List) SendToBack(e *Entity) {
	i := l.IndexOf(e)
	if i <= 0 {
		return
	}
	copy(l.items[1:i+1], l.items[:i])
	l.items[0] = e
}

// BlockingAt returns the first movement-blocking entity at the position, or nil.
func (l *List) BlockingAt(x, y int) *Entity {
	for _, e := range l.items {
		if e.BlocksMovement && e.At(x, y) {
			return e
		}
	}
	return nil
}

// FighterAt returns the first entity with a combat capability at the position, or nil.
func (l *List) FighterAt(x, y int) *Entity {
	for _, e := range l.items {
		if e.Fighter != nil && e.At(x, y) {
			return e
		}
	}
	return nil
}
