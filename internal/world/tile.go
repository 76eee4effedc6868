// Package world provides dungeon generation and map management.
package world

// Tile represents a single map cell.
type Tile struct {
	Blocked    bool // Impassable to movement
	BlockSight bool // Opaque to the field of view
	Explored   bool // Seen at least once; never reset
}

// Wall returns a solid, opaque tile.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// carve opens the tile for both movement and sight.
func (t *Tile) carve() {
	t.Blocked = false
	t.BlockSight = false
}
