package gamedata

import "github.com/gdamore/tcell/v2"

// CreatureDef defines a player or monster template loaded from JSON.
type CreatureDef struct {
	ID          string `json:"id"`                    // Unique identifier (e.g., "orc")
	Name        string `json:"name"`                  // Display name, lower case (e.g., "orc")
	Glyph       string `json:"glyph"`                 // Single character for rendering (e.g., "o")
	Color       string `json:"color"`                 // Hex color code (e.g., "#3F7F3F")
	HP          int    `json:"hp"`                    // Maximum hit points
	Defense     int    `json:"defense"`               // Subtracted from incoming power
	Power       int    `json:"power"`                 // Attack strength
	SpawnWeight int    `json:"spawnWeight,omitempty"` // Relative spawn frequency (monsters only)
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CreatureDef) GlyphRune() rune {
	for _, r := range c.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (c *CreatureDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// CreaturesFile represents the structure of creatures.json.
type CreaturesFile struct {
	Player   CreatureDef   `json:"player"`
	Monsters []CreatureDef `json:"monsters"`
}

// LoadCreatures loads creature definitions from the embedded creatures.json file.
func LoadCreatures() (CreaturesFile, error) {
	return Load[CreaturesFile]("creatures.json")
}
