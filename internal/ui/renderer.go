package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/treasureshark/internal/entity"
	"github.com/samdwyer/treasureshark/internal/world"
)

// Tile background colors. Remembered tiles use the dark pair, tiles in view
// the light pair; tiles never seen stay black.
var (
	ColorDarkWall    = tcell.NewRGBColor(0, 0, 100)
	ColorLightWall   = tcell.NewRGBColor(130, 110, 50)
	ColorDarkGround  = tcell.NewRGBColor(50, 50, 150)
	ColorLightGround = tcell.NewRGBColor(200, 180, 50)
)

// Visibility reports whether a tile is currently in view.
type Visibility interface {
	IsVisible(x, y int) bool
}

// Frame is everything drawn in one pass.
type Frame struct {
	Dungeon  *world.Dungeon
	Visible  Visibility
	Entities []*entity.Entity // Draw order, last on top
	HP       int
	MaxHP    int
	Messages []string // Oldest first
	Dead     bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, the entities in view and the panel below the map.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	r.renderMap(f)
	r.renderEntities(f)
	r.renderPanel(f)

	r.screen.Show()
}

func (r *Renderer) renderMap(f Frame) {
	d := f.Dungeon
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			bg, ok := tileBackground(d, f.Visible, x, y)
			if !ok {
				continue
			}
			r.screen.SetContent(x, y, ' ', tcell.StyleDefault.Background(bg))
		}
	}
}

// tileBackground picks the color for a tile. ok is false for unexplored tiles.
func tileBackground(d *world.Dungeon, vis Visibility, x, y int) (tcell.Color, bool) {
	wall := d.BlocksSight(x, y)
	switch {
	case vis.IsVisible(x, y):
		if wall {
			return ColorLightWall, true
		}
		return ColorLightGround, true
	case d.IsExplored(x, y):
		if wall {
			return ColorDarkWall, true
		}
		return ColorDarkGround, true
	default:
		return tcell.ColorDefault, false
	}
}

func (r *Renderer) renderEntities(f Frame) {
	for _, e := range f.Entities {
		if !f.Visible.IsVisible(e.X, e.Y) {
			continue
		}
		bg, _ := tileBackground(f.Dungeon, f.Visible, e.X, e.Y)
		style := tcell.StyleDefault.Foreground(e.Color).Background(bg)
		r.screen.SetContent(e.X, e.Y, e.Glyph, style)
	}
}

// renderPanel draws the status line and the narration tail under the map.
func (r *Renderer) renderPanel(f Frame) {
	y := f.Dungeon.Height
	status := fmt.Sprintf("HP: %d/%d", f.HP, f.MaxHP)
	r.RenderMessage(status, 0, y, tcell.ColorWhite)
	if f.Dead {
		r.RenderMessage(deathBanner, len(status)+2, y, tcell.ColorRed)
	}

	for i, msg := range f.Messages {
		r.RenderMessage(msg, 0, y+1+i, tcell.ColorLightGray)
	}
}

const deathBanner = "You are dead. Press q to quit."

// RenderMessage writes text starting at column x of row y.
func (r *Renderer) RenderMessage(msg string, x, y int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
