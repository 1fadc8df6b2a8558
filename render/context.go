package render

import (
	"github.com/lixenwraith/axododge/effect"
	"github.com/lixenwraith/axododge/match"
)

// EffectSource exposes live cosmetic entities
type EffectSource interface {
	Particles() []effect.Particle
	Shockwaves() []effect.Shockwave
	Popups() []effect.Popup
}

// RenderContext is the per-frame input shared by all layers
type RenderContext struct {
	ScreenWidth  int
	ScreenHeight int

	View    *match.View
	Effects EffectSource
	Muted   bool
}

// ToScreen maps a surface point in pixels to a cell
func (c *RenderContext) ToScreen(x, y float64) (int, int) {
	if c.View.Width <= 0 || c.View.Height <= 0 {
		return 0, 0
	}
	col := int(x / c.View.Width * float64(c.ScreenWidth))
	row := int(y / c.View.Height * float64(c.ScreenHeight))
	return col, row
}

// ToSurface maps a cell to the surface point at its center
func (c *RenderContext) ToSurface(col, row int) (float64, float64) {
	cw, ch := c.CellSize()
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

// CellSize returns the surface extent of one cell in pixels
func (c *RenderContext) CellSize() (float64, float64) {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return 1, 1
	}
	return c.View.Width / float64(c.ScreenWidth), c.View.Height / float64(c.ScreenHeight)
}

// Bounds returns the cell rectangle covering a surface disc, clipped to the screen
func (c *RenderContext) Bounds(x, y, r float64) (x0, y0, x1, y1 int) {
	x0, y0 = c.ToScreen(x-r, y-r)
	x1, y1 = c.ToScreen(x+r, y+r)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.ScreenWidth-1), min(y1, c.ScreenHeight-1)
	return
}
