package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell of the composed frame
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
	Bold bool
	cont bool // Trailing half of a wide rune
}

// RenderBuffer is the frame compositor, flushed to a tcell.Screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	bg     colorful.Color
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int, bg colorful.Color) *RenderBuffer {
	b := &RenderBuffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: b.bg, Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) Width() int                 { return b.width }
func (b *RenderBuffer) Height() int                { return b.height }
func (b *RenderBuffer) Background() colorful.Color { return b.bg }

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y, blank when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' ', Fg: b.bg, Bg: b.bg}
	}
	return b.cells[y*b.width+x]
}

// Set replaces glyph and foreground, keeping the cell background
func (b *RenderBuffer) Set(x, y int, r rune, fg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
	c.Bold = false
	c.cont = false
}

// Blend draws r with fg faded toward the cell background by alpha
func (b *RenderBuffer) Blend(x, y int, r rune, fg colorful.Color, alpha float64) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = Fade(fg, c.Bg, alpha)
	c.Bold = false
	c.cont = false
}

// SetBg sets the cell background
func (b *RenderBuffer) SetBg(x, y int, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// DrawText writes s from x,y and returns the columns used
// Wide runes occupy two cells; text is clipped at the right edge
func (b *RenderBuffer) DrawText(x, y int, s string, fg colorful.Color, bold bool) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > b.width {
			break
		}
		if b.inBounds(col, y) {
			c := &b.cells[y*b.width+col]
			c.Rune, c.Fg, c.Bold, c.cont = r, fg, bold, false
			if w == 2 && b.inBounds(col+1, y) {
				n := &b.cells[y*b.width+col+1]
				n.Rune, n.Fg, n.cont = ' ', fg, true
			}
		}
		col += w
	}
	return col - x
}

// DrawTextCentered writes s centered on row y
func (b *RenderBuffer) DrawTextCentered(y int, s string, fg colorful.Color, bold bool) {
	x := (b.width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	b.DrawText(x, y, s, fg, bold)
}

// Flush writes every cell to the screen; Show is left to the caller
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			if c.cont {
				continue
			}
			style := tcell.StyleDefault.Foreground(ToTcell(c.Fg)).Background(ToTcell(c.Bg)).Bold(c.Bold)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
