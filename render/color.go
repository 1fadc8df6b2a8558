package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexCache   = make(map[string]colorful.Color)
	hexCacheMu sync.RWMutex
)

// Hex parses and caches a #RRGGBB color, unknown strings render white
func Hex(s string) colorful.Color {
	hexCacheMu.RLock()
	c, ok := hexCache[s]
	hexCacheMu.RUnlock()
	if ok {
		return c
	}

	c, err := colorful.Hex(s)
	if err != nil {
		c = colorful.Color{R: 1, G: 1, B: 1}
	}

	hexCacheMu.Lock()
	hexCache[s] = c
	hexCacheMu.Unlock()
	return c
}

// ToTcell converts to a 24-bit tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Fade blends c toward bg by 1-alpha
func Fade(c, bg colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return bg
	}
	return bg.BlendRgb(c, alpha)
}
