package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/axododge/parameter"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	buffer   *RenderBuffer
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an orchestrator clearing to bg each frame
func NewOrchestrator(bg colorful.Color) *Orchestrator {
	return &Orchestrator{
		buffer: NewRenderBuffer(0, 0, bg),
		layers: make([]layerEntry, 0, 10),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{layer: l, priority: priority, index: o.regCount}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Buffer exposes the composed frame
func (o *Orchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: resize, clear, render all, flush, show
func (o *Orchestrator) RenderFrame(ctx *RenderContext, screen tcell.Screen) {
	w, h := screen.Size()
	if w != o.buffer.Width() || h != o.buffer.Height() {
		o.buffer.Resize(w, h)
	} else {
		o.buffer.Clear()
	}
	ctx.ScreenWidth, ctx.ScreenHeight = w, h

	o.Compose(ctx)
	o.buffer.Flush(screen)
	screen.Show()
}

// Compose runs all visible layers into the buffer without touching a screen
// Screens below the playable minimum get a resize prompt instead
func (o *Orchestrator) Compose(ctx *RenderContext) {
	if ctx.ScreenWidth < parameter.MinTerminalCols || ctx.ScreenHeight < parameter.MinTerminalRows {
		o.buffer.DrawTextCentered(ctx.ScreenHeight/2, "terminal too small", Hex(parameter.HUDWarnColor), true)
		return
	}
	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, o.buffer)
	}
}
