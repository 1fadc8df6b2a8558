package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/axododge/match"
	"github.com/lixenwraith/axododge/parameter"
)

// ViewSource fills a per-frame match snapshot
type ViewSource interface {
	View(dst *match.View)
}

// Terminal draws the match and its effects into a tcell screen
// Draw must run on the loop goroutine since it reads the director
type Terminal struct {
	screen   tcell.Screen
	orch     *Orchestrator
	source   ViewSource
	effects  EffectSource
	skeleton *SkeletonLayer

	view  match.View
	ctx   RenderContext
	muted bool
}

// NewTerminal creates a renderer with the default layer stack
func NewTerminal(screen tcell.Screen, source ViewSource, effects EffectSource) *Terminal {
	t := &Terminal{
		screen:   screen,
		orch:     NewOrchestrator(Hex(parameter.BackgroundColor)),
		source:   source,
		effects:  effects,
		skeleton: &SkeletonLayer{},
	}

	t.orch.Register(OutlineLayer{}, PriorityOutline)
	t.orch.Register(t.skeleton, PrioritySkeleton)
	t.orch.Register(TargetLayer{}, PriorityTargets)
	t.orch.Register(ShockwaveLayer{}, PriorityShockwave)
	t.orch.Register(ParticleLayer{}, PriorityParticle)
	t.orch.Register(PopupLayer{}, PriorityPopup)
	t.orch.Register(HUDLayer{}, PriorityUI)
	t.orch.Register(OverlayLayer{}, PriorityOverlay)
	return t
}

// Register adds an extra layer
func (t *Terminal) Register(l Layer, priority RenderPriority) {
	t.orch.Register(l, priority)
}

// Draw renders one frame
func (t *Terminal) Draw() {
	t.source.View(&t.view)
	t.ctx.View = &t.view
	t.ctx.Effects = t.effects
	t.ctx.Muted = t.muted
	t.orch.RenderFrame(&t.ctx, t.screen)
}

// SetMuted shows the mute marker in the HUD
func (t *Terminal) SetMuted(muted bool) {
	t.muted = muted
}

// ToggleSkeleton flips the skeleton overlay and returns its new visibility
func (t *Terminal) ToggleSkeleton() bool {
	t.skeleton.Hidden = !t.skeleton.Hidden
	return !t.skeleton.Hidden
}

// Buffer exposes the last composed frame
func (t *Terminal) Buffer() *RenderBuffer {
	return t.orch.Buffer()
}

// Sync forces a full repaint after a resize
func (t *Terminal) Sync() {
	t.screen.Sync()
}
