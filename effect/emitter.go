// Package effect owns pooled visual feedback: particle bursts, shockwaves and
// score popups, driven by match events
package effect

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/axododge/event"
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/status"
	"github.com/lixenwraith/axododge/target"
	"github.com/lixenwraith/axododge/vmath"
)

// Emitter turns semantic feedback requests into pooled effect entities
// Saturated pools drop requests silently; gameplay never waits on effects
type Emitter struct {
	particles *Pool[Particle]
	waves     *Pool[Shockwave]
	popups    *Pool[Popup]

	rng           *vmath.FastRand
	width, height float64

	statSpawned *atomic.Int64
	statDropped *atomic.Int64
}

// NewEmitter creates an emitter for a surface of the given size
func NewEmitter(width, height float64, seed uint64, reg *status.Registry) *Emitter {
	e := &Emitter{
		particles: NewPool[Particle](parameter.ParticlePoolCap),
		waves:     NewPool[Shockwave](parameter.ShockwavePoolCap),
		popups:    NewPool[Popup](parameter.PopupPoolCap),
		rng:       vmath.NewFastRand(seed),
		width:     width,
		height:    height,
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	e.statSpawned = reg.Ints.Get("effect.spawned")
	e.statDropped = reg.Ints.Get("effect.dropped")
	return e
}

// --- Event routing ---

func (e *Emitter) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBallDisappear,
		event.EventBallHit,
		event.EventBonusCollect,
		event.EventDodge,
		event.EventCombo,
		event.EventLevelUp,
		event.EventGameReset,
	}
}

func (e *Emitter) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		e.Reset()

	case event.EventBallDisappear:
		if p, ok := ev.Payload.(*event.TargetPayload); ok {
			e.OnTargetStateChange(p.X, p.Y, p.Radius, p.Kind)
		}

	case event.EventDodge, event.EventBonusCollect:
		if p, ok := ev.Payload.(*event.TargetPayload); ok {
			e.OnSuccess(p.X, p.Y, p.Radius, p.Kind, p.Points)
		}

	case event.EventBallHit:
		if p, ok := ev.Payload.(*event.TargetPayload); ok {
			e.OnCollision(p.X, p.Y, p.Radius, p.Points)
		}

	case event.EventCombo:
		if p, ok := ev.Payload.(*event.ComboPayload); ok {
			e.OnCombo(p.Count)
		}

	case event.EventLevelUp:
		if p, ok := ev.Payload.(*event.LevelUpPayload); ok {
			e.OnLevelUp(p.Level)
		}
	}
}

// --- Semantic triggers ---

// OnTargetStateChange marks a target turning active
func (e *Emitter) OnTargetStateChange(x, y, radius float64, kind target.Kind) {
	c := Hex(parameter.HazardWarningColor)
	if kind == target.Reward {
		c = Hex(parameter.RewardWarningColor)
	}
	e.Shockwave(x, y, radius*parameter.StateChangeWaveFactor, c)
	e.Burst(x, y, c, parameter.StateChangeParticles)
}

// OnSuccess celebrates a dodge or a collected reward
func (e *Emitter) OnSuccess(x, y, radius float64, kind target.Kind, points int) {
	c := Hex(parameter.HazardWarningColor)
	if kind == target.Reward {
		c = Hex(parameter.SuccessColorBonus)
	}
	e.Shockwave(x, y, radius*parameter.SuccessWaveFactor, c)
	e.Burst(x, y, c, parameter.SuccessParticles)
	e.Popup(x, y-radius*2, fmt.Sprintf("%+d", points), c)
}

// OnCollision marks a hazard hitting the body
func (e *Emitter) OnCollision(x, y, radius float64, points int) {
	c := Hex(parameter.CollisionColor)
	e.Shockwave(x, y, radius*parameter.CollisionWaveFactor, c)
	e.Burst(x, y, c, parameter.CollisionParticles)
	e.Popup(x, y-radius*2, fmt.Sprintf("%+d", points), c)
}

// OnCombo celebrates a combo milestone at the surface centre
func (e *Emitter) OnCombo(count int) {
	c := ComboColor(count)
	cx, cy := e.width/2, e.height/2
	e.Shockwave(cx, cy, parameter.ComboWaveRadius, c)
	e.Burst(cx, cy, c, parameter.ComboParticles)
	e.Popup(cx, cy, fmt.Sprintf("COMBO x%d", count), c)
}

// OnLevelUp rings the surface centre with bursts
func (e *Emitter) OnLevelUp(level int) {
	c := Hex(parameter.LevelUpColor)
	cx, cy := e.width/2, e.height/2
	e.Shockwave(cx, cy, parameter.LevelUpWaveRadius, c)
	for i := 0; i < parameter.LevelUpBursts; i++ {
		angle := float64(i) / parameter.LevelUpBursts * 2 * math.Pi
		off := vmath.FromAngle(angle, parameter.LevelUpBurstRadius)
		e.Burst(cx+off.X, cy+off.Y, c, parameter.LevelUpBurstParticles)
	}
	e.Popup(cx, cy, fmt.Sprintf("LEVEL %d", level), c)
}

// ComboColor picks the celebration color for a combo count
func ComboColor(count int) colorful.Color {
	switch {
	case count >= 20:
		return Hex(parameter.ComboColorTier5)
	case count >= 12:
		return Hex(parameter.ComboColorTier4)
	case count >= 8:
		return Hex(parameter.ComboColorTier3)
	case count >= 5:
		return Hex(parameter.ComboColorTier2)
	case count >= 3:
		return Hex(parameter.ComboColorTier1)
	default:
		return Hex(parameter.ComboColorBase)
	}
}

// --- Primitives ---

// Burst spawns up to count particles, clamped to free pool capacity
func (e *Emitter) Burst(x, y float64, c colorful.Color, count int) {
	if count <= 0 {
		count = parameter.DefaultBurstParticles
	}
	if free := e.particles.Free(); count > free {
		e.statDropped.Add(int64(count - free))
		count = free
	}
	for i := 0; i < count; i++ {
		p := e.particles.Acquire()
		speed := e.rng.Range(parameter.ParticleMinSpeed, parameter.ParticleMaxSpeed)
		*p = Particle{
			Pos:    vmath.V(x, y),
			Vel:    vmath.FromAngle(e.rng.Angle(), speed),
			Radius: e.rng.Range(parameter.ParticleMinRadius, parameter.ParticleMaxRadius),
			Life:   e.rng.Range(parameter.ParticleMinLife, parameter.ParticleMaxLife),
			Alpha:  1,
			Color:  c,
		}
	}
	e.statSpawned.Add(int64(count))
}

// Shockwave spawns an expanding ring, dropped when the pool is full
func (e *Emitter) Shockwave(x, y, maxRadius float64, c colorful.Color) {
	w := e.waves.Acquire()
	if w == nil {
		e.statDropped.Add(1)
		return
	}
	*w = Shockwave{
		Pos:       vmath.V(x, y),
		Radius:    parameter.ShockwaveStartRadius,
		MaxRadius: maxRadius,
		Alpha:     1,
		Color:     c,
	}
	e.statSpawned.Add(1)
}

// Popup spawns a rising label, dropped when the pool is full
func (e *Emitter) Popup(x, y float64, text string, c colorful.Color) {
	p := e.popups.Acquire()
	if p == nil {
		e.statDropped.Add(1)
		return
	}
	*p = Popup{
		Pos:   vmath.V(x, y),
		Text:  text,
		Life:  parameter.PopupLife,
		Alpha: 1,
		Color: c,
	}
	e.statSpawned.Add(1)
}

// --- Lifecycle ---

// Update advances every live effect by dt seconds and retires dead ones
func (e *Emitter) Update(dt float64) {
	e.particles.Retain(func(p *Particle) bool { return p.update(dt) })
	e.waves.Retain(func(s *Shockwave) bool { return s.update(dt) })
	e.popups.Retain(func(p *Popup) bool { return p.update(dt) })
}

// Reset clears all pools
func (e *Emitter) Reset() {
	e.particles.Clear()
	e.waves.Clear()
	e.popups.Clear()
}

// Particles returns live particles; read-only, valid until the next Update
func (e *Emitter) Particles() []Particle { return e.particles.Active() }

// Shockwaves returns live shockwaves; read-only, valid until the next Update
func (e *Emitter) Shockwaves() []Shockwave { return e.waves.Active() }

// Popups returns live popups; read-only, valid until the next Update
func (e *Emitter) Popups() []Popup { return e.popups.Active() }
