package effect

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/vmath"
)

// Particle is one spark of an explosion burst
type Particle struct {
	Pos    vmath.Vec
	Vel    vmath.Vec
	Radius float64
	Life   float64
	Alpha  float64
	Color  colorful.Color
}

func (p *Particle) update(dt float64) bool {
	p.Pos = r2.Add(p.Pos, r2.Scale(dt, p.Vel))
	p.Vel = r2.Scale(parameter.ParticleDrag, p.Vel)
	p.Radius *= parameter.ParticleShrink
	p.Life -= dt
	p.Alpha = vmath.Clamp(p.Life, 0, 1)
	return p.Life > 0 && p.Radius >= parameter.ParticleMinVisibleRadius
}

// Shockwave is an expanding ring
type Shockwave struct {
	Pos       vmath.Vec
	Radius    float64
	MaxRadius float64
	Alpha     float64
	Color     colorful.Color
}

func (s *Shockwave) update(dt float64) bool {
	s.Radius += parameter.ShockwaveGrowthRate * dt
	if s.Radius >= s.MaxRadius {
		return false
	}
	s.Alpha = 1 - s.Radius/s.MaxRadius
	return true
}

// Popup is a rising score or combo label
type Popup struct {
	Pos   vmath.Vec
	Text  string
	Life  float64
	Alpha float64
	Scale float64
	Color colorful.Color
}

func (p *Popup) update(dt float64) bool {
	p.Pos.Y -= parameter.PopupRiseSpeed * dt
	if p.Scale < 1 {
		p.Scale = min(1, p.Scale+dt*parameter.PopupScaleRate)
	}
	p.Life -= dt
	p.Alpha = vmath.Clamp(p.Life, 0, 1)
	return p.Life > 0
}

// Hex parses a #RRGGBB color, falling back to white
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}
