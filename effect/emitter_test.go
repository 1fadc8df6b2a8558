package effect

import (
	"math"
	"testing"

	"github.com/lixenwraith/axododge/event"
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/status"
	"github.com/lixenwraith/axododge/target"
)

func newTestEmitter() (*Emitter, *status.Registry) {
	reg := status.NewRegistry()
	return NewEmitter(1000, 800, 1, reg), reg
}

func TestOnSuccessSpawnsAllKinds(t *testing.T) {
	e, _ := newTestEmitter()
	e.OnSuccess(100, 100, 20, target.Hazard, 2)

	if len(e.Particles()) != parameter.SuccessParticles {
		t.Errorf("Expected %d particles, got %d", parameter.SuccessParticles, len(e.Particles()))
	}
	if len(e.Shockwaves()) != 1 || e.Shockwaves()[0].MaxRadius != 100 {
		t.Errorf("Expected one shockwave with max 100, got %+v", e.Shockwaves())
	}
	pop := e.Popups()
	if len(pop) != 1 || pop[0].Text != "+2" || pop[0].Pos.Y != 60 {
		t.Errorf("Unexpected popup %+v", pop)
	}
}

func TestCollisionPopupIsNegative(t *testing.T) {
	e, _ := newTestEmitter()
	e.OnCollision(50, 50, 10, -2)
	if e.Popups()[0].Text != "-2" {
		t.Errorf("Expected -2, got %s", e.Popups()[0].Text)
	}
	if e.Popups()[0].Color != Hex(parameter.CollisionColor) {
		t.Error("Expected collision color")
	}
}

func TestSaturationDropsSilently(t *testing.T) {
	e, reg := newTestEmitter()
	for i := 0; i < 5; i++ {
		e.OnCollision(10, 10, 10, -2)
	}

	if len(e.Particles()) != parameter.ParticlePoolCap {
		t.Errorf("Expected particle pool full at %d, got %d", parameter.ParticlePoolCap, len(e.Particles()))
	}
	// 5*40 requested, 100 fit
	if got := reg.Ints.Get("effect.dropped").Load(); got != 100 {
		t.Errorf("Expected 100 dropped, got %d", got)
	}

	for i := 0; i < parameter.ShockwavePoolCap+3; i++ {
		e.Shockwave(0, 0, 50, Hex("#FFFFFF"))
	}
	if len(e.Shockwaves()) != parameter.ShockwavePoolCap {
		t.Errorf("Expected %d shockwaves, got %d", parameter.ShockwavePoolCap, len(e.Shockwaves()))
	}
}

func TestUpdateRetiresEffects(t *testing.T) {
	e, _ := newTestEmitter()
	e.OnCombo(5)
	e.OnLevelUp(2)

	for i := 0; i < 200; i++ {
		e.Update(0.016)
	}
	if len(e.Particles()) != 0 || len(e.Shockwaves()) != 0 || len(e.Popups()) != 0 {
		t.Errorf("Expected all effects retired, got %d/%d/%d",
			len(e.Particles()), len(e.Shockwaves()), len(e.Popups()))
	}
}

func TestShockwaveFadesWithRadius(t *testing.T) {
	e, _ := newTestEmitter()
	e.Shockwave(0, 0, 100, Hex("#FFFFFF"))
	e.Update(0.1) // 10 + 30
	w := e.Shockwaves()[0]
	if math.Abs(w.Radius-40) > 1e-9 || math.Abs(w.Alpha-0.6) > 1e-9 {
		t.Errorf("Expected radius 40 alpha 0.6, got %f %f", w.Radius, w.Alpha)
	}
}

func TestPopupScalesAndRises(t *testing.T) {
	e, _ := newTestEmitter()
	e.Popup(0, 100, "+1", Hex("#FFFFFF"))
	e.Update(0.1)
	p := e.Popups()[0]
	if math.Abs(p.Scale-0.5) > 1e-9 {
		t.Errorf("Expected scale 0.5, got %f", p.Scale)
	}
	if math.Abs(p.Pos.Y-95) > 1e-9 {
		t.Errorf("Expected y 95, got %f", p.Pos.Y)
	}
	e.Update(0.5)
	if e.Popups()[0].Scale != 1 {
		t.Error("Expected scale capped at 1")
	}
}

func TestComboColorTiers(t *testing.T) {
	cases := map[int]string{
		2: parameter.ComboColorBase, 3: parameter.ComboColorTier1, 4: parameter.ComboColorTier1,
		5: parameter.ComboColorTier2, 8: parameter.ComboColorTier3, 12: parameter.ComboColorTier4,
		19: parameter.ComboColorTier4, 20: parameter.ComboColorTier5, 50: parameter.ComboColorTier5,
	}
	for count, hex := range cases {
		if ComboColor(count) != Hex(hex) {
			t.Errorf("Combo %d: expected %s", count, hex)
		}
	}
}

func TestHandleEventRouting(t *testing.T) {
	e, _ := newTestEmitter()
	q := event.NewEventQueue()
	r := event.NewRouter(q)
	r.Register(e)

	q.Emit(event.EventBallHit, &event.TargetPayload{X: 10, Y: 10, Radius: 5, Points: -2}, 0)
	q.Emit(event.EventCombo, &event.ComboPayload{Count: 3}, 0)
	r.DispatchAll()

	if len(e.Popups()) != 2 {
		t.Fatalf("Expected 2 popups, got %d", len(e.Popups()))
	}
	if e.Popups()[1].Text != "COMBO x3" {
		t.Errorf("Expected combo popup, got %s", e.Popups()[1].Text)
	}
	if e.Popups()[1].Pos.X != 500 || e.Popups()[1].Pos.Y != 400 {
		t.Error("Expected combo popup at surface centre")
	}

	q.Emit(event.EventGameReset, nil, 0)
	r.DispatchAll()
	if len(e.Particles())+len(e.Shockwaves())+len(e.Popups()) != 0 {
		t.Error("Expected reset to clear pools")
	}
}
