package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/axododge/effect"
	"github.com/lixenwraith/axododge/match"
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/pose"
	"github.com/lixenwraith/axododge/target"
	"github.com/lixenwraith/axododge/vmath"
)

type staticView struct {
	v match.View
}

func (s *staticView) View(dst *match.View) {
	targets := dst.Targets[:0]
	*dst = s.v
	dst.Targets = append(targets, s.v.Targets...)
}

type staticEffects struct {
	particles []effect.Particle
	waves     []effect.Shockwave
	popups    []effect.Popup
}

func (s *staticEffects) Particles() []effect.Particle   { return s.particles }
func (s *staticEffects) Shockwaves() []effect.Shockwave { return s.waves }
func (s *staticEffects) Popups() []effect.Popup         { return s.popups }

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runningView() match.View {
	return match.View{
		Phase:      match.PhaseRunning,
		Difficulty: "medium",
		Width:      800,
		Height:     240,
		State:      match.State{Score: 12, Lives: 2, Combo: 5, Multiplier: 2, Level: 1, GameTime: 4.5},
	}
}

func rowText(buf *RenderBuffer, y int) string {
	var sb strings.Builder
	for x := 0; x < buf.Width(); x++ {
		sb.WriteRune(buf.Get(x, y).Rune)
	}
	return sb.String()
}

func TestToScreenMapping(t *testing.T) {
	v := match.View{Width: 800, Height: 240}
	ctx := &RenderContext{ScreenWidth: 80, ScreenHeight: 24, View: &v}

	if x, y := ctx.ToScreen(400, 120); x != 40 || y != 12 {
		t.Errorf("Expected center at (40,12), got (%d,%d)", x, y)
	}
	if sx, sy := ctx.ToSurface(0, 0); sx != 5 || sy != 5 {
		t.Errorf("Expected first cell center at (5,5), got (%f,%f)", sx, sy)
	}
	x0, y0, x1, y1 := ctx.Bounds(5, 5, 50)
	if x0 != 0 || y0 != 0 || x1 != 5 || y1 != 5 {
		t.Errorf("Expected clipped bounds (0,0)-(5,5), got (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
}

func TestTerminalDrawsTargetAndHUD(t *testing.T) {
	screen := newScreen(t, 80, 24)
	v := runningView()
	v.Targets = []match.TargetView{{
		ID: 1, X: 400, Y: 120, Radius: 40,
		Kind: target.Hazard, State: target.Active,
		Color: parameter.HazardActiveColor, Alpha: 1,
	}}

	term := NewTerminal(screen, &staticView{v: v}, nil)
	term.Draw()
	buf := term.Buffer()

	if c := buf.Get(40, 12); c.Rune != parameter.TargetGlyph {
		t.Errorf("Expected target glyph at center, got %q", c.Rune)
	}
	if c := buf.Get(2, 20); c.Rune != ' ' {
		t.Errorf("Expected blank far from target, got %q", c.Rune)
	}

	hud := rowText(buf, 0)
	for _, want := range []string{"SCORE 12", "COMBO 5 x2.0", "medium"} {
		if !strings.Contains(hud, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, hud)
		}
	}
	if strings.Count(hud, string(parameter.LifeGlyph)) != 2 {
		t.Errorf("Expected 2 life glyphs in %q", hud)
	}

	mainc, _, _, _ := screen.GetContent(40, 12)
	if mainc != parameter.TargetGlyph {
		t.Errorf("Expected flushed screen to carry target glyph, got %q", mainc)
	}
}

func TestTargetWarningShowsCountdown(t *testing.T) {
	screen := newScreen(t, 80, 24)
	v := runningView()
	v.Targets = []match.TargetView{{
		X: 400, Y: 120, Radius: 30,
		State: target.Warning, Color: parameter.HazardWarningColor,
		Alpha: 1, Countdown: 2,
	}}

	term := NewTerminal(screen, &staticView{v: v}, nil)
	term.Draw()

	if c := term.Buffer().Get(40, 12); c.Rune != '2' {
		t.Errorf("Expected countdown digit 2 at center, got %q", c.Rune)
	}
}

func TestFadedTargetBlendsTowardBackground(t *testing.T) {
	screen := newScreen(t, 80, 24)
	v := runningView()
	v.Targets = []match.TargetView{{
		X: 400, Y: 120, Radius: 40, State: target.Finished,
		Color: "#FF0000", Alpha: 0.5,
	}}

	term := NewTerminal(screen, &staticView{v: v}, nil)
	term.Draw()

	got := term.Buffer().Get(40, 12).Fg
	want := Hex(parameter.BackgroundColor).BlendRgb(Hex("#FF0000"), 0.5)
	if !got.AlmostEqualRgb(want) {
		t.Errorf("Expected half-faded color %s, got %s", want.Hex(), got.Hex())
	}
}

func TestOverlayPhases(t *testing.T) {
	tests := []struct {
		name string
		mod  func(v *match.View)
		want string
	}{
		{"positioning", func(v *match.View) { v.Phase = match.PhasePositioning; v.Outline = pose.DefaultOutline }, "Step into the box"},
		{"paused", func(v *match.View) { v.Paused = true }, "PAUSED"},
		{"game over", func(v *match.View) { v.Phase = match.PhaseGameOver }, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newScreen(t, 80, 24)
			v := runningView()
			tt.mod(&v)
			term := NewTerminal(screen, &staticView{v: v}, nil)
			term.Draw()

			found := false
			for y := 0; y < 24; y++ {
				if strings.Contains(rowText(term.Buffer(), y), tt.want) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Expected overlay text %q", tt.want)
			}
		})
	}
}

func TestEffectsLayers(t *testing.T) {
	screen := newScreen(t, 80, 24)
	white := colorful.Color{R: 1, G: 1, B: 1}
	fx := &staticEffects{
		particles: []effect.Particle{{Pos: vmath.V(105, 105), Alpha: 1, Color: white}},
		popups:    []effect.Popup{{Pos: vmath.V(400, 200), Text: "+3", Alpha: 1, Scale: 1, Color: white}},
		waves:     []effect.Shockwave{{Pos: vmath.V(600, 120), Radius: 50, Alpha: 1, Color: white}},
	}

	term := NewTerminal(screen, &staticView{v: runningView()}, fx)
	term.Draw()
	buf := term.Buffer()

	if c := buf.Get(10, 10); c.Rune != parameter.ParticleGlyph {
		t.Errorf("Expected particle glyph, got %q", c.Rune)
	}
	if !strings.Contains(rowText(buf, 20), "+3") {
		t.Errorf("Expected popup text on row 20, got %q", rowText(buf, 20))
	}
	if c := buf.Get(60, 12); c.Rune == parameter.ShockwaveGlyph {
		t.Error("Expected shockwave ring to leave its center empty")
	}
	if c := buf.Get(65, 12); c.Rune != parameter.ShockwaveGlyph {
		t.Errorf("Expected ring glyph at radius, got %q", c.Rune)
	}
}

func TestSkeletonToggle(t *testing.T) {
	screen := newScreen(t, 80, 24)
	v := runningView()
	v.Skeleton = pose.StandingSkeleton(0.5, 0.5, 0.8)

	term := NewTerminal(screen, &staticView{v: v}, nil)
	term.Draw()

	nose := pose.Point(v.Skeleton.Pose, pose.Nose, v.Width, v.Height)
	ctx := &RenderContext{ScreenWidth: 80, ScreenHeight: 24, View: &v}
	x, y := ctx.ToScreen(nose.X, nose.Y)
	if c := term.Buffer().Get(x, y); c.Rune != parameter.JointGlyph {
		t.Errorf("Expected joint glyph at nose, got %q", c.Rune)
	}

	if term.ToggleSkeleton() {
		t.Error("Expected skeleton hidden after toggle")
	}
	term.Draw()
	if c := term.Buffer().Get(x, y); c.Rune == parameter.JointGlyph {
		t.Error("Expected no joint glyph with skeleton hidden")
	}
}

func TestTerminalFollowsResize(t *testing.T) {
	screen := newScreen(t, 80, 24)
	term := NewTerminal(screen, &staticView{v: runningView()}, nil)
	term.Draw()

	screen.SetSize(100, 30)
	term.Draw()
	if term.Buffer().Width() != 100 || term.Buffer().Height() != 30 {
		t.Errorf("Expected 100x30 buffer, got %dx%d", term.Buffer().Width(), term.Buffer().Height())
	}
}

func TestTerminalTooSmall(t *testing.T) {
	screen := newScreen(t, 20, 6)
	term := NewTerminal(screen, &staticView{v: runningView()}, &staticEffects{})
	term.Draw()

	if got := rowText(term.Buffer(), 3); !strings.Contains(got, "too small") {
		t.Errorf("Expected resize prompt, got %q", got)
	}
	if got := rowText(term.Buffer(), 0); strings.Contains(got, "SCORE") {
		t.Errorf("Expected HUD suppressed, got %q", got)
	}
}
