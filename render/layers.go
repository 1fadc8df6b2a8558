package render

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/axododge/match"
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/pose"
	"github.com/lixenwraith/axododge/target"
	"github.com/lixenwraith/axododge/vmath"
)

// OutlineLayer draws the positioning box while the player steps into place
type OutlineLayer struct{}

func (OutlineLayer) Render(ctx *RenderContext, buf *RenderBuffer) {
	v := ctx.View
	if v.Phase != match.PhasePositioning {
		return
	}

	c := Fade(Hex(parameter.OutlineReadyColor), Hex(parameter.OutlineColor), v.PositioningProgress)
	x0, y0 := ctx.ToScreen(v.Outline.Left*v.Width, v.Outline.Top*v.Height)
	x1, y1 := ctx.ToScreen(v.Outline.Right*v.Width, v.Outline.Bottom*v.Height)
	x1, y1 = min(x1, ctx.ScreenWidth-1), min(y1, ctx.ScreenHeight-1)

	for x := x0; x <= x1; x++ {
		buf.Set(x, y0, parameter.OutlineHGlyph, c)
		buf.Set(x, y1, parameter.OutlineHGlyph, c)
	}
	for y := y0; y <= y1; y++ {
		buf.Set(x0, y, parameter.OutlineVGlyph, c)
		buf.Set(x1, y, parameter.OutlineVGlyph, c)
	}
}

// SkeletonLayer draws tracked limbs, joints and hand points
type SkeletonLayer struct {
	Hidden bool
}

func (l *SkeletonLayer) IsVisible() bool { return !l.Hidden }

func (l *SkeletonLayer) Render(ctx *RenderContext, buf *RenderBuffer) {
	v := ctx.View
	s := v.Skeleton
	if s == nil {
		return
	}
	bone, hand := Hex(parameter.SkeletonColor), Hex(parameter.HandColor)

	if len(s.Pose) >= parameter.PoseLandmarkCount {
		cw, ch := ctx.CellSize()
		step := min(cw, ch)
		segments := [][2]int{
			{pose.LeftShoulder, pose.RightShoulder},
			{pose.LeftHip, pose.RightHip},
			{pose.LeftShoulder, pose.LeftHip},
			{pose.RightShoulder, pose.RightHip},
		}
		for _, limb := range pose.Limbs {
			segments = append(segments, limb)
		}
		for _, seg := range segments {
			a := pose.Point(s.Pose, seg[0], v.Width, v.Height)
			b := pose.Point(s.Pose, seg[1], v.Width, v.Height)
			drawSegment(ctx, buf, a, b, step, bone)
		}
		for _, limb := range pose.Limbs {
			for _, i := range limb {
				p := pose.Point(s.Pose, i, v.Width, v.Height)
				x, y := ctx.ToScreen(p.X, p.Y)
				buf.Set(x, y, parameter.JointGlyph, bone)
			}
		}
		nose := pose.Point(s.Pose, pose.Nose, v.Width, v.Height)
		x, y := ctx.ToScreen(nose.X, nose.Y)
		buf.Set(x, y, parameter.JointGlyph, bone)
	}

	for _, set := range [][]pose.Landmark{s.LeftHand, s.RightHand} {
		for i := range set {
			p := pose.Point(set, i, v.Width, v.Height)
			x, y := ctx.ToScreen(p.X, p.Y)
			buf.Set(x, y, parameter.HandGlyph, hand)
		}
	}
}

func drawSegment(ctx *RenderContext, buf *RenderBuffer, a, b vmath.Vec, step float64, c colorful.Color) {
	n := int(vmath.Dist(a, b)/step) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x, y := ctx.ToScreen(vmath.Lerp(a.X, b.X, t), vmath.Lerp(a.Y, b.Y, t))
		buf.Set(x, y, parameter.BoneGlyph, c)
	}
}

// TargetLayer draws targets as filled discs with a warning countdown digit
type TargetLayer struct{}

func (TargetLayer) Render(ctx *RenderContext, buf *RenderBuffer) {
	for i := range ctx.View.Targets {
		t := &ctx.View.Targets[i]
		if t.Alpha <= 0 || t.Radius <= 0 {
			continue
		}
		c := Hex(t.Color)
		edge := t.Radius * (1 - parameter.TargetEdgeBand)
		x0, y0, x1, y1 := ctx.Bounds(t.X, t.Y, t.Radius)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				sx, sy := ctx.ToSurface(x, y)
				d := vmath.Dist(vmath.V(sx, sy), vmath.V(t.X, t.Y))
				if d > t.Radius {
					continue
				}
				glyph := parameter.TargetGlyph
				if d > edge {
					glyph = parameter.TargetEdgeGlyph
				}
				buf.Blend(x, y, glyph, c, t.Alpha)
			}
		}

		if t.State == target.Warning && t.Countdown > 0 {
			cx, cy := ctx.ToScreen(t.X, t.Y)
			buf.SetBg(cx, cy, Fade(c, buf.Background(), t.Alpha))
			buf.DrawText(cx, cy, strconv.Itoa(t.Countdown), buf.Background(), true)
		}
	}
}

// ShockwaveLayer draws expanding rings
type ShockwaveLayer struct{}

func (ShockwaveLayer) Render(ctx *RenderContext, buf *RenderBuffer) {
	if ctx.Effects == nil {
		return
	}
	for _, s := range ctx.Effects.Shockwaves() {
		x0, y0, x1, y1 := ctx.Bounds(s.Pos.X, s.Pos.Y, s.Radius+parameter.ShockwaveBand)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				sx, sy := ctx.ToSurface(x, y)
				d := vmath.Dist(vmath.V(sx, sy), s.Pos)
				if d < s.Radius-parameter.ShockwaveBand || d > s.Radius+parameter.ShockwaveBand {
					continue
				}
				buf.Blend(x, y, parameter.ShockwaveGlyph, s.Color, s.Alpha)
			}
		}
	}
}

// ParticleLayer draws burst sparks
type ParticleLayer struct{}

func (ParticleLayer) Render(ctx *RenderContext, buf *RenderBuffer) {
	if ctx.Effects == nil {
		return
	}
	for _, p := range ctx.Effects.Particles() {
		x, y := ctx.ToScreen(p.Pos.X, p.Pos.Y)
		buf.Blend(x, y, parameter.ParticleGlyph, p.Color, p.Alpha)
	}
}

// PopupLayer draws rising score labels
type PopupLayer struct{}

func (PopupLayer) Render(ctx *RenderContext, buf *RenderBuffer) {
	if ctx.Effects == nil {
		return
	}
	for _, p := range ctx.Effects.Popups() {
		x, y := ctx.ToScreen(p.Pos.X, p.Pos.Y)
		x -= len(p.Text) / 2
		buf.DrawText(x, y, p.Text, Fade(p.Color, buf.Background(), p.Alpha), p.Scale >= 1)
	}
}
