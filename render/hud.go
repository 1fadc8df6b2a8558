package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/axododge/match"
	"github.com/lixenwraith/axododge/parameter"
)

// HUDLayer draws the status line on the top row
type HUDLayer struct{}

func (HUDLayer) Render(ctx *RenderContext, buf *RenderBuffer) {
	v := ctx.View
	if v.Phase == match.PhaseIdle {
		return
	}
	st := v.State
	fg, warn := Hex(parameter.HUDColor), Hex(parameter.HUDWarnColor)

	x := 1
	x += buf.DrawText(x, 0, fmt.Sprintf("SCORE %d", st.Score), fg, true)
	x += 2
	if st.ZenMode {
		x += buf.DrawText(x, 0, "ZEN", fg, false)
	} else {
		lives := strings.Repeat(string(parameter.LifeGlyph), max(st.Lives, 0))
		x += buf.DrawText(x, 0, lives, warn, false)
	}
	x += 2
	x += buf.DrawText(x, 0, fmt.Sprintf("TIME %.1f", st.GameTime), fg, false)
	x += 2
	x += buf.DrawText(x, 0, fmt.Sprintf("LVL %d", st.Level), fg, false)
	if st.Combo > 0 {
		x += 2
		c := fg
		if st.Multiplier > 1 {
			c = Hex(parameter.OverlayColor)
		}
		x += buf.DrawText(x, 0, fmt.Sprintf("COMBO %d x%.1f", st.Combo, st.Multiplier), c, st.Multiplier > 1)
	}

	right := string(v.Difficulty)
	if ctx.Muted {
		right += " [muted]"
	}
	buf.DrawText(max(x+2, buf.Width()-len(right)-1), 0, right, fg, false)
}

// OverlayLayer draws phase prompts and the game-over summary
type OverlayLayer struct{}

func (OverlayLayer) Render(ctx *RenderContext, buf *RenderBuffer) {
	v := ctx.View
	fg := Hex(parameter.OverlayColor)
	mid := buf.Height() / 2

	switch {
	case v.Phase == match.PhasePositioning:
		buf.DrawTextCentered(2, "Step into the box and hold still", fg, true)
		buf.DrawTextCentered(3, progressBar(v.PositioningProgress, 20), fg, false)
	case v.Phase == match.PhaseCountdown:
		buf.DrawTextCentered(mid, fmt.Sprintf("%d", v.Countdown), fg, true)
	case v.Phase == match.PhaseGameOver:
		s := v.State
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score %d   Level %d   Time %.1fs", s.Score, s.Level, s.GameTime),
			fmt.Sprintf("Dodges %d   Hits %d   Max combo %d", s.Stats.Dodges, s.Stats.Hits, s.MaxCombo),
			fmt.Sprintf("Bonus %d collected, %d missed", s.Stats.BonusCollected, s.Stats.BonusMissed),
			"",
			"r restart   q quit",
		}
		top := mid - len(lines)/2
		for i, l := range lines {
			buf.DrawTextCentered(top+i, l, fg, i == 0)
		}
	case v.Paused:
		buf.DrawTextCentered(mid, "PAUSED  (p to resume)", fg, true)
	}
}

func progressBar(p float64, width int) string {
	filled := int(p * float64(width))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
