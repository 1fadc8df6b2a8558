package match

import (
	"github.com/lixenwraith/axododge/difficulty"
	"github.com/lixenwraith/axododge/event"
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/pose"
	"github.com/lixenwraith/axododge/target"
)

// TargetView is the drawable state of one target
type TargetView struct {
	ID        uint64
	X, Y      float64
	Radius    float64
	Kind      target.Kind
	State     target.State
	Color     string
	Alpha     float64
	Pulse     float64
	Countdown int // Whole seconds of warning left, 0 once active
}

// View is a read-only per-frame snapshot for render and UI collaborators
type View struct {
	MatchID    string
	Phase      Phase
	Paused     bool
	Difficulty difficulty.Preset
	Width      float64
	Height     float64
	State      State

	Targets []TargetView

	// Pre-match guidance
	Outline             pose.Outline
	PositioningProgress float64 // 0..1 of the required hold
	Countdown           int     // Seconds shown during PhaseCountdown

	Skeleton *pose.Skeleton // Latest tracked body, nil without a source
}

// View fills dst with the current state, reusing dst.Targets storage
func (d *Director) View(dst *View) {
	dst.MatchID = d.matchID
	dst.Phase = d.phase
	dst.Paused = d.paused
	dst.Difficulty = d.opts.Settings.Preset
	dst.Width = d.opts.Width
	dst.Height = d.opts.Height
	dst.State = d.state
	dst.Outline = d.opts.Outline
	dst.PositioningProgress = min(1, d.holdTime/parameter.PositioningHoldSeconds)
	dst.Countdown = 0
	if d.phase == PhaseCountdown {
		dst.Countdown = d.countdownShown
	}

	dst.Skeleton = nil
	if d.src != nil {
		dst.Skeleton = d.src.Snapshot()
	}

	dst.Targets = dst.Targets[:0]
	for _, t := range d.targets {
		dst.Targets = append(dst.Targets, TargetView{
			ID:        t.ID,
			X:         t.Pos.X,
			Y:         t.Pos.Y,
			Radius:    t.Radius,
			Kind:      t.Kind,
			State:     t.State,
			Color:     t.Color(),
			Alpha:     t.Alpha,
			Pulse:     t.Pulse,
			Countdown: t.Countdown(),
		})
	}
}

// --- Getters ---

func (d *Director) Phase() Phase                  { return d.phase }
func (d *Director) Paused() bool                  { return d.paused }
func (d *Director) MatchID() string               { return d.matchID }
func (d *Director) State() State                  { return d.state }
func (d *Director) Score() int                    { return d.state.Score }
func (d *Director) Lives() int                    { return d.state.Lives }
func (d *Director) Combo() int                    { return d.state.Combo }
func (d *Director) Multiplier() float64           { return d.state.Multiplier }
func (d *Director) GameTime() float64             { return d.state.GameTime }
func (d *Director) Level() int                    { return d.state.Level }
func (d *Director) Config() difficulty.Config     { return d.cfg }
func (d *Director) Settings() difficulty.Settings { return d.opts.Settings }

// Targets exposes live targets; callers must not mutate them
func (d *Director) Targets() []*target.Target { return d.targets }

// Summary reports the match so far in game-over form
func (d *Director) Summary() event.MatchSummary {
	return event.MatchSummary{
		MatchID:        d.matchID,
		Score:          d.state.Score,
		Difficulty:     string(d.opts.Settings.Preset),
		Level:          d.state.Level,
		Time:           d.state.GameTime,
		Dodges:         d.state.Stats.Dodges,
		Hits:           d.state.Stats.Hits,
		BonusCollected: d.state.Stats.BonusCollected,
		BonusMissed:    d.state.Stats.BonusMissed,
		MaxCombo:       d.state.MaxCombo,
		ZenMode:        d.state.ZenMode,
	}
}
