package match

import (
	"math"

	"github.com/lixenwraith/axododge/parameter"
)

// Phase is the top-level match lifecycle
type Phase uint8

const (
	PhaseIdle        Phase = iota // Before the first Start
	PhasePositioning              // Waiting for the player to stand inside the outline
	PhaseCountdown                // 3-2-1 before play
	PhaseRunning                  // Simulation active
	PhaseGameOver                 // Terminal until Restart
)

func (p Phase) String() string {
	switch p {
	case PhasePositioning:
		return "positioning"
	case PhaseCountdown:
		return "countdown"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "gameover"
	default:
		return "idle"
	}
}

// Stats counts resolutions over one match
type Stats struct {
	Dodges         int
	Hits           int
	BonusCollected int
	BonusMissed    int
}

// State is the authoritative per-match scoreboard
type State struct {
	Score      int     // Never negative
	Lives      int     // 0..StartingLives
	Combo      int     // Consecutive successes within the timeout window
	Multiplier float64 // Derived from Combo
	MaxCombo   int
	GameTime   float64 // Seconds of running time
	Level      int     // Progressive difficulty level, starts at 1
	ZenMode    bool    // Hits cost points but never lives
	Stats      Stats
}

func newState(zen bool) State {
	return State{
		Lives:      parameter.StartingLives,
		Multiplier: 1,
		Level:      1,
		ZenMode:    zen,
	}
}

// MultiplierFor returns the score multiplier for a combo count
// Non-decreasing step function of count
func MultiplierFor(combo int) float64 {
	for i, threshold := range parameter.ComboThresholds {
		if combo >= threshold {
			return parameter.ComboMultipliers[i]
		}
	}
	return 1
}

// IsComboMilestone reports whether reaching count deserves a celebration
func IsComboMilestone(count int) bool {
	for _, threshold := range parameter.ComboThresholds {
		if count == threshold {
			return true
		}
	}
	return false
}

// scaledPoints applies the multiplier to a positive award, rounding half away from zero
func scaledPoints(points int, multiplier float64) int {
	return int(math.Round(float64(points) * multiplier))
}
