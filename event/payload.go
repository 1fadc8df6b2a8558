package event

import "github.com/lixenwraith/axododge/target"

// TargetPayload describes the target an event is about
// Points is the signed score change applied, 0 when none
type TargetPayload struct {
	ID     uint64
	Kind   target.Kind
	X, Y   float64
	Radius float64
	Points int
}

// ComboPayload carries the combo count after the increment
type ComboPayload struct {
	Count      int
	Multiplier float64
}

// LevelUpPayload carries the new level and its tightened tuning
type LevelUpPayload struct {
	Level         int
	SpawnInterval float64
	WarningTime   float64
	GrowthFactor  float64
}

// CountdownPayload carries seconds remaining before play, 0 means "go"
type CountdownPayload struct {
	Remaining int
}

// MatchStartedPayload identifies the match that just began
type MatchStartedPayload struct {
	MatchID    string
	Difficulty string
}

// MatchSummary is the end-of-match report
type MatchSummary struct {
	MatchID        string
	Score          int
	Difficulty     string
	Level          int
	Time           float64
	Dodges         int
	Hits           int
	BonusCollected int
	BonusMissed    int
	MaxCombo       int
	ZenMode        bool
}

// GameOverPayload wraps the final summary
type GameOverPayload struct {
	Summary MatchSummary
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}
