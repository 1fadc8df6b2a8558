package audio

// SoundType enumerates the procedural sound effects
type SoundType int

const (
	SoundCountdown  SoundType = iota // Countdown tick
	SoundGo                          // Countdown reached zero
	SoundDisappear                   // Hazard dodged
	SoundHit                         // Hazard touched the body
	SoundCollect                     // Reward touched
	SoundCombo                       // Combo milestone
	SoundLevelUp                     // Difficulty increased
	SoundPositioned                  // Positioning gate passed
	SoundGameOver                    // Last life lost
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundCountdown:  "countdown",
	SoundGo:         "go",
	SoundDisappear:  "disappear",
	SoundHit:        "hit",
	SoundCollect:    "collect",
	SoundCombo:      "combo",
	SoundLevelUp:    "levelUp",
	SoundPositioned: "positioned",
	SoundGameOver:   "gameOver",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a sound name, ok is false when unknown
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
