package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the default speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sets speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultMasterVolume is the master gain applied to every effect
	AudioDefaultMasterVolume = 0.5
)

// Countdown Beep
const (
	CountdownSoundDuration = 120 * time.Millisecond
	CountdownSoundAttack   = 5 * time.Millisecond
	CountdownSoundRelease  = 60 * time.Millisecond
	CountdownSoundFreq     = 660.0
	CountdownGoFreq        = 1320.0
)

// Ball Disappear (falling sweep)
const (
	DisappearSoundDuration = 220 * time.Millisecond
	DisappearSoundAttack   = 5 * time.Millisecond
	DisappearSoundRelease  = 150 * time.Millisecond
	DisappearStartFreq     = 900.0
	DisappearEndFreq       = 300.0
)

// Ball Hit (low saw thud plus noise)
const (
	HitSoundDuration = 250 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 200 * time.Millisecond
	HitSoundFreq     = 90.0
	HitNoiseMix      = 0.35
)

// Bonus Collect (two-note chime)
const (
	CollectNote1Duration = 80 * time.Millisecond
	CollectNote2Duration = 260 * time.Millisecond
	CollectSoundAttack   = 5 * time.Millisecond
	CollectNote1Release  = 40 * time.Millisecond
	CollectNote2Release  = 200 * time.Millisecond
	CollectNote1Freq     = 987.77  // B5
	CollectNote2Freq     = 1318.51 // E6
)

// Level Up (rising arpeggio)
const (
	LevelUpNoteDuration = 90 * time.Millisecond
	LevelUpSoundAttack  = 5 * time.Millisecond
	LevelUpSoundRelease = 50 * time.Millisecond
)

// LevelUpNotes is the C major arpeggio played on level-up and positioning success
var LevelUpNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}

// Combo Blip (pitch rises with combo count)
const (
	ComboSoundDuration = 140 * time.Millisecond
	ComboSoundAttack   = 3 * time.Millisecond
	ComboSoundRelease  = 90 * time.Millisecond
	ComboBaseFreq      = 440.0
	ComboFreqStep      = 0.06 // Fractional pitch increase per combo count
	ComboMaxFreq       = 1760.0
)

// Game Over (descending saw)
const (
	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 500 * time.Millisecond
	GameOverStartFreq     = 392.0
	GameOverEndFreq       = 98.0
)
