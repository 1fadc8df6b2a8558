package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/vmath"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waves maps a shape to its sample at phase in [0,1)
var waves = [...]func(phase float64, rng *vmath.FastRand) float64{
	WaveSine: func(p float64, _ *vmath.FastRand) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64, _ *vmath.FastRand) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(p float64, _ *vmath.FastRand) float64 { return 2*p - 1 },
	WaveNoise: func(_ float64, r *vmath.FastRand) float64 { return r.Float64()*2 - 1 },
}

// oscillator is a mono source whose pitch glides linearly from -> to over its length
type oscillator struct {
	sample   func(float64, *vmath.FastRand) float64
	from, to float64 // Hz
	phase    float64
	position int
	length   int
	rate     float64
	rng      *vmath.FastRand
}

// NewOscillator creates a fixed-pitch source lasting d
func NewOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep creates a source gliding from one pitch to another over d
func NewSweep(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		sample: waves[wave],
		from:   from,
		to:     to,
		length: rate.N(d),
		rate:   float64(rate),
		rng:    vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	n := min(len(samples), o.length-o.position)
	if n <= 0 {
		return 0, false
	}
	for i := range samples[:n] {
		v := o.sample(o.phase, o.rng)
		samples[i] = [2]float64{v, v}

		hz := o.from + (o.to-o.from)*float64(o.position)/float64(o.length)
		_, o.phase = math.Modf(o.phase + hz/o.rate)
		o.position++
	}
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a source with a linear fade in and fade out, cutting it at length
type envelope struct {
	src             beep.Streamer
	position        int
	length          int
	attack, release int
}

// NewEnvelope fades s in over attack and out over the final release of d
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     s,
		length:  rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

// gain at sample pos; attack wins where the two ramps overlap
func (e *envelope) gain(pos int) float64 {
	switch {
	case pos < e.attack:
		return float64(pos) / float64(e.attack)
	case pos >= e.length-e.release && e.release > 0:
		return max(0, float64(e.length-pos)/float64(e.release))
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	left := e.length - e.position
	if left <= 0 {
		return 0, false
	}
	n, ok := e.src.Stream(samples[:min(len(samples), left)])
	for i := range samples[:n] {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume scales s by a linear gain; zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateCountdownSound is a short square beep, higher pitched for "go"
func CreateCountdownSound(cfg *AudioConfig, final bool) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq, st := parameter.CountdownSoundFreq, SoundCountdown
	if final {
		freq, st = parameter.CountdownGoFreq, SoundGo
	}
	s := tone(freq, parameter.CountdownSoundDuration, parameter.CountdownSoundAttack, parameter.CountdownSoundRelease, WaveSquare, rate)
	return newVolume(s, cfg.Gain(st))
}

// CreateDisappearSound is a falling sine sweep
func CreateDisappearSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	sweep := NewSweep(parameter.DisappearStartFreq, parameter.DisappearEndFreq, parameter.DisappearSoundDuration, WaveSine, rate)
	s := NewEnvelope(sweep, parameter.DisappearSoundDuration, parameter.DisappearSoundAttack, parameter.DisappearSoundRelease, rate)
	return newVolume(s, cfg.Gain(SoundDisappear))
}

// CreateHitSound is a low saw thud layered with noise
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.HitSoundDuration
	thud := tone(parameter.HitSoundFreq, d, parameter.HitSoundAttack, parameter.HitSoundRelease, WaveSaw, rate)
	noise := tone(0, d, parameter.HitSoundAttack, parameter.HitSoundRelease/2, WaveNoise, rate)
	mixed := beep.Mix(
		newVolume(thud, 1-parameter.HitNoiseMix),
		newVolume(noise, parameter.HitNoiseMix),
	)
	return newVolume(mixed, cfg.Gain(SoundHit))
}

// CreateCollectSound is a two-note chime
func CreateCollectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	n1 := tone(parameter.CollectNote1Freq, parameter.CollectNote1Duration, parameter.CollectSoundAttack, parameter.CollectNote1Release, WaveSquare, rate)
	n2 := tone(parameter.CollectNote2Freq, parameter.CollectNote2Duration, parameter.CollectSoundAttack, parameter.CollectNote2Release, WaveSquare, rate)
	return newVolume(beep.Seq(n1, n2), cfg.Gain(SoundCollect))
}

// CreateComboSound is a blip whose pitch rises with the combo count
func CreateComboSound(cfg *AudioConfig, count int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := math.Min(parameter.ComboBaseFreq*(1+parameter.ComboFreqStep*float64(count)), parameter.ComboMaxFreq)
	s := tone(freq, parameter.ComboSoundDuration, parameter.ComboSoundAttack, parameter.ComboSoundRelease, WaveSine, rate)
	return newVolume(s, cfg.Gain(SoundCombo))
}

// CreateArpeggio plays LevelUpNotes in sequence
func CreateArpeggio(cfg *AudioConfig, st SoundType) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := make([]beep.Streamer, 0, len(parameter.LevelUpNotes))
	for _, f := range parameter.LevelUpNotes {
		notes = append(notes, tone(f, parameter.LevelUpNoteDuration, parameter.LevelUpSoundAttack, parameter.LevelUpSoundRelease, WaveSquare, rate))
	}
	return newVolume(beep.Seq(notes...), cfg.Gain(st))
}

// CreateGameOverSound is a long descending saw
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	sweep := NewSweep(parameter.GameOverStartFreq, parameter.GameOverEndFreq, parameter.GameOverSoundDuration, WaveSaw, rate)
	s := NewEnvelope(sweep, parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)
	return newVolume(s, cfg.Gain(SoundGameOver))
}

// GetSoundEffect returns a fresh streamer for the sound type
// arg is the combo count for SoundCombo and ignored otherwise
func GetSoundEffect(st SoundType, cfg *AudioConfig, arg int) beep.Streamer {
	switch st {
	case SoundCountdown:
		return CreateCountdownSound(cfg, false)
	case SoundGo:
		return CreateCountdownSound(cfg, true)
	case SoundDisappear:
		return CreateDisappearSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundCollect:
		return CreateCollectSound(cfg)
	case SoundCombo:
		return CreateComboSound(cfg, arg)
	case SoundLevelUp, SoundPositioned:
		return CreateArpeggio(cfg, st)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
