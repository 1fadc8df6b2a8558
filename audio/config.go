package audio

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/axododge/parameter"
)

// AudioConfig holds output and per-effect gain settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio with per-effect gains
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioDefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundCountdown:  0.8,
			SoundGo:         0.8,
			SoundDisappear:  0.6,
			SoundHit:        0.8,
			SoundCollect:    0.7,
			SoundCombo:      0.7,
			SoundLevelUp:    0.8,
			SoundPositioned: 0.8,
			SoundGameOver:   0.8,
		},
	}
}

// LoadAudioConfig applies AXODODGE_* environment overrides to the defaults
//
//	AXODODGE_AUDIO_ENABLED  bool
//	AXODODGE_MASTER_VOLUME  0-100
//	AXODODGE_SFX_VOLUMES    JSON object of sound name to gain, e.g. {"hit":0.5}
//	AXODODGE_SAMPLE_RATE    Hz
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("AXODODGE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("AXODODGE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv("AXODODGE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err != nil {
			log.Printf("[Audio] ignoring AXODODGE_SFX_VOLUMES: %v", err)
		}
		for name, v := range volumes {
			if st, ok := ParseSoundType(name); ok {
				cfg.EffectVolumes[st] = clampVolume(v)
			}
		}
	}

	if sampleRate := os.Getenv("AXODODGE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// Gain returns the effective gain for a sound type
func (c *AudioConfig) Gain(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
