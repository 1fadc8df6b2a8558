package audio

import (
	"testing"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s to be set", st)
		}
	}
}

func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("AXODODGE_AUDIO_ENABLED", "false")
	t.Setenv("AXODODGE_MASTER_VOLUME", "80")
	t.Setenv("AXODODGE_SFX_VOLUMES", `{"hit":0.25,"combo":3,"bogus":1}`)
	t.Setenv("AXODODGE_SAMPLE_RATE", "48000")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled from env")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundHit] != 0.25 {
		t.Errorf("Expected hit volume 0.25, got %f", cfg.EffectVolumes[SoundHit])
	}
	if cfg.EffectVolumes[SoundCombo] != 1 {
		t.Errorf("Expected combo volume clamped to 1, got %f", cfg.EffectVolumes[SoundCombo])
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigInvalidEnv(t *testing.T) {
	t.Setenv("AXODODGE_AUDIO_ENABLED", "maybe")
	t.Setenv("AXODODGE_MASTER_VOLUME", "250")
	t.Setenv("AXODODGE_SFX_VOLUMES", "{not json")
	t.Setenv("AXODODGE_SAMPLE_RATE", "-1")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled {
		t.Error("Expected invalid bool to keep default")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected master volume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundHit] != def.EffectVolumes[SoundHit] {
		t.Error("Expected invalid JSON to keep default volumes")
	}
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected default sample rate, got %d", cfg.SampleRate)
	}
}

func TestGain(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0.5
	cfg.EffectVolumes[SoundHit] = 0.8
	delete(cfg.EffectVolumes, SoundGo)

	if g := cfg.Gain(SoundHit); g != 0.4 {
		t.Errorf("Expected gain 0.4, got %f", g)
	}
	if g := cfg.Gain(SoundGo); g != 0.5 {
		t.Errorf("Expected missing effect gain to fall back to master, got %f", g)
	}
}

func TestSoundTypeNames(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		got, ok := ParseSoundType(st.String())
		if !ok || got != st {
			t.Errorf("Expected %s to round-trip, got %v ok=%t", st, got, ok)
		}
	}
	if _, ok := ParseSoundType("nope"); ok {
		t.Error("Expected unknown name to fail")
	}
	if SoundType(99).String() != "unknown" {
		t.Error("Expected out-of-range type to be unknown")
	}
}
