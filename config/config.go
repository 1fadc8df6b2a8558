// Package config loads game settings from a TOML file with AXODODGE_*
// environment overrides
package config

import (
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/axododge/audio"
	"github.com/lixenwraith/axododge/difficulty"
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/pose"
)

// Config is the full user-facing configuration
type Config struct {
	Game    GameConfig    `toml:"game"`
	Surface SurfaceConfig `toml:"surface"`
	Outline OutlineConfig `toml:"outline"`
	Audio   AudioConfig   `toml:"audio"`
	Feed    FeedConfig    `toml:"feed"`
	Log     LogConfig     `toml:"log"`
}

// GameConfig selects difficulty and match flow
type GameConfig struct {
	Difficulty      string       `toml:"difficulty"`
	ZenMode         bool         `toml:"zen_mode"`
	Progressive     bool         `toml:"progressive_increase"`
	SkipPositioning bool         `toml:"skip_positioning"`
	SkipCountdown   bool         `toml:"skip_countdown"`
	Seed            uint64       `toml:"seed"` // 0 picks a time-based seed
	Custom          CustomConfig `toml:"custom"`
}

// CustomConfig mirrors the custom-difficulty sliders
type CustomConfig struct {
	SpawnInterval float64 `toml:"spawn_interval"`
	InitialRadius float64 `toml:"initial_radius"`
	GrowthFactor  float64 `toml:"growth_factor"`
	WarningTime   float64 `toml:"warning_time"`
}

// SurfaceConfig is the logical play area in pixels
type SurfaceConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// OutlineConfig is the positioning box in normalized coordinates
type OutlineConfig struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
}

// AudioConfig overrides the audio package defaults
type AudioConfig struct {
	Enabled      bool `toml:"enabled"`
	MasterVolume int  `toml:"master_volume"` // 0-100
	SampleRate   int  `toml:"sample_rate"`
}

// FeedConfig controls the websocket pose feed
type FeedConfig struct {
	Enabled bool     `toml:"enabled"`
	Addr    string   `toml:"addr"`
	Origins []string `toml:"origins"`
}

// LogConfig controls file logging
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Difficulty: string(difficulty.Medium),
		},
		Surface: SurfaceConfig{
			Width:  parameter.DefaultSurfaceWidth,
			Height: parameter.DefaultSurfaceHeight,
		},
		Outline: OutlineConfig{
			Left:   pose.DefaultOutline.Left,
			Top:    pose.DefaultOutline.Top,
			Right:  pose.DefaultOutline.Right,
			Bottom: pose.DefaultOutline.Bottom,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: int(parameter.AudioDefaultMasterVolume * 100),
			SampleRate:   parameter.AudioSampleRate,
		},
		Feed: FeedConfig{
			Addr: "127.0.0.1:8765",
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path skips the file; a missing named file is an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "config %s", path)
		}
		for _, key := range md.Undecoded() {
			log.Printf("[Config] %s: unknown key %q ignored", path, key.String())
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults without env or validation
func Decode(text string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(text, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}

// Write encodes cfg as TOML
func (c *Config) Write(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "encode config")
}

// applyEnv overrides fields from AXODODGE_* variables
// Audio variables are read by the audio package itself
func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("AXODODGE_DIFFICULTY"); v != "" {
		c.Game.Difficulty = v
	}
	if v, ok := envBool(getenv, "AXODODGE_ZEN"); ok {
		c.Game.ZenMode = v
	}
	if v, ok := envBool(getenv, "AXODODGE_SKIP_POSITIONING"); ok {
		c.Game.SkipPositioning = v
	}
	if v := getenv("AXODODGE_FEED_ADDR"); v != "" {
		c.Feed.Addr = v
		c.Feed.Enabled = true
	}
	if v, ok := envBool(getenv, "AXODODGE_DEBUG"); ok {
		c.Log.Debug = v
	}
	if v := getenv("AXODODGE_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Game.Seed = seed
		}
	}
}

func envBool(getenv func(string) string, key string) (bool, bool) {
	v := getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[Config] %s=%q is not a bool, ignored", key, v)
		return false, false
	}
	return b, true
}

// Validate rejects settings the game cannot run with
// Custom slider values are not checked here; out-of-range values fall back at match start
func (c *Config) Validate() error {
	name := strings.ToLower(strings.TrimSpace(c.Game.Difficulty))
	known := false
	for _, p := range difficulty.Presets() {
		if string(p) == name {
			known = true
			break
		}
	}
	if !known {
		return errors.Errorf("unknown difficulty %q", c.Game.Difficulty)
	}
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return errors.Errorf("surface must be positive, got %gx%g", c.Surface.Width, c.Surface.Height)
	}
	o := c.Outline
	if o.Left < 0 || o.Top < 0 || o.Right > 1 || o.Bottom > 1 || o.Left >= o.Right || o.Top >= o.Bottom {
		return errors.Errorf("outline must be a box inside [0,1], got %+v", o)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 100 {
		return errors.Errorf("audio master_volume must be 0-100, got %d", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return errors.Errorf("audio sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Feed.Enabled && c.Feed.Addr == "" {
		return errors.New("feed enabled without addr")
	}
	return nil
}

// Settings converts the game section into difficulty settings
func (c *Config) Settings() difficulty.Settings {
	return difficulty.Settings{
		Preset: difficulty.ParsePreset(c.Game.Difficulty),
		Custom: difficulty.CustomValues{
			SpawnInterval: c.Game.Custom.SpawnInterval,
			InitialRadius: c.Game.Custom.InitialRadius,
			GrowthFactor:  c.Game.Custom.GrowthFactor,
			WarningTime:   c.Game.Custom.WarningTime,
		},
		ProgressiveIncrease: c.Game.Progressive,
	}
}

// PoseOutline returns the positioning box
func (c *Config) PoseOutline() pose.Outline {
	return pose.Outline{
		Left:   c.Outline.Left,
		Top:    c.Outline.Top,
		Right:  c.Outline.Right,
		Bottom: c.Outline.Bottom,
	}
}

// AudioSettings merges the file settings over the audio package env-derived defaults
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.LoadAudioConfig()
	if os.Getenv("AXODODGE_AUDIO_ENABLED") == "" {
		ac.Enabled = c.Audio.Enabled
	}
	if os.Getenv("AXODODGE_MASTER_VOLUME") == "" {
		ac.MasterVolume = float64(c.Audio.MasterVolume) / 100
	}
	if os.Getenv("AXODODGE_SAMPLE_RATE") == "" {
		ac.SampleRate = c.Audio.SampleRate
	}
	return ac
}
