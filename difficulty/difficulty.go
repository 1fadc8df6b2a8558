// Package difficulty resolves preset and custom tuning tuples and their
// progressive tightening
package difficulty

import (
	"math"
	"strings"

	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/target"
)

// Preset names a difficulty tier
type Preset string

const (
	Easy        Preset = "easy"
	Medium      Preset = "medium"
	Hard        Preset = "hard"
	Progressive Preset = "progressive"
	Custom      Preset = "custom"
)

// Config is an immutable tuning tuple
type Config struct {
	SpawnInterval float64 // Seconds between spawns
	InitialRadius float64 // Pixels
	GrowthFactor  float64 // Max radius = InitialRadius * GrowthFactor
	WarningTime   float64 // Seconds before a target turns active
	BonusChance   float64 // Probability a spawn is a Reward
}

var presets = map[Preset]Config{
	Easy:        {SpawnInterval: 3.0, InitialRadius: 15, GrowthFactor: 4.0, WarningTime: 4.0, BonusChance: 0.4},
	Medium:      {SpawnInterval: 3.0, InitialRadius: 20, GrowthFactor: 5.0, WarningTime: 3.0, BonusChance: 0.3},
	Hard:        {SpawnInterval: 1.0, InitialRadius: 40, GrowthFactor: 6.0, WarningTime: 2.0, BonusChance: 0.2},
	Progressive: {SpawnInterval: 3.0, InitialRadius: 20, GrowthFactor: 6.0, WarningTime: 3.0, BonusChance: 0.3},
	Custom:      {SpawnInterval: 5.0, InitialRadius: 20, GrowthFactor: 6.0, WarningTime: 3.0, BonusChance: parameter.CustomBonusChance},
}

// ParsePreset maps a name to a Preset, falling back to Medium
func ParsePreset(name string) Preset {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presets[p]; ok {
		return p
	}
	return Medium
}

// Presets lists tier names in menu order
func Presets() []Preset {
	return []Preset{Easy, Medium, Hard, Progressive, Custom}
}

// Settings is the user-facing selection a match starts from
type Settings struct {
	Preset              Preset
	Custom              CustomValues
	ProgressiveIncrease bool // Level up over time even outside the Progressive tier
}

// CustomValues are raw slider inputs, validated by Resolve
type CustomValues struct {
	SpawnInterval float64
	InitialRadius float64
	GrowthFactor  float64
	WarningTime   float64
}

// Resolve returns the starting tuple for s
// Custom values outside their slider range fall back to the custom defaults
func (s Settings) Resolve() Config {
	cfg, ok := presets[s.Preset]
	if !ok {
		return presets[Medium]
	}
	if s.Preset != Custom {
		return cfg
	}

	def := presets[Custom]
	return Config{
		SpawnInterval: inRange(s.Custom.SpawnInterval, parameter.CustomSpawnMin, parameter.CustomSpawnMax, def.SpawnInterval),
		InitialRadius: inRange(s.Custom.InitialRadius, parameter.CustomRadiusMin, parameter.CustomRadiusMax, def.InitialRadius),
		GrowthFactor:  inRange(s.Custom.GrowthFactor, parameter.CustomGrowthMin, parameter.CustomGrowthMax, def.GrowthFactor),
		WarningTime:   inRange(s.Custom.WarningTime, parameter.CustomWarningMin, parameter.CustomWarningMax, def.WarningTime),
		BonusChance:   def.BonusChance,
	}
}

// IsProgressive reports whether the match tightens over time
func (s Settings) IsProgressive() bool {
	return s.Preset == Progressive || s.ProgressiveIncrease
}

func inRange(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) || v < lo || v > hi {
		return fallback
	}
	return v
}

// LevelUp returns the next tighter tuple
// Spawn interval and warning time shrink to their floors, growth keeps rising
func (c Config) LevelUp() Config {
	next := c
	next.SpawnInterval = math.Max(parameter.LevelSpawnFloor, c.SpawnInterval-parameter.LevelSpawnStep)
	next.WarningTime = math.Max(parameter.LevelWarnFloor, c.WarningTime-parameter.LevelWarnStep)
	next.GrowthFactor = c.GrowthFactor + parameter.LevelGrowthStep
	return next
}

// Target extracts the per-target part of the tuple
func (c Config) Target() target.Config {
	return target.Config{
		InitialRadius: c.InitialRadius,
		GrowthFactor:  c.GrowthFactor,
		WarningTime:   c.WarningTime,
	}
}
