package difficulty

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPresetsResolve(t *testing.T) {
	got := Settings{Preset: Hard}.Resolve()
	want := Config{SpawnInterval: 1.0, InitialRadius: 40, GrowthFactor: 6.0, WarningTime: 2.0, BonusChance: 0.2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Hard preset mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePresetFallsBackToMedium(t *testing.T) {
	if ParsePreset("nightmare") != Medium {
		t.Error("Expected unknown preset to resolve to medium")
	}
	if ParsePreset(" EASY ") != Easy {
		t.Error("Expected case-insensitive preset parsing")
	}
	if (Settings{Preset: "bogus"}).Resolve() != presets[Medium] {
		t.Error("Expected unknown preset in settings to resolve to medium")
	}
}

func TestCustomOverrides(t *testing.T) {
	s := Settings{
		Preset: Custom,
		Custom: CustomValues{SpawnInterval: 2, InitialRadius: 30, GrowthFactor: 3, WarningTime: 1.5},
	}
	got := s.Resolve()
	want := Config{SpawnInterval: 2, InitialRadius: 30, GrowthFactor: 3, WarningTime: 1.5, BonusChance: 0.3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Custom mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomOutOfRangeFallsBack(t *testing.T) {
	s := Settings{
		Preset: Custom,
		Custom: CustomValues{SpawnInterval: 0, InitialRadius: 500, GrowthFactor: math.NaN(), WarningTime: -1},
	}
	got := s.Resolve()
	if diff := cmp.Diff(presets[Custom], got); diff != "" {
		t.Errorf("Expected custom defaults (-want +got):\n%s", diff)
	}
}

func TestLevelUpTightens(t *testing.T) {
	c := Settings{Preset: Progressive}.Resolve()
	next := c.LevelUp()

	if next.SpawnInterval != 2.5 {
		t.Errorf("Expected spawn 2.5, got %f", next.SpawnInterval)
	}
	if math.Abs(next.WarningTime-2.7) > 1e-9 {
		t.Errorf("Expected warning 2.7, got %f", next.WarningTime)
	}
	if next.GrowthFactor != 6.5 {
		t.Errorf("Expected growth 6.5, got %f", next.GrowthFactor)
	}
	if c.SpawnInterval != 3.0 {
		t.Error("Expected original config unchanged")
	}
}

func TestLevelUpFloors(t *testing.T) {
	c := Settings{Preset: Progressive}.Resolve()
	for i := 0; i < 20; i++ {
		c = c.LevelUp()
	}
	if c.SpawnInterval != 1.0 || c.WarningTime != 1.0 {
		t.Errorf("Expected floors at 1.0, got spawn %f warning %f", c.SpawnInterval, c.WarningTime)
	}
	if c.GrowthFactor != 16 {
		t.Errorf("Expected growth 16, got %f", c.GrowthFactor)
	}
}

func TestIsProgressive(t *testing.T) {
	if !(Settings{Preset: Progressive}).IsProgressive() {
		t.Error("Expected progressive tier to level up")
	}
	if !(Settings{Preset: Easy, ProgressiveIncrease: true}).IsProgressive() {
		t.Error("Expected explicit flag to level up")
	}
	if (Settings{Preset: Hard}).IsProgressive() {
		t.Error("Expected hard tier without flag to stay fixed")
	}
}
