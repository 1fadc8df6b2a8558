package parameter

// Match Rules
const (
	// StartingLives is the life count at match start and the upper bound
	StartingLives = 3

	// ComboTimeout is the gap in seconds after which an idle combo resets
	ComboTimeout = 2.5

	// LevelUpInterval is seconds between progressive difficulty steps
	LevelUpInterval = 30.0

	// SpawnMargin insets the spawn rectangle from the surface edges
	SpawnMargin = 100.0

	// DodgePoints is the base award for a hazard surviving to full size
	DodgePoints = 1
	// CollectPoints is the base award for touching a reward
	CollectPoints = 1
	// HitPenalty is subtracted on a hazard hit, never combo-scaled
	HitPenalty = 2
)

// Progressive Difficulty
const (
	LevelSpawnStep    = 0.5
	LevelSpawnFloor   = 1.0
	LevelWarnStep     = 0.3
	LevelWarnFloor    = 1.0
	LevelGrowthStep   = 0.5
	CustomBonusChance = 0.3
)

// Custom Settings Ranges (inclusive)
const (
	CustomSpawnMin   = 0.5
	CustomSpawnMax   = 10.0
	CustomRadiusMin  = 5.0
	CustomRadiusMax  = 100.0
	CustomGrowthMin  = 1.5
	CustomGrowthMax  = 10.0
	CustomWarningMin = 0.5
	CustomWarningMax = 10.0
)

// Combo Multiplier Steps
// ComboThresholds and ComboMultipliers are parallel, highest threshold first
var (
	ComboThresholds  = [...]int{20, 12, 8, 5, 3}
	ComboMultipliers = [...]float64{4.0, 3.0, 2.5, 2.0, 1.5}
)
