package parameter

// Effect Pool Capacities
const (
	ParticlePoolCap  = 100
	ShockwavePoolCap = 10
	PopupPoolCap     = 20
)

// Particle Motion
const (
	ParticleMinSpeed  = 50.0
	ParticleMaxSpeed  = 150.0
	ParticleMinRadius = 2.0
	ParticleMaxRadius = 6.0
	ParticleMinLife   = 0.5
	ParticleMaxLife   = 1.0
	// ParticleDrag multiplies velocity once per update
	ParticleDrag = 0.92
	// ParticleShrink multiplies radius once per update
	ParticleShrink = 0.98
	// ParticleMinVisibleRadius retires particles that shrank out of sight
	ParticleMinVisibleRadius = 0.5
)

// Shockwave
const (
	ShockwaveStartRadius = 10.0
	ShockwaveGrowthRate  = 300.0
)

// Score Popup
const (
	PopupLife      = 1.0
	PopupRiseSpeed = 50.0
	PopupScaleRate = 5.0
)

// Effect Presets
const (
	StateChangeWaveFactor = 3.0
	StateChangeParticles  = 15
	SuccessWaveFactor     = 5.0
	SuccessParticles      = 30
	CollisionWaveFactor   = 4.0
	CollisionParticles    = 40
	ComboWaveRadius       = 200.0
	ComboParticles        = 25
	LevelUpWaveRadius     = 500.0
	LevelUpBursts         = 5
	LevelUpBurstRadius    = 100.0
	LevelUpBurstParticles = 20
	DefaultBurstParticles = 20
)

// Effect Colors
const (
	CollisionColor    = "#FF0000"
	LevelUpColor      = "#9370DB"
	ComboColorBase    = "#FFFFFF"
	ComboColorTier1   = "#4169E1"
	ComboColorTier2   = "#9370DB"
	ComboColorTier3   = "#FFD700"
	ComboColorTier4   = "#FF4500"
	ComboColorTier5   = "#FF00FF"
	SuccessColorBonus = "#6C7CEA"
)
