package parameter

// Terminal Palette
const (
	BackgroundColor   = "#1A1B26"
	OutlineColor      = "#7AA2F7"
	OutlineReadyColor = "#9ECE6A"
	SkeletonColor     = "#C0CAF5"
	HandColor         = "#BB9AF7"
	HUDColor          = "#C0CAF5"
	HUDWarnColor      = "#F7768E"
	OverlayColor      = "#E0AF68"
)

// Terminal Glyphs
const (
	TargetGlyph     = '█'
	TargetEdgeGlyph = '▓'
	ShockwaveGlyph  = '·'
	ParticleGlyph   = '*'
	JointGlyph      = '●'
	BoneGlyph       = '░'
	HandGlyph       = '•'
	OutlineHGlyph   = '─'
	OutlineVGlyph   = '│'
	LifeGlyph       = '♥'
)

// Terminal Layout
const (
	// TargetEdgeBand is the fraction of the radius drawn with the edge glyph
	TargetEdgeBand = 0.2

	// ShockwaveBand is the ring thickness in surface pixels
	ShockwaveBand = 6.0

	// MinTerminalCols and MinTerminalRows are the smallest playable screen
	MinTerminalCols = 40
	MinTerminalRows = 15
)
