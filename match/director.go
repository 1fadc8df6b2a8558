// Package match runs the authoritative game loop: spawning, resolution of
// targets against the body, scoring, combo, lives and difficulty progression
package match

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/axododge/collider"
	"github.com/lixenwraith/axododge/difficulty"
	"github.com/lixenwraith/axododge/event"
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/pose"
	"github.com/lixenwraith/axododge/status"
	"github.com/lixenwraith/axododge/target"
	"github.com/lixenwraith/axododge/vmath"
)

// Collider answers whether a target disc touches the body this tick
type Collider interface {
	Collides(p collider.Probe) bool
}

// SkeletonSource provides the latest tracked skeleton without blocking
// Implemented by pose.Tracker
type SkeletonSource interface {
	Snapshot() *pose.Skeleton
}

// Options configure a Director
type Options struct {
	Width, Height   float64
	Settings        difficulty.Settings
	ZenMode         bool
	SkipPositioning bool // Start counting down without the outline check
	SkipCountdown   bool // Start running immediately after positioning
	Outline         pose.Outline
	Seed            uint64
}

// Deps are the collaborators a Director is wired to
type Deps struct {
	Queue  *event.EventQueue // Required
	Status *status.Registry  // Optional, a private registry is created when nil
	Source SkeletonSource    // Optional, no source means no collisions and no positioning
	// Collider overrides the body built from Source each tick
	Collider Collider
}

// Director owns one match at a time
// All methods must be called from the simulation goroutine
type Director struct {
	opts  Options
	queue *event.EventQueue
	src   SkeletonSource
	coll  Collider
	rng   *vmath.FastRand

	matchID string
	phase   Phase
	paused  bool
	state   State
	cfg     difficulty.Config
	frame   int64

	targets []*target.Target
	spare   []*target.Target
	nextID  uint64

	spawnTimer     float64
	levelTimer     float64
	lastComboTime  float64
	holdTime       float64
	countdownLeft  float64
	countdownShown int

	statScore   *atomic.Int64
	statLives   *atomic.Int64
	statCombo   *atomic.Int64
	statLevel   *atomic.Int64
	statTargets *atomic.Int64
	statMatches *atomic.Int64
	statTime    *status.AtomicFloat
	statPhase   *status.AtomicString
}

// New creates an idle director; call Start to begin a match
func New(opts Options, deps Deps) *Director {
	if opts.Width <= 0 {
		opts.Width = parameter.DefaultSurfaceWidth
	}
	if opts.Height <= 0 {
		opts.Height = parameter.DefaultSurfaceHeight
	}
	if opts.Outline == (pose.Outline{}) {
		opts.Outline = pose.DefaultOutline
	}
	if opts.Settings.Preset == "" {
		opts.Settings.Preset = difficulty.Medium
	}

	reg := deps.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	d := &Director{
		opts:  opts,
		queue: deps.Queue,
		src:   deps.Source,
		coll:  deps.Collider,
		rng:   vmath.NewFastRand(opts.Seed),
		state: newState(opts.ZenMode),
		cfg:   opts.Settings.Resolve(),

		statScore:   reg.Ints.Get("match.score"),
		statLives:   reg.Ints.Get("match.lives"),
		statCombo:   reg.Ints.Get("match.combo"),
		statLevel:   reg.Ints.Get("match.level"),
		statTargets: reg.Ints.Get("match.targets"),
		statMatches: reg.Ints.Get("match.started"),
		statTime:    reg.Floats.Get("match.time"),
		statPhase:   reg.Strings.Get("match.phase"),
	}
	d.publishStatus()
	return d
}

// --- Lifecycle ---

// Start resets all match state and begins a new match
// Settings changed since the last match take effect here
func (d *Director) Start() {
	d.emit(event.EventGameReset, nil)

	d.matchID = uuid.NewString()
	d.state = newState(d.opts.ZenMode)
	d.cfg = d.opts.Settings.Resolve()
	d.paused = false
	d.frame = 0

	d.spare = append(d.spare, d.targets...)
	d.targets = d.targets[:0]

	d.spawnTimer = 0
	d.levelTimer = 0
	d.lastComboTime = 0
	d.holdTime = 0
	d.statMatches.Add(1)

	switch {
	case !d.opts.SkipPositioning && d.src != nil:
		d.phase = PhasePositioning
	case !d.opts.SkipCountdown:
		d.enterCountdown()
	default:
		d.enterRunning()
	}

	log.Printf("[Director] match %s starting: difficulty=%s zen=%t phase=%s",
		d.matchID, d.opts.Settings.Preset, d.state.ZenMode, d.phase)
	d.publishStatus()
}

// Restart is Start; provided for callers leaving the game-over screen
func (d *Director) Restart() {
	d.Start()
}

// Pause freezes the simulation; ignored once the match is over
func (d *Director) Pause() {
	if d.paused || d.phase == PhaseIdle || d.phase == PhaseGameOver {
		return
	}
	d.paused = true
	d.emit(event.EventPauseChanged, &event.PausePayload{Paused: true})
}

// Resume continues a paused simulation
func (d *Director) Resume() {
	if !d.paused {
		return
	}
	d.paused = false
	d.emit(event.EventPauseChanged, &event.PausePayload{Paused: false})
}

// TogglePause flips the pause state, returning the new value
func (d *Director) TogglePause() bool {
	if d.paused {
		d.Resume()
	} else {
		d.Pause()
	}
	return d.paused
}

// --- Settings (applied on next Start) ---

// SetDifficulty selects a preset tier
func (d *Director) SetDifficulty(p difficulty.Preset) {
	d.opts.Settings.Preset = difficulty.ParsePreset(string(p))
}

// ApplyCustom switches to the custom tier with the given values
// Out-of-range values fall back to defaults when the match starts
func (d *Director) ApplyCustom(v difficulty.CustomValues, progressive bool) {
	d.opts.Settings.Preset = difficulty.Custom
	d.opts.Settings.Custom = v
	d.opts.Settings.ProgressiveIncrease = progressive
}

// SetZenMode toggles life loss on hits
func (d *Director) SetZenMode(zen bool) {
	d.opts.ZenMode = zen
}

// --- Tick ---

// Tick advances the match by dt seconds, clamped to MaxTickDelta
func (d *Director) Tick(dt float64) {
	if d.paused || d.phase == PhaseIdle || d.phase == PhaseGameOver {
		return
	}
	dt = vmath.Clamp(dt, 0, parameter.MaxTickDelta)
	d.frame++

	switch d.phase {
	case PhasePositioning:
		d.tickPositioning(dt)
	case PhaseCountdown:
		d.tickCountdown(dt)
	case PhaseRunning:
		d.tickRunning(dt)
	}
	d.publishStatus()
}

func (d *Director) tickPositioning(dt float64) {
	if !pose.InOutline(d.src.Snapshot(), d.opts.Outline) {
		d.holdTime = 0
		return
	}
	d.holdTime += dt
	if d.holdTime >= parameter.PositioningHoldSeconds-parameter.TimeEpsilon {
		d.emit(event.EventPositioned, nil)
		if d.opts.SkipCountdown {
			d.enterRunning()
		} else {
			d.enterCountdown()
		}
	}
}

func (d *Director) enterCountdown() {
	d.phase = PhaseCountdown
	d.countdownLeft = parameter.CountdownSeconds
	d.countdownShown = parameter.CountdownSeconds
	d.emit(event.EventCountdown, &event.CountdownPayload{Remaining: d.countdownShown})
}

func (d *Director) tickCountdown(dt float64) {
	d.countdownLeft -= dt
	if d.countdownLeft <= parameter.TimeEpsilon {
		d.emit(event.EventCountdown, &event.CountdownPayload{Remaining: 0})
		d.enterRunning()
		return
	}
	if n := int(math.Ceil(d.countdownLeft - parameter.TimeEpsilon)); n < d.countdownShown {
		d.countdownShown = n
		d.emit(event.EventCountdown, &event.CountdownPayload{Remaining: n})
	}
}

func (d *Director) enterRunning() {
	d.phase = PhaseRunning
	d.emit(event.EventMatchStarted, &event.MatchStartedPayload{
		MatchID:    d.matchID,
		Difficulty: string(d.opts.Settings.Preset),
	})
}

func (d *Director) tickRunning(dt float64) {
	d.state.GameTime += dt

	if d.opts.Settings.IsProgressive() {
		d.levelTimer += dt
		if d.levelTimer >= parameter.LevelUpInterval-parameter.TimeEpsilon {
			d.levelTimer = 0
			d.levelUp()
		}
	}

	if d.state.Combo > 0 && d.state.GameTime-d.lastComboTime > parameter.ComboTimeout {
		d.resetCombo()
	}

	d.spawnTimer -= dt
	if d.spawnTimer <= parameter.TimeEpsilon {
		d.spawn()
		d.spawnTimer = d.cfg.SpawnInterval
	}

	d.updateTargets(dt)
}

func (d *Director) levelUp() {
	d.state.Level++
	d.cfg = d.cfg.LevelUp()
	d.emit(event.EventLevelUp, &event.LevelUpPayload{
		Level:         d.state.Level,
		SpawnInterval: d.cfg.SpawnInterval,
		WarningTime:   d.cfg.WarningTime,
		GrowthFactor:  d.cfg.GrowthFactor,
	})
	log.Printf("[Director] level %d: spawn=%.2fs warning=%.2fs growth=%.1f",
		d.state.Level, d.cfg.SpawnInterval, d.cfg.WarningTime, d.cfg.GrowthFactor)
}

// --- Targets ---

func (d *Director) spawn() {
	mx := math.Min(parameter.SpawnMargin, d.opts.Width/2)
	my := math.Min(parameter.SpawnMargin, d.opts.Height/2)
	pos := vmath.V(
		d.rng.Range(mx, d.opts.Width-mx),
		d.rng.Range(my, d.opts.Height-my),
	)

	kind := target.Hazard
	if d.rng.Float64() < d.cfg.BonusChance {
		kind = target.Reward
	}
	d.spawnAt(kind, pos)
}

func (d *Director) spawnAt(kind target.Kind, pos vmath.Vec) *target.Target {
	d.nextID++
	var t *target.Target
	if n := len(d.spare); n > 0 {
		t = d.spare[n-1]
		d.spare = d.spare[:n-1]
		t.Reset(d.nextID, kind, pos, d.cfg.Target())
	} else {
		t = target.New(d.nextID, kind, pos, d.cfg.Target())
	}
	d.targets = append(d.targets, t)
	d.emit(event.EventTargetSpawned, payloadFor(t, 0))
	return t
}

// updateTargets advances each target and reacts to its result
// Processing stops at game over; remaining targets freeze in place
func (d *Director) updateTargets(dt float64) {
	body := d.collider()

	for i := 0; i < len(d.targets); {
		t := d.targets[i]

		switch t.Update(dt) {
		case target.ResultActivated:
			d.emit(event.EventBallDisappear, payloadFor(t, 0))

		case target.ResultExpired:
			if t.Kind == target.Hazard {
				d.onDodge(t)
			} else {
				d.onBonusMissed(t)
			}

		case target.ResultRemove:
			d.removeTarget(i)
			continue

		case target.ResultNone:
			if t.State == target.Active && !t.Resolved() && body != nil && body.Collides(t.Probe()) {
				d.onHit(t)
			}
		}

		if d.phase == PhaseGameOver {
			return
		}
		i++
	}
}

func (d *Director) collider() Collider {
	if d.coll != nil {
		return d.coll
	}
	if d.src == nil {
		return nil
	}
	return collider.NewBody(d.src.Snapshot(), d.opts.Width, d.opts.Height)
}

func (d *Director) removeTarget(i int) {
	last := len(d.targets) - 1
	d.spare = append(d.spare, d.targets[i])
	d.targets[i] = d.targets[last]
	d.targets[last] = nil
	d.targets = d.targets[:last]
}

// --- Resolution ---

func (d *Director) onDodge(t *target.Target) {
	pts := d.addScore(parameter.DodgePoints)
	d.incrementCombo()
	d.state.Stats.Dodges++
	d.emit(event.EventDodge, payloadFor(t, pts))
}

func (d *Director) onBonusMissed(t *target.Target) {
	d.state.Stats.BonusMissed++
	d.emit(event.EventBonusMissed, payloadFor(t, 0))
}

func (d *Director) onHit(t *target.Target) {
	if !t.Finish(target.OutcomeCollided) {
		return
	}

	if t.Kind == target.Reward {
		pts := d.addScore(parameter.CollectPoints)
		d.incrementCombo()
		d.state.Stats.BonusCollected++
		d.emit(event.EventBonusCollect, payloadFor(t, pts))
		return
	}

	d.addScore(-parameter.HitPenalty)
	d.emit(event.EventBallHit, payloadFor(t, -parameter.HitPenalty))
	if !d.state.ZenMode {
		d.state.Lives = max(0, d.state.Lives-1)
	}
	d.resetCombo()
	d.state.Stats.Hits++

	if d.state.Lives <= 0 {
		d.gameOver()
	}
}

// addScore applies a score delta and returns the change actually credited
// Awards are combo-scaled and rounded; penalties are not. Score floors at 0
func (d *Director) addScore(points int) int {
	if points > 0 {
		points = scaledPoints(points, d.state.Multiplier)
	}
	d.state.Score = max(0, d.state.Score+points)
	return points
}

func (d *Director) incrementCombo() {
	d.state.Combo++
	d.state.Multiplier = MultiplierFor(d.state.Combo)
	d.lastComboTime = d.state.GameTime
	d.state.MaxCombo = max(d.state.MaxCombo, d.state.Combo)

	if IsComboMilestone(d.state.Combo) {
		d.emit(event.EventCombo, &event.ComboPayload{
			Count:      d.state.Combo,
			Multiplier: d.state.Multiplier,
		})
	}
}

func (d *Director) resetCombo() {
	d.state.Combo = 0
	d.state.Multiplier = 1
}

func (d *Director) gameOver() {
	if d.phase == PhaseGameOver {
		return
	}
	d.phase = PhaseGameOver
	sum := d.Summary()
	d.emit(event.EventGameOver, &event.GameOverPayload{Summary: sum})
	log.Printf("[Director] match %s over: score=%d time=%.1fs dodges=%d maxCombo=%d",
		sum.MatchID, sum.Score, sum.Time, sum.Dodges, sum.MaxCombo)
}

// --- Plumbing ---

func (d *Director) emit(t event.EventType, payload any) {
	if d.queue == nil {
		return
	}
	d.queue.Emit(t, payload, d.frame)
}

func payloadFor(t *target.Target, points int) *event.TargetPayload {
	return &event.TargetPayload{
		ID:     t.ID,
		Kind:   t.Kind,
		X:      t.Pos.X,
		Y:      t.Pos.Y,
		Radius: t.Radius,
		Points: points,
	}
}

func (d *Director) publishStatus() {
	d.statScore.Store(int64(d.state.Score))
	d.statLives.Store(int64(d.state.Lives))
	d.statCombo.Store(int64(d.state.Combo))
	d.statLevel.Store(int64(d.state.Level))
	d.statTargets.Store(int64(len(d.targets)))
	d.statTime.Set(d.state.GameTime)
	d.statPhase.Store(d.phase.String())
}
