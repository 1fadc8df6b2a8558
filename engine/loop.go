package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/axododge/event"
	"github.com/lixenwraith/axododge/parameter"
	"github.com/lixenwraith/axododge/status"
)

// Simulation advances match logic by dt seconds
type Simulation interface {
	Tick(dt float64)
}

// Animator advances presentation state that follows match events
type Animator interface {
	Update(dt float64)
}

// LoopConfig wires the collaborators of a Loop
type LoopConfig struct {
	Clock      *PausableClock
	Simulation Simulation
	Router     *event.Router
	Animators  []Animator
	Draw       func()
	Interval   time.Duration // Frame interval, FrameUpdateInterval when zero
	Status     *status.Registry
}

// Loop runs one frame per interval: commands, simulation, event dispatch, animation, draw
// All collaborator calls happen on the goroutine running Step or Run
type Loop struct {
	clock     *PausableClock
	sim       Simulation
	router    *event.Router
	animators []Animator
	draw      func()
	interval  time.Duration

	last     time.Duration // Clock elapsed at the previous step
	commands chan func()
	running  atomic.Bool

	statFrames *atomic.Int64
	statEvents *atomic.Int64
	statDrops  *atomic.Int64
}

// NewLoop creates a loop and registers it for pause events on the router
func NewLoop(cfg LoopConfig) *Loop {
	if cfg.Clock == nil {
		cfg.Clock = NewPausableClock(nil)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = parameter.FrameUpdateInterval
	}
	reg := cfg.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	l := &Loop{
		clock:      cfg.Clock,
		sim:        cfg.Simulation,
		router:     cfg.Router,
		animators:  cfg.Animators,
		draw:       cfg.Draw,
		interval:   cfg.Interval,
		last:       cfg.Clock.Elapsed(),
		commands:   make(chan func(), parameter.LoopCommandBuffer),
		statFrames: reg.Ints.Get("engine.frames"),
		statEvents: reg.Ints.Get("engine.events"),
		statDrops:  reg.Ints.Get("engine.commands_dropped"),
	}
	if l.router != nil {
		l.router.Register(l)
	}
	return l
}

// Post schedules fn to run at the start of the next frame
// Safe from any goroutine; returns false when the command buffer is full
func (l *Loop) Post(fn func()) bool {
	select {
	case l.commands <- fn:
		return true
	default:
		l.statDrops.Add(1)
		return false
	}
}

// Step runs a single frame against the clock's current time and returns dt in seconds
func (l *Loop) Step() float64 {
	l.drainCommands()

	now := l.clock.Elapsed()
	dt := (now - l.last).Seconds()
	l.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	if l.sim != nil {
		l.sim.Tick(dt)
	}
	if l.router != nil {
		l.statEvents.Add(int64(l.router.DispatchAll()))
	}
	for _, a := range l.animators {
		a.Update(dt)
	}
	if l.draw != nil {
		l.draw()
	}
	l.statFrames.Add(1)
	return dt
}

// Run steps the loop every interval until ctx is done
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		log.Printf("[Loop] already running")
		return nil
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.last = l.clock.Elapsed()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Step()
		}
	}
}

// Frames returns the number of completed steps
func (l *Loop) Frames() int64 {
	return l.statFrames.Load()
}

func (l *Loop) drainCommands() {
	for {
		select {
		case fn := <-l.commands:
			fn()
		default:
			return
		}
	}
}

// HandleEvent freezes the clock while the match is paused and zeroes it on reset
func (l *Loop) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		l.clock.Reset()
		l.last = 0
	case event.EventPauseChanged:
		p, ok := ev.Payload.(*event.PausePayload)
		if !ok {
			return
		}
		if p.Paused {
			l.clock.Pause()
		} else {
			l.clock.Resume()
		}
	}
}

// EventTypes implements event.Handler
func (l *Loop) EventTypes() []event.EventType {
	return []event.EventType{event.EventPauseChanged, event.EventGameReset}
}
