package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/axododge/event"
)

// Player turns match events into sounds
// It implements event.Handler for dispatch and service.Service for lifecycle
type Player struct {
	sm       *SoundManager
	cfg      *AudioConfig
	disabled atomic.Bool
}

// NewPlayer creates a player reading AXODODGE_* audio settings
func NewPlayer() *Player {
	return &Player{cfg: LoadAudioConfig()}
}

// NewPlayerWithConfig creates a player for an explicit config
func NewPlayerWithConfig(cfg *AudioConfig) *Player {
	return &Player{cfg: cfg}
}

// Name implements service.Service
func (p *Player) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (p *Player) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool - muted at startup
func (p *Player) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok && muted {
			p.cfg.Enabled = false
		}
	}
	p.sm = NewSoundManager(p.cfg)
	return nil
}

// Start implements service.Service
// A missing audio device disables the player instead of failing startup
func (p *Player) Start() error {
	if p.sm == nil {
		if err := p.Init(); err != nil {
			return err
		}
	}
	if err := p.sm.Initialize(); err != nil {
		log.Printf("[Audio] disabled: %v", err)
		p.disabled.Store(true)
		return nil
	}
	log.Printf("[Audio] speaker ready at %d Hz, muted=%t", p.cfg.SampleRate, p.sm.IsMuted())
	return nil
}

// Stop implements service.Service
func (p *Player) Stop() error {
	if p.sm != nil {
		p.sm.Cleanup()
	}
	return nil
}

// SetMuted toggles output
func (p *Player) SetMuted(muted bool) {
	if p.sm != nil {
		p.sm.SetMuted(muted)
	}
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	if p.sm == nil {
		return true
	}
	muted := !p.sm.IsMuted()
	p.sm.SetMuted(muted)
	return muted
}

// Disabled reports whether the audio device failed to open
func (p *Player) Disabled() bool {
	return p.disabled.Load()
}

// HandleEvent implements event.Handler
func (p *Player) HandleEvent(ev event.GameEvent) {
	if p.sm == nil || p.disabled.Load() {
		return
	}
	if st, arg, ok := SoundFor(ev); ok {
		p.sm.Play(st, arg)
	}
}

// EventTypes implements event.Handler
func (p *Player) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCountdown,
		event.EventBallDisappear,
		event.EventBallHit,
		event.EventBonusCollect,
		event.EventCombo,
		event.EventLevelUp,
		event.EventPositioned,
		event.EventGameOver,
	}
}

// SoundFor maps an event to its sound and argument
func SoundFor(ev event.GameEvent) (SoundType, int, bool) {
	switch ev.Type {
	case event.EventCountdown:
		if p, ok := ev.Payload.(*event.CountdownPayload); ok && p.Remaining == 0 {
			return SoundGo, 0, true
		}
		return SoundCountdown, 0, true
	case event.EventBallDisappear:
		return SoundDisappear, 0, true
	case event.EventBallHit:
		return SoundHit, 0, true
	case event.EventBonusCollect:
		return SoundCollect, 0, true
	case event.EventCombo:
		count := 0
		if p, ok := ev.Payload.(*event.ComboPayload); ok {
			count = p.Count
		}
		return SoundCombo, count, true
	case event.EventLevelUp:
		return SoundLevelUp, 0, true
	case event.EventPositioned:
		return SoundPositioned, 0, true
	case event.EventGameOver:
		return SoundGameOver, 0, true
	}
	return 0, 0, false
}
