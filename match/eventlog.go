package match

import (
	"log"

	"github.com/lixenwraith/axododge/event"
)

// EventLogger writes one log line per match event
type EventLogger struct{}

func (EventLogger) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTargetSpawned,
		event.EventBallDisappear,
		event.EventBallHit,
		event.EventBonusCollect,
		event.EventDodge,
		event.EventBonusMissed,
		event.EventCombo,
		event.EventLevelUp,
		event.EventGameOver,
		event.EventPositioned,
		event.EventCountdown,
		event.EventMatchStarted,
		event.EventPauseChanged,
	}
}

func (EventLogger) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.TargetPayload:
		log.Printf("[Match] f=%d %s id=%d kind=%s at=(%.0f,%.0f) r=%.1f pts=%d",
			ev.Frame, ev.Type, p.ID, p.Kind, p.X, p.Y, p.Radius, p.Points)
	case *event.ComboPayload:
		log.Printf("[Match] f=%d %s count=%d x%.1f", ev.Frame, ev.Type, p.Count, p.Multiplier)
	case *event.GameOverPayload:
		log.Printf("[Match] f=%d %s %+v", ev.Frame, ev.Type, p.Summary)
	case nil:
		log.Printf("[Match] f=%d %s", ev.Frame, ev.Type)
	default:
		log.Printf("[Match] f=%d %s %+v", ev.Frame, ev.Type, p)
	}
}
