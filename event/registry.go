package event

// eventNames are the wire and log names of each event type
// Names follow the sound and UI hooks they drive
var eventNames = [...]string{
	EventTargetSpawned: "targetSpawned",
	EventBallDisappear: "ballDisappear",
	EventBallHit:       "ballHit",
	EventBonusCollect:  "bonusCollect",
	EventDodge:         "dodge",
	EventBonusMissed:   "bonusMissed",
	EventCombo:         "combo",
	EventLevelUp:       "levelUp",
	EventGameOver:      "gameOver",
	EventPositioned:    "positioned",
	EventCountdown:     "countdown",
	EventMatchStarted:  "matchStarted",
	EventGameReset:     "gameReset",
	EventPauseChanged:  "pauseChanged",
}

var eventByName = func() map[string]EventType {
	m := make(map[string]EventType, len(eventNames))
	for et, name := range eventNames {
		if name != "" {
			m[name] = EventType(et)
		}
	}
	return m
}()

// String returns the event name, "unknown" for unregistered values
func (et EventType) String() string {
	if et > 0 && int(et) < len(eventNames) {
		return eventNames[et]
	}
	return "unknown"
}

// ParseEventType looks up an event by name
func ParseEventType(name string) (EventType, bool) {
	et, ok := eventByName[name]
	return et, ok
}

// Types lists every event type in declaration order
func Types() []EventType {
	out := make([]EventType, 0, len(eventNames)-1)
	for et := EventType(1); int(et) < len(eventNames); et++ {
		out = append(out, et)
	}
	return out
}
