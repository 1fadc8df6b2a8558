package event

// EventType represents the type of game event
type EventType int

const (
	// EventTargetSpawned signals a new target entering warning
	// Trigger: Director spawn timer
	// Consumer: log | Payload: *TargetPayload
	EventTargetSpawned EventType = iota + 1

	// EventBallDisappear signals a target turning active (warning countdown ended)
	// Trigger: target.ResultActivated
	// Consumer: Emitter (transition burst), Player | Payload: *TargetPayload
	EventBallDisappear

	// EventBallHit signals the body touching an active hazard
	// Trigger: collider hit on Hazard
	// Consumer: Emitter (collision burst), Player | Payload: *TargetPayload
	EventBallHit

	// EventBonusCollect signals the body touching an active reward
	// Trigger: collider hit on Reward
	// Consumer: Emitter (success burst), Player | Payload: *TargetPayload
	EventBonusCollect

	// EventDodge signals a hazard reaching full size untouched
	// Trigger: target.ResultExpired on Hazard
	// Consumer: Emitter (success burst) | Payload: *TargetPayload
	EventDodge

	// EventBonusMissed signals a reward reaching full size untouched
	// Trigger: target.ResultExpired on Reward | Payload: *TargetPayload
	EventBonusMissed

	// EventCombo signals the combo crossing a milestone (3, 5, 8, 12, 20)
	// Consumer: Emitter (centre burst), Player | Payload: *ComboPayload
	EventCombo

	// EventLevelUp signals a progressive difficulty step
	// Consumer: Emitter (ring bursts), Player | Payload: *LevelUpPayload
	EventLevelUp

	// EventGameOver signals the last life lost
	// Emitted exactly once per match
	// Consumer: Player, cmd | Payload: *GameOverPayload
	EventGameOver

	// EventPositioned signals the player held the outline long enough
	// Consumer: Player | Payload: nil
	EventPositioned

	// EventCountdown signals one pre-match countdown step
	// Consumer: Player | Payload: *CountdownPayload
	EventCountdown

	// EventMatchStarted signals the end of the countdown
	// Consumer: log | Payload: *MatchStartedPayload
	EventMatchStarted

	// EventGameReset signals a full restart; transient state must be cleared
	// Consumer: Emitter | Payload: nil
	EventGameReset

	// EventPauseChanged signals pause toggling
	// Consumer: engine.Loop (clock pause), log | Payload: *PausePayload
	EventPauseChanged
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Director tick that produced the event
}
