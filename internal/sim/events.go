package sim

// Event is a discrete, fire-and-forget notification raised by the simulation
// for audio/particle collaborators. Events are delivered synchronously during
// the tick or pointer call that produced them; listeners must not call back
// into the session.
type Event interface {
	simEvent()
}

// CowMooedEvent fires when a wandering cow re-rolls its heading and moos.
type CowMooedEvent struct {
	CowID int
}

func (CowMooedEvent) simEvent() {}

// SplashOccurredEvent fires when a cow falls into the ditch.
type SplashOccurredEvent struct {
	CowID int
}

func (SplashOccurredEvent) simEvent() {}

// CowRescuedEvent fires when a drowning cow is lassoed back to the field.
type CowRescuedEvent struct {
	CowID int
	Bonus int
}

func (CowRescuedEvent) simEvent() {}

// CowReachedSafetyEvent fires when a cow passes through the gate.
type CowReachedSafetyEvent struct {
	CowID int
	Bonus int
}

func (CowReachedSafetyEvent) simEvent() {}

// CowDrownedEvent fires when a drowning cow's timer expires.
type CowDrownedEvent struct {
	CowID          int
	LivesRemaining int
}

func (CowDrownedEvent) simEvent() {}

// GameOverEvent fires once, on the tick where the last life is lost.
type GameOverEvent struct {
	FinalScore int
}

func (GameOverEvent) simEvent() {}

// EventListener receives simulation events. A nil listener is valid and
// discards everything.
type EventListener func(Event)
