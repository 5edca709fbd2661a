package events

import (
	"cluedo-toolbox/internal/cards"
	"cluedo-toolbox/internal/notes"

	"github.com/google/uuid"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// Manager (or Event Bus) manages listeners and dispatches events synchronously.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Notebook events ---

// SessionStartedEvent is published whenever a fresh sheet is built.
type SessionStartedEvent struct {
	SessionID uuid.UUID
	Players   int
}

// CommandAppliedEvent is published once a rule has settled, with the state to redraw.
type CommandAppliedEvent struct {
	SessionID uuid.UUID
	Command   string
	Snapshot  notes.Snapshot
}

// CardDeducedEvent is published when a shown card is inferred rather than seen.
type CardDeducedEvent struct {
	Player notes.Player
	Card   cards.Card
}

// CaseFileSolvedEvent is published for every card placed in the case file.
type CaseFileSolvedEvent struct {
	Card     cards.Card
	Complete bool
}

// --- Simulation events ---

type TurnStartEvent struct {
	TurnNumber int
	Player     notes.Player
}

type SuggestionMadeEvent struct {
	Player notes.Player
	Trio   []cards.Card
}

type DisprovalEvent struct {
	Suggester    notes.Player
	Disprover    notes.Player
	RevealedCard cards.Card // Ground truth, for logging
}

type NoDisprovalEvent struct{}

type GameOverEvent struct {
	Turns    int
	Solution map[cards.Category]cards.Card
	Deduced  map[cards.Category]cards.Card
	Correct  bool
}
