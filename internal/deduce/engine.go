package deduce

import (
	"cluedo-toolbox/internal/cards"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/notes"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Engine owns the current sheet and applies the deduction rules to it. It is
// not safe for concurrent use; one command runs to completion before the next.
type Engine struct {
	catalog      *cards.Catalog
	sheet        *notes.Sheet
	eventManager *events.Manager
	logger       logrus.FieldLogger
	log          logrus.FieldLogger
	session      uuid.UUID
}

// NewEngine builds an engine with a fresh sheet for numPlayers.
func NewEngine(catalog *cards.Catalog, numPlayers int, logger logrus.FieldLogger, eventManager *events.Manager) (*Engine, error) {
	if eventManager == nil {
		eventManager = events.NewManager()
	}
	e := &Engine{
		catalog:      catalog,
		eventManager: eventManager,
		logger:       logger,
	}
	if err := e.rebuild(numPlayers); err != nil {
		return nil, err
	}
	return e, nil
}

// EventManager is a public getter for the unexported field.
func (e *Engine) EventManager() *events.Manager { return e.eventManager }

// Sheet exposes the current sheet for read-side queries.
func (e *Engine) Sheet() *notes.Sheet { return e.sheet }

// Catalog returns the card universe.
func (e *Engine) Catalog() *cards.Catalog { return e.catalog }

// SessionID identifies the current sheet; it changes on every rebuild.
func (e *Engine) SessionID() uuid.UUID { return e.session }

// Snapshot is the state a presenter redraws after each command.
func (e *Engine) Snapshot() notes.Snapshot { return e.sheet.Snapshot() }

// LookupCard resolves a card token.
func (e *Engine) LookupCard(token string) (cards.Card, error) { return e.catalog.Lookup(token) }

// LookupPlayer resolves a seat token against the current table size.
func (e *Engine) LookupPlayer(token string) (notes.Player, error) { return e.sheet.ParsePlayer(token) }

// Reset discards everything learned and starts a new sheet at the same table size.
func (e *Engine) Reset() {
	// The current size already passed validation, so rebuild cannot fail here.
	_ = e.rebuild(e.sheet.NumPlayers())
}

// SetPlayerCount rebuilds the sheet for n players. Prior knowledge is discarded.
func (e *Engine) SetPlayerCount(n int) error {
	return e.rebuild(n)
}

func (e *Engine) rebuild(n int) error {
	session := uuid.New()
	log := e.logger.WithField("session", session.String()[:8])
	sheet, err := notes.NewSheet(e.catalog, n, log)
	if err != nil {
		return err
	}
	e.session, e.log, e.sheet = session, log, sheet
	e.log.Debugf("New sheet for %d players.", n)
	e.eventManager.Publish(events.SessionStartedEvent{SessionID: session, Players: n})
	return nil
}

// finish settles the sheet after a rule: fills the case file by elimination
// and publishes the resulting state.
func (e *Engine) finish(command string) {
	for _, card := range e.sheet.AutoDeduceCase() {
		e.publishSolved(card)
	}
	e.eventManager.Publish(events.CommandAppliedEvent{
		SessionID: e.session,
		Command:   command,
		Snapshot:  e.sheet.Snapshot(),
	})
}

func (e *Engine) setCase(card cards.Card) {
	if e.sheet.SetCase(card) {
		e.publishSolved(card)
	}
}

func (e *Engine) publishSolved(card cards.Card) {
	e.eventManager.Publish(events.CaseFileSolvedEvent{Card: card, Complete: e.sheet.Complete()})
}
