package game

import (
	"fmt"
	"math/rand"

	"cluedo-toolbox/internal/cards"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/notes"

	"github.com/sirupsen/logrus"
)

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	catalog      *cards.Catalog
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	chooser      Chooser
	numPlayers   int
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(catalog *cards.Catalog, logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		catalog:      catalog,
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
		numPlayers:   4,
	}
}

// EventManager is a public getter for the unexported field.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

func (b *GameBuilder) WithPlayers(n int) *GameBuilder {
	b.numPlayers = n
	return b
}

func (b *GameBuilder) WithChooser(c Chooser) *GameBuilder {
	b.chooser = c
	return b
}

// Build constructs the Game object and deals the cards.
func (b *GameBuilder) Build() (*Game, error) {
	if b.numPlayers < notes.MinPlayers || b.numPlayers > notes.MaxPlayers {
		return nil, fmt.Errorf("%w: %d", notes.ErrPlayerCount, b.numPlayers)
	}
	chooser := b.chooser
	if chooser == nil {
		chooser = NewRandomChooser(rand.New(rand.NewSource(b.rand.Int63())))
	}

	game := &Game{
		Catalog:      b.catalog,
		EventManager: b.eventManager,
		Solution:     make(map[cards.Category]cards.Card),
		log:          b.log,
		rand:         b.rand,
		chooser:      chooser,
	}
	for _, p := range notes.Seats(b.numPlayers) {
		game.Seats = append(game.Seats, Seat{Player: p})
	}
	game.deal()
	return game, nil
}
