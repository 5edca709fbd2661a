package game

import (
	"math/rand"
	"sort"

	"cluedo-toolbox/internal/cards"
)

// Chooser picks which of several matching cards a disprover reveals.
// This allows us to swap out random and deterministic selection strategies.
type Chooser interface {
	Choose(options []cards.Card) cards.Card
}

// --- Implementations ---

// RandomChooser implements the Chooser interface by picking an element randomly.
type RandomChooser struct {
	rand *rand.Rand
}

// NewRandomChooser creates a new random chooser.
func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(options []cards.Card) cards.Card {
	if len(options) == 0 {
		return cards.Card{}
	}
	return options[r.rand.Intn(len(options))]
}

// DeterministicChooser always picks the alphabetically first key.
// This is used for predictable testing.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Choose(options []cards.Card) cards.Card {
	if len(options) == 0 {
		return cards.Card{}
	}
	sorted := make([]cards.Card, len(options))
	copy(sorted, options)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	return sorted[0]
}
