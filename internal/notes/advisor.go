package notes

import (
	"fmt"
	"strings"

	"cluedo-toolbox/internal/cards"
)

// Pick is the advisor's choice for one category. Done means no candidate is left.
type Pick struct {
	Category cards.Category
	Card     cards.Card
	Done     bool
}

func (p Pick) String() string {
	if p.Done {
		return "(done)"
	}
	return p.Card.Key
}

// Suggestion is one Pick per category, in category order.
type Suggestion []Pick

func (s Suggestion) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Next suggestion → %s", strings.Join(parts, " • "))
}

// Cards returns the recommended cards, skipping finished categories.
func (s Suggestion) Cards() []cards.Card {
	var out []cards.Card
	for _, p := range s {
		if !p.Done {
			out = append(out, p.Card)
		}
	}
	return out
}

// Suggest recommends a trio worth asking about. Cards in the case file or held
// by someone are skipped; a card with an outstanding Maybe is preferred over
// the first remaining candidate.
func (s *Sheet) Suggest() Suggestion {
	out := make(Suggestion, 0, len(cards.Categories))
	for _, cat := range cards.Categories {
		out = append(out, s.pick(cat))
	}
	return out
}

func (s *Sheet) pick(cat cards.Category) Pick {
	candidates := s.unsolved(s.catalog.InCategory(cat))
	for _, card := range candidates {
		if s.HasMaybe(card) {
			return Pick{Category: cat, Card: card}
		}
	}
	if len(candidates) > 0 {
		return Pick{Category: cat, Card: candidates[0]}
	}
	return Pick{Category: cat, Done: true}
}
