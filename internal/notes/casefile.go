package notes

import (
	"cluedo-toolbox/internal/cards"
)

// InCase reports whether card has been placed in the case file.
func (s *Sheet) InCase(card cards.Card) bool {
	got, ok := s.caseFile[card.Category]
	return ok && got == card
}

// Solved reports whether the category's case-file slot is filled.
func (s *Sheet) Solved(cat cards.Category) bool {
	_, ok := s.caseFile[cat]
	return ok
}

// CaseFile returns a copy of the solved slots.
func (s *Sheet) CaseFile() map[cards.Category]cards.Card {
	out := make(map[cards.Category]cards.Card, len(s.caseFile))
	for k, v := range s.caseFile {
		out[k] = v
	}
	return out
}

// Complete reports whether all three slots are solved.
func (s *Sheet) Complete() bool { return len(s.caseFile) == len(cards.Categories) }

// SetCase places card in its category's slot and marks every player No for it.
// It returns true only on the first assignment. Re-assigning the same card is
// a no-op; a different card for a solved slot is refused.
func (s *Sheet) SetCase(card cards.Card) bool {
	if got, ok := s.caseFile[card.Category]; ok {
		if got != card {
			s.log.Warnf("Case file already holds %s for %s; ignoring %s.", got.Name, card.Category, card.Name)
		}
		return false
	}
	s.caseFile[card.Category] = card
	for _, p := range s.players {
		s.Mark(p, card, StatusNo)
	}
	return true
}

// AutoDeduceCase fills unsolved slots by elimination and returns the cards it
// placed. A card nobody can hold is promoted first; failing that, a category
// with a single card that nobody holds is solved by that card.
func (s *Sheet) AutoDeduceCase() []cards.Card {
	var solved []cards.Card
	for _, cat := range cards.Categories {
		if s.Solved(cat) {
			continue
		}
		group := s.catalog.InCategory(cat)

		for _, card := range group {
			if s.AllNo(card) && s.SetCase(card) {
				s.log.Infof("Everybody lacks %s: it is the %s in the case file.", card.Name, cat.Singular())
				solved = append(solved, card)
				break
			}
		}
		if s.Solved(cat) {
			continue
		}

		candidates := s.unsolved(group)
		if len(candidates) == 1 && s.SetCase(candidates[0]) {
			s.log.Infof("Only %s is left among the %s: it is in the case file.", candidates[0].Name, cat)
			solved = append(solved, candidates[0])
		}
	}
	return solved
}

// unsolved returns the cards of group that are neither in the case file nor
// held by anyone.
func (s *Sheet) unsolved(group []cards.Card) []cards.Card {
	var out []cards.Card
	for _, card := range group {
		if s.InCase(card) || s.Holders(card) > 0 {
			continue
		}
		out = append(out, card)
	}
	return out
}
