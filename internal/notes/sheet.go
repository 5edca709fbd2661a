package notes

import (
	"fmt"

	"cluedo-toolbox/internal/cards"

	"github.com/sirupsen/logrus"
)

// Status is what the sheet knows about one (card, player) pair.
type Status int

const (
	StatusUnknown Status = iota
	StatusNo
	StatusYes
	StatusMaybe
)

func (s Status) String() string {
	return []string{"unknown", "no", "yes", "maybe"}[s]
}

// Definitive reports whether s is Yes or No.
func (s Status) Definitive() bool { return s == StatusYes || s == StatusNo }

// Sheet is the detective's notebook for one session: the knowledge grid,
// per-player known/expected counters and the case file.
type Sheet struct {
	catalog  *cards.Catalog
	players  []Player
	expected map[Player]int
	known    map[Player]int
	marks    map[cards.Card]map[Player]Status
	caseFile map[cards.Category]cards.Card
	log      logrus.FieldLogger
}

// NewSheet returns an empty sheet for n players.
func NewSheet(catalog *cards.Catalog, n int, log logrus.FieldLogger) (*Sheet, error) {
	if n < MinPlayers || n > MaxPlayers {
		return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrPlayerCount, n, MinPlayers, MaxPlayers)
	}
	s := &Sheet{
		catalog:  catalog,
		players:  Seats(n),
		expected: ExpectedHandSizes(catalog.InPlay(), n),
		known:    make(map[Player]int, n),
		marks:    make(map[cards.Card]map[Player]Status, catalog.Len()),
		caseFile: make(map[cards.Category]cards.Card),
		log:      log,
	}
	for _, card := range catalog.All() {
		s.marks[card] = make(map[Player]Status, n)
	}
	return s, nil
}

// Catalog returns the card universe the sheet tracks.
func (s *Sheet) Catalog() *cards.Catalog { return s.catalog }

// Players returns the seats in turn order.
func (s *Sheet) Players() []Player {
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

// NumPlayers is the table size.
func (s *Sheet) NumPlayers() int { return len(s.players) }

// ParsePlayer resolves a seat token against this table's size.
func (s *Sheet) ParsePlayer(token string) (Player, error) {
	return ParsePlayer(token, len(s.players))
}

// Known is the number of cards marked Yes for p.
func (s *Sheet) Known(p Player) int { return s.known[p] }

// Expected is p's hand size.
func (s *Sheet) Expected(p Player) int { return s.expected[p] }

// Status returns the mark for (card, p); Unknown when never set.
func (s *Sheet) Status(card cards.Card, p Player) Status {
	return s.marks[card][p]
}

// Mark records st for (card, p). Definitive knowledge is never downgraded to
// Maybe. Replacing a Yes with anything else retracts it from p's known count.
func (s *Sheet) Mark(p Player, card cards.Card, st Status) {
	row, ok := s.marks[card]
	if !ok {
		s.log.Errorf("Mark called with a card outside the catalog: %q", card.Name)
		return
	}
	if !s.seated(p) {
		s.log.Errorf("Mark called for %s at a %d-player table.", p, len(s.players))
		return
	}
	prev := row[p]
	if prev.Definitive() && st == StatusMaybe {
		return
	}
	if prev == StatusYes && st != StatusYes {
		s.known[p]--
	}
	if prev != st {
		s.log.Debugf("%s / %s: %s -> %s", card.Name, p, prev, st)
	}
	row[p] = st
}

// SetYes marks card as held by p. It does not touch the other players; callers
// mark them No to keep a card with at most one holder.
func (s *Sheet) SetYes(p Player, card cards.Card) {
	if !s.seated(p) {
		s.log.Errorf("SetYes called for %s at a %d-player table.", p, len(s.players))
		return
	}
	if s.Status(card, p) != StatusYes {
		s.known[p]++
	}
	s.Mark(p, card, StatusYes)
}

func (s *Sheet) seated(p Player) bool {
	return p >= You && int(p) <= len(s.players)
}

// MarkOthers sets st for card on every player except p.
func (s *Sheet) MarkOthers(p Player, card cards.Card, st Status) {
	for _, other := range s.players {
		if other != p {
			s.Mark(other, card, st)
		}
	}
}

// Holders counts the players marked Yes for card.
func (s *Sheet) Holders(card cards.Card) int {
	n := 0
	for _, p := range s.players {
		if s.Status(card, p) == StatusYes {
			n++
		}
	}
	return n
}

// YesAmong counts how many of trio are marked Yes for p.
func (s *Sheet) YesAmong(p Player, trio []cards.Card) int {
	n := 0
	for _, card := range trio {
		if s.Status(card, p) == StatusYes {
			n++
		}
	}
	return n
}

// AllNo reports whether every player is marked No for card.
func (s *Sheet) AllNo(card cards.Card) bool {
	for _, p := range s.players {
		if s.Status(card, p) != StatusNo {
			return false
		}
	}
	return true
}

// HasMaybe reports whether any player carries a Maybe for card.
func (s *Sheet) HasMaybe(card cards.Card) bool {
	for _, p := range s.players {
		if s.Status(card, p) == StatusMaybe {
			return true
		}
	}
	return false
}
