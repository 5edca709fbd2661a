package notes

import (
	"cluedo-toolbox/internal/cards"
)

// Seat is a column header: a player with their known/expected counters.
type Seat struct {
	Player   Player
	Known    int
	Expected int
}

// Row is one card with its marks, ordered like Snapshot.Seats.
type Row struct {
	Card   cards.Card
	Marks  []Status
	InCase bool
}

// Snapshot is a read-only copy of everything a presenter needs to redraw.
type Snapshot struct {
	Seats      []Seat
	Rows       []Row
	CaseFile   map[cards.Category]cards.Card
	Suggestion Suggestion
}

// Snapshot captures the current sheet state.
func (s *Sheet) Snapshot() Snapshot {
	snap := Snapshot{
		CaseFile:   s.CaseFile(),
		Suggestion: s.Suggest(),
	}
	for _, p := range s.players {
		snap.Seats = append(snap.Seats, Seat{Player: p, Known: s.known[p], Expected: s.expected[p]})
	}
	for _, card := range s.catalog.All() {
		row := Row{Card: card, InCase: s.InCase(card), Marks: make([]Status, len(s.players))}
		for i, p := range s.players {
			row.Marks[i] = s.Status(card, p)
		}
		snap.Rows = append(snap.Rows, row)
	}
	return snap
}
