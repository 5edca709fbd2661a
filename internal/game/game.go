package game

import (
	"fmt"
	"math/rand"

	"cluedo-toolbox/internal/cards"
	"cluedo-toolbox/internal/deduce"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/notes"

	"github.com/sirupsen/logrus"
)

// Seat is one player at the simulated table and the cards they were dealt.
type Seat struct {
	Player notes.Player
	Hand   []cards.Card
}

// Holds reports whether the seat was dealt c.
func (s Seat) Holds(c cards.Card) bool {
	for _, h := range s.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// Game is a dealt table with a hidden solution. It only exists to feed the
// notebook truthful testimony; nobody but You reasons about it.
type Game struct {
	Catalog      *cards.Catalog
	Seats        []Seat
	Solution     map[cards.Category]cards.Card
	EventManager *events.Manager
	turn         int
	log          *logrus.Logger
	rand         *rand.Rand
	chooser      Chooser
}

// Turns is the number of suggestions made so far.
func (g *Game) Turns() int { return g.turn }

// Seat returns the seat for p.
func (g *Game) Seat(p notes.Player) Seat { return g.Seats[int(p)-1] }

// deal draws one solution card per category and hands out the rest so each
// seat gets exactly its expected hand size.
func (g *Game) deal() {
	deck := g.Catalog.All()
	g.rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	var cardsToDeal []cards.Card
	for i := len(deck) - 1; i >= 0; i-- {
		card := deck[i]
		if _, exists := g.Solution[card.Category]; !exists {
			g.Solution[card.Category] = card
		} else {
			cardsToDeal = append(cardsToDeal, card)
		}
	}

	sizes := notes.ExpectedHandSizes(len(cardsToDeal), len(g.Seats))
	next := 0
	for i := range g.Seats {
		n := sizes[g.Seats[i].Player]
		g.Seats[i].Hand = append([]cards.Card(nil), cardsToDeal[next:next+n]...)
		next += n
		g.log.Debugf("%s hand: %v", g.Seats[i].Player, g.Seats[i].Hand)
	}
	g.log.Debugf("Ground truth initialized. Solution: %v", g.Solution)
}

// handleSuggestion asks each player clockwise from the suggester until one can
// show a card. It returns the players who passed, the disprover (0 if none)
// and the card shown.
func (g *Game) handleSuggestion(suggester notes.Player, trio []cards.Card) (passed []notes.Player, disprover notes.Player, shown cards.Card) {
	n := len(g.Seats)
	for i := 1; i < n; i++ {
		seat := g.Seats[(int(suggester)-1+i)%n]
		var canShow []cards.Card
		for _, c := range trio {
			if seat.Holds(c) {
				canShow = append(canShow, c)
			}
		}
		if len(canShow) > 0 {
			return passed, seat.Player, g.chooser.Choose(canShow)
		}
		passed = append(passed, seat.Player)
	}
	return passed, 0, cards.Card{}
}

// RunSimulation records You's hand in the engine and then plays rounds until
// the engine's case file is complete or maxTurns suggestions have been made.
// It reports whether the deduced case file matches the dealt solution.
func (g *Game) RunSimulation(engine *deduce.Engine, maxTurns int) (bool, error) {
	if err := engine.SetPlayerCount(len(g.Seats)); err != nil {
		return false, err
	}
	if err := engine.Own(g.Seat(notes.You).Hand); err != nil {
		return false, fmt.Errorf("recording your hand: %w", err)
	}

	for g.turn < maxTurns && !engine.Sheet().Complete() {
		current := g.Seats[g.turn%len(g.Seats)].Player
		g.EventManager.Publish(events.TurnStartEvent{TurnNumber: g.turn + 1, Player: current})

		var err error
		if current == notes.You {
			err = g.playYourTurn(engine)
		} else {
			err = g.playOpponentTurn(engine, current)
		}
		if err != nil {
			return false, err
		}
		g.turn++
	}

	deduced := engine.Sheet().CaseFile()
	correct := len(deduced) == len(g.Solution)
	for cat, card := range g.Solution {
		if deduced[cat] != card {
			correct = false
		}
	}
	g.EventManager.Publish(events.GameOverEvent{
		Turns:    g.turn,
		Solution: g.Solution,
		Deduced:  deduced,
		Correct:  correct,
	})
	return correct, nil
}

// playYourTurn follows the notebook's own suggestion and records what You saw.
func (g *Game) playYourTurn(engine *deduce.Engine) error {
	trio := g.advisedTrio(engine.Sheet())
	g.EventManager.Publish(events.SuggestionMadeEvent{Player: notes.You, Trio: trio})
	passed, disprover, shown := g.handleSuggestion(notes.You, trio)

	if disprover == 0 {
		g.EventManager.Publish(events.NoDisprovalEvent{})
		return engine.PlayNone(trio)
	}
	g.EventManager.Publish(events.DisprovalEvent{Suggester: notes.You, Disprover: disprover, RevealedCard: shown})

	// Unlisted players count as bypassed, which is only true when nobody sits
	// between the disprover and You.
	if len(passed)+1 == len(g.Seats)-1 {
		reveals := make([]deduce.Reveal, 0, len(passed)+1)
		for _, p := range passed {
			reveals = append(reveals, deduce.Reveal{Player: p})
		}
		reveals = append(reveals, deduce.Reveal{Player: disprover, Shown: shown})
		return engine.Play(trio, reveals)
	}
	g.recordPasses(engine, passed, trio)
	engine.Has(disprover, shown)
	return nil
}

// playOpponentTurn makes a random suggestion for p. You only learn who passed
// and who showed, never the card, unless You were the one showing.
func (g *Game) playOpponentTurn(engine *deduce.Engine, p notes.Player) error {
	var trio []cards.Card
	for _, cat := range cards.Categories {
		group := g.Catalog.InCategory(cat)
		trio = append(trio, group[g.rand.Intn(len(group))])
	}
	g.EventManager.Publish(events.SuggestionMadeEvent{Player: p, Trio: trio})
	passed, disprover, shown := g.handleSuggestion(p, trio)

	if disprover == 0 {
		g.EventManager.Publish(events.NoDisprovalEvent{})
		return engine.Ask(p, trio, nil)
	}
	g.EventManager.Publish(events.DisprovalEvent{Suggester: p, Disprover: disprover, RevealedCard: shown})

	others := len(g.Seats) - 2 // everyone but the asker and You
	if disprover != notes.You {
		others--
	}
	passedOthers := 0
	for _, q := range passed {
		if q != notes.You {
			passedOthers++
		}
	}
	if disprover != notes.You && passedOthers == others {
		return engine.Ask(p, trio, []notes.Player{disprover})
	}
	g.recordPasses(engine, passed, trio)
	return nil
}

func (g *Game) recordPasses(engine *deduce.Engine, passed []notes.Player, trio []cards.Card) {
	for _, q := range passed {
		for _, c := range trio {
			engine.Not(q, c)
		}
	}
}

// advisedTrio turns the advisor's picks into a full trio, using the solved
// case-file card for any finished category.
func (g *Game) advisedTrio(sheet *notes.Sheet) []cards.Card {
	suggestion := sheet.Suggest()
	if trio := suggestion.Cards(); len(trio) == len(cards.Categories) {
		return trio
	}
	caseFile := sheet.CaseFile()
	var trio []cards.Card
	for _, pick := range suggestion {
		switch {
		case !pick.Done:
			trio = append(trio, pick.Card)
		case !caseFile[pick.Category].IsZero():
			trio = append(trio, caseFile[pick.Category])
		default:
			trio = append(trio, g.Catalog.InCategory(pick.Category)[0])
		}
	}
	return trio
}
