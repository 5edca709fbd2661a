package deduce

import (
	"errors"
	"fmt"

	"cluedo-toolbox/internal/cards"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/notes"
)

// ErrArity is returned when a rule gets the wrong number of cards.
var ErrArity = errors.New("wrong number of arguments")

// Reveal is one player's answer to a suggestion made by You. A zero Shown
// means the player had nothing to show.
type Reveal struct {
	Player notes.Player
	Shown  cards.Card
}

// Own records You's full hand: those cards are Yes for You and No for
// everyone else, every other card is No for You.
func (e *Engine) Own(hand []cards.Card) error {
	expected := e.sheet.Expected(notes.You)
	if len(hand) != expected {
		return fmt.Errorf("%w: you are expected to have %d cards, not %d", ErrArity, expected, len(hand))
	}
	owned := make(map[cards.Card]struct{}, len(hand))
	for _, c := range hand {
		owned[c] = struct{}{}
	}
	for _, c := range e.catalog.All() {
		if _, ok := owned[c]; ok {
			e.sheet.SetYes(notes.You, c)
			e.sheet.MarkOthers(notes.You, c, notes.StatusNo)
		} else {
			e.sheet.Mark(notes.You, c, notes.StatusNo)
		}
	}
	e.log.Infof("Recorded your hand of %d cards.", len(hand))
	e.finish("own")
	return nil
}

// Not records that p does not hold card.
func (e *Engine) Not(p notes.Player, card cards.Card) {
	e.sheet.Mark(p, card, notes.StatusNo)
	e.finish("not")
}

// Has records that p holds card; nobody else can. A seat that is not at the
// table is logged and ignored.
func (e *Engine) Has(p notes.Player, card cards.Card) {
	if err := e.checkSeats(p); err != nil {
		e.log.Error(err)
		return
	}
	e.sheet.SetYes(p, card)
	e.sheet.MarkOthers(p, card, notes.StatusNo)
	e.finish("has")
}

// Is places card directly in the case file.
func (e *Engine) Is(card cards.Card) {
	e.setCase(card)
	e.finish("is")
}

// Ask records another player's suggestion. Everyone other than the asker, You
// and the showers is taken to have none of the trio. When You or the asker
// already hold two of the three, each shower must have shown the third;
// otherwise each shower gets a Maybe on all three.
func (e *Engine) Ask(asker notes.Player, trio []cards.Card, showers []notes.Player) error {
	if err := checkTrio(trio); err != nil {
		return err
	}
	if err := e.checkSeats(append([]notes.Player{asker}, showers...)...); err != nil {
		return err
	}
	participants := map[notes.Player]bool{asker: true, notes.You: true}
	for _, p := range showers {
		participants[p] = true
	}
	e.markBypassed(participants, trio)

	deduced, ok := e.deduceShown(asker, trio)
	for _, shower := range showers {
		if !ok {
			for _, c := range trio {
				e.sheet.Mark(shower, c, notes.StatusMaybe)
			}
			continue
		}
		e.sheet.SetYes(shower, deduced)
		e.sheet.MarkOthers(shower, deduced, notes.StatusNo)
		for _, c := range trio {
			if c != deduced {
				e.sheet.Mark(shower, c, notes.StatusNo)
			}
		}
		e.log.Infof("%s must have shown %s.", shower, deduced.Name)
		e.eventManager.Publish(events.CardDeducedEvent{Player: shower, Card: deduced})
	}
	e.finish("ask")
	return nil
}

// deduceShown looks for You, then the asker, holding two of the trio; the
// remaining card is the one that was shown.
func (e *Engine) deduceShown(asker notes.Player, trio []cards.Card) (cards.Card, bool) {
	for _, holder := range []notes.Player{notes.You, asker} {
		if e.sheet.YesAmong(holder, trio) < 2 {
			continue
		}
		for _, c := range trio {
			if e.sheet.Status(c, holder) != notes.StatusYes {
				return c, true
			}
		}
	}
	return cards.Card{}, false
}

// Play records the answers to a suggestion You made. Each listed player either
// showed a card (Yes for them, No for everyone else) or showed nothing (No on
// the whole trio). Players not listed are taken to have none of the trio.
func (e *Engine) Play(trio []cards.Card, reveals []Reveal) error {
	if err := checkTrio(trio); err != nil {
		return err
	}
	if len(reveals) == 0 {
		return fmt.Errorf("%w: play needs at least one player or 'none'", ErrArity)
	}
	for _, r := range reveals {
		if err := e.checkSeats(r.Player); err != nil {
			return err
		}
	}
	participants := map[notes.Player]bool{notes.You: true}
	for _, r := range reveals {
		participants[r.Player] = true
		if r.Shown.IsZero() {
			for _, c := range trio {
				e.sheet.Mark(r.Player, c, notes.StatusNo)
			}
			continue
		}
		e.sheet.SetYes(r.Player, r.Shown)
		for _, c := range trio {
			if c != r.Shown {
				e.sheet.Mark(r.Player, c, notes.StatusMaybe)
			}
		}
		e.sheet.MarkOthers(r.Player, r.Shown, notes.StatusNo)
	}
	e.markBypassed(participants, trio)
	e.finish("play")
	return nil
}

// PlayNone records that nobody answered You's suggestion: every trio card You
// do not hold is No for all other players.
func (e *Engine) PlayNone(trio []cards.Card) error {
	if err := checkTrio(trio); err != nil {
		return err
	}
	for _, c := range trio {
		if e.sheet.Status(c, notes.You) == notes.StatusYes {
			continue
		}
		e.sheet.MarkOthers(notes.You, c, notes.StatusNo)
	}
	e.log.Info("Nobody could answer your suggestion.")
	e.finish("play")
	return nil
}

func (e *Engine) markBypassed(participants map[notes.Player]bool, trio []cards.Card) {
	for _, p := range e.sheet.Players() {
		if participants[p] {
			continue
		}
		for _, c := range trio {
			e.sheet.Mark(p, c, notes.StatusNo)
		}
	}
}

// checkTrio rejects a suggestion that does not name three different cards.
func checkTrio(trio []cards.Card) error {
	if len(trio) != 3 {
		return fmt.Errorf("%w: a suggestion names 3 cards, not %d", ErrArity, len(trio))
	}
	if trio[0] == trio[1] || trio[0] == trio[2] || trio[1] == trio[2] {
		return fmt.Errorf("%w: a suggestion names 3 different cards", ErrArity)
	}
	return nil
}

func (e *Engine) checkSeats(players ...notes.Player) error {
	for _, p := range players {
		if p < notes.You || int(p) > e.sheet.NumPlayers() {
			return fmt.Errorf("%w: %s at a %d-player table", notes.ErrUnknownPlayer, p, e.sheet.NumPlayers())
		}
	}
	return nil
}
