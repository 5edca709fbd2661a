package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cluedo-toolbox/internal/cards"
	"cluedo-toolbox/internal/deduce"
	"cluedo-toolbox/internal/notes"
)

var (
	// ErrArity is returned when a command has the wrong number of arguments.
	ErrArity = deduce.ErrArity
	// ErrUnknownCommand is returned when the first token names no command.
	ErrUnknownCommand = errors.New("unknown command")
)

// Kind is the finite set of commands the notebook understands.
type Kind int

const (
	KindOwn Kind = iota
	KindNot
	KindHas
	KindIs
	KindAsk
	KindPlay
	KindReset
	KindPlayers
	KindHelp
	KindQuit
)

func (k Kind) String() string {
	return []string{"own", "not", "has", "is", "ask", "play", "reset", "players", "help", "quit"}[k]
}

// Destructive reports whether the command throws the current sheet away and
// should be confirmed by the operator first.
func (k Kind) Destructive() bool { return k == KindReset || k == KindPlayers }

var kindsByName = map[string]Kind{
	"own":     KindOwn,
	"not":     KindNot,
	"has":     KindHas,
	"is":      KindIs,
	"ask":     KindAsk,
	"play":    KindPlay,
	"reset":   KindReset,
	"players": KindPlayers,
	"help":    KindHelp,
	"quit":    KindQuit,
	"exit":    KindQuit,
}

// Resolver turns tokens into cards and seats.
type Resolver interface {
	LookupCard(token string) (cards.Card, error)
	LookupPlayer(token string) (notes.Player, error)
}

// Command is a fully resolved command line. Which fields are set depends on Kind.
type Command struct {
	Kind    Kind
	Player  notes.Player    // not, has; the asker for ask
	Cards   []cards.Card    // own: the hand; is/not/has: one card; ask/play: the trio
	Showers []notes.Player  // ask
	Reveals []deduce.Reveal // play
	None    bool            // ask/play: nobody answered
	Count   int             // players
}

// Parse tokenizes line and resolves every token. Nothing is applied, so a
// command that fails to parse leaves the sheet untouched.
func Parse(line string, r Resolver) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	kind, ok := kindsByName[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
	cmd := Command{Kind: kind}

	var err error
	switch kind {
	case KindOwn:
		if len(args) == 0 {
			return cmd, fmt.Errorf("%w: own <card1> <card2> …", ErrArity)
		}
		cmd.Cards, err = lookupCards(r, args)
	case KindNot, KindHas:
		if len(args) < 2 {
			return cmd, fmt.Errorf("%w: %s <player> <card>", ErrArity, kind)
		}
		if cmd.Player, err = r.LookupPlayer(args[0]); err != nil {
			return cmd, err
		}
		cmd.Cards, err = lookupCards(r, []string{strings.Join(args[1:], " ")})
	case KindIs:
		if len(args) == 0 {
			return cmd, fmt.Errorf("%w: is <card>", ErrArity)
		}
		cmd.Cards, err = lookupCards(r, []string{strings.Join(args, " ")})
	case KindAsk:
		err = parseAsk(&cmd, r, args)
	case KindPlay:
		err = parsePlay(&cmd, r, args)
	case KindPlayers:
		if len(args) != 1 {
			return cmd, fmt.Errorf("%w: players <%d-%d>", ErrArity, notes.MinPlayers, notes.MaxPlayers)
		}
		if cmd.Count, err = strconv.Atoi(args[0]); err != nil {
			return cmd, fmt.Errorf("%w: players expects a number, got %s", ErrArity, args[0])
		}
		if cmd.Count < notes.MinPlayers || cmd.Count > notes.MaxPlayers {
			return cmd, fmt.Errorf("%w: %d (must be %d-%d)", notes.ErrPlayerCount, cmd.Count, notes.MinPlayers, notes.MaxPlayers)
		}
	case KindReset, KindHelp, KindQuit:
	}
	return cmd, err
}

func parseAsk(cmd *Command, r Resolver, args []string) error {
	if len(args) < 5 {
		return fmt.Errorf("%w: ask <asker> c1 c2 c3 <shower …|none>", ErrArity)
	}
	var err error
	if cmd.Player, err = r.LookupPlayer(args[0]); err != nil {
		return err
	}
	if cmd.Cards, err = lookupCards(r, args[1:4]); err != nil {
		return err
	}
	tail := args[4:]
	if isNone(tail) {
		cmd.None = true
		return nil
	}
	for _, tok := range tail {
		p, err := r.LookupPlayer(tok)
		if err != nil {
			return err
		}
		cmd.Showers = append(cmd.Showers, p)
	}
	return nil
}

// parsePlay reads "c1 c2 c3" followed by "none" or player tokens, each
// optionally followed by the trio card that player showed.
func parsePlay(cmd *Command, r Resolver, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("%w: play c1 c2 c3 <player [card] …|none>", ErrArity)
	}
	var err error
	if cmd.Cards, err = lookupCards(r, args[:3]); err != nil {
		return err
	}
	tail := args[3:]
	if isNone(tail) {
		cmd.None = true
		return nil
	}
	for i := 0; i < len(tail); {
		p, err := r.LookupPlayer(tail[i])
		if err != nil {
			return err
		}
		i++
		reveal := deduce.Reveal{Player: p}
		if i < len(tail) {
			if shown, err := r.LookupCard(tail[i]); err == nil && contains(cmd.Cards, shown) {
				reveal.Shown = shown
				i++
			}
		}
		cmd.Reveals = append(cmd.Reveals, reveal)
	}
	return nil
}

func lookupCards(r Resolver, tokens []string) ([]cards.Card, error) {
	out := make([]cards.Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := r.LookupCard(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func isNone(tail []string) bool {
	return len(tail) == 1 && strings.EqualFold(tail[0], "none")
}

func contains(trio []cards.Card, c cards.Card) bool {
	for _, t := range trio {
		if t == c {
			return true
		}
	}
	return false
}
