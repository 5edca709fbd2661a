package command

import (
	"cluedo-toolbox/internal/deduce"
)

// Execute applies a parsed command to the engine. Help and quit are handled by
// the caller and are no-ops here.
func Execute(e *deduce.Engine, cmd Command) error {
	switch cmd.Kind {
	case KindOwn:
		return e.Own(cmd.Cards)
	case KindNot:
		e.Not(cmd.Player, cmd.Cards[0])
	case KindHas:
		e.Has(cmd.Player, cmd.Cards[0])
	case KindIs:
		e.Is(cmd.Cards[0])
	case KindAsk:
		return e.Ask(cmd.Player, cmd.Cards, cmd.Showers)
	case KindPlay:
		if cmd.None {
			return e.PlayNone(cmd.Cards)
		}
		return e.Play(cmd.Cards, cmd.Reveals)
	case KindReset:
		e.Reset()
	case KindPlayers:
		return e.SetPlayerCount(cmd.Count)
	case KindHelp, KindQuit:
	}
	return nil
}

// Run parses and executes one line.
func Run(e *deduce.Engine, line string) (Command, error) {
	cmd, err := Parse(line, e)
	if err != nil {
		return cmd, err
	}
	return cmd, Execute(e, cmd)
}
