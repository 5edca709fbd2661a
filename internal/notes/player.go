package notes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Table size limits.
const (
	MinPlayers = 3
	MaxPlayers = 6
)

var (
	// ErrUnknownPlayer is returned when a token does not resolve to a seat.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrPlayerCount is returned for a table size outside MinPlayers..MaxPlayers.
	ErrPlayerCount = errors.New("invalid player count")
)

// Player is a seat number in turn order. Seat 1 is always the note taker.
type Player int

// You is the note taker's own seat.
const You Player = 1

func (p Player) String() string {
	if p == You {
		return "You"
	}
	return fmt.Sprintf("Player %d", int(p))
}

// Seats returns players 1..n.
func Seats(n int) []Player {
	out := make([]Player, n)
	for i := range out {
		out[i] = Player(i + 1)
	}
	return out
}

// ParsePlayer resolves "you", "me", a bare seat number 2..n, or "player<N>".
func ParsePlayer(token string, n int) (Player, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "you" || t == "me" {
		return You, nil
	}
	digits := strings.TrimPrefix(t, "player")
	if seat, err := strconv.Atoi(digits); err == nil && digits != "" && digits[0] != '+' && digits[0] != '-' {
		if seat >= 2 && seat <= n {
			return Player(seat), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, token)
}

// ExpectedHandSizes spreads total cards over n seats as evenly as possible.
// The remainder goes to the earliest seats after You.
func ExpectedHandSizes(total, n int) map[Player]int {
	sizes := make(map[Player]int, n)
	if n <= 0 {
		return sizes
	}
	base, extras := total/n, total%n
	for _, p := range Seats(n) {
		sizes[p] = base
	}
	for i := 1; i <= extras; i++ {
		if i < n {
			sizes[Player(i+1)]++
		}
	}
	return sizes
}
