package notes

import (
	"io"
	"testing"

	"cluedo-toolbox/internal/cards"
	"cluedo-toolbox/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestSheet builds a clean sheet over the default catalog.
func setupTestSheet(t *testing.T, n int) *Sheet {
	t.Helper()
	catalog, err := config.Default().Catalog()
	require.NoError(t, err)
	log := logrus.New()
	log.SetOutput(io.Discard)
	sheet, err := NewSheet(catalog, n, log)
	require.NoError(t, err)
	return sheet
}

func card(t *testing.T, s *Sheet, token string) cards.Card {
	t.Helper()
	c, err := s.Catalog().Lookup(token)
	require.NoError(t, err)
	return c
}

// assertKnownMatchesMarks checks the counter invariant for every player.
func assertKnownMatchesMarks(t *testing.T, s *Sheet) {
	t.Helper()
	for _, p := range s.Players() {
		yes := 0
		for _, c := range s.Catalog().All() {
			if s.Status(c, p) == StatusYes {
				yes++
			}
		}
		assert.Equal(t, yes, s.Known(p), "%s: known counter vs Yes marks", p)
	}
}

func TestExpectedHandSizes(t *testing.T) {
	cases := []struct {
		players int
		want    []int
	}{
		{3, []int{6, 6, 6}},
		{4, []int{4, 5, 5, 4}},
		{5, []int{3, 4, 4, 4, 3}},
		{6, []int{3, 3, 3, 3, 3, 3}},
	}
	for _, tc := range cases {
		sizes := ExpectedHandSizes(18, tc.players)
		total := 0
		for i, want := range tc.want {
			got := sizes[Player(i+1)]
			total += got
			assert.Equal(t, want, got, "%d players, seat %d", tc.players, i+1)
		}
		assert.Equal(t, 18, total, "%d players: sizes must cover every card in play", tc.players)
	}
}

func TestParsePlayer(t *testing.T) {
	good := map[string]Player{"you": You, "ME": You, "2": 2, "player4": 4, "Player3": 3}
	for tok, want := range good {
		got, err := ParsePlayer(tok, 4)
		require.NoError(t, err, tok)
		assert.Equal(t, want, got, tok)
	}
	for _, tok := range []string{"1", "5", "player", "player5", "+3", "bob", ""} {
		_, err := ParsePlayer(tok, 4)
		assert.ErrorIs(t, err, ErrUnknownPlayer, tok)
	}
}

func TestNewSheetRejectsPlayerCount(t *testing.T) {
	catalog, err := config.Default().Catalog()
	require.NoError(t, err)
	for _, n := range []int{2, 7} {
		_, err := NewSheet(catalog, n, logrus.New())
		assert.ErrorIs(t, err, ErrPlayerCount, "%d players", n)
	}
}

func TestMark(t *testing.T) {
	t.Run("maybe never overwrites definitive knowledge", func(t *testing.T) {
		s := setupTestSheet(t, 4)
		rope := card(t, s, "rope")
		s.SetYes(2, rope)
		s.Mark(3, rope, StatusNo)

		s.Mark(2, rope, StatusMaybe)
		s.Mark(3, rope, StatusMaybe)

		assert.Equal(t, StatusYes, s.Status(rope, 2))
		assert.Equal(t, StatusNo, s.Status(rope, 3))
		assert.Equal(t, 1, s.Known(2))
	})

	t.Run("maybe overwrites unknown", func(t *testing.T) {
		s := setupTestSheet(t, 4)
		rope := card(t, s, "rope")
		s.Mark(2, rope, StatusMaybe)
		assert.Equal(t, StatusMaybe, s.Status(rope, 2))
	})

	t.Run("retracting a yes decrements the counter", func(t *testing.T) {
		s := setupTestSheet(t, 4)
		rope := card(t, s, "rope")
		s.SetYes(2, rope)
		s.SetYes(2, rope)
		require.Equal(t, 1, s.Known(2), "SetYes counts a card once")

		s.Mark(2, rope, StatusNo)

		assert.Equal(t, 0, s.Known(2))
		assertKnownMatchesMarks(t, s)
	})

	t.Run("seats outside the table are ignored", func(t *testing.T) {
		// GIVEN a three-player sheet
		s := setupTestSheet(t, 3)
		rope := card(t, s, "rope")

		// WHEN a seat that does not exist is written to
		s.SetYes(9, rope)
		s.Mark(0, rope, StatusNo)
		s.Mark(4, rope, StatusMaybe)

		// THEN nothing is recorded anywhere
		assert.Equal(t, 0, s.Known(9))
		assert.Equal(t, StatusUnknown, s.Status(rope, 9))
		assert.Equal(t, StatusUnknown, s.Status(rope, 0))
		assert.Equal(t, 0, s.Holders(rope))
		assert.False(t, s.HasMaybe(rope))
		assert.Len(t, s.Snapshot().Seats, 3)
	})
}

func TestSetCase(t *testing.T) {
	s := setupTestSheet(t, 4)
	plum := card(t, s, "plum")
	s.SetYes(3, plum)

	require.True(t, s.SetCase(plum), "first assignment reports a change")

	t.Run("every player is marked No", func(t *testing.T) {
		assert.True(t, s.AllNo(plum))
		assertKnownMatchesMarks(t, s)
	})

	t.Run("it is idempotent", func(t *testing.T) {
		before := s.Snapshot()
		assert.False(t, s.SetCase(plum))
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("a different card for a solved slot is refused", func(t *testing.T) {
		assert.False(t, s.SetCase(card(t, s, "white")))
		assert.Equal(t, plum, s.CaseFile()[cards.CategorySuspect])
	})
}

func TestAutoDeduceCase(t *testing.T) {
	t.Run("a card nobody holds is promoted", func(t *testing.T) {
		s := setupTestSheet(t, 4)
		rope := card(t, s, "rope")
		for _, p := range s.Players() {
			s.Mark(p, rope, StatusNo)
		}

		solved := s.AutoDeduceCase()

		assert.Equal(t, []cards.Card{rope}, solved)
		assert.True(t, s.InCase(rope))
	})

	t.Run("the last unheld card is promoted", func(t *testing.T) {
		// GIVEN five suspects held by other players and the sixth untouched
		s := setupTestSheet(t, 4)
		suspects := s.Catalog().InCategory(cards.CategorySuspect)
		for i, c := range suspects[:5] {
			holder := Player(i%3 + 2)
			s.SetYes(holder, c)
			s.MarkOthers(holder, c, StatusNo)
		}
		last := suspects[5]

		// WHEN the case file is re-derived
		s.AutoDeduceCase()

		// THEN the sixth suspect is the solution and the advisor is done with suspects
		require.True(t, s.InCase(last), last.Name)
		assert.True(t, s.AllNo(last))
		assert.True(t, s.Suggest()[0].Done, "no more suspect suggestions")
		assertKnownMatchesMarks(t, s)
	})

	t.Run("nothing happens while two candidates remain", func(t *testing.T) {
		s := setupTestSheet(t, 4)
		assert.Empty(t, s.AutoDeduceCase())
	})
}

func TestSuggest(t *testing.T) {
	s := setupTestSheet(t, 4)

	t.Run("empty sheet suggests the first card of each category", func(t *testing.T) {
		assert.Equal(t, "Next suggestion → scarlet • candlestick • kitchen", s.Suggest().String())
		assert.Len(t, s.Suggest().Cards(), 3)
	})

	t.Run("held cards are skipped and maybes are preferred", func(t *testing.T) {
		s.SetYes(2, card(t, s, "scarlet"))
		s.Mark(3, card(t, s, "rope"), StatusMaybe)

		sug := s.Suggest()
		assert.Equal(t, "mustard", sug[0].Card.Key)
		assert.Equal(t, "rope", sug[1].Card.Key)
	})

	t.Run("finished categories drop out of the card list", func(t *testing.T) {
		weapons := s.Catalog().InCategory(cards.CategoryWeapon)
		for i, c := range weapons {
			holder := Player(i%3 + 2)
			s.SetYes(holder, c)
			s.MarkOthers(holder, c, StatusNo)
		}

		sug := s.Suggest()
		assert.True(t, sug[1].Done)
		assert.Equal(t, "(done)", sug[1].String())
		assert.Len(t, sug.Cards(), 2)
	})
}

func TestSnapshot(t *testing.T) {
	s := setupTestSheet(t, 3)
	hall := card(t, s, "hall")
	s.SetYes(You, hall)

	snap := s.Snapshot()

	require.Len(t, snap.Seats, 3)
	assert.Equal(t, 1, snap.Seats[0].Known)
	assert.Equal(t, 6, snap.Seats[0].Expected)
	require.Len(t, snap.Rows, s.Catalog().Len())
	for _, row := range snap.Rows {
		if row.Card == hall {
			assert.Equal(t, StatusYes, row.Marks[0])
		}
	}
}
