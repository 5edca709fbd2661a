package game

import (
	"io"
	"math/rand"
	"testing"

	"cluedo-toolbox/internal/cards"
	"cluedo-toolbox/internal/deduce"
	"cluedo-toolbox/internal/notes"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSimulation deals a seeded table and an engine sharing its event bus.
func setupSimulation(t *testing.T, players int, seed int64) (*Game, *deduce.Engine) {
	t.Helper()

	catalog := testCatalog(t)
	log := logrus.New()
	log.SetOutput(io.Discard)
	// For debugging this test, uncomment the line below:
	// log.SetLevel(logrus.DebugLevel)

	seededRand := rand.New(rand.NewSource(seed))
	builder := NewBuilder(catalog, log, seededRand).WithPlayers(players).WithChooser(&DeterministicChooser{})
	game, err := builder.Build()
	require.NoError(t, err)
	engine, err := deduce.NewEngine(catalog, players, log, builder.EventManager())
	require.NoError(t, err)
	return game, engine
}

// checkTruthful verifies every definitive mark against the dealt hands.
func checkTruthful(t *testing.T, game *Game, engine *deduce.Engine) {
	t.Helper()
	sheet := engine.Sheet()
	for _, card := range game.Catalog.All() {
		for _, seat := range game.Seats {
			switch sheet.Status(card, seat.Player) {
			case notes.StatusYes:
				assert.True(t, seat.Holds(card), "%s marked Yes on %s but does not hold it", seat.Player, card.Name)
			case notes.StatusNo:
				assert.False(t, seat.Holds(card), "%s marked No on %s but holds it", seat.Player, card.Name)
			}
		}
	}
}

func TestSimulationSolvesTheCase(t *testing.T) {
	for players := notes.MinPlayers; players <= notes.MaxPlayers; players++ {
		for seed := int64(1); seed <= 5; seed++ {
			// GIVEN a freshly dealt table
			game, engine := setupSimulation(t, players, seed)

			// WHEN the notebook is fed every turn's truthful testimony
			correct, err := game.RunSimulation(engine, 300)
			require.NoError(t, err, "%d players, seed %d", players, seed)

			// THEN it names the dealt solution without a single false mark
			assert.True(t, correct, "%d players, seed %d: deduced %v, solution %v", players, seed, engine.Sheet().CaseFile(), game.Solution)
			assert.True(t, engine.Sheet().Complete(), "%d players, seed %d: incomplete after %d turns", players, seed, game.Turns())
			checkTruthful(t, game, engine)
		}
	}
}

func TestSimulationRecordsYourHand(t *testing.T) {
	game, engine := setupSimulation(t, 4, 7)

	_, err := game.RunSimulation(engine, 1)
	require.NoError(t, err)

	you := game.Seat(notes.You)
	assert.Equal(t, len(you.Hand), engine.Sheet().Known(notes.You))
	assert.Equal(t, 1, game.Turns())
}

func TestAdvisedTrio(t *testing.T) {
	t.Run("a fresh sheet yields the advisor's three cards", func(t *testing.T) {
		game, engine := setupSimulation(t, 4, 3)

		trio := game.advisedTrio(engine.Sheet())

		assert.Equal(t, engine.Sheet().Suggest().Cards(), trio)
	})

	t.Run("a solved category falls back to its case-file card", func(t *testing.T) {
		// GIVEN the suspect slot solved
		game, engine := setupSimulation(t, 4, 3)
		plum, err := engine.LookupCard("plum")
		require.NoError(t, err)
		engine.Is(plum)
		for _, c := range game.Catalog.InCategory(cards.CategorySuspect) {
			if c != plum {
				engine.Has(2, c)
			}
		}

		// WHEN You picks a trio
		trio := game.advisedTrio(engine.Sheet())

		// THEN every category is still represented, with plum for suspects
		require.Len(t, trio, 3)
		assert.Equal(t, plum, trio[0])
		assert.Equal(t, cards.CategoryWeapon, trio[1].Category)
		assert.Equal(t, cards.CategoryRoom, trio[2].Category)
	})
}
