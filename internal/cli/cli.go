package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"cluedo-toolbox/internal/cards"
	"cluedo-toolbox/internal/command"
	"cluedo-toolbox/internal/deduce"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/game"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// simulationTurnLimit caps a simulated game.
const simulationTurnLimit = 300

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
	out  io.Writer
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
		out:  os.Stdout,
	}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, catalog *cards.Catalog, players int, rand *rand.Rand) error {
	defer c.line.Close()
	if len(args) == 0 {
		return c.runNotebook(catalog, players)
	}

	switch args[0] {
	case "notes", "detective":
		return c.runNotebook(catalog, players)
	case "simulate":
		if len(args) > 3 {
			c.printUsage()
			return errors.New("invalid arguments for 'simulate' command")
		}
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				c.printUsage()
				return fmt.Errorf("invalid player count %q", args[1])
			}
			players = n
		}
		if len(args) > 2 {
			seed, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				c.printUsage()
				return fmt.Errorf("invalid seed %q", args[2])
			}
			rand.Seed(seed)
		}
		return c.runSimulationMode(catalog, players, rand)
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

func (c *CLI) runNotebook(catalog *cards.Catalog, players int) error {
	C.Info.Fprintln(c.out, "\n--- Cluedo Notebook ---")
	eventManager := events.NewManager()
	eventManager.Subscribe(&NotebookRenderer{out: c.out})
	eventManager.Subscribe(events.ListenerFunc(func(e events.Event) {
		if started, ok := e.(events.SessionStartedEvent); ok {
			c.log.WithField("session", started.SessionID.String()).Debugf("Sheet opened for %d players.", started.Players)
		}
	}))

	engine, err := deduce.NewEngine(catalog, players, c.log, eventManager)
	if err != nil {
		return fmt.Errorf("failed to start notebook: %w", err)
	}
	RenderSheet(c.out, engine.Snapshot())
	c.printHelp()

	for {
		input, err := c.line.Prompt("(cluedo) ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				C.Info.Fprintln(c.out, "\nGoodbye!")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)
		if quit := c.dispatch(engine, input); quit {
			C.Info.Fprintln(c.out, "Goodbye!")
			return nil
		}
	}
}

// dispatch parses and applies one line. It returns true when the operator asked to quit.
func (c *CLI) dispatch(engine *deduce.Engine, input string) bool {
	cmd, err := command.Parse(input, engine)
	if err != nil {
		C.Warn.Fprintf(c.out, "Error: %v\n", err)
		if errors.Is(err, command.ErrUnknownCommand) {
			C.Warn.Fprintln(c.out, "Type 'help' for a list of commands.")
		}
		return false
	}

	switch cmd.Kind {
	case command.KindHelp:
		c.printHelp()
		return false
	case command.KindQuit:
		return true
	}

	if cmd.Kind.Destructive() && !c.confirm("Clear the grid? [y/N] ") {
		C.Info.Fprintln(c.out, "Kept the current grid.")
		return false
	}
	if err := command.Execute(engine, cmd); err != nil {
		C.Warn.Fprintf(c.out, "Error: %v\n", err)
		return false
	}
	c.log.WithField("command", cmd.Kind.String()).Debug("Command applied.")
	if cmd.Kind.Destructive() {
		RenderSheet(c.out, engine.Snapshot())
	}
	return false
}

func (c *CLI) runSimulationMode(catalog *cards.Catalog, players int, rand *rand.Rand) error {
	C.Header.Fprintln(c.out, "--- Running Fast Simulation ---")

	builder := game.NewBuilder(catalog, c.log, rand).WithPlayers(players)
	builder.EventManager().Subscribe(&SimulationRenderer{out: c.out})

	g, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	engine, err := deduce.NewEngine(catalog, players, c.log, builder.EventManager())
	if err != nil {
		return fmt.Errorf("failed to start notebook: %w", err)
	}

	if _, err := g.RunSimulation(engine, simulationTurnLimit); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	fmt.Fprintln(c.out)
	RenderSheet(c.out, engine.Snapshot())
	return nil
}
