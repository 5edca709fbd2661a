package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// --- Prompting and Usage ---

func (c *CLI) printUsage() {
	C.Header.Fprintln(c.out, "\n--- Cluedo Toolbox ---")
	fmt.Fprintln(c.out, "Usage:")
	fmt.Fprintln(c.out, "  go run ./cmd/cluedo [notes]")
	fmt.Fprintln(c.out, "    To keep detective notes for a real-life game.")
	fmt.Fprintln(c.out, "  go run ./cmd/cluedo simulate [players] [seed]")
	fmt.Fprintln(c.out, "    To watch the notebook solve a dealt game on its own.")
	fmt.Fprintln(c.out, "\nFlags:")
	fmt.Fprintln(c.out, "  -players 4         Number of players at the table (3-6).")
	fmt.Fprintln(c.out, "  -config cards.yaml Load a custom card catalog.")
	fmt.Fprintln(c.out, "  -loglevel debug    Enable detailed deduction tracing.")
}

func (c *CLI) printHelp() {
	C.Header.Fprintln(c.out, "\n--- Notebook Help ---")
	fmt.Fprintln(c.out, "Players are 'you' or a seat number counted clockwise from you (2, 3, ...).")

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.AppendHeader(table.Row{"Command", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"own <card> <card> ...", "Record the cards in your hand."},
		{"not <player> <card>", "Player does not hold the card."},
		{"has <player> <card>", "Player holds the card."},
		{"is <card>", "The card is in the case file."},
		{"ask <player> <s> <w> <r> <p>... | none", "Another player's suggestion and who showed a card."},
		{"play <s> <w> <r> <p> [card] ... | none", "Your suggestion; a player followed by a card showed it, alone passed."},
		{"players <n>", "Start over with a different table size."},
		{"reset", "Clear the grid."},
		{"help", "Show this help message."},
		{"quit", "Leave the notebook."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// confirm asks a yes/no question. Anything but y or yes counts as no.
func (c *CLI) confirm(prompt string) bool {
	answer, ok := c.promptForString(prompt)
	if !ok {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// promptForString reads one trimmed line. It reports false when input was aborted.
func (c *CLI) promptForString(prompt string) (string, bool) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(input), true
}
