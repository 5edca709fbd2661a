package cli

import (
	"fmt"
	"io"
	"strings"

	"cluedo-toolbox/internal/cards"
	"cluedo-toolbox/internal/events"
	"cluedo-toolbox/internal/notes"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Case *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Case:   color.New(color.FgHiMagenta, color.Bold),
}

// Grid symbols.
const (
	YesSymbol   = "✅"
	NoSymbol    = "❌"
	MaybeSymbol = "?"
	CaseMarker  = "★ "
)

// RenderSheet draws the notebook grid, the case file and the next suggestion.
func RenderSheet(w io.Writer, snap notes.Snapshot) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Detective Notes")

	header := table.Row{"Card"}
	for _, seat := range snap.Seats {
		header = append(header, fmt.Sprintf("%s (%d/%d)", seat.Player, seat.Known, seat.Expected))
	}
	t.AppendHeader(header)

	for i, r := range snap.Rows {
		if i > 0 && r.Card.Category != snap.Rows[i-1].Card.Category {
			t.AppendSeparator()
		}
		name := r.Card.Name
		if r.InCase {
			name = C.Case.Sprint(CaseMarker + name)
		}
		row := table.Row{name}
		for _, st := range r.Marks {
			row = append(row, statusToSymbol(st))
		}
		t.AppendRow(row)
	}

	columns := []table.ColumnConfig{{Number: 1, Align: text.AlignLeft}}
	for i := range snap.Seats {
		columns = append(columns, table.ColumnConfig{Number: i + 2, Align: text.AlignCenter, AlignHeader: text.AlignCenter})
	}
	t.SetColumnConfigs(columns)
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	t.Style().Format.Header = text.FormatDefault
	t.Render()

	if len(snap.CaseFile) > 0 {
		C.Case.Fprintf(w, "%sCase file: %s\n", CaseMarker, joinCaseFile(snap.CaseFile, " • "))
	}
	C.Info.Fprintln(w, snap.Suggestion.String())
}

func statusToSymbol(status notes.Status) string {
	switch status {
	case notes.StatusYes:
		return YesSymbol
	case notes.StatusNo:
		return NoSymbol
	case notes.StatusMaybe:
		return C.Maybe.Sprint(MaybeSymbol)
	default:
		return ""
	}
}

// NotebookRenderer redraws the grid after every command and announces deductions.
type NotebookRenderer struct {
	out io.Writer
}

// HandleEvent is the central dispatcher for rendering events.
func (r *NotebookRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.SessionStartedEvent:
		C.Header.Fprintf(r.out, "\n--- New sheet: %d players ---\n", event.Players)
	case events.CardDeducedEvent:
		C.Info.Fprintf(r.out, "-> %s must have shown %s.\n", event.Player, event.Card.Name)
	case events.CaseFileSolvedEvent:
		C.Case.Fprintf(r.out, "%s%s is in the case file.\n", CaseMarker, event.Card.Name)
		if event.Complete {
			C.Yes.Fprintln(r.out, "The case is solved!")
		}
	case events.CommandAppliedEvent:
		RenderSheet(r.out, event.Snapshot)
	}
}

// SimulationRenderer implements the events.Listener interface to narrate a simulated game.
type SimulationRenderer struct {
	out io.Writer
}

// HandleEvent is the central dispatcher for rendering events.
func (r *SimulationRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.TurnStartEvent:
		C.Header.Fprintf(r.out, "\n--- Turn %d: %s ---\n", event.TurnNumber, event.Player)
	case events.SuggestionMadeEvent:
		var parts []string
		for _, c := range event.Trio {
			parts = append(parts, c.Name)
		}
		C.Info.Fprintf(r.out, "%s suggests: %s\n", event.Player, strings.Join(parts, ", "))
	case events.DisprovalEvent:
		if event.Suggester == notes.You {
			C.Info.Fprintf(r.out, "-> %s shows you %s.\n", event.Disprover, event.RevealedCard.Name)
		} else {
			C.Info.Fprintf(r.out, "-> %s shows a card to %s.\n", event.Disprover, event.Suggester)
		}
	case events.NoDisprovalEvent:
		C.Info.Fprintln(r.out, "-> No player could show a card.")
	case events.CardDeducedEvent:
		C.Info.Fprintf(r.out, "   (deduced: %s holds %s)\n", event.Player, event.Card.Name)
	case events.CaseFileSolvedEvent:
		C.Case.Fprintf(r.out, "%s%s is in the case file.\n", CaseMarker, event.Card.Name)
	case events.GameOverEvent:
		r.renderGameResult(event)
	}
}

func (r *SimulationRenderer) renderGameResult(event events.GameOverEvent) {
	C.Header.Fprintln(r.out, "\n--- GAME OVER ---")
	C.Info.Fprintf(r.out, "Turns played: %d\n", event.Turns)
	C.Info.Fprintf(r.out, "The correct solution was: %s\n", joinCaseFile(event.Solution, ", "))
	if len(event.Deduced) == len(cards.Categories) {
		C.Info.Fprintf(r.out, "The notebook deduced:     %s\n", joinCaseFile(event.Deduced, ", "))
	}
	if event.Correct {
		C.Yes.Fprintln(r.out, "The notebook solved the case!")
	} else {
		C.No.Fprintln(r.out, "The notebook did not solve the case.")
	}
}

func joinCaseFile(m map[cards.Category]cards.Card, sep string) string {
	var parts []string
	for _, cat := range cards.Categories {
		if c, ok := m[cat]; ok {
			parts = append(parts, c.Name)
		} else {
			parts = append(parts, "?")
		}
	}
	return strings.Join(parts, sep)
}
