package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/wordsland/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		o.println(string(data))
	} else {
		o.println(msg)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) println(args ...any) {
	_, _ = fmt.Fprintln(o.w, args...)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Session:
		o.printSession(v)
	case response.CommitResponse:
		o.printCommit(v)
	case response.HistoryResponse:
		o.printHistory(v)
	case response.HealthResponse:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSession(s response.Session) {
	o.printf("Session: %s\n", s.ID)
	o.printf("Round: %d\n", s.RoundNumber)
	o.printf("Bag: %d tiles\n", s.BagRemaining)
	if len(s.Words) > 0 {
		o.printf("Words: %s\n", strings.Join(s.Words, ", "))
	}
	if s.RoundWon {
		o.println("Target reached! Run 'next-round' to continue.")
	} else if !s.FirstWordPlayed {
		o.printf("Opening word must cover the start at (%d,%d)\n", s.Start.Row, s.Start.Col)
	}

	o.println()
	o.printBoard(s.Cells)
	o.println()
	o.printHand(s.Hand, s.Swap)
}

// cellSymbol renders one cell; placed letters are lowercase, locked uppercase
func cellSymbol(c response.Cell) string {
	switch c.Kind {
	case "start":
		return "S"
	case "target":
		return "T"
	case "obstacle":
		return "#"
	case "reward":
		return "+"
	case "letter":
		return strings.ToLower(c.Letter)
	case "locked":
		return c.Letter
	default:
		return "."
	}
}

func (o *Output) printBoard(cells [][]response.Cell) {
	if len(cells) == 0 {
		return
	}

	cols := len(cells[0])

	// Print column headers
	o.printf("    ")
	for col := 0; col < cols; col++ {
		o.printf("%3d", col)
	}
	o.println()

	// Print top border
	o.printf("    +")
	o.printf("%s", strings.Repeat("---", cols))
	o.println("+")

	// Print rows
	for row, line := range cells {
		o.printf("%3d |", row)
		for _, cell := range line {
			o.printf(" %s ", cellSymbol(cell))
		}
		o.println("|")
	}

	// Print bottom border
	o.printf("    +")
	o.printf("%s", strings.Repeat("---", cols))
	o.println("+")
}

func (o *Output) printHand(hand []string, swap response.Swap) {
	selected := make(map[int]bool, len(swap.Selection))
	for _, i := range swap.Selection {
		selected[i] = true
	}

	o.printf("Hand:")
	for i, letter := range hand {
		if selected[i] {
			o.printf(" [%d:%s]", i, letter)
		} else {
			o.printf(" %d:%s", i, letter)
		}
	}
	o.println()

	if swap.Active {
		o.println("Swap mode: select letters with 'swap toggle', then 'swap confirm'")
	}
}

func (o *Output) printCommit(c response.CommitResponse) {
	o.printf("Word accepted: %s\n", c.Word)
	for _, r := range c.Rewards {
		o.printf("Reward at (%d,%d): +%d %s tiles\n", r.Position.Row, r.Position.Col, r.Count, r.Class)
	}
	if c.RoundWon {
		o.println("Target reached!")
	} else {
		o.printf("Drew %d tiles\n", c.Drawn)
	}
	o.println()
	o.printSession(c.Session)
}

func (o *Output) printHistory(h response.HistoryResponse) {
	if len(h.Rounds) == 0 {
		o.println("No rounds completed yet")
		return
	}
	for _, r := range h.Rounds {
		o.printf("Round %d (%s): %s\n", r.Round, r.CompletedAt.Format("2006-01-02 15:04"), strings.Join(r.Words, ", "))
	}
}

func (o *Output) printHealth(h response.HealthResponse) {
	o.printf("Status: %s\n", h.Status)
	o.printf("Dictionary: %d words\n", h.DictionaryWords)
	o.printf("Sessions: %d\n", h.Sessions)
}
