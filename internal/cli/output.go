package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Round:
		o.printRound(v)
	case Submission:
		o.printSubmission(v)
	case Hint:
		o.printHint(v)
	case Puzzle:
		o.printPuzzle(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Position response type (matches API)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid response type
type Grid struct {
	Size  int        `json:"size"`
	Cells [][]string `json:"cells"`
}

// Placement response type
type Placement struct {
	Word      string   `json:"word"`
	Start     Position `json:"start"`
	Direction string   `json:"direction"`
}

// WordScore response type
type WordScore struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}

// Score response type
type Score struct {
	Words           []WordScore `json:"words"`
	CompletionBonus int         `json:"completion_bonus"`
	Points          int         `json:"points"`
}

// Round response type
type Round struct {
	ID           string      `json:"id"`
	Language     string      `json:"language"`
	GridSize     int         `json:"grid_size"`
	State        string      `json:"state"`
	Grid         Grid        `json:"grid"`
	TargetWords  []string    `json:"target_words"`
	SkippedWords []string    `json:"skipped_words,omitempty"`
	FoundWords   []string    `json:"found_words"`
	Placements   []Placement `json:"placements,omitempty"`
	Score        Score       `json:"score"`
}

// Selection response type
type Selection struct {
	Valid     bool       `json:"valid"`
	Found     bool       `json:"found"`
	Word      string     `json:"word,omitempty"`
	Direction string     `json:"direction,omitempty"`
	Start     *Position  `json:"start,omitempty"`
	Cells     []Position `json:"cells,omitempty"`
}

// Submission response type
type Submission struct {
	Selection    Selection `json:"selection"`
	AlreadyFound bool      `json:"already_found,omitempty"`
	Round        Round     `json:"round"`
}

// Hint response type
type Hint struct {
	Word      string   `json:"word"`
	Start     Position `json:"start"`
	Direction string   `json:"direction"`
	Length    int      `json:"length"`
}

// Puzzle is a locally generated grid with its answer key
type Puzzle struct {
	Grid       Grid        `json:"grid"`
	Placements []Placement `json:"placements"`
	Skipped    []string    `json:"skipped,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRound(r Round) {
	fmt.Printf("Round: %s\n", r.ID)
	fmt.Printf("State: %s\n", r.State)
	fmt.Printf("Language: %s\n", r.Language)
	fmt.Printf("Grid Size: %d\n", r.GridSize)
	fmt.Println()
	o.printGrid(r.Grid)

	fmt.Printf("\nTargets (%d): %s\n", len(r.TargetWords), strings.Join(r.TargetWords, ", "))
	if len(r.SkippedWords) > 0 {
		fmt.Printf("Skipped: %s\n", strings.Join(r.SkippedWords, ", "))
	}
	if len(r.FoundWords) > 0 {
		fmt.Printf("Found (%d/%d): %s\n", len(r.FoundWords), len(r.TargetWords), strings.Join(r.FoundWords, ", "))
	}
	if r.Score.Points > 0 {
		fmt.Printf("Score: %d points\n", r.Score.Points)
	}

	if len(r.Placements) > 0 {
		fmt.Println("\nAnswers:")
		o.printPlacements(r.Placements)
	}
}

func (o *Output) printSubmission(s Submission) {
	switch {
	case !s.Selection.Valid:
		fmt.Println("Selection is not a straight line")
	case !s.Selection.Found:
		fmt.Println("No word there")
	case s.AlreadyFound:
		fmt.Printf("Already found: %s\n", s.Selection.Word)
	default:
		start := s.Selection.Start
		fmt.Printf("Found: %s at (%d,%d) going %s\n", s.Selection.Word, start.Row, start.Col, s.Selection.Direction)
	}

	fmt.Printf("Progress: %d/%d words\n", len(s.Round.FoundWords), len(s.Round.TargetWords))

	if s.Round.State == "complete" {
		fmt.Printf("Round complete! Final score: %d points\n", s.Round.Score.Points)
	}
}

func (o *Output) printHint(h Hint) {
	fmt.Printf("Hint: %q starts at (%d,%d) going %s (%d letters)\n",
		h.Word, h.Start.Row, h.Start.Col, h.Direction, h.Length)
}

func (o *Output) printPuzzle(p Puzzle) {
	o.printGrid(p.Grid)

	if len(p.Placements) > 0 {
		fmt.Println("\nAnswers:")
		o.printPlacements(p.Placements)
	}
	if len(p.Skipped) > 0 {
		fmt.Printf("\nSkipped: %s\n", strings.Join(p.Skipped, ", "))
	}
}

func (o *Output) printPlacements(placements []Placement) {
	for _, p := range placements {
		fmt.Printf("  - %s at (%d,%d) going %s\n", p.Word, p.Start.Row, p.Start.Col, p.Direction)
	}
}

func (o *Output) printGrid(g Grid) {
	if len(g.Cells) == 0 {
		return
	}

	size := len(g.Cells)

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf(" %d ", col)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	// Print rows
	for row := 0; row < size; row++ {
		fmt.Printf(" %d |", row)
		for col := 0; col < size; col++ {
			cell := g.Cells[row][col]
			if cell == "" {
				fmt.Print(" . ")
			} else {
				fmt.Printf(" %s ", cell)
			}
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
