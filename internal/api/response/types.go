package response

import (
	"time"

	"github.com/fillword/fillwordgame-go/internal/model"
)

// Position identifies a grid cell
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromModel converts model.Position
func PositionFromModel(p model.Position) Position {
	return Position{Row: p.Row, Col: p.Col}
}

// Grid represents a puzzle grid
type Grid struct {
	Size  int        `json:"size"`
	Cells [][]string `json:"cells"`
}

// GridFromModel converts model.Grid to response Grid
// Unset cells are represented as empty strings
func GridFromModel(g *model.Grid) Grid {
	cells := make([][]string, g.Size)
	for row := 0; row < g.Size; row++ {
		cells[row] = make([]string, g.Size)
		for col := 0; col < g.Size; col++ {
			if g.Cells[row][col] != 0 {
				cells[row][col] = string(g.Cells[row][col])
			}
		}
	}
	return Grid{Size: g.Size, Cells: cells}
}

// Placement describes where a word sits in the grid
type Placement struct {
	Word      string   `json:"word"`
	Start     Position `json:"start"`
	Direction string   `json:"direction"`
}

// PlacementFromModel converts model.Placement
func PlacementFromModel(p model.Placement) Placement {
	return Placement{
		Word:      p.Word,
		Start:     PositionFromModel(p.Start),
		Direction: string(p.Direction),
	}
}

// WordScore represents the points for a single found word
type WordScore struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}

// Score represents a round's score
type Score struct {
	Words           []WordScore `json:"words"`
	CompletionBonus int         `json:"completion_bonus"`
	Points          int         `json:"points"`
}

// ScoreFromModel converts model.RoundScore
func ScoreFromModel(s *model.RoundScore) Score {
	words := make([]WordScore, len(s.Words))
	for i, w := range s.Words {
		words[i] = WordScore{Word: w.Word, Points: w.Points}
	}
	return Score{
		Words:           words,
		CompletionBonus: s.CompletionBonus,
		Points:          s.Points,
	}
}

// Round represents a round in API responses
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
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// RoundFromModel converts model.Round to a response Round.
// Placements are the puzzle's solution, so they are only included for
// finished rounds, or when includePlacements is set (the create response,
// where the caller hosts the puzzle).
func RoundFromModel(r *model.Round, score *model.RoundScore, includePlacements bool) Round {
	round := Round{
		ID:           string(r.ID),
		Language:     r.Language,
		GridSize:     r.GridSize,
		State:        string(r.State),
		Grid:         GridFromModel(r.Grid),
		TargetWords:  r.TargetWords,
		SkippedWords: r.SkippedWords,
		FoundWords:   r.FoundWords,
		Score:        ScoreFromModel(score),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}

	if includePlacements || r.IsFinished() {
		placements := make([]Placement, len(r.Placements))
		for i, p := range r.Placements {
			placements[i] = PlacementFromModel(p)
		}
		round.Placements = placements
	}

	return round
}

// Selection represents the outcome of checking a selection
type Selection struct {
	Valid     bool       `json:"valid"`
	Found     bool       `json:"found"`
	Word      string     `json:"word,omitempty"`
	Direction string     `json:"direction,omitempty"`
	Start     *Position  `json:"start,omitempty"`
	Cells     []Position `json:"cells,omitempty"`
}

// SelectionFromModel converts model.SelectionResult
func SelectionFromModel(r model.SelectionResult) Selection {
	sel := Selection{
		Valid:     r.Valid,
		Found:     r.Found,
		Word:      r.Word,
		Direction: string(r.Direction),
	}

	if r.Found {
		start := PositionFromModel(r.Start)
		sel.Start = &start
		cells := make([]Position, len(r.Cells))
		for i, c := range r.Cells {
			cells[i] = PositionFromModel(c)
		}
		sel.Cells = cells
	}

	return sel
}

// Submission is the response for a submitted selection
type Submission struct {
	Selection    Selection `json:"selection"`
	AlreadyFound bool      `json:"already_found,omitempty"`
	Round        Round     `json:"round"`
}

// Hint reveals where one unfound word starts
type Hint struct {
	Word      string   `json:"word"`
	Start     Position `json:"start"`
	Direction string   `json:"direction"`
	Length    int      `json:"length"`
}

// HintFromModel converts model.Hint
func HintFromModel(h *model.Hint) Hint {
	return Hint{
		Word:      h.Word,
		Start:     PositionFromModel(h.Start),
		Direction: string(h.Direction),
		Length:    h.Length,
	}
}

// Event is the wire form of a round event
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	RoundID   string    `json:"round_id"`
	Payload   any       `json:"payload,omitempty"`
}

// WordFoundPayload is the wire form of model.WordFoundPayload
type WordFoundPayload struct {
	Word        string   `json:"word"`
	Direction   string   `json:"direction"`
	Start       Position `json:"start"`
	FoundCount  int      `json:"found_count"`
	TargetCount int      `json:"target_count"`
}

// RoundCompletePayload is the wire form of model.RoundCompletePayload
type RoundCompletePayload struct {
	FoundWords []string `json:"found_words"`
	Points     int      `json:"points"`
}

// RoundAbandonedPayload is the wire form of model.RoundAbandonedPayload
type RoundAbandonedPayload struct {
	FoundCount  int `json:"found_count"`
	TargetCount int `json:"target_count"`
}

// HintUsedPayload is the wire form of model.HintUsedPayload
type HintUsedPayload struct {
	Word      string   `json:"word"`
	Start     Position `json:"start"`
	Direction string   `json:"direction"`
}

// EventFromModel converts model.Event, translating its payload to the
// matching wire payload
func EventFromModel(e model.Event) Event {
	event := Event{
		Type:      string(e.Type),
		Timestamp: e.Timestamp,
		RoundID:   string(e.RoundID),
	}

	switch p := e.Payload.(type) {
	case model.WordFoundPayload:
		event.Payload = WordFoundPayload{
			Word:        p.Word,
			Direction:   string(p.Direction),
			Start:       PositionFromModel(p.Start),
			FoundCount:  p.FoundCount,
			TargetCount: p.TargetCount,
		}
	case model.RoundCompletePayload:
		event.Payload = RoundCompletePayload{
			FoundWords: p.FoundWords,
			Points:     p.Points,
		}
	case model.RoundAbandonedPayload:
		event.Payload = RoundAbandonedPayload{
			FoundCount:  p.FoundCount,
			TargetCount: p.TargetCount,
		}
	case model.HintUsedPayload:
		event.Payload = HintUsedPayload{
			Word:      p.Word,
			Start:     PositionFromModel(p.Start),
			Direction: string(p.Direction),
		}
	default:
		event.Payload = e.Payload
	}

	return event
}
