package model

// SelectionResult reports the outcome of checking a selected cell path
type SelectionResult struct {
	Valid     bool       // Selection forms a usable straight line
	Found     bool       // The line spells a target word
	Word      string     // Matched target (lowercase), empty when not found
	Direction Direction  // Reading direction, empty for single cells
	Start     Position   // First cell in reading order
	Cells     []Position // Deduplicated cells in reading order
}

// SubmissionResult pairs a selection outcome with the round it advanced
type SubmissionResult struct {
	Selection    SelectionResult
	AlreadyFound bool // Target matched, but on an earlier submission
	Round        *Round
}

// WordScore is the points earned by one found word
type WordScore struct {
	Word   string
	Points int
}

// RoundScore summarizes the points for a round's found words
type RoundScore struct {
	Words           []WordScore
	CompletionBonus int // Matches the word total once every target is found
	Points          int // Word total plus bonus
}

// Hint points at one placed target the player has not found yet
type Hint struct {
	Word      string
	Start     Position
	Direction Direction
	Length    int // Rune length of the word
}
