package model

// Placement records where a word landed in the grid
type Placement struct {
	Word      string
	Start     Position
	Direction Direction
	Cells     []Position // One entry per letter, in reading order
}

// Puzzle is the output of grid generation: a fully filled grid plus the
// words that made it in and the words that did not
type Puzzle struct {
	Grid       *Grid
	Placements []Placement
	Skipped    []string
}

// PlacedWords returns the committed words in placement order
func (p *Puzzle) PlacedWords() []string {
	words := make([]string, len(p.Placements))
	for i, placement := range p.Placements {
		words[i] = placement.Word
	}
	return words
}
