package model

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Step returns the position one unit along the direction
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Grid is the square letter field a round is played on
type Grid struct {
	Size  int      // Grid dimension (e.g., 10 for 10x10)
	Cells [][]rune // Row-major: Cells[row][col], 0 means unset
}

// NewGrid creates an empty grid of the given size
func NewGrid(size int) *Grid {
	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	return &Grid{
		Size:  size,
		Cells: cells,
	}
}

// Get returns the letter at the given position, or 0 if unset
func (g *Grid) Get(pos Position) rune {
	if !g.InBounds(pos) {
		return 0
	}
	return g.Cells[pos.Row][pos.Col]
}

// Set places a letter at the given position
func (g *Grid) Set(pos Position, letter rune) {
	if g.InBounds(pos) {
		g.Cells[pos.Row][pos.Col] = letter
	}
}

// IsEmpty returns true if the cell at the given position is unset
func (g *Grid) IsEmpty(pos Position) bool {
	return g.Get(pos) == 0
}

// InBounds returns true if the position is within the grid
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Size && pos.Col >= 0 && pos.Col < g.Size
}

// IsFull returns true if every cell holds a letter
func (g *Grid) IsFull() bool {
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if g.Cells[row][col] == 0 {
				return false
			}
		}
	}
	return true
}

// EmptyCount returns the number of unset cells
func (g *Grid) EmptyCount() int {
	count := 0
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if g.Cells[row][col] == 0 {
				count++
			}
		}
	}
	return count
}

// Letters reads the letters along a cell sequence into a string.
// Any out-of-bounds cell makes the whole read empty.
func (g *Grid) Letters(cells []Position) string {
	letters := make([]rune, 0, len(cells))
	for _, pos := range cells {
		if !g.InBounds(pos) {
			return ""
		}
		letters = append(letters, g.Cells[pos.Row][pos.Col])
	}
	return string(letters)
}
