package model

// Direction names one of the eight straight lines a word can run along
type Direction string

const (
	DirectionRight     Direction = "right"
	DirectionLeft      Direction = "left"
	DirectionDown      Direction = "down"
	DirectionUp        Direction = "up"
	DirectionDownRight Direction = "down-right"
	DirectionDownLeft  Direction = "down-left"
	DirectionUpRight   Direction = "up-right"
	DirectionUpLeft    Direction = "up-left"
)

// directionDeltas is the single vector table for all eight directions.
// Placement and selection both resolve through it; there is no second copy.
var directionDeltas = map[Direction][2]int{
	DirectionRight:     {0, 1},
	DirectionLeft:      {0, -1},
	DirectionDown:      {1, 0},
	DirectionUp:        {-1, 0},
	DirectionDownRight: {1, 1},
	DirectionDownLeft:  {1, -1},
	DirectionUpRight:   {-1, 1},
	DirectionUpLeft:    {-1, -1},
}

// allDirections lists the directions in declaration order
var allDirections = []Direction{
	DirectionRight,
	DirectionLeft,
	DirectionDown,
	DirectionUp,
	DirectionDownRight,
	DirectionDownLeft,
	DirectionUpRight,
	DirectionUpLeft,
}

// Directions returns the eight directions in a fixed order
func Directions() []Direction {
	dirs := make([]Direction, len(allDirections))
	copy(dirs, allDirections)
	return dirs
}

// Delta returns the per-step row and column offsets for the direction
func (d Direction) Delta() (dr int, dc int) {
	delta, ok := directionDeltas[d]
	if !ok {
		return 0, 0
	}
	return delta[0], delta[1]
}

// IsValid returns true if d is one of the eight known directions
func (d Direction) IsValid() bool {
	_, ok := directionDeltas[d]
	return ok
}

// DirectionFromDelta resolves a unit step back to a direction name.
// The zero vector and any non-unit step resolve to nothing.
func DirectionFromDelta(dr, dc int) (Direction, bool) {
	for dir, delta := range directionDeltas {
		if delta[0] == dr && delta[1] == dc {
			return dir, true
		}
	}
	return "", false
}
