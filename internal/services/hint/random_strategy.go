package hint

import (
	"unicode/utf8"

	"github.com/fillword/fillwordgame-go/internal/dependencies/random"
	"github.com/fillword/fillwordgame-go/internal/model"
)

// RandomStrategy reveals a random placement the player has not found yet
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// PickHint picks one unfound placement uniformly at random
func (s *RandomStrategy) PickHint(round *model.Round) (*model.Hint, error) {
	unfound := round.UnfoundPlacements()
	if len(unfound) == 0 {
		return nil, model.ErrNoHintAvailable
	}

	placement := unfound[s.random.Intn(len(unfound))]
	return &model.Hint{
		Word:      placement.Word,
		Start:     placement.Start,
		Direction: placement.Direction,
		Length:    utf8.RuneCountInString(placement.Word),
	}, nil
}
