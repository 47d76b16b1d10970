package hint_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fillword/fillwordgame-go/internal/dependencies/mocks"
	"github.com/fillword/fillwordgame-go/internal/model"
	"github.com/fillword/fillwordgame-go/internal/services/hint"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *hint.RandomStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = hint.NewRandomStrategy(s.mockRandom)
}

func (s *StrategySuite) round(found ...string) *model.Round {
	return &model.Round{
		ID:    "round-1",
		State: model.RoundStateActive,
		Placements: []model.Placement{
			{Word: "cat", Start: model.Position{Row: 0, Col: 0}, Direction: model.DirectionRight},
			{Word: "bird", Start: model.Position{Row: 2, Col: 0}, Direction: model.DirectionDown},
		},
		TargetWords: []string{"cat", "bird"},
		FoundWords:  found,
	}
}

func (s *StrategySuite) TestPickHint_RevealsPlacement() {
	// Both words unfound, random picks index 1
	s.mockRandom.QueueIntn(1)

	h, err := s.strategy.PickHint(s.round())
	s.Require().NoError(err)
	s.Equal("bird", h.Word)
	s.Equal(model.Position{Row: 2, Col: 0}, h.Start)
	s.Equal(model.DirectionDown, h.Direction)
	s.Equal(4, h.Length)
}

func (s *StrategySuite) TestPickHint_SkipsFoundWords() {
	// "cat" is found, so the only candidate is "bird"
	s.mockRandom.QueueIntn(0)

	h, err := s.strategy.PickHint(s.round("cat"))
	s.Require().NoError(err)
	s.Equal("bird", h.Word)
}

func (s *StrategySuite) TestPickHint_AllWordsFound() {
	_, err := s.strategy.PickHint(s.round("cat", "bird"))
	s.ErrorIs(err, model.ErrNoHintAvailable)
}

func (s *StrategySuite) TestPickHint_NoPlacements() {
	round := &model.Round{ID: "round-1", State: model.RoundStateActive}

	_, err := s.strategy.PickHint(round)
	s.ErrorIs(err, model.ErrNoHintAvailable)
}

func (s *StrategySuite) TestPickHint_LengthCountsRunes() {
	round := &model.Round{
		ID:    "round-1",
		State: model.RoundStateActive,
		Placements: []model.Placement{
			{Word: "река", Start: model.Position{Row: 0, Col: 0}, Direction: model.DirectionRight},
		},
		TargetWords: []string{"река"},
	}
	s.mockRandom.QueueIntn(0)

	h, err := s.strategy.PickHint(round)
	s.Require().NoError(err)
	s.Equal(4, h.Length)
}
