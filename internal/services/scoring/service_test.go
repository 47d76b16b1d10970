package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fillword/fillwordgame-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func (s *ServiceSuite) round(state model.RoundState, found ...string) *model.Round {
	return &model.Round{
		ID:          "round-1",
		State:       state,
		TargetWords: []string{"cat", "bird", "mountain"},
		FoundWords:  found,
	}
}

func (s *ServiceSuite) TestScoreNoWordsFound() {
	result := s.service.Score(s.round(model.RoundStateActive))

	s.Empty(result.Words)
	s.Equal(0, result.CompletionBonus)
	s.Equal(0, result.Points)
}

func (s *ServiceSuite) TestScorePointPerLetter() {
	result := s.service.Score(s.round(model.RoundStateActive, "cat", "bird"))

	s.Require().Len(result.Words, 2)
	s.Equal(model.WordScore{Word: "cat", Points: 3}, result.Words[0])
	s.Equal(model.WordScore{Word: "bird", Points: 4}, result.Words[1])
	s.Equal(0, result.CompletionBonus)
	s.Equal(7, result.Points)
}

func (s *ServiceSuite) TestScoreCountsRunesNotBytes() {
	round := s.round(model.RoundStateActive, "река")
	result := s.service.Score(round)

	s.Equal(4, result.Points)
}

func (s *ServiceSuite) TestScoreCompletionDoubles() {
	result := s.service.Score(s.round(model.RoundStateComplete, "cat", "bird", "mountain"))

	s.Equal(15, result.CompletionBonus)
	s.Equal(30, result.Points)
}

func (s *ServiceSuite) TestScoreAbandonedGetsNoBonus() {
	result := s.service.Score(s.round(model.RoundStateAbandoned, "cat"))

	s.Equal(0, result.CompletionBonus)
	s.Equal(3, result.Points)
}

func (s *ServiceSuite) TestScorePreservesFoundOrder() {
	result := s.service.Score(s.round(model.RoundStateActive, "bird", "cat"))

	s.Equal("bird", result.Words[0].Word)
	s.Equal("cat", result.Words[1].Word)
}
