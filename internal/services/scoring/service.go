package scoring

import (
	"unicode/utf8"

	"github.com/fillword/fillwordgame-go/internal/model"
)

// Service computes scores for rounds
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Score calculates the score for a round from the words found so far.
// Each found word is worth one point per letter, and finishing the round
// doubles the total via a completion bonus.
func (s *Service) Score(round *model.Round) *model.RoundScore {
	result := &model.RoundScore{
		Words: []model.WordScore{},
	}

	wordTotal := 0
	for _, word := range round.FoundWords {
		points := utf8.RuneCountInString(word)
		result.Words = append(result.Words, model.WordScore{
			Word:   word,
			Points: points,
		})
		wordTotal += points
	}

	if round.State == model.RoundStateComplete {
		result.CompletionBonus = wordTotal
	}
	result.Points = wordTotal + result.CompletionBonus

	return result
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(round *model.Round) *model.RoundScore
}

var _ ServiceInterface = (*Service)(nil)
