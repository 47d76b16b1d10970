package selection

import (
	"strings"

	"github.com/fillword/fillwordgame-go/internal/model"
)

// Service validates selected cell paths against a grid and its target
// words. It is stateless: every call stands alone and nothing is mutated.
type Service struct{}

// New creates a new selection service
func New() *Service {
	return &Service{}
}

// Check reports whether cells trace a straight line through the grid and
// whether the letters along it spell a target word, read forward or
// backward. A reversed match comes back in reading order: cells reversed,
// start and direction recomputed from the returned order.
//
// Malformed selections (empty, out of bounds, bent or gapped lines) yield
// Valid=false; a clean line that spells no target yields Valid=true,
// Found=false. Neither is an error.
func (s *Service) Check(grid *model.Grid, cells []model.Position, targetWords []string) model.SelectionResult {
	deduped := dedupeConsecutive(cells)
	if len(deduped) == 0 {
		return model.SelectionResult{}
	}

	for _, pos := range deduped {
		if !grid.InBounds(pos) {
			return model.SelectionResult{}
		}
	}

	// A single cell has no direction but may still match a one-letter target
	if len(deduped) == 1 {
		result := model.SelectionResult{
			Valid: true,
			Start: deduped[0],
			Cells: deduped,
		}
		if word, ok := matchTarget(grid.Letters(deduped), targetWords); ok {
			result.Found = true
			result.Word = word
		}
		return result
	}

	// Every consecutive pair must share one unit-vector delta
	dr := deduped[1].Row - deduped[0].Row
	dc := deduped[1].Col - deduped[0].Col
	direction, ok := model.DirectionFromDelta(dr, dc)
	if !ok {
		return model.SelectionResult{}
	}
	for i := 1; i < len(deduped); i++ {
		if deduped[i].Row-deduped[i-1].Row != dr || deduped[i].Col-deduped[i-1].Col != dc {
			return model.SelectionResult{}
		}
	}

	result := model.SelectionResult{
		Valid:     true,
		Direction: direction,
		Start:     deduped[0],
		Cells:     deduped,
	}

	letters := grid.Letters(deduped)
	if word, ok := matchTarget(letters, targetWords); ok {
		result.Found = true
		result.Word = word
		return result
	}

	if word, ok := matchTarget(reverseString(letters), targetWords); ok {
		reversed := reversePositions(deduped)
		readingDir, _ := model.DirectionFromDelta(
			reversed[1].Row-reversed[0].Row,
			reversed[1].Col-reversed[0].Col,
		)

		result.Found = true
		result.Word = word
		result.Direction = readingDir
		result.Start = reversed[0]
		result.Cells = reversed
	}

	return result
}

// IsGameWon returns true once every target word appears among the found
// words, case-insensitively. A round with no targets is never won.
func (s *Service) IsGameWon(foundWords, targetWords []string) bool {
	if len(targetWords) == 0 {
		return false
	}
	for _, target := range targetWords {
		found := false
		for _, word := range foundWords {
			if strings.EqualFold(word, target) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// dedupeConsecutive drops immediately repeated cells, which fast pointer
// movement produces. Non-adjacent repeats are left alone.
func dedupeConsecutive(cells []model.Position) []model.Position {
	deduped := make([]model.Position, 0, len(cells))
	for _, pos := range cells {
		if len(deduped) > 0 && deduped[len(deduped)-1] == pos {
			continue
		}
		deduped = append(deduped, pos)
	}
	return deduped
}

// matchTarget looks the candidate up in the target list, case-insensitively.
// It returns the matched target lowercased.
func matchTarget(candidate string, targetWords []string) (string, bool) {
	for _, target := range targetWords {
		if strings.EqualFold(candidate, target) {
			return strings.ToLower(target), true
		}
	}
	return "", false
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func reversePositions(cells []model.Position) []model.Position {
	reversed := make([]model.Position, len(cells))
	for i, pos := range cells {
		reversed[len(cells)-1-i] = pos
	}
	return reversed
}

// Interface check
type ServiceInterface interface {
	Check(grid *model.Grid, cells []model.Position, targetWords []string) model.SelectionResult
	IsGameWon(foundWords, targetWords []string) bool
}

var _ ServiceInterface = (*Service)(nil)
