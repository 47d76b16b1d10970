package generator

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/suite"

	"github.com/fillword/fillwordgame-go/internal/dependencies/mocks"
	"github.com/fillword/fillwordgame-go/internal/dependencies/random"
	"github.com/fillword/fillwordgame-go/internal/model"
	"github.com/fillword/fillwordgame-go/internal/services/alphabet"
	"github.com/fillword/fillwordgame-go/internal/testutil"
)

// staticFiller always supplies the same letter, keeping grids readable
// in deterministic tests
type staticFiller struct {
	letter rune
}

func (f *staticFiller) Letter(language string) rune {
	return f.letter
}

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random, &staticFiller{letter: 'x'}, testutil.NopLogger())
}

// Generate tests
//
// With an exhausted mock queue, Perm yields the identity permutation and
// Intn yields 0, so the first candidate is always (0,0) heading right.

func (s *ServiceSuite) TestGeneratePlacesWordAtFirstCandidate() {
	puzzle, err := s.service.Generate([]string{"cat"}, 3, "en")
	s.Require().NoError(err)

	s.Require().Len(puzzle.Placements, 1)
	placement := puzzle.Placements[0]
	s.Equal("cat", placement.Word)
	s.Equal(model.Position{Row: 0, Col: 0}, placement.Start)
	s.Equal(model.DirectionRight, placement.Direction)
	s.Equal([]model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}, placement.Cells)

	s.Equal("cat", puzzle.Grid.Letters(placement.Cells))
	s.Empty(puzzle.Skipped)
}

func (s *ServiceSuite) TestGenerateLowercasesWords() {
	puzzle, err := s.service.Generate([]string{"CaT"}, 3, "en")
	s.Require().NoError(err)

	s.Require().Len(puzzle.Placements, 1)
	s.Equal("cat", puzzle.Placements[0].Word)
	s.Equal('c', puzzle.Grid.Get(model.Position{Row: 0, Col: 0}))
}

func (s *ServiceSuite) TestGenerateFillsEveryCell() {
	puzzle, err := s.service.Generate([]string{"cat"}, 3, "en")
	s.Require().NoError(err)

	s.True(puzzle.Grid.IsFull())
	s.Equal(0, puzzle.Grid.EmptyCount())
	// Cells not covered by the placement hold the filler letter
	s.Equal('x', puzzle.Grid.Get(model.Position{Row: 1, Col: 0}))
	s.Equal('x', puzzle.Grid.Get(model.Position{Row: 2, Col: 2}))
}

func (s *ServiceSuite) TestGenerateUsesQueuedDirectionPermutation() {
	// First direction tried is index 2 of the fixed order: down
	s.random.QueuePerm([]int{2, 0, 1, 3, 4, 5, 6, 7})

	puzzle, err := s.service.Generate([]string{"cat"}, 3, "en")
	s.Require().NoError(err)

	s.Require().Len(puzzle.Placements, 1)
	s.Equal(model.DirectionDown, puzzle.Placements[0].Direction)
	s.Equal([]model.Position{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0},
	}, puzzle.Placements[0].Cells)
}

func (s *ServiceSuite) TestGenerateWordsCrossOnMatchingLetter() {
	// cat goes right from (0,0); car goes down from (0,0), sharing the c
	s.random.QueuePerm(
		[]int{0, 1, 2, 3, 4, 5, 6, 7},
		[]int{2, 0, 1, 3, 4, 5, 6, 7},
	)

	puzzle, err := s.service.Generate([]string{"cat", "car"}, 3, "en")
	s.Require().NoError(err)

	s.Require().Len(puzzle.Placements, 2)
	s.Empty(puzzle.Skipped)
	s.Equal("cat", puzzle.Grid.Letters(puzzle.Placements[0].Cells))
	s.Equal("car", puzzle.Grid.Letters(puzzle.Placements[1].Cells))
	s.Equal('c', puzzle.Grid.Get(model.Position{Row: 0, Col: 0}))
}

func (s *ServiceSuite) TestGenerateSkipsBlockedWordAfterBudget() {
	// Every attempt for dog starts at (0,0), where cat's c blocks its d
	// in all eight directions. The word is skipped, never an error.
	puzzle, err := s.service.Generate([]string{"cat", "dog"}, 3, "en")
	s.Require().NoError(err)

	s.Require().Len(puzzle.Placements, 1)
	s.Equal("cat", puzzle.Placements[0].Word)
	s.Equal([]string{"dog"}, puzzle.Skipped)
	s.True(puzzle.Grid.IsFull())
}

func (s *ServiceSuite) TestGenerateSortsLongestFirstKeepingTies() {
	// abcd first, then ab (overlaying its first two letters), then xy
	// blocked at (0,0) until the budget runs out
	puzzle, err := s.service.Generate([]string{"ab", "abcd", "xy"}, 5, "en")
	s.Require().NoError(err)

	s.Require().Len(puzzle.Placements, 2)
	s.Equal("abcd", puzzle.Placements[0].Word)
	s.Equal("ab", puzzle.Placements[1].Word)
	s.Equal([]string{"xy"}, puzzle.Skipped)
}

func (s *ServiceSuite) TestGenerateSkipsWordLongerThanDiagonal() {
	// floor(sqrt(2) * 3) = 4, so a 10-letter word can never fit
	puzzle, err := s.service.Generate([]string{"abcdefghij"}, 3, "en")
	s.Require().NoError(err)

	s.Empty(puzzle.Placements)
	s.Equal([]string{"abcdefghij"}, puzzle.Skipped)
	s.True(puzzle.Grid.IsFull())
}

func (s *ServiceSuite) TestGenerateWordWithinGateButLongerThanAnyLine() {
	// Length 4 passes the floor(sqrt(2)*3) = 4 gate but no straight line
	// in a 3x3 grid holds 4 cells; the word burns its budget and skips
	puzzle, err := s.service.Generate([]string{"abcd"}, 3, "en")
	s.Require().NoError(err)

	s.Empty(puzzle.Placements)
	s.Equal([]string{"abcd"}, puzzle.Skipped)
}

func (s *ServiceSuite) TestGenerateRejectsNonPositiveGridSize() {
	_, err := s.service.Generate([]string{"cat"}, 0, "en")
	s.ErrorIs(err, model.ErrInvalidGridSize)

	_, err = s.service.Generate([]string{"cat"}, -1, "en")
	s.ErrorIs(err, model.ErrInvalidGridSize)
}

func (s *ServiceSuite) TestGenerateEmptyWordList() {
	puzzle, err := s.service.Generate(nil, 2, "en")
	s.Require().NoError(err)

	s.Empty(puzzle.Placements)
	s.Empty(puzzle.Skipped)
	s.True(puzzle.Grid.IsFull())
}

// Structural invariants under real randomness. Outcomes are
// non-deterministic, so these assert shape, never exact grids.

func TestGenerateStructuralInvariants(t *testing.T) {
	rnd := random.New()
	service := New(rnd, alphabet.New(rnd), testutil.NopLogger())

	words := []string{"mountain", "river", "forest", "cloud", "stone", "leaf", "sun", "sky", "rain", "wind"}

	for run := 0; run < 5; run++ {
		puzzle, err := service.Generate(words, 10, "en")
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}

		if !puzzle.Grid.IsFull() {
			t.Fatal("generated grid has unset cells")
		}

		for row := 0; row < puzzle.Grid.Size; row++ {
			for col := 0; col < puzzle.Grid.Size; col++ {
				letter := puzzle.Grid.Cells[row][col]
				if !unicode.IsLetter(letter) || !unicode.IsLower(letter) {
					t.Fatalf("cell (%d,%d) holds %q, want a lowercase letter", row, col, letter)
				}
			}
		}

		for _, placement := range puzzle.Placements {
			if got := puzzle.Grid.Letters(placement.Cells); got != placement.Word {
				t.Fatalf("grid spells %q along placement of %q", got, placement.Word)
			}

			dr, dc := placement.Direction.Delta()
			for i := 1; i < len(placement.Cells); i++ {
				stepR := placement.Cells[i].Row - placement.Cells[i-1].Row
				stepC := placement.Cells[i].Col - placement.Cells[i-1].Col
				if stepR != dr || stepC != dc {
					t.Fatalf("placement of %q is not a straight %s line", placement.Word, placement.Direction)
				}
			}

			if placement.Cells[0] != placement.Start {
				t.Fatalf("placement of %q starts at %v, cells begin at %v",
					placement.Word, placement.Start, placement.Cells[0])
			}
		}

		if len(puzzle.Placements)+len(puzzle.Skipped) != len(words) {
			t.Fatalf("placements (%d) + skipped (%d) != words (%d)",
				len(puzzle.Placements), len(puzzle.Skipped), len(words))
		}
	}
}
