package generator

import (
	"log/slog"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fillword/fillwordgame-go/internal/dependencies/random"
	"github.com/fillword/fillwordgame-go/internal/model"
)

// maxPlacementAttempts bounds the randomized placement search per word.
// The cap is part of placement behavior: changing it changes skip rates.
const maxPlacementAttempts = 200

// FillerSource supplies random filler letters for a language
type FillerSource interface {
	Letter(language string) rune
}

// Service builds fillword puzzles: it hides words along straight lines in
// a square grid and fills the leftover cells with language noise
type Service struct {
	random random.Random
	filler FillerSource
	logger *slog.Logger
}

// New creates a new generator service
func New(rnd random.Random, filler FillerSource, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		filler: filler,
		logger: logger,
	}
}

// Generate builds a puzzle from the given words. Longer words are placed
// first; words that cannot fit within the attempt budget are reported in
// Skipped rather than failing the whole puzzle. The returned grid is
// always fully populated.
func (s *Service) Generate(words []string, gridSize int, language string) (*model.Puzzle, error) {
	if gridSize <= 0 {
		return nil, model.ErrInvalidGridSize
	}

	// Longest first: long words have the fewest candidate lines, so they
	// get the emptiest grid. Ties keep their original order.
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) > utf8.RuneCountInString(sorted[j])
	})

	// The diagonal is the longest straight line the grid can hold
	maxWordLen := int(math.Floor(math.Sqrt2 * float64(gridSize)))

	grid := model.NewGrid(gridSize)
	placements := make([]model.Placement, 0, len(sorted))
	skipped := make([]string, 0)

	for _, raw := range sorted {
		word := strings.ToLower(raw)
		runes := []rune(word)

		if len(runes) > maxWordLen {
			skipped = append(skipped, word)
			continue
		}

		placement, ok := s.placeWord(grid, word, runes)
		if !ok {
			skipped = append(skipped, word)
			continue
		}
		placements = append(placements, placement)
	}

	s.fillRemaining(grid, language)

	s.logger.Debug("generated puzzle",
		slog.Int("grid_size", gridSize),
		slog.String("language", language),
		slog.Int("placed", len(placements)),
		slog.Int("skipped", len(skipped)))

	return &model.Puzzle{
		Grid:       grid,
		Placements: placements,
		Skipped:    skipped,
	}, nil
}

// placeWord tries random (start, direction) candidates and commits the
// first that fits. Directions cycle through one shuffled permutation per
// word; start cells are drawn fresh every attempt.
func (s *Service) placeWord(grid *model.Grid, word string, runes []rune) (model.Placement, bool) {
	directions := model.Directions()
	order := s.random.Perm(len(directions))

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		start := model.Position{
			Row: s.random.Intn(grid.Size),
			Col: s.random.Intn(grid.Size),
		}
		direction := directions[order[attempt%len(order)]]

		cells, ok := candidateCells(grid, runes, start, direction)
		if !ok {
			continue
		}

		for i, pos := range cells {
			grid.Set(pos, runes[i])
		}
		return model.Placement{
			Word:      word,
			Start:     start,
			Direction: direction,
			Cells:     cells,
		}, true
	}

	return model.Placement{}, false
}

// candidateCells returns the cells the word would cover from start along
// direction, or false if any cell is out of bounds or already holds a
// different letter. Cells holding the same letter are fine: words may
// cross.
func candidateCells(grid *model.Grid, runes []rune, start model.Position, direction model.Direction) ([]model.Position, bool) {
	cells := make([]model.Position, len(runes))
	pos := start
	for i, letter := range runes {
		if !grid.InBounds(pos) {
			return nil, false
		}
		existing := grid.Get(pos)
		if existing != 0 && existing != letter {
			return nil, false
		}
		cells[i] = pos
		pos = pos.Step(direction)
	}
	return cells, true
}

// fillRemaining samples one independent filler letter per unset cell
func (s *Service) fillRemaining(grid *model.Grid, language string) {
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			pos := model.Position{Row: row, Col: col}
			if grid.IsEmpty(pos) {
				grid.Set(pos, s.filler.Letter(language))
			}
		}
	}
}

// Interface check
type ServiceInterface interface {
	Generate(words []string, gridSize int, language string) (*model.Puzzle, error)
}

var _ ServiceInterface = (*Service)(nil)
