package round

import (
	"context"
	"log/slog"

	"github.com/fillword/fillwordgame-go/internal/dependencies/clock"
	"github.com/fillword/fillwordgame-go/internal/dependencies/random"
	"github.com/fillword/fillwordgame-go/internal/model"
	"github.com/fillword/fillwordgame-go/internal/services/alphabet"
	"github.com/fillword/fillwordgame-go/internal/services/generator"
	"github.com/fillword/fillwordgame-go/internal/services/hint"
	"github.com/fillword/fillwordgame-go/internal/services/scoring"
	"github.com/fillword/fillwordgame-go/internal/services/selection"
	"github.com/fillword/fillwordgame-go/internal/services/wordlist"
	"github.com/fillword/fillwordgame-go/internal/storage"
)

const (
	// DefaultGridSize is used when a round is created without an explicit size
	DefaultGridSize = 9
	// DefaultWordCount is used when a round is created without an explicit word count
	DefaultWordCount = 6
)

// Controller manages round lifecycle: creation, selections, hints and scoring
type Controller struct {
	storage          storage.Storage
	generatorService *generator.Service
	selectionService *selection.Service
	scoringService   *scoring.Service
	hintService      *hint.Service
	wordlistService  *wordlist.Service
	clock            clock.Clock
	random           random.Random
	logger           *slog.Logger
}

// NewController creates a new RoundController
func NewController(
	storage storage.Storage,
	generatorService *generator.Service,
	selectionService *selection.Service,
	scoringService *scoring.Service,
	hintService *hint.Service,
	wordlistService *wordlist.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:          storage,
		generatorService: generatorService,
		selectionService: selectionService,
		scoringService:   scoringService,
		hintService:      hintService,
		wordlistService:  wordlistService,
		clock:            clock,
		random:           random,
		logger:           logger,
	}
}

// CreateParams describes the round to create.
// Zero values fall back to defaults, and when Words is empty the round's
// words are sampled from the language's word pool.
type CreateParams struct {
	Language  string
	GridSize  int
	WordCount int
	Words     []string
}

// CreateRound generates a puzzle and persists a new active round
func (c *Controller) CreateRound(ctx context.Context, params CreateParams) (*model.Round, error) {
	language := params.Language
	if language == "" {
		language = alphabet.DefaultLanguage
	}

	gridSize := params.GridSize
	if gridSize == 0 {
		gridSize = DefaultGridSize
	}
	if gridSize < 0 {
		return nil, model.ErrInvalidGridSize
	}

	words := params.Words
	if len(words) == 0 {
		count := params.WordCount
		if count <= 0 {
			count = DefaultWordCount
		}
		sampled, err := c.wordlistService.Sample(language, count, gridSize)
		if err != nil {
			return nil, err
		}
		words = sampled
	}

	puzzle, err := c.generatorService.Generate(words, gridSize, language)
	if err != nil {
		return nil, err
	}
	if len(puzzle.Placements) == 0 {
		return nil, model.ErrNoWordsPlaced
	}

	now := c.clock.Now()
	round := &model.Round{
		ID:           model.RoundID(c.random.String(12, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")),
		Language:     language,
		GridSize:     gridSize,
		State:        model.RoundStateActive,
		Grid:         puzzle.Grid,
		Placements:   puzzle.Placements,
		TargetWords:  puzzle.PlacedWords(),
		SkippedWords: puzzle.Skipped,
		FoundWords:   []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storage.SaveRound(ctx, round); err != nil {
		c.logger.Error("failed to save round",
			slog.String("round_id", string(round.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("round created",
		slog.String("round_id", string(round.ID)),
		slog.String("language", language),
		slog.Int("grid_size", gridSize),
		slog.Int("target_words", len(round.TargetWords)),
		slog.Int("skipped_words", len(round.SkippedWords)),
	)

	return round, nil
}

// GetRound retrieves a round by ID
func (c *Controller) GetRound(ctx context.Context, roundID model.RoundID) (*model.Round, error) {
	return c.storage.GetRound(ctx, roundID)
}

// SubmitSelection checks the selected cells against the round's target words
// and updates the round when a new word is found
func (c *Controller) SubmitSelection(ctx context.Context, roundID model.RoundID, cells []model.Position) (*model.SubmissionResult, error) {
	round, err := c.storage.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	// Validate round state
	if round.State == model.RoundStateComplete {
		return nil, model.ErrRoundComplete
	}
	if round.State == model.RoundStateAbandoned {
		return nil, model.ErrRoundAbandoned
	}

	result := c.selectionService.Check(round.Grid, cells, round.TargetWords)
	submission := &model.SubmissionResult{
		Selection: result,
		Round:     round,
	}

	if !result.Found {
		return submission, nil
	}

	// Re-finding a word is valid but changes nothing
	if round.HasFound(result.Word) {
		submission.AlreadyFound = true
		return submission, nil
	}

	round.FoundWords = append(round.FoundWords, result.Word)
	round.UpdatedAt = c.clock.Now()

	if c.selectionService.IsGameWon(round.FoundWords, round.TargetWords) {
		round.State = model.RoundStateComplete
		c.logger.Info("round completed",
			slog.String("round_id", string(round.ID)),
			slog.Int("found_words", len(round.FoundWords)),
		)
	}

	if err := c.storage.SaveRound(ctx, round); err != nil {
		return nil, err
	}

	c.logger.Info("word found",
		slog.String("round_id", string(round.ID)),
		slog.String("word", result.Word),
		slog.Int("found_count", len(round.FoundWords)),
		slog.Int("target_count", len(round.TargetWords)),
	)

	return submission, nil
}

// AbandonRound ends an active round without completing it
func (c *Controller) AbandonRound(ctx context.Context, roundID model.RoundID) (*model.Round, error) {
	round, err := c.storage.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	if round.State == model.RoundStateComplete {
		return nil, model.ErrRoundComplete
	}
	if round.State == model.RoundStateAbandoned {
		return nil, model.ErrRoundAbandoned
	}

	round.State = model.RoundStateAbandoned
	round.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRound(ctx, round); err != nil {
		return nil, err
	}

	c.logger.Info("round abandoned",
		slog.String("round_id", string(round.ID)),
		slog.Int("found_words", len(round.FoundWords)),
	)

	return round, nil
}

// HintForRound picks a hint for an active round using the named strategy
func (c *Controller) HintForRound(ctx context.Context, roundID model.RoundID, strategy string) (*model.Hint, error) {
	round, err := c.storage.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	if round.State == model.RoundStateComplete {
		return nil, model.ErrRoundComplete
	}
	if round.State == model.RoundStateAbandoned {
		return nil, model.ErrRoundAbandoned
	}

	h, err := c.hintService.Hint(round, strategy)
	if err != nil {
		return nil, err
	}

	c.logger.Info("hint issued",
		slog.String("round_id", string(round.ID)),
		slog.String("word", h.Word),
	)

	return h, nil
}

// Score calculates the current score for a round
func (c *Controller) Score(round *model.Round) *model.RoundScore {
	return c.scoringService.Score(round)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRound(ctx context.Context, params CreateParams) (*model.Round, error)
	GetRound(ctx context.Context, roundID model.RoundID) (*model.Round, error)
	SubmitSelection(ctx context.Context, roundID model.RoundID, cells []model.Position) (*model.SubmissionResult, error)
	AbandonRound(ctx context.Context, roundID model.RoundID) (*model.Round, error)
	HintForRound(ctx context.Context, roundID model.RoundID, strategy string) (*model.Hint, error)
	Score(round *model.Round) *model.RoundScore
}

var _ ControllerInterface = (*Controller)(nil)
