package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/fillword/fillwordgame-go/internal/api/sse"
	"github.com/fillword/fillwordgame-go/internal/dependencies/clock"
	"github.com/fillword/fillwordgame-go/internal/dependencies/random"
	"github.com/fillword/fillwordgame-go/internal/services/alphabet"
	"github.com/fillword/fillwordgame-go/internal/services/generator"
	"github.com/fillword/fillwordgame-go/internal/services/hint"
	"github.com/fillword/fillwordgame-go/internal/services/round"
	"github.com/fillword/fillwordgame-go/internal/services/scoring"
	"github.com/fillword/fillwordgame-go/internal/services/selection"
	"github.com/fillword/fillwordgame-go/internal/services/wordlist"
	"github.com/fillword/fillwordgame-go/internal/storage"
	"github.com/fillword/fillwordgame-go/internal/storage/memory"
	redisstorage "github.com/fillword/fillwordgame-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AlphabetService  *alphabet.Service
	GeneratorService *generator.Service
	SelectionService *selection.Service
	ScoringService   *scoring.Service
	HintService      *hint.Service
	WordlistService  *wordlist.Service

	// Controllers
	RoundController *round.Controller

	// Event streaming
	HubManager *sse.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger

	// StorageType selects the storage backend: "memory" or "redis"
	// If empty, defaults to "memory"
	StorageType string

	// RedisConfig holds Redis connection settings
	// Required when StorageType is "redis"
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig is required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	alphabetService := alphabet.New(rnd)
	generatorService := generator.New(rnd, alphabetService, logger)
	selectionService := selection.New()
	scoringService := scoring.New()
	hintService := hint.New(hint.DefaultStrategies(rnd))
	wordlistService := wordlist.New(store, alphabetService, rnd)

	roundController := round.NewController(
		store,
		generatorService,
		selectionService,
		scoringService,
		hintService,
		wordlistService,
		clk,
		rnd,
		logger,
	)

	hubManager := sse.NewHubManager(logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		AlphabetService:  alphabetService,
		GeneratorService: generatorService,
		SelectionService: selectionService,
		ScoringService:   scoringService,
		HintService:      hintService,
		WordlistService:  wordlistService,
		RoundController:  roundController,
		HubManager:       hubManager,
	}
}
