package memory

import (
	"context"
	"sync"

	"github.com/fillword/fillwordgame-go/internal/model"
	"github.com/fillword/fillwordgame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	rounds    map[model.RoundID]*model.Round
	wordPools map[string][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rounds:    make(map[model.RoundID]*model.Round),
		wordPools: make(map[string][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[round.ID] = round
	return nil
}

func (s *Storage) GetRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	round, ok := s.rounds[id]
	if !ok {
		return nil, model.ErrRoundNotFound
	}
	return round, nil
}

func (s *Storage) DeleteRound(ctx context.Context, id model.RoundID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rounds, id)
	return nil
}

// Word pool operations

func (s *Storage) SaveWordPool(ctx context.Context, language string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pool := make([]string, len(words))
	copy(pool, words)
	s.wordPools[language] = pool
	return nil
}

func (s *Storage) GetWordPool(ctx context.Context, language string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pool, ok := s.wordPools[language]
	if !ok {
		return nil, model.ErrWordPoolNotFound
	}
	result := make([]string, len(pool))
	copy(result, pool)
	return result, nil
}
