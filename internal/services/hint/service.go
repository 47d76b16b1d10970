package hint

import (
	"errors"
	"sort"

	"github.com/fillword/fillwordgame-go/internal/dependencies/random"
	"github.com/fillword/fillwordgame-go/internal/model"
)

// DefaultStrategy is the strategy used when none is named
const DefaultStrategy = "random"

// Service picks hints for rounds using named strategies
type Service struct {
	strategies map[string]Strategy
}

// New creates a new HintService with the given strategy registry
func New(strategies map[string]Strategy) *Service {
	return &Service{
		strategies: strategies,
	}
}

// DefaultStrategies returns the standard strategy registry
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		DefaultStrategy: NewRandomStrategy(rnd),
	}
}

// Hint picks a hint for the round using the named strategy.
// Unknown names fall back to the default strategy, then to any
// registered strategy.
func (s *Service) Hint(round *model.Round, strategyName string) (*model.Hint, error) {
	strategy := s.strategyFor(strategyName)
	if strategy == nil {
		return nil, errors.New("no hint strategies registered")
	}
	return strategy.PickHint(round)
}

// Strategies returns the registered strategy names in sorted order
func (s *Service) Strategies() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Service) strategyFor(name string) Strategy {
	if strategy, ok := s.strategies[name]; ok {
		return strategy
	}
	if strategy, ok := s.strategies[DefaultStrategy]; ok {
		return strategy
	}
	for _, strategy := range s.strategies {
		return strategy
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Hint(round *model.Round, strategyName string) (*model.Hint, error)
	Strategies() []string
}

var _ ServiceInterface = (*Service)(nil)
