package storage

import (
	"context"

	"github.com/fillword/fillwordgame-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Round operations
	SaveRound(ctx context.Context, round *model.Round) error
	GetRound(ctx context.Context, id model.RoundID) (*model.Round, error)
	DeleteRound(ctx context.Context, id model.RoundID) error

	// Word pool operations
	SaveWordPool(ctx context.Context, language string, words []string) error
	GetWordPool(ctx context.Context, language string) ([]string, error)
}
