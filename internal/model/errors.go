package model

import "errors"

// Common errors used across the application
var (
	// Round errors
	ErrRoundNotFound   = errors.New("round not found")
	ErrRoundComplete   = errors.New("round is already complete")
	ErrRoundAbandoned  = errors.New("round has been abandoned")
	ErrNoWordsPlaced   = errors.New("no words could be placed")
	ErrNoHintAvailable = errors.New("no hint available")

	// Generation errors
	ErrInvalidGridSize = errors.New("invalid grid size")

	// Word pool errors
	ErrWordPoolNotFound = errors.New("word pool not found")
	ErrWordPoolEmpty    = errors.New("word pool is empty")
)
