package model

import (
	"strings"
	"time"
)

// RoundID uniquely identifies a round
type RoundID string

// RoundState represents the lifecycle phase of a round
type RoundState string

const (
	RoundStateActive    RoundState = "active"    // Targets still to find
	RoundStateComplete  RoundState = "complete"  // Every target found
	RoundStateAbandoned RoundState = "abandoned" // Round was cancelled
)

// Round is one puzzle instance: a generated grid and the hunt over it
type Round struct {
	ID       RoundID
	Language string
	GridSize int
	State    RoundState

	// Puzzle content (fixed at creation)
	Grid         *Grid
	Placements   []Placement
	TargetWords  []string
	SkippedWords []string

	// Progress
	FoundWords []string

	// Timing
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinished returns true once the round no longer accepts selections
func (r *Round) IsFinished() bool {
	return r.State != RoundStateActive
}

// HasFound returns true if the word was already found (case-insensitive)
func (r *Round) HasFound(word string) bool {
	for _, found := range r.FoundWords {
		if strings.EqualFold(found, word) {
			return true
		}
	}
	return false
}

// UnfoundPlacements returns the placements whose words are still hidden
func (r *Round) UnfoundPlacements() []Placement {
	remaining := make([]Placement, 0, len(r.Placements))
	for _, placement := range r.Placements {
		if !r.HasFound(placement.Word) {
			remaining = append(remaining, placement)
		}
	}
	return remaining
}
