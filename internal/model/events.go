package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventWordFound      EventType = "word_found"
	EventRoundComplete  EventType = "round_complete"
	EventRoundAbandoned EventType = "round_abandoned"
	EventHintUsed       EventType = "hint_used"
)

// Event is the base structure for all round events
type Event struct {
	Type      EventType
	Timestamp time.Time
	RoundID   RoundID
	Payload   any // Type-specific data
}

// WordFoundPayload contains data for word found events
type WordFoundPayload struct {
	Word        string
	Direction   Direction
	Start       Position
	FoundCount  int
	TargetCount int
}

// RoundCompletePayload contains data for round complete events
type RoundCompletePayload struct {
	FoundWords []string
	Points     int
}

// RoundAbandonedPayload contains data for round abandoned events
type RoundAbandonedPayload struct {
	FoundCount  int
	TargetCount int
}

// HintUsedPayload contains data for hint used events
type HintUsedPayload struct {
	Word      string
	Start     Position
	Direction Direction
}
