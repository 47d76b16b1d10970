package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/fillword/fillwordgame-go/internal/api/response"
	"github.com/fillword/fillwordgame-go/internal/dependencies/clock"
	"github.com/fillword/fillwordgame-go/internal/model"
)

// Broadcaster publishes round events to SSE clients as JSON
type Broadcaster struct {
	hubManager *HubManager
	clock      clock.Clock
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, clk clock.Clock, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		clock:      clk,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// BroadcastWordFound announces that a selection matched a target word
func (b *Broadcaster) BroadcastWordFound(round *model.Round, result model.SelectionResult) {
	b.publish(round.ID, model.EventWordFound, model.WordFoundPayload{
		Word:        result.Word,
		Direction:   result.Direction,
		Start:       result.Start,
		FoundCount:  len(round.FoundWords),
		TargetCount: len(round.TargetWords),
	})
}

// BroadcastRoundComplete announces that every target word has been found
func (b *Broadcaster) BroadcastRoundComplete(round *model.Round, points int) {
	b.publish(round.ID, model.EventRoundComplete, model.RoundCompletePayload{
		FoundWords: round.FoundWords,
		Points:     points,
	})
}

// BroadcastRoundAbandoned announces that the round ended early
func (b *Broadcaster) BroadcastRoundAbandoned(round *model.Round) {
	b.publish(round.ID, model.EventRoundAbandoned, model.RoundAbandonedPayload{
		FoundCount:  len(round.FoundWords),
		TargetCount: len(round.TargetWords),
	})
}

// BroadcastHintUsed announces that a hint revealed one of the placements
func (b *Broadcaster) BroadcastHintUsed(roundID model.RoundID, hint *model.Hint) {
	b.publish(roundID, model.EventHintUsed, model.HintUsedPayload{
		Word:      hint.Word,
		Start:     hint.Start,
		Direction: hint.Direction,
	})
}

// publish serializes the event and sends it to the round's hub, if any
// client is watching
func (b *Broadcaster) publish(roundID model.RoundID, eventType model.EventType, payload any) {
	hub := b.hubManager.GetHub(roundID)
	if hub == nil {
		return
	}

	event := response.EventFromModel(model.Event{
		Type:      eventType,
		Timestamp: b.clock.Now(),
		RoundID:   roundID,
		Payload:   payload,
	})

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("sse failed to marshal event",
			slog.String("round_id", string(roundID)),
			slog.String("event_type", string(eventType)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(eventType), string(data))
}
