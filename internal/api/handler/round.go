package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fillword/fillwordgame-go/internal/api/request"
	"github.com/fillword/fillwordgame-go/internal/api/response"
	"github.com/fillword/fillwordgame-go/internal/api/sse"
	"github.com/fillword/fillwordgame-go/internal/dependencies/clock"
	"github.com/fillword/fillwordgame-go/internal/model"
	"github.com/fillword/fillwordgame-go/internal/services/round"
)

// RoundHandler handles round-related endpoints
type RoundHandler struct {
	roundController *round.Controller
	hubManager      *sse.HubManager
	broadcaster     *sse.Broadcaster
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(
	roundController *round.Controller,
	hubManager *sse.HubManager,
	clk clock.Clock,
	logger *slog.Logger,
) *RoundHandler {
	var broadcaster *sse.Broadcaster
	if hubManager != nil {
		broadcaster = sse.NewBroadcaster(hubManager, clk, logger)
	}
	return &RoundHandler{
		roundController: roundController,
		hubManager:      hubManager,
		broadcaster:     broadcaster,
	}
}

// Create handles POST /api/v1/rounds
func (h *RoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Allow empty body for a default round
		req = request.CreateRoundRequest{}
	}

	rd, err := h.roundController.CreateRound(r.Context(), round.CreateParams{
		Language:  req.Language,
		GridSize:  req.GridSize,
		WordCount: req.WordCount,
		Words:     req.Words,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	// The caller hosts the puzzle, so the create response reveals placements
	resp := response.RoundFromModel(rd, h.roundController.Score(rd), true)
	response.JSON(w, http.StatusCreated, resp)
}

// Get handles GET /api/v1/rounds/{id}
func (h *RoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.RoundID(mux.Vars(r)["id"])

	rd, err := h.roundController.GetRound(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.RoundFromModel(rd, h.roundController.Score(rd), false)
	response.JSON(w, http.StatusOK, resp)
}

// Select handles POST /api/v1/rounds/{id}/selections
func (h *RoundHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := model.RoundID(mux.Vars(r)["id"])

	var req request.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	cells := make([]model.Position, len(req.Cells))
	for i, c := range req.Cells {
		cells[i] = model.Position{Row: c.Row, Col: c.Col}
	}

	submission, err := h.roundController.SubmitSelection(r.Context(), id, cells)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Broadcast to SSE clients watching the round
	if b := h.broadcaster; b != nil && submission.Selection.Found && !submission.AlreadyFound {
		b.BroadcastWordFound(submission.Round, submission.Selection)
		if submission.Round.State == model.RoundStateComplete {
			b.BroadcastRoundComplete(submission.Round, h.roundController.Score(submission.Round).Points)
		}
	}

	resp := response.Submission{
		Selection:    response.SelectionFromModel(submission.Selection),
		AlreadyFound: submission.AlreadyFound,
		Round:        response.RoundFromModel(submission.Round, h.roundController.Score(submission.Round), false),
	}
	response.JSON(w, http.StatusOK, resp)
}

// Abandon handles DELETE /api/v1/rounds/{id}
func (h *RoundHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := model.RoundID(mux.Vars(r)["id"])

	rd, err := h.roundController.AbandonRound(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	if b := h.broadcaster; b != nil {
		b.BroadcastRoundAbandoned(rd)
	}

	resp := response.RoundFromModel(rd, h.roundController.Score(rd), false)
	response.JSON(w, http.StatusOK, resp)
}

// Hint handles POST /api/v1/rounds/{id}/hints
func (h *RoundHandler) Hint(w http.ResponseWriter, r *http.Request) {
	id := model.RoundID(mux.Vars(r)["id"])

	var req request.HintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Allow empty body for the default strategy
		req = request.HintRequest{}
	}

	hint, err := h.roundController.HintForRound(r.Context(), id, req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	if b := h.broadcaster; b != nil {
		b.BroadcastHintUsed(id, hint)
	}

	response.JSON(w, http.StatusOK, response.HintFromModel(hint))
}

// Events handles GET /api/v1/rounds/{id}/events
func (h *RoundHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.RoundID(mux.Vars(r)["id"])

	// Verify the round exists before opening a stream
	if _, err := h.roundController.GetRound(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	if h.hubManager == nil {
		WriteError(w, NewInternalError())
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub)
}
