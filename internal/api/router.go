package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fillword/fillwordgame-go/internal/api/handler"
	"github.com/fillword/fillwordgame-go/internal/api/middleware"
	"github.com/fillword/fillwordgame-go/internal/api/sse"
	"github.com/fillword/fillwordgame-go/internal/dependencies/clock"
	"github.com/fillword/fillwordgame-go/internal/services/round"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	RoundController *round.Controller
	HubManager      *sse.HubManager
	Clock           clock.Clock
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	roundHandler := handler.NewRoundHandler(cfg.RoundController, cfg.HubManager, cfg.Clock, cfg.Logger)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Round routes
	rounds := api.PathPrefix("/rounds").Subrouter()
	rounds.HandleFunc("", roundHandler.Create).Methods(http.MethodPost)
	rounds.HandleFunc("/{id}", roundHandler.Get).Methods(http.MethodGet)
	rounds.HandleFunc("/{id}", roundHandler.Abandon).Methods(http.MethodDelete)
	rounds.HandleFunc("/{id}/selections", roundHandler.Select).Methods(http.MethodPost)
	rounds.HandleFunc("/{id}/hints", roundHandler.Hint).Methods(http.MethodPost)
	rounds.HandleFunc("/{id}/events", roundHandler.Events).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
