package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fillword/fillwordgame-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidGridSize  = "INVALID_GRID_SIZE"
	CodeRoundNotFound    = "ROUND_NOT_FOUND"
	CodeRoundComplete    = "ROUND_COMPLETE"
	CodeRoundAbandoned   = "ROUND_ABANDONED"
	CodeNoWordsPlaced    = "NO_WORDS_PLACED"
	CodeNoHintAvailable  = "NO_HINT_AVAILABLE"
	CodeWordPoolNotFound = "WORD_POOL_NOT_FOUND"
	CodeWordPoolEmpty    = "WORD_POOL_EMPTY"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrRoundNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoundNotFound, "Round not found"}}
	case errors.Is(err, model.ErrRoundComplete):
		return &httpError{http.StatusConflict, APIError{CodeRoundComplete, "Round is already complete"}}
	case errors.Is(err, model.ErrRoundAbandoned):
		return &httpError{http.StatusConflict, APIError{CodeRoundAbandoned, "Round has been abandoned"}}
	case errors.Is(err, model.ErrInvalidGridSize):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGridSize, "Grid size must be positive"}}
	case errors.Is(err, model.ErrNoWordsPlaced):
		return &httpError{http.StatusBadRequest, APIError{CodeNoWordsPlaced, "None of the words fit the grid"}}
	case errors.Is(err, model.ErrNoHintAvailable):
		return &httpError{http.StatusConflict, APIError{CodeNoHintAvailable, "Every word has already been found"}}
	case errors.Is(err, model.ErrWordPoolNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeWordPoolNotFound, "No word pool for this language"}}
	case errors.Is(err, model.ErrWordPoolEmpty):
		return &httpError{http.StatusBadRequest, APIError{CodeWordPoolEmpty, "No usable words in the word pool"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
