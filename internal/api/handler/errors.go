package handler

import (
	"net/http"

	"github.com/fillword/fillwordgame-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest   = apierr.CodeInvalidRequest
	CodeInvalidGridSize  = apierr.CodeInvalidGridSize
	CodeRoundNotFound    = apierr.CodeRoundNotFound
	CodeRoundComplete    = apierr.CodeRoundComplete
	CodeRoundAbandoned   = apierr.CodeRoundAbandoned
	CodeNoWordsPlaced    = apierr.CodeNoWordsPlaced
	CodeNoHintAvailable  = apierr.CodeNoHintAvailable
	CodeWordPoolNotFound = apierr.CodeWordPoolNotFound
	CodeWordPoolEmpty    = apierr.CodeWordPoolEmpty
	CodeInternalError    = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
