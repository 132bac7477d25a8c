package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordsland/internal/model"
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
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeNoLettersPlaced     = "NO_LETTERS_PLACED"
	CodeInvalidGeometry     = "INVALID_PLACEMENT_GEOMETRY"
	CodeWordTooShort        = "WORD_TOO_SHORT"
	CodeMustCoverStart      = "MUST_COVER_START"
	CodeDisconnected        = "DISCONNECTED_PLACEMENT"
	CodeNotInDictionary     = "WORD_NOT_IN_DICTIONARY"
	CodeCellOccupied        = "CELL_OCCUPIED"
	CodeNoLetterAtPosition  = "NO_LETTER_AT_POSITION"
	CodeIndexOutOfRange     = "INDEX_OUT_OF_RANGE"
	CodeSwapModeInactive    = "SWAP_MODE_INACTIVE"
	CodeRoundOver           = "ROUND_OVER"
	CodeRoundNotWon         = "ROUND_NOT_WON"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
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

// StatusOf returns the HTTP status an error maps to
func StatusOf(err error) int {
	return toHTTPError(err).status
}

// ruleViolation reports a rejected move. The message is the error text so
// wrapped details such as the rejected word reach the client.
func ruleViolation(code string, err error) *httpError {
	return &httpError{http.StatusUnprocessableEntity, APIError{code, err.Error()}}
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}

	// Commit rejections
	case errors.Is(err, model.ErrNoLettersPlaced):
		return ruleViolation(CodeNoLettersPlaced, err)
	case errors.Is(err, model.ErrInvalidPlacementGeometry):
		return ruleViolation(CodeInvalidGeometry, err)
	case errors.Is(err, model.ErrWordTooShort):
		return ruleViolation(CodeWordTooShort, err)
	case errors.Is(err, model.ErrMustCoverStart):
		return ruleViolation(CodeMustCoverStart, err)
	case errors.Is(err, model.ErrDisconnectedPlacement):
		return ruleViolation(CodeDisconnected, err)
	case errors.Is(err, model.ErrWordNotInDictionary):
		return ruleViolation(CodeNotInDictionary, err)

	// Board and hand
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}
	case errors.Is(err, model.ErrIndexOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodeIndexOutOfRange, "Hand index out of range"}}
	case errors.Is(err, model.ErrCellOccupiedIllegally):
		return &httpError{http.StatusConflict, APIError{CodeCellOccupied, "Cell cannot take a letter"}}
	case errors.Is(err, model.ErrNoLetterAtPosition):
		return &httpError{http.StatusConflict, APIError{CodeNoLetterAtPosition, "No uncommitted letter at that position"}}

	// Modes and rounds
	case errors.Is(err, model.ErrSwapModeInactive):
		return &httpError{http.StatusConflict, APIError{CodeSwapModeInactive, "Swap mode is not active"}}
	case errors.Is(err, model.ErrRoundOver):
		return &httpError{http.StatusConflict, APIError{CodeRoundOver, "Round is over, start the next round"}}
	case errors.Is(err, model.ErrRoundNotWon):
		return &httpError{http.StatusConflict, APIError{CodeRoundNotWon, "Round has not been won yet"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "Dictionary not loaded"}}

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
