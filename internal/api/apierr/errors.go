package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordtiles/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidPlayerCount = "INVALID_PLAYER_COUNT"
	CodeInvalidBoardSize   = "INVALID_BOARD_SIZE"
	CodeInvalidPosition    = "INVALID_POSITION"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeGameOver           = "GAME_OVER"
	CodeGameNotOver        = "GAME_NOT_OVER"
	CodeCellOccupied       = "CELL_OCCUPIED"
	CodeCellEmpty          = "CELL_EMPTY"
	CodeNoTileSelected     = "NO_TILE_SELECTED"
	CodeTileNotInRack      = "TILE_NOT_IN_RACK"
	CodeTileNotRecallable  = "TILE_NOT_RECALLABLE"
	CodeNothingToRecall    = "NOTHING_TO_RECALL"
	CodeNoTilesPlaced      = "NO_TILES_PLACED"
	CodeInternalError      = "INTERNAL_ERROR"
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

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// ruleErrors maps game rule violations to their status and code. The
// message and severity come from the player-facing status message.
var ruleErrors = []struct {
	err    error
	status int
	code   string
}{
	{model.ErrGameNotFound, http.StatusNotFound, CodeGameNotFound},
	{model.ErrInvalidPlayerCount, http.StatusBadRequest, CodeInvalidPlayerCount},
	{model.ErrInvalidBoardSize, http.StatusBadRequest, CodeInvalidBoardSize},
	{model.ErrInvalidPosition, http.StatusBadRequest, CodeInvalidPosition},
	{model.ErrTileNotInRack, http.StatusBadRequest, CodeTileNotInRack},
	{model.ErrCellOccupied, http.StatusConflict, CodeCellOccupied},
	{model.ErrCellEmpty, http.StatusConflict, CodeCellEmpty},
	{model.ErrNoTileSelected, http.StatusConflict, CodeNoTileSelected},
	{model.ErrTileNotRecallable, http.StatusConflict, CodeTileNotRecallable},
	{model.ErrNothingToRecall, http.StatusConflict, CodeNothingToRecall},
	{model.ErrNoTilesPlaced, http.StatusConflict, CodeNoTilesPlaced},
	{model.ErrGameOver, http.StatusConflict, CodeGameOver},
	{model.ErrGameNotOver, http.StatusConflict, CodeGameNotOver},
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	for _, rule := range ruleErrors {
		if errors.Is(err, rule.err) {
			msg := model.MessageFor(err)
			return &httpError{rule.status, APIError{rule.code, msg.Text, string(msg.Severity)}}
		}
	}

	return internalError()
}

func internalError() *httpError {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error", string(model.SeverityError)}}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message, string(model.SeverityError)}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return internalError()
}
