package model

import (
	"errors"
	"fmt"
	"time"
)

// MessageDisplayDuration is how long presentation layers should show a
// status message before clearing it
const MessageDisplayDuration = 5 * time.Second

// Severity classifies a status message
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// StatusMessage is a transient, human-readable outcome of an operation
type StatusMessage struct {
	Text     string
	Severity Severity
}

// IsZero returns true if there is nothing to show
func (m StatusMessage) IsZero() bool {
	return m.Text == ""
}

// Info creates an info message
func Info(text string) StatusMessage {
	return StatusMessage{Text: text, Severity: SeverityInfo}
}

// Success creates a success message
func Success(text string) StatusMessage {
	return StatusMessage{Text: text, Severity: SeveritySuccess}
}

// Error creates an error message
func Error(text string) StatusMessage {
	return StatusMessage{Text: text, Severity: SeverityError}
}

// MessageFor converts an operation error into the message shown to players.
// Unknown errors produce a generic error message.
func MessageFor(err error) StatusMessage {
	switch {
	case err == nil:
		return StatusMessage{}
	case errors.Is(err, ErrCellOccupied):
		return Error("This cell is already occupied!")
	case errors.Is(err, ErrNoTilesPlaced):
		return Error("You need to place at least one tile!")
	case errors.Is(err, ErrNothingToRecall):
		return Info("No tiles to recall!")
	case errors.Is(err, ErrNoTileSelected):
		return Info("Select a tile from your rack first.")
	case errors.Is(err, ErrTileNotInRack):
		return Error("That tile is not in your rack!")
	case errors.Is(err, ErrTileNotRecallable):
		return Info("Tiles from earlier turns cannot be moved.")
	case errors.Is(err, ErrCellEmpty):
		return Info("There is no tile on that cell.")
	case errors.Is(err, ErrInvalidPosition):
		return Error("That position is off the board!")
	case errors.Is(err, ErrGameOver):
		return Info("The game is over. Start a new game to play again.")
	case errors.Is(err, ErrGameNotOver):
		return Info("The game is still in progress.")
	case errors.Is(err, ErrInvalidPlayerCount):
		return Error(fmt.Sprintf("A game needs between 1 and %d players.", MaxPlayerCount))
	case errors.Is(err, ErrInvalidBoardSize):
		return Error(fmt.Sprintf("Board size must be between 1 and %d.", MaxBoardSize))
	case errors.Is(err, ErrGameNotFound):
		return Error("Game not found.")
	default:
		return Error("Something went wrong.")
	}
}
