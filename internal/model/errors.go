package model

import "errors"

// Common errors used across the application
var (
	// Setup errors
	ErrInvalidPlayerCount = errors.New("invalid player count")
	ErrInvalidBoardSize   = errors.New("invalid board size")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")
	ErrGameNotOver  = errors.New("game is not over")

	// Placement errors
	ErrInvalidPosition   = errors.New("invalid board position")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrCellEmpty         = errors.New("cell is empty")
	ErrNoTileSelected    = errors.New("no tile selected")
	ErrTileNotInRack     = errors.New("tile is not in the current player's rack")
	ErrTileNotRecallable = errors.New("tile was not placed this turn")
	ErrNothingToRecall   = errors.New("no tiles to recall")

	// Turn errors
	ErrNoTilesPlaced = errors.New("no tiles placed")
)

var ruleErrors = []error{
	ErrInvalidPlayerCount, ErrInvalidBoardSize,
	ErrGameNotFound, ErrGameOver, ErrGameNotOver,
	ErrInvalidPosition, ErrCellOccupied, ErrCellEmpty, ErrNoTileSelected,
	ErrTileNotInRack, ErrTileNotRecallable, ErrNothingToRecall,
	ErrNoTilesPlaced,
}

// IsRuleError reports whether err is a rejected player action rather than
// an infrastructure failure
func IsRuleError(err error) bool {
	for _, target := range ruleErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
