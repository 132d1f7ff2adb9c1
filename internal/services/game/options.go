package game

import "github.com/mcoot/wordtiles/internal/model"

// Options configures a new game
type Options struct {
	// PlayerCount is used when PlayerNames is empty; zero means
	// model.DefaultPlayerCount
	PlayerCount int

	// PlayerNames seats one player per name; empty names get a default
	PlayerNames []string

	// BoardSize of zero means model.DefaultBoardSize
	BoardSize int
}

// Outcome is the game after an operation, with the status to show
type Outcome struct {
	Game    *model.Game
	Message model.StatusMessage
}

const (
	welcomeText  = "Welcome! Place tiles to form words."
	restartText  = "New game started!"
	recalledText = "Tiles recalled to your rack!"
	shuffledText = "Rack shuffled!"
)

const gameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const gameIDLength = 10
