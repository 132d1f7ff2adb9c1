package storage

import (
	"context"

	"github.com/mcoot/wordtiles/internal/model"
)

// Storage defines the interface for game persistence
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	GameExists(ctx context.Context, id model.GameID) (bool, error)

	// ListGames returns the ids of all stored games, oldest first
	ListGames(ctx context.Context) ([]model.GameID, error)
}
