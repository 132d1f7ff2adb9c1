package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Games are copied on the way in and out so callers never share state
// with the store.
type Storage struct {
	mu sync.RWMutex

	games map[model.GameID]*model.Game
	order []model.GameID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[game.ID]; !ok {
		s.order = append(s.order, game.ID)
	}
	s.games[game.ID] = game.Clone()
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game.Clone(), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	s.order = slices.DeleteFunc(s.order, func(existing model.GameID) bool {
		return existing == id
	})
	return nil
}

func (s *Storage) GameExists(ctx context.Context, id model.GameID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.games[id]
	return ok, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]model.GameID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order), nil
}
