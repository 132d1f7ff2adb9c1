package roster

import (
	"fmt"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/bag"
)

// Service seats players and deals their opening racks
type Service struct{}

// New creates a new RosterService
func New() *Service {
	return &Service{}
}

// Deal creates count players named "Player 1".."Player N" and deals each a
// full rack from the front of the bag, in seat order.
func (s *Service) Deal(count int, tiles []model.Tile) ([]model.Player, []model.Tile, error) {
	if count < 1 || count > model.MaxPlayerCount {
		return nil, nil, model.ErrInvalidPlayerCount
	}
	names := make([]string, count)
	for i := range names {
		names[i] = DefaultName(i)
	}
	return s.DealNamed(names, tiles)
}

// DealNamed is Deal with explicit display names; between 1 and
// model.MaxPlayerCount names are accepted. Empty names fall back to
// the default for that seat. If the bag runs short, later seats receive
// fewer tiles.
func (s *Service) DealNamed(names []string, tiles []model.Tile) ([]model.Player, []model.Tile, error) {
	if len(names) < 1 || len(names) > model.MaxPlayerCount {
		return nil, nil, model.ErrInvalidPlayerCount
	}

	players := make([]model.Player, len(names))
	remaining := tiles
	for i, name := range names {
		if name == "" {
			name = DefaultName(i)
		}
		var rack []model.Tile
		rack, remaining = bag.Draw(remaining, model.RackSize)
		players[i] = model.Player{
			ID:   PlayerID(i),
			Name: name,
			Rack: rack,
		}
	}
	if remaining == nil {
		remaining = []model.Tile{}
	}
	return players, remaining, nil
}

// PlayerID returns the id for the player in the given seat
func PlayerID(seat int) model.PlayerID {
	return model.PlayerID(fmt.Sprintf("player-%d", seat+1))
}

// DefaultName returns the display name for the player in the given seat
func DefaultName(seat int) string {
	return fmt.Sprintf("Player %d", seat+1)
}

// Interface for dependency injection
type ServiceInterface interface {
	Deal(count int, tiles []model.Tile) ([]model.Player, []model.Tile, error)
	DealNamed(names []string, tiles []model.Tile) ([]model.Player, []model.Tile, error)
}

var _ ServiceInterface = (*Service)(nil)
