package placement

import (
	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/bag"
	"github.com/mcoot/wordtiles/internal/services/board"
)

// ClickAction reports what a board click did
type ClickAction string

const (
	ClickPlaced   ClickAction = "placed"
	ClickRecalled ClickAction = "recalled"
	ClickNoop     ClickAction = "noop"
)

// Service applies the current player's in-turn edits. Every method takes a
// game and returns a new one; the input is never modified. On error the
// returned game is nil.
type Service struct {
	bags   bag.ServiceInterface
	boards board.ServiceInterface
}

// New creates a new PlacementService
func New(bags bag.ServiceInterface, boards board.ServiceInterface) *Service {
	return &Service{
		bags:   bags,
		boards: boards,
	}
}

// SelectTile toggles selection of a tile in the current player's rack
func (s *Service) SelectTile(g *model.Game, tileID model.TileID) (*model.Game, error) {
	if g.GameOver {
		return nil, model.ErrGameOver
	}
	if !g.CurrentPlayer().HasTile(tileID) {
		return nil, model.ErrTileNotInRack
	}

	next := g.Clone()
	if next.SelectedTileID != nil && *next.SelectedTileID == tileID {
		next.SelectedTileID = nil
	} else {
		next.SelectedTileID = &tileID
	}
	return next, nil
}

// Deselect clears any selection
func (s *Service) Deselect(g *model.Game) (*model.Game, error) {
	if g.GameOver {
		return nil, model.ErrGameOver
	}
	next := g.Clone()
	next.SelectedTileID = nil
	return next, nil
}

// Place moves the selected tile from the rack onto the board
func (s *Service) Place(g *model.Game, pos model.Position) (*model.Game, error) {
	if g.GameOver {
		return nil, model.ErrGameOver
	}
	selected := g.SelectedTile()
	if selected == nil {
		return nil, model.ErrNoTileSelected
	}
	if err := s.boards.ValidatePlacement(g.Board, pos); err != nil {
		return nil, err
	}

	next := g.Clone()
	player := next.CurrentPlayer()
	placed := selected.PlacedAt(pos)

	player.Rack = lo.Reject(player.Rack, func(t model.Tile, _ int) bool {
		return t.ID == placed.ID
	})
	onBoard := placed.Clone()
	next.Board.Cell(pos).Tile = &onBoard
	next.PlacedTiles = append(next.PlacedTiles, placed)
	next.SelectedTileID = nil
	return next, nil
}

// Recall returns a tile placed this turn from the board to the end of the rack
func (s *Service) Recall(g *model.Game, pos model.Position) (*model.Game, error) {
	if g.GameOver {
		return nil, model.ErrGameOver
	}
	if !g.Board.IsValidPosition(pos) {
		return nil, model.ErrInvalidPosition
	}
	tile := g.Board.TileAt(pos)
	if tile == nil {
		return nil, model.ErrCellEmpty
	}
	if !g.IsPlacedThisTurn(tile.ID) {
		return nil, model.ErrTileNotRecallable
	}

	next := g.Clone()
	returnToRack(next, tile.ID, pos)
	return next, nil
}

// RecallAll returns every tile placed this turn to the rack in placement
// order and clears the selection
func (s *Service) RecallAll(g *model.Game) (*model.Game, error) {
	if g.GameOver {
		return nil, model.ErrGameOver
	}
	if len(g.PlacedTiles) == 0 {
		return nil, model.ErrNothingToRecall
	}

	next := g.Clone()
	for _, t := range g.PlacedTiles {
		if t.Position != nil {
			returnToRack(next, t.ID, *t.Position)
		}
	}
	next.PlacedTiles = []model.Tile{}
	next.SelectedTileID = nil
	return next, nil
}

// ClickCell places the selected tile at pos, or recalls a tile placed this
// turn when nothing is selected. Anything else leaves the game unchanged.
func (s *Service) ClickCell(g *model.Game, pos model.Position) (*model.Game, ClickAction, error) {
	if g.GameOver {
		return nil, ClickNoop, model.ErrGameOver
	}

	if g.SelectedTile() != nil {
		next, err := s.Place(g, pos)
		if err != nil {
			return nil, ClickNoop, err
		}
		return next, ClickPlaced, nil
	}

	tile := g.Board.TileAt(pos)
	if tile == nil || !g.IsPlacedThisTurn(tile.ID) {
		return g.Clone(), ClickNoop, nil
	}
	next, err := s.Recall(g, pos)
	if err != nil {
		return nil, ClickNoop, err
	}
	return next, ClickRecalled, nil
}

// ShuffleRack reorders the current player's rack
func (s *Service) ShuffleRack(g *model.Game) (*model.Game, error) {
	if g.GameOver {
		return nil, model.ErrGameOver
	}
	next := g.Clone()
	player := next.CurrentPlayer()
	player.Rack = s.bags.ShuffleTiles(player.Rack)
	return next, nil
}

// returnToRack lifts the tile at pos off the board of next and appends it
// to the current player's rack
func returnToRack(next *model.Game, id model.TileID, pos model.Position) {
	cell := next.Board.Cell(pos)
	if cell == nil || cell.Tile == nil || cell.Tile.ID != id {
		return
	}
	lifted := cell.Tile.Lifted()
	cell.Tile = nil

	player := next.CurrentPlayer()
	player.Rack = append(player.Rack, lifted)
	next.PlacedTiles = lo.Reject(next.PlacedTiles, func(t model.Tile, _ int) bool {
		return t.ID == id
	})
}

// Interface for dependency injection
type ServiceInterface interface {
	SelectTile(g *model.Game, tileID model.TileID) (*model.Game, error)
	Deselect(g *model.Game) (*model.Game, error)
	Place(g *model.Game, pos model.Position) (*model.Game, error)
	Recall(g *model.Game, pos model.Position) (*model.Game, error)
	RecallAll(g *model.Game) (*model.Game, error)
	ClickCell(g *model.Game, pos model.Position) (*model.Game, ClickAction, error)
	ShuffleRack(g *model.Game) (*model.Game, error)
}

var _ ServiceInterface = (*Service)(nil)
