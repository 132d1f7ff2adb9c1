// Package storagetest holds fixtures shared by the storage backend tests
package storagetest

import (
	"time"

	"github.com/mcoot/wordtiles/internal/model"
)

// Game returns a small in-progress game with a tile on the board, a
// placed tile, a selection and one history entry
func Game(id model.GameID, createdAt time.Time) *model.Game {
	size := 3
	cells := make([][]model.BoardCell, size)
	for row := range cells {
		cells[row] = make([]model.BoardCell, size)
		for col := range cells[row] {
			cells[row][col] = model.BoardCell{Row: row, Col: col, Bonus: model.BonusNone}
		}
	}
	cells[0][0].Bonus = model.BonusTripleWord
	cells[1][1].Bonus = model.BonusCenter

	placed := model.Tile{ID: "tile-5", Letter: 'K', Value: 5}.PlacedAt(model.Position{Row: 1, Col: 1})
	onBoard := placed.Clone()
	cells[1][1].Tile = &onBoard

	selected := model.TileID("tile-1")

	return &model.Game{
		ID: id,
		Players: []model.Player{
			{ID: "player-1", Name: "Player 1", Score: 12, Rack: []model.Tile{
				{ID: "tile-1", Letter: 'A', Value: 1},
				{ID: "tile-2", Letter: model.BlankLetter, Value: 0},
			}},
			{ID: "player-2", Name: "Player 2", Score: 3, Rack: []model.Tile{
				{ID: "tile-3", Letter: 'Q', Value: 10},
			}},
		},
		CurrentPlayerIdx: 0,
		TurnNumber:       1,
		Board:            &model.Board{Size: size, Cells: cells},
		Bag:              []model.Tile{{ID: "tile-4", Letter: 'E', Value: 1}},
		PlacedTiles:      []model.Tile{placed},
		SelectedTileID:   &selected,
		History: []model.TurnRecord{{
			TurnNumber: 1,
			PlayerID:   "player-2",
			Tiles:      []model.Tile{},
			Words:      []string{"HI"},
			Score:      3,
			Drawn:      2,
			PlayedAt:   createdAt,
		}},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}
