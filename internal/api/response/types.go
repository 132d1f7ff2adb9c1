package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
)

// Position is a board coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Tile represents a tile in API responses
type Tile struct {
	ID       string    `json:"id"`
	Letter   string    `json:"letter"`
	Value    int       `json:"value"`
	IsBlank  bool      `json:"is_blank,omitempty"`
	IsPlaced bool      `json:"is_placed"`
	Position *Position `json:"position,omitempty"`
}

// TileFromModel converts a model.Tile
func TileFromModel(t model.Tile) Tile {
	resp := Tile{
		ID:       string(t.ID),
		Letter:   t.Display(),
		Value:    t.Value,
		IsBlank:  t.IsBlank(),
		IsPlaced: t.IsPlaced,
	}
	if t.Position != nil {
		resp.Position = &Position{Row: t.Position.Row, Col: t.Position.Col}
	}
	return resp
}

func tilesFromModel(tiles []model.Tile) []Tile {
	return lo.Map(tiles, func(t model.Tile, _ int) Tile {
		return TileFromModel(t)
	})
}

// Player represents a seat in API responses
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	RackSize int    `json:"rack_size"`
	Rack     []Tile `json:"rack"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:       string(p.ID),
		Name:     p.Name,
		Score:    p.Score,
		RackSize: len(p.Rack),
		Rack:     tilesFromModel(p.Rack),
	}
}

// Cell represents a board square
type Cell struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Bonus string `json:"bonus"`
	Tile  *Tile  `json:"tile"`
}

// Board represents the shared grid
type Board struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"`
}

// BoardFromModel converts a model.Board
func BoardFromModel(b *model.Board) Board {
	cells := make([][]Cell, len(b.Cells))
	for row, modelRow := range b.Cells {
		cells[row] = make([]Cell, len(modelRow))
		for col, c := range modelRow {
			cell := Cell{Row: c.Row, Col: c.Col, Bonus: string(c.Bonus)}
			if c.Tile != nil {
				t := TileFromModel(*c.Tile)
				cell.Tile = &t
			}
			cells[row][col] = cell
		}
	}
	return Board{Size: b.Size, Cells: cells}
}

// TurnRecord represents one committed turn
type TurnRecord struct {
	TurnNumber int       `json:"turn_number"`
	PlayerID   string    `json:"player_id"`
	Words      []string  `json:"words"`
	Tiles      []Tile    `json:"tiles"`
	Score      int       `json:"score"`
	Drawn      int       `json:"drawn"`
	PlayedAt   time.Time `json:"played_at"`
}

// Message is the status line to show after an operation
type Message struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// MessageFromModel converts a model.StatusMessage, returning nil when
// there is nothing to show
func MessageFromModel(m model.StatusMessage) *Message {
	if m.IsZero() {
		return nil
	}
	return &Message{Text: m.Text, Type: string(m.Severity)}
}

// GameResponse is a full snapshot of a game
type GameResponse struct {
	ID                 string       `json:"id"`
	Phase              string       `json:"phase"`
	Players            []Player     `json:"players"`
	CurrentPlayerIndex int          `json:"current_player_index"`
	CurrentPlayerID    string       `json:"current_player_id"`
	Board              Board        `json:"board"`
	BagCount           int          `json:"bag_count"`
	SelectedTileID     *string      `json:"selected_tile_id"`
	PlacedTileIDs      []string     `json:"placed_tile_ids"`
	GameOver           bool         `json:"game_over"`
	TurnNumber         int          `json:"turn_number"`
	History            []TurnRecord `json:"history"`
	Message            *Message     `json:"message,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// GameFromModel builds a GameResponse
func GameFromModel(g *model.Game, msg model.StatusMessage) GameResponse {
	resp := GameResponse{
		ID:                 string(g.ID),
		Phase:              string(g.Phase()),
		Players:            lo.Map(g.Players, func(p model.Player, _ int) Player { return PlayerFromModel(p) }),
		CurrentPlayerIndex: g.CurrentPlayerIdx,
		Board:              BoardFromModel(g.Board),
		BagCount:           g.BagCount(),
		PlacedTileIDs:      lo.Map(g.PlacedTiles, func(t model.Tile, _ int) string { return string(t.ID) }),
		GameOver:           g.GameOver,
		TurnNumber:         g.TurnNumber,
		History: lo.Map(g.History, func(r model.TurnRecord, _ int) TurnRecord {
			return TurnRecord{
				TurnNumber: r.TurnNumber,
				PlayerID:   string(r.PlayerID),
				Words:      r.Words,
				Tiles:      tilesFromModel(r.Tiles),
				Score:      r.Score,
				Drawn:      r.Drawn,
				PlayedAt:   r.PlayedAt,
			}
		}),
		Message:   MessageFromModel(msg),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	if p := g.CurrentPlayer(); p != nil {
		resp.CurrentPlayerID = string(p.ID)
	}
	if g.SelectedTileID != nil {
		id := string(*g.SelectedTileID)
		resp.SelectedTileID = &id
	}
	return resp
}

// Standing is one row of a ranking
type Standing struct {
	Place    int    `json:"place"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// RankingResponse is the final result of a game
type RankingResponse struct {
	Standings []Standing `json:"standings"`
	IsTie     bool       `json:"is_tie"`
	Winner    *string    `json:"winner"`
}

// RankingFromModel converts a model.Ranking
func RankingFromModel(r model.Ranking) RankingResponse {
	resp := RankingResponse{
		Standings: lo.Map(r.Standings, func(s model.Standing, _ int) Standing {
			return Standing{Place: s.Place, PlayerID: string(s.PlayerID), Name: s.Name, Score: s.Score}
		}),
		IsTie: r.IsTie,
	}
	if r.Winner != nil {
		winner := string(*r.Winner)
		resp.Winner = &winner
	}
	return resp
}

// GameList lists stored game ids
type GameList struct {
	Games []string `json:"games"`
}

// Health is the health check body
type Health struct {
	Status string `json:"status"`
}
