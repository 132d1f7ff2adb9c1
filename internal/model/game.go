package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GamePhase is the player-visible state of a game
type GamePhase string

const (
	PhaseAwaitingPlay GamePhase = "awaiting_play" // Current player may select, place and recall tiles
	PhaseGameOver     GamePhase = "game_over"     // Terminal, no further turns accepted
)

// Game is the aggregate root for a single game of word tiles.
// Engine operations never mutate a Game in place; they clone it and
// return the new value.
type Game struct {
	ID      GameID
	Players []Player

	// Turn management
	CurrentPlayerIdx int
	TurnNumber       int // Committed turns so far

	Board *Board
	Bag   []Tile // Undrawn tiles, front is drawn first

	// Current uncommitted turn
	PlacedTiles    []Tile
	SelectedTileID *TileID

	GameOver bool
	History  []TurnRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Phase returns the player-visible state
func (g *Game) Phase() GamePhase {
	if g.GameOver {
		return PhaseGameOver
	}
	return PhaseAwaitingPlay
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return &g.Players[g.CurrentPlayerIdx]
}

// SelectedTile returns the selected rack tile, or nil if none
func (g *Game) SelectedTile() *Tile {
	if g.SelectedTileID == nil {
		return nil
	}
	p := g.CurrentPlayer()
	if p == nil {
		return nil
	}
	idx := p.RackIndex(*g.SelectedTileID)
	if idx < 0 {
		return nil
	}
	return &p.Rack[idx]
}

// IsPlacedThisTurn returns true if the tile was placed during the current turn
func (g *Game) IsPlacedThisTurn(id TileID) bool {
	for _, t := range g.PlacedTiles {
		if t.ID == id {
			return true
		}
	}
	return false
}

// PlacedPositions returns the board positions of tiles placed this turn
func (g *Game) PlacedPositions() []Position {
	positions := make([]Position, 0, len(g.PlacedTiles))
	for _, t := range g.PlacedTiles {
		if t.Position != nil {
			positions = append(positions, *t.Position)
		}
	}
	return positions
}

// BagCount returns the number of tiles left to draw
func (g *Game) BagCount() int {
	return len(g.Bag)
}

// PlayerNames returns the display names in seat order
func (g *Game) PlayerNames() []string {
	names := make([]string, len(g.Players))
	for i, p := range g.Players {
		names[i] = p.Name
	}
	return names
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	c := *g
	c.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		c.Players[i] = p.Clone()
	}
	c.Board = g.Board.Clone()
	c.Bag = cloneTiles(g.Bag)
	c.PlacedTiles = cloneTiles(g.PlacedTiles)
	if g.SelectedTileID != nil {
		id := *g.SelectedTileID
		c.SelectedTileID = &id
	}
	if g.History != nil {
		c.History = make([]TurnRecord, len(g.History))
		for i, r := range g.History {
			c.History[i] = r.Clone()
		}
	}
	return &c
}
