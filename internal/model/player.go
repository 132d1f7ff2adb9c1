package model

// RackSize is the number of tiles a player holds after drawing
const RackSize = 7

// DefaultPlayerCount is used when a new game does not specify one
const DefaultPlayerCount = 2

// MaxPlayerCount is the most players a game may seat
const MaxPlayerCount = 8

// PlayerID uniquely identifies a player within a game
type PlayerID string

// Player represents a seat at the table
type Player struct {
	ID    PlayerID
	Name  string
	Score int    // Never decreases
	Rack  []Tile // Display order only
}

// RackIndex returns the index of the tile in the rack, or -1
func (p *Player) RackIndex(id TileID) int {
	for i, t := range p.Rack {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// HasTile returns true if the tile is in the player's rack
func (p *Player) HasTile(id TileID) bool {
	return p.RackIndex(id) >= 0
}

// Clone returns a deep copy of the player
func (p Player) Clone() Player {
	p.Rack = cloneTiles(p.Rack)
	if p.Rack == nil {
		p.Rack = []Tile{}
	}
	return p
}
