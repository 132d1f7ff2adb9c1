package model

// TileID uniquely identifies a tile within a game
type TileID string

// BlankLetter marks a blank tile
const BlankLetter = ' '

// Tile is a single lettered tile
type Tile struct {
	ID       TileID
	Letter   rune
	Value    int
	IsPlaced bool
	Position *Position // Set only while the tile rests on the board
}

// IsBlank returns true for blank tiles
func (t Tile) IsBlank() bool {
	return t.Letter == BlankLetter
}

// Display returns the printable letter, using ? for blanks
func (t Tile) Display() string {
	if t.IsBlank() {
		return "?"
	}
	return string(t.Letter)
}

// Clone returns a copy of the tile that shares no pointers with the original
func (t Tile) Clone() Tile {
	if t.Position != nil {
		pos := *t.Position
		t.Position = &pos
	}
	return t
}

// Lifted returns the tile as it looks off the board: unplaced, no position
func (t Tile) Lifted() Tile {
	t.IsPlaced = false
	t.Position = nil
	return t
}

// PlacedAt returns the tile marked as resting on the board at pos
func (t Tile) PlacedAt(pos Position) Tile {
	t.IsPlaced = true
	t.Position = &pos
	return t
}

func cloneTiles(tiles []Tile) []Tile {
	if tiles == nil {
		return nil
	}
	out := make([]Tile, len(tiles))
	for i, t := range tiles {
		out[i] = t.Clone()
	}
	return out
}
