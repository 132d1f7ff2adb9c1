package model

import "time"

// TurnRecord describes a committed turn
type TurnRecord struct {
	TurnNumber int
	PlayerID   PlayerID
	Tiles      []Tile   // Tiles played, with board positions
	Words      []string // Spelled words as extracted
	Score      int
	Drawn      int // Replacement tiles drawn from the bag
	PlayedAt   time.Time
}

// Clone returns a deep copy of the record
func (r TurnRecord) Clone() TurnRecord {
	r.Tiles = cloneTiles(r.Tiles)
	if r.Words != nil {
		words := make([]string, len(r.Words))
		copy(words, r.Words)
		r.Words = words
	}
	return r
}
