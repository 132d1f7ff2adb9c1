package words

import (
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
)

// Extractor determines which words a turn's placed tiles form
type Extractor interface {
	Extract(board *model.Board, placed []model.Tile) [][]model.Tile
}

// SingleWordExtractor treats the tiles placed this turn as exactly one
// word, in placement order. It does not look at adjacent committed tiles,
// check contiguity, or find cross words.
type SingleWordExtractor struct{}

// NewSingleWordExtractor creates a new SingleWordExtractor
func NewSingleWordExtractor() *SingleWordExtractor {
	return &SingleWordExtractor{}
}

// Extract returns the placed tiles as a single word. Each tile's position
// is taken from the board cell that holds it, when one does.
func (e *SingleWordExtractor) Extract(board *model.Board, placed []model.Tile) [][]model.Tile {
	if len(placed) == 0 {
		return [][]model.Tile{}
	}

	word := lo.Map(placed, func(t model.Tile, _ int) model.Tile {
		t = t.Clone()
		if t.Position == nil || board == nil {
			return t
		}
		if onBoard := board.TileAt(*t.Position); onBoard != nil && onBoard.ID == t.ID {
			return onBoard.Clone()
		}
		return t
	})
	return [][]model.Tile{word}
}

var _ Extractor = (*SingleWordExtractor)(nil)

// Spell renders a word's letters, using ? for blanks
func Spell(word []model.Tile) string {
	var b strings.Builder
	for _, t := range word {
		b.WriteString(t.Display())
	}
	return b.String()
}

// SpellAll renders each word in turn
func SpellAll(words [][]model.Tile) []string {
	return lo.Map(words, func(w []model.Tile, _ int) string {
		return Spell(w)
	})
}
