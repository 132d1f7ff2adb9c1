package bag

import (
	"fmt"

	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/model"
)

// Service builds and draws from tile bags
type Service struct {
	random random.Random
}

// New creates a new BagService
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// Generate returns the full, unshuffled tile pool in distribution order
func (s *Service) Generate() []model.Tile {
	tiles := make([]model.Tile, 0, TotalTiles)
	id := 0
	for _, spec := range StandardDistribution {
		for i := 0; i < spec.Count; i++ {
			tiles = append(tiles, model.Tile{
				ID:     model.TileID(fmt.Sprintf("tile-%d", id)),
				Letter: spec.Letter,
				Value:  spec.Value,
			})
			id++
		}
	}
	return tiles
}

// NewBag returns a freshly shuffled full bag
func (s *Service) NewBag() []model.Tile {
	return s.ShuffleTiles(s.Generate())
}

// ShuffleTiles returns the tiles in a random order; the input is not
// modified
func (s *Service) ShuffleTiles(tiles []model.Tile) []model.Tile {
	return Shuffle(s.random, tiles)
}

// Draw takes up to n tiles from the front of the pool. If the pool holds
// fewer than n tiles, all of them are drawn. The pool is not modified.
func Draw(pool []model.Tile, n int) (drawn, remaining []model.Tile) {
	if n < 0 {
		n = 0
	}
	if n > len(pool) {
		n = len(pool)
	}
	drawn = make([]model.Tile, n)
	copy(drawn, pool[:n])
	remaining = make([]model.Tile, len(pool)-n)
	copy(remaining, pool[n:])
	return drawn, remaining
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate() []model.Tile
	NewBag() []model.Tile
	ShuffleTiles(tiles []model.Tile) []model.Tile
}

var _ ServiceInterface = (*Service)(nil)
