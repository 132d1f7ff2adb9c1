package game

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/bag"
	"github.com/mcoot/wordtiles/internal/services/scoring"
	"github.com/mcoot/wordtiles/internal/services/words"
)

// TurnResult describes what a committed turn did
type TurnResult struct {
	PlayerID model.PlayerID
	Score    scoring.TurnScore
	Drawn    int
	GameOver bool
}

// Commit resolves the current turn: the placed tiles are scored, the
// player draws replacements, the turn passes to the next seat and the
// end-of-game condition is evaluated. The input game is not modified.
func Commit(
	g *model.Game,
	extractor words.Extractor,
	scorer scoring.ServiceInterface,
	now time.Time,
) (*model.Game, TurnResult, error) {
	if g.GameOver {
		return nil, TurnResult{}, model.ErrGameOver
	}
	if len(g.PlacedTiles) == 0 {
		return nil, TurnResult{}, model.ErrNoTilesPlaced
	}

	next := g.Clone()
	player := next.CurrentPlayer()

	formed := extractor.Extract(next.Board, next.PlacedTiles)
	score := scorer.ScoreTurn(next.Board, formed, next.PlacedPositions())
	player.Score += score.Total

	drawn, remaining := bag.Draw(next.Bag, len(next.PlacedTiles))
	player.Rack = append(player.Rack, drawn...)
	next.Bag = remaining

	next.TurnNumber++
	next.History = append(next.History, model.TurnRecord{
		TurnNumber: next.TurnNumber,
		PlayerID:   player.ID,
		Tiles:      next.PlacedTiles,
		Words:      words.SpellAll(formed),
		Score:      score.Total,
		Drawn:      len(drawn),
		PlayedAt:   now,
	})
	result := TurnResult{
		PlayerID: player.ID,
		Score:    score,
		Drawn:    len(drawn),
	}

	next.PlacedTiles = []model.Tile{}
	next.SelectedTileID = nil
	next.CurrentPlayerIdx = (next.CurrentPlayerIdx + 1) % len(next.Players)
	next.GameOver = IsOver(next)
	next.UpdatedAt = now

	result.GameOver = next.GameOver
	return next, result, nil
}

// IsOver reports whether the bag is empty and some player has emptied
// their rack
func IsOver(g *model.Game) bool {
	return len(g.Bag) == 0 && lo.SomeBy(g.Players, func(p model.Player) bool {
		return len(p.Rack) == 0
	})
}

// CommitMessage is the status shown after a committed turn
func CommitMessage(result TurnResult) model.StatusMessage {
	text := fmt.Sprintf("You scored %d points!", result.Score.Total)
	if result.GameOver {
		text += " Game Over!"
	}
	return model.Success(text)
}
