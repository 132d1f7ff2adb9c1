package scoring

import (
	"slices"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/words"
)

// WordScore is the score of one extracted word
type WordScore struct {
	Word  string
	Tiles []model.Tile
	Score int
}

// TurnScore is the breakdown for a whole turn
type TurnScore struct {
	Words []WordScore
	Total int
}

// Service scores words and ranks players
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// ScoreWord sums the tile values of a word. Bonus squares only count under
// tiles in newlyPlaced: letter bonuses multiply that tile, word bonuses
// multiply the total. Tiles with no position add nothing.
func (s *Service) ScoreWord(board *model.Board, word []model.Tile, newlyPlaced []model.Position) int {
	wordMultiplier := 1
	sum := 0

	for _, t := range word {
		if t.Position == nil {
			continue
		}
		letterScore := t.Value

		if lo.Contains(newlyPlaced, *t.Position) {
			if cell := board.Cell(*t.Position); cell != nil {
				letterScore *= cell.Bonus.LetterMultiplier()
				wordMultiplier *= cell.Bonus.WordMultiplier()
			}
		}
		sum += letterScore
	}

	return sum * wordMultiplier
}

// ScoreTurn scores every word formed this turn
func (s *Service) ScoreTurn(board *model.Board, formed [][]model.Tile, newlyPlaced []model.Position) TurnScore {
	scores := lo.Map(formed, func(word []model.Tile, _ int) WordScore {
		return WordScore{
			Word:  words.Spell(word),
			Tiles: word,
			Score: s.ScoreWord(board, word, newlyPlaced),
		}
	})
	return TurnScore{
		Words: scores,
		Total: lo.SumBy(scores, func(w WordScore) int { return w.Score }),
	}
}

// Rank orders players by score, highest first. Equal scores keep seat order
// and share a place.
func (s *Service) Rank(players []model.Player) model.Ranking {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b model.Player) int {
		return b.Score - a.Score
	})

	standings := make([]model.Standing, len(sorted))
	for i, p := range sorted {
		place := i + 1
		if i > 0 && p.Score == sorted[i-1].Score {
			place = standings[i-1].Place
		}
		standings[i] = model.Standing{
			Place:    place,
			PlayerID: p.ID,
			Name:     p.Name,
			Score:    p.Score,
		}
	}

	ranking := model.Ranking{Standings: standings}
	if len(sorted) >= 2 && sorted[0].Score == sorted[1].Score {
		ranking.IsTie = true
	} else if len(sorted) > 0 {
		winner := sorted[0].ID
		ranking.Winner = &winner
	}
	return ranking
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreWord(board *model.Board, word []model.Tile, newlyPlaced []model.Position) int
	ScoreTurn(board *model.Board, formed [][]model.Tile, newlyPlaced []model.Position) TurnScore
	Rank(players []model.Player) model.Ranking
}

var _ ServiceInterface = (*Service)(nil)
