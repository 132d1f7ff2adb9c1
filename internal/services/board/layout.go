package board

import "github.com/mcoot/wordtiles/internal/model"

// centerSquare is the single CENTER cell
var centerSquare = model.Position{Row: 7, Col: 7}

var tripleWordSquares = []model.Position{
	{0, 0}, {0, 7}, {0, 14},
	{7, 0}, {7, 14},
	{14, 0}, {14, 7}, {14, 14},
}

var doubleWordSquares = []model.Position{
	{1, 1}, {2, 2}, {3, 3}, {4, 4},
	{1, 13}, {2, 12}, {3, 11}, {4, 10},
	{10, 4}, {11, 3}, {12, 2}, {13, 1},
	{10, 10}, {11, 11}, {12, 12}, {13, 13},
}

var tripleLetterSquares = []model.Position{
	{1, 5}, {1, 9},
	{5, 1}, {5, 5}, {5, 9}, {5, 13},
	{9, 1}, {9, 5}, {9, 9}, {9, 13},
	{13, 5}, {13, 9},
}

var doubleLetterSquares = []model.Position{
	{0, 3}, {0, 11},
	{2, 6}, {2, 8},
	{3, 0}, {3, 7}, {3, 14},
	{6, 2}, {6, 6}, {6, 8}, {6, 12},
	{7, 3}, {7, 11},
	{8, 2}, {8, 6}, {8, 8}, {8, 12},
	{11, 0}, {11, 7}, {11, 14},
	{12, 6}, {12, 8},
	{14, 3}, {14, 11},
}

// bonusLayout maps each special cell to its bonus, built once in
// precedence order so earlier categories win
var bonusLayout = buildLayout()

func buildLayout() map[model.Position]model.BonusType {
	layout := make(map[model.Position]model.BonusType)
	assign := func(positions []model.Position, bonus model.BonusType) {
		for _, pos := range positions {
			if _, taken := layout[pos]; !taken {
				layout[pos] = bonus
			}
		}
	}
	assign([]model.Position{centerSquare}, model.BonusCenter)
	assign(tripleWordSquares, model.BonusTripleWord)
	assign(doubleWordSquares, model.BonusDoubleWord)
	assign(tripleLetterSquares, model.BonusTripleLetter)
	assign(doubleLetterSquares, model.BonusDoubleLetter)
	return layout
}

// BonusAt returns the bonus for a cell of the standard layout
func BonusAt(pos model.Position) model.BonusType {
	if bonus, ok := bonusLayout[pos]; ok {
		return bonus
	}
	return model.BonusNone
}
