package model

// DefaultBoardSize is the standard board dimension
const DefaultBoardSize = 15

// MaxBoardSize is the largest board a game may be created with
const MaxBoardSize = 25

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// BonusType classifies a board cell's score modifier
type BonusType string

const (
	BonusNone         BonusType = "NONE"
	BonusDoubleLetter BonusType = "DOUBLE_LETTER"
	BonusTripleLetter BonusType = "TRIPLE_LETTER"
	BonusDoubleWord   BonusType = "DOUBLE_WORD"
	BonusTripleWord   BonusType = "TRIPLE_WORD"
	BonusCenter       BonusType = "CENTER"
)

// LetterMultiplier returns the multiplier applied to a tile's value
func (b BonusType) LetterMultiplier() int {
	switch b {
	case BonusDoubleLetter:
		return 2
	case BonusTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier returns the multiplier applied to the whole word.
// The center cell carries no multiplier.
func (b BonusType) WordMultiplier() int {
	switch b {
	case BonusDoubleWord:
		return 2
	case BonusTripleWord:
		return 3
	default:
		return 1
	}
}

// Label returns a short marker for rendering
func (b BonusType) Label() string {
	switch b {
	case BonusDoubleLetter:
		return "DL"
	case BonusTripleLetter:
		return "TL"
	case BonusDoubleWord:
		return "DW"
	case BonusTripleWord:
		return "TW"
	case BonusCenter:
		return "★"
	default:
		return ""
	}
}

// BoardCell is one square of the grid
type BoardCell struct {
	Row   int
	Col   int
	Tile  *Tile
	Bonus BonusType // Fixed at construction
}

// Board represents the shared grid for a game
type Board struct {
	Size  int
	Cells [][]BoardCell // Row-major: Cells[row][col]
}

// Cell returns the cell at the given position, or nil if out of bounds
func (b *Board) Cell(pos Position) *BoardCell {
	if !b.IsValidPosition(pos) {
		return nil
	}
	return &b.Cells[pos.Row][pos.Col]
}

// TileAt returns the tile at the given position, or nil if empty
func (b *Board) TileAt(pos Position) *Tile {
	cell := b.Cell(pos)
	if cell == nil {
		return nil
	}
	return cell.Tile
}

// IsEmpty returns true if the cell at the given position holds no tile
func (b *Board) IsEmpty(pos Position) bool {
	return b.TileAt(pos) == nil
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// OccupiedCount returns the number of cells holding a tile
func (b *Board) OccupiedCount() int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col].Tile != nil {
				count++
			}
		}
	}
	return count
}

// CountBonus returns the number of cells with the given bonus
func (b *Board) CountBonus(bonus BonusType) int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col].Bonus == bonus {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	cells := make([][]BoardCell, len(b.Cells))
	for row := range b.Cells {
		cells[row] = make([]BoardCell, len(b.Cells[row]))
		for col, cell := range b.Cells[row] {
			if cell.Tile != nil {
				t := cell.Tile.Clone()
				cell.Tile = &t
			}
			cells[row][col] = cell
		}
	}
	return &Board{Size: b.Size, Cells: cells}
}
