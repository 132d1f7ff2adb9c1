package board

import (
	"github.com/mcoot/wordtiles/internal/model"
)

// Service builds boards and validates placements
type Service struct{}

// New creates a new BoardService
func New() *Service {
	return &Service{}
}

// Build creates an empty size x size board with bonus squares assigned.
// Layout coordinates that fall outside a smaller board are skipped.
// Sizes outside 1..model.MaxBoardSize are rejected.
func (s *Service) Build(size int) (*model.Board, error) {
	if size < 1 || size > model.MaxBoardSize {
		return nil, model.ErrInvalidBoardSize
	}

	cells := make([][]model.BoardCell, size)
	for row := 0; row < size; row++ {
		cells[row] = make([]model.BoardCell, size)
		for col := 0; col < size; col++ {
			cells[row][col] = model.BoardCell{
				Row:   row,
				Col:   col,
				Bonus: BonusAt(model.Position{Row: row, Col: col}),
			}
		}
	}

	return &model.Board{
		Size:  size,
		Cells: cells,
	}, nil
}

// ValidatePlacement checks if a position is valid and empty
func (s *Service) ValidatePlacement(board *model.Board, pos model.Position) error {
	if !board.IsValidPosition(pos) {
		return model.ErrInvalidPosition
	}
	if !board.IsEmpty(pos) {
		return model.ErrCellOccupied
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Build(size int) (*model.Board, error)
	ValidatePlacement(board *model.Board, pos model.Position) error
}

var _ ServiceInterface = (*Service)(nil)
