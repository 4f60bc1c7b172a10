package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gridtactoe/internal/apperror"
)

// Cell is one grid position. Row and Column are 1-indexed.
type Cell struct {
	Row    int  `json:"row"`
	Column int  `json:"column"`
	Mark   Mark `json:"mark,omitempty"`
}

func (that Cell) IsMarked() bool {
	return that.Mark != NoMark
}

// Board is an N×N grid stored in row-major order.
type Board struct {
	Size  int    `json:"size"`
	Cells []Cell `json:"cells"`
}

// NewBoard - creates a board with size² unmarked cells.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidSize, size)
	}

	cells := make([]Cell, 0, size*size)
	for row := 1; row <= size; row++ {
		for column := 1; column <= size; column++ {
			cells = append(cells, Cell{Row: row, Column: column})
		}
	}

	return &Board{Size: size, Cells: cells}, nil
}

func (that *Board) InBounds(row, column int) bool {
	return row >= 1 && row <= that.Size && column >= 1 && column <= that.Size
}

func (that *Board) index(row, column int) int {
	return (row-1)*that.Size + (column - 1)
}

// CellAt - returns a copy of the cell at the given position.
func (that *Board) CellAt(row, column int) (Cell, error) {
	if !that.InBounds(row, column) {
		return Cell{}, fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfBounds, row, column)
	}

	return that.Cells[that.index(row, column)], nil
}

// PlaceMark - marks an unplayed cell. A marked cell is never overwritten.
func (that *Board) PlaceMark(row, column int, mark Mark) error {
	if !that.InBounds(row, column) {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrOutOfBounds, row, column)
	}

	cell := &that.Cells[that.index(row, column)]
	if cell.IsMarked() {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellAlreadyMarked, row, column)
	}

	cell.Mark = mark

	return nil
}

func (that *Board) RowCells(row int) []Cell {
	if row < 1 || row > that.Size {
		return nil
	}

	start := that.index(row, 1)
	line := make([]Cell, that.Size)
	copy(line, that.Cells[start:start+that.Size])

	return line
}

func (that *Board) ColumnCells(column int) []Cell {
	if column < 1 || column > that.Size {
		return nil
	}

	line := make([]Cell, 0, that.Size)
	for row := 1; row <= that.Size; row++ {
		line = append(line, that.Cells[that.index(row, column)])
	}

	return line
}

// LeftDiagonalCells - cells where row == column, top-left to bottom-right.
func (that *Board) LeftDiagonalCells() []Cell {
	line := make([]Cell, 0, that.Size)
	for i := 1; i <= that.Size; i++ {
		line = append(line, that.Cells[that.index(i, i)])
	}

	return line
}

// RightDiagonalCells - cells where row + column - 1 == size, in increasing row order.
func (that *Board) RightDiagonalCells() []Cell {
	line := make([]Cell, 0, that.Size)
	for row := 1; row <= that.Size; row++ {
		line = append(line, that.Cells[that.index(row, that.Size+1-row)])
	}

	return line
}

func (that *Board) IsFull() bool {
	for _, cell := range that.Cells {
		if !cell.IsMarked() {
			return false
		}
	}

	return true
}

func (that *Board) Clone() *Board {
	if that == nil {
		return nil
	}

	cells := make([]Cell, len(that.Cells))
	copy(cells, that.Cells)

	return &Board{Size: that.Size, Cells: cells}
}
