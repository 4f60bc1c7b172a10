package entity

import (
	"testing"

	"github.com/rocketscienceinc/gridtactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positions(cells []Cell) [][2]int {
	result := make([][2]int, 0, len(cells))
	for _, cell := range cells {
		result = append(result, [2]int{cell.Row, cell.Column})
	}

	return result
}

func TestNewBoard(t *testing.T) {
	for size := 1; size <= 6; size++ {
		// When: a board of the given size is created
		board, err := NewBoard(size)
		require.NoError(t, err)

		// Then: it holds size² unmarked cells in row-major order
		require.Len(t, board.Cells, size*size)
		for i, cell := range board.Cells {
			assert.Equal(t, i/size+1, cell.Row)
			assert.Equal(t, i%size+1, cell.Column)
			assert.False(t, cell.IsMarked())
		}
	}

	t.Run("Invalid size", func(t *testing.T) {
		_, err := NewBoard(0)
		require.ErrorIs(t, err, apperror.ErrInvalidSize)

		_, err = NewBoard(-3)
		require.ErrorIs(t, err, apperror.ErrInvalidSize)
	})
}

func TestBoard_PlaceMark(t *testing.T) {
	t.Run("Marks an unplayed cell", func(t *testing.T) {
		// Given: an empty board
		board, err := NewBoard(3)
		require.NoError(t, err)

		// When: Cross is placed at (3,2)
		err = board.PlaceMark(3, 2, Cross)
		require.NoError(t, err)

		// Then: the cell holds Cross
		cell, err := board.CellAt(3, 2)
		require.NoError(t, err)
		assert.Equal(t, Cell{Row: 3, Column: 2, Mark: Cross}, cell)
	})

	t.Run("Rejects an already marked cell", func(t *testing.T) {
		// Given: a board with Circle at (1,1)
		board, err := NewBoard(3)
		require.NoError(t, err)
		require.NoError(t, board.PlaceMark(1, 1, Circle))

		// When: Cross tries the same cell
		err = board.PlaceMark(1, 1, Cross)

		// Then: ErrCellAlreadyMarked is returned and Circle stays
		require.ErrorIs(t, err, apperror.ErrCellAlreadyMarked)
		cell, err := board.CellAt(1, 1)
		require.NoError(t, err)
		assert.Equal(t, Circle, cell.Mark)
	})

	t.Run("Rejects out of bounds coordinates", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)

		for _, pos := range [][2]int{{0, 1}, {1, 0}, {4, 1}, {1, 4}, {4, 4}, {-1, -1}} {
			err = board.PlaceMark(pos[0], pos[1], Circle)
			assert.ErrorIs(t, err, apperror.ErrOutOfBounds, "position %v", pos)
		}

		assert.False(t, board.IsFull())
		for _, cell := range board.Cells {
			assert.False(t, cell.IsMarked())
		}
	})
}

func TestBoard_Lines(t *testing.T) {
	board, err := NewBoard(3)
	require.NoError(t, err)

	t.Run("RowCells", func(t *testing.T) {
		assert.Equal(t, [][2]int{{2, 1}, {2, 2}, {2, 3}}, positions(board.RowCells(2)))
		assert.Nil(t, board.RowCells(4))
	})

	t.Run("ColumnCells", func(t *testing.T) {
		assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, positions(board.ColumnCells(3)))
		assert.Nil(t, board.ColumnCells(0))
	})

	t.Run("LeftDiagonalCells", func(t *testing.T) {
		assert.Equal(t, [][2]int{{1, 1}, {2, 2}, {3, 3}}, positions(board.LeftDiagonalCells()))
	})

	t.Run("RightDiagonalCells", func(t *testing.T) {
		assert.Equal(t, [][2]int{{1, 3}, {2, 2}, {3, 1}}, positions(board.RightDiagonalCells()))
	})

	t.Run("Lines are copies", func(t *testing.T) {
		row := board.RowCells(1)
		row[0].Mark = Cross

		cell, err := board.CellAt(1, 1)
		require.NoError(t, err)
		assert.Equal(t, NoMark, cell.Mark)
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a 2x2 board
	board, err := NewBoard(2)
	require.NoError(t, err)

	// When: all but one cell are marked
	require.NoError(t, board.PlaceMark(1, 1, Circle))
	require.NoError(t, board.PlaceMark(1, 2, Cross))
	require.NoError(t, board.PlaceMark(2, 1, Circle))

	// Then: the board is not full
	assert.False(t, board.IsFull())

	// When: the last cell is marked
	require.NoError(t, board.PlaceMark(2, 2, Cross))

	// Then: the board is full
	assert.True(t, board.IsFull())
}
