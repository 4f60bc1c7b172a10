package tictactoe

import "github.com/rocketscienceinc/gridtactoe/internal/entity"

// EvaluateWinner - scans rows, then columns, then the right and left diagonals,
// and returns the owner of the first complete line. NoMark when there is none.
func EvaluateWinner(board *entity.Board) entity.Mark {
	for i := 1; i <= board.Size; i++ {
		if owner := whoOwns(board.RowCells(i)); owner != entity.NoMark {
			return owner
		}
	}

	for j := 1; j <= board.Size; j++ {
		if owner := whoOwns(board.ColumnCells(j)); owner != entity.NoMark {
			return owner
		}
	}

	if owner := whoOwns(board.RightDiagonalCells()); owner != entity.NoMark {
		return owner
	}

	return whoOwns(board.LeftDiagonalCells())
}

// EvaluateTie - a full board is only a tie when nobody owns a line.
func EvaluateTie(board *entity.Board) bool {
	return board.IsFull() && EvaluateWinner(board) == entity.NoMark
}

func whoOwns(line []entity.Cell) entity.Mark {
	if len(line) == 0 {
		return entity.NoMark
	}

	owner := line[0].Mark
	for _, cell := range line {
		if !cell.IsMarked() || cell.Mark != owner {
			return entity.NoMark
		}
	}

	return owner
}
