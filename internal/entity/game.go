package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gridtactoe/internal/apperror"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusTied       = "tied"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the engine-visible session state. It exclusively owns its Board.
type Game struct {
	ID     string `json:"id"`
	Board  *Board `json:"board"`
	Turn   Mark   `json:"turn"`
	Winner Mark   `json:"winner,omitempty"`
	Status string `json:"status"`
}

func NewGame(id string, size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return &Game{
		ID:     id,
		Board:  board,
		Turn:   Circle,
		Status: StatusInProgress,
	}, nil
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsTied() bool {
	return that.Status == StatusTied
}

func (that *Game) IsFinished() bool {
	return that.Winner != NoMark || that.IsTied()
}

// ConfirmInProgress - returns an error unless the game still accepts moves.
func (that *Game) ConfirmInProgress() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameAlreadyFinished
	case that.IsInProgress():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// CellMark - returns the mark at the given position, NoMark if unplayed.
func (that *Game) CellMark(row, column int) (Mark, error) {
	cell, err := that.Board.CellAt(row, column)
	if err != nil {
		return NoMark, err
	}

	return cell.Mark, nil
}

func (that *Game) Size() int {
	if that.Board == nil {
		return 0
	}

	return that.Board.Size
}

func (that *Game) Clone() *Game {
	if that == nil {
		return nil
	}

	clone := *that
	clone.Board = that.Board.Clone()

	return &clone
}
