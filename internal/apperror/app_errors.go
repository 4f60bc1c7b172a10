package apperror

import "errors"

var (
	ErrInvalidSize         = errors.New("board size must be at least 1")
	ErrOutOfBounds         = errors.New("cell is out of bounds")
	ErrCellAlreadyMarked   = errors.New("cell is already marked")
	ErrGameAlreadyFinished = errors.New("game is already finished")

	ErrGameNotFound   = errors.New("game not found")
	ErrSizeNotAllowed = errors.New("board size is not allowed")
)
