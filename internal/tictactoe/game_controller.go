package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/gridtactoe/internal/entity"
)

// NewGame - creates an in-progress game with an empty board where Circle moves first.
func NewGame(size int) (*entity.Game, error) {
	game, err := entity.NewGame("", size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

// PlayMove - places the current turn's mark and advances the game.
// A rejected move leaves the game untouched.
func PlayMove(game *entity.Game, row, column int) error {
	if err := game.ConfirmInProgress(); err != nil {
		return err
	}

	if err := game.Board.PlaceMark(row, column, game.Turn); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	updateGameStatus(game)

	return nil
}

// Reset - discards the board and starts over with the given size. The game ID is kept.
func Reset(game *entity.Game, size int) error {
	fresh, err := entity.NewGame(game.ID, size)
	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	*game = *fresh

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game) {
	if winner := EvaluateWinner(game.Board); winner != entity.NoMark {
		game.Winner = winner
		game.Status = entity.StatusWon

		return
	}

	if EvaluateTie(game.Board) {
		game.Status = entity.StatusTied

		return
	}

	game.Turn = game.Turn.Opposite()
}
