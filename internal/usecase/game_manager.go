package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gridtactoe/internal/apperror"
	"github.com/rocketscienceinc/gridtactoe/internal/config"
	"github.com/rocketscienceinc/gridtactoe/internal/entity"
	"github.com/rocketscienceinc/gridtactoe/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager holds one game per session and feeds it discrete events,
// one at a time per game.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	board    config.Board
	locks    *keyedMutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, board config.Board) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		board:    board,
		locks:    newKeyedMutex(),
	}
}

// NewGame - starts a game under id, replacing whatever was there. An empty id
// gets a generated one and size 0 means the configured default.
func (that *GameManager) NewGame(ctx context.Context, id string, size int) (*entity.Game, error) {
	log := that.logger.With("method", "NewGame")

	size, err := that.resolveSize(size, that.board.DefaultSize)
	if err != nil {
		return nil, err
	}

	if id == "" {
		id = uuid.NewString()
	}

	unlock := that.locks.Lock(id)
	defer unlock()

	game, err := tictactoe.NewGame(size)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}
	game.ID = id

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("game created", "gameID", id, "size", size)

	return game, nil
}

// PlayMove - places the current turn's mark. The stored game only changes on success.
func (that *GameManager) PlayMove(ctx context.Context, id string, row, column int) (*entity.Game, error) {
	log := that.logger.With("method", "PlayMove", "gameID", id)

	unlock := that.locks.Lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	turn := game.Turn
	if err = tictactoe.PlayMove(game, row, column); err != nil {
		log.Debug("move rejected", "row", row, "column", column, "error", err)

		return nil, fmt.Errorf("failed make move: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Debug("move played", "mark", turn, "row", row, "column", column)

	if game.IsFinished() {
		log.Info("game finished", "status", game.Status, "winner", game.Winner)
	}

	return game, nil
}

// ResetGame - starts the game over. Size 0 keeps the current board size.
func (that *GameManager) ResetGame(ctx context.Context, id string, size int) (*entity.Game, error) {
	log := that.logger.With("method", "ResetGame", "gameID", id)

	unlock := that.locks.Lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	size, err = that.resolveSize(size, game.Size())
	if err != nil {
		return nil, err
	}

	if err = tictactoe.Reset(game, size); err != nil {
		return nil, fmt.Errorf("failed reset game: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	log.Info("game reset", "size", size)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.getGameByID(ctx, id)
}

func (that *GameManager) CellMark(ctx context.Context, id string, row, column int) (entity.Mark, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return entity.NoMark, err
	}

	mark, err := game.CellMark(row, column)
	if err != nil {
		return entity.NoMark, fmt.Errorf("failed get cell: %w", err)
	}

	return mark, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.locks.Lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "method", "DeleteGame", "gameID", id)

	return nil
}

func (that *GameManager) resolveSize(size, fallback int) (int, error) {
	if size == 0 {
		size = fallback
	}

	if size < 1 {
		return 0, fmt.Errorf("%w: got %d", apperror.ErrInvalidSize, size)
	}

	if size < that.board.MinSize || size > that.board.MaxSize {
		return 0, fmt.Errorf("%w: %d is outside [%d, %d]", apperror.ErrSizeNotAllowed, size, that.board.MinSize, that.board.MaxSize)
	}

	return size, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", apperror.ErrGameNotFound)
	}

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrGameNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
