package repository

import (
	"testing"

	"github.com/rocketscienceinc/gridtactoe/internal/apperror"
	"github.com/rocketscienceinc/gridtactoe/internal/entity"
	"github.com/rocketscienceinc/gridtactoe/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGameRepository(t *testing.T) {
	t.Run("Stores and returns a game", func(t *testing.T) {
		ctx, _ := suite.New(t)
		gameRepo := NewMemoryGameRepository()

		// Given: a stored game
		game := newTestGame(t, "123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: it is loaded back
		retrievedGame, err := gameRepo.GetByID(ctx, "123")

		// Then: it matches the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("Returned games do not share state with the store", func(t *testing.T) {
		ctx, _ := suite.New(t)
		gameRepo := NewMemoryGameRepository()

		// Given: a stored game
		game := newTestGame(t, "123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: both the original and a loaded copy are mutated
		require.NoError(t, game.Board.PlaceMark(1, 1, entity.Cross))
		loaded, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		require.NoError(t, loaded.Board.PlaceMark(3, 3, entity.Cross))

		// Then: the stored game is untouched
		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, newTestGame(t, "123"), stored)
	})

	t.Run("Missing game", func(t *testing.T) {
		ctx, _ := suite.New(t)
		gameRepo := NewMemoryGameRepository()

		_, err := gameRepo.GetByID(ctx, "nope")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)

		err = gameRepo.DeleteByID(ctx, "nope")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		ctx, _ := suite.New(t)
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, newTestGame(t, "123")))

		require.NoError(t, gameRepo.DeleteByID(ctx, "123"))

		_, err := gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
