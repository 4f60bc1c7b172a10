package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/gridtactoe/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameManager interface {
	NewGame(ctx context.Context, id string, size int) (*entity.Game, error)
	PlayMove(ctx context.Context, id string, row, column int) (*entity.Game, error)
	ResetGame(ctx context.Context, id string, size int) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	CellMark(ctx context.Context, id string, row, column int) (entity.Mark, error)
	DeleteGame(ctx context.Context, id string) error
}

type Server struct {
	logger  *slog.Logger
	games   gameManager
	handler http.Handler
}

func New(logger *slog.Logger, games gameManager) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		games:  games,
	}

	router := mux.NewRouter()
	router.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	router.HandleFunc("/games", server.handleNewGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{id}", server.handleGetGame).Methods(http.MethodGet)
	router.HandleFunc("/games/{id}", server.handleDeleteGame).Methods(http.MethodDelete)
	router.HandleFunc("/games/{id}/moves", server.handlePlayMove).Methods(http.MethodPost)
	router.HandleFunc("/games/{id}/reset", server.handleResetGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{id}/cells/{row:-?[0-9]+}/{column:-?[0-9]+}", server.handleGetCell).Methods(http.MethodGet)

	server.handler = router

	return server
}

func (that *Server) Handler() http.Handler {
	return that.handler
}

// Start - serves HTTP until ctx is done, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return nil
	}
}
