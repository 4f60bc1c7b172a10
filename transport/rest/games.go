package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/gridtactoe/internal/apperror"
	"github.com/rocketscienceinc/gridtactoe/internal/entity"
)

var errMalformedRequest = errors.New("malformed request")

type newGameRequest struct {
	ID   string `json:"id,omitempty"`
	Size int    `json:"size,omitempty"`
}

type moveRequest struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type resetRequest struct {
	Size int `json:"size,omitempty"`
}

// GameView is what the UI reads back to render a game.
type GameView struct {
	ID         string     `json:"id"`
	Size       int        `json:"size"`
	Turn       string     `json:"turn"`
	Winner     string     `json:"winner,omitempty"`
	Status     string     `json:"status"`
	IsTied     bool       `json:"is_tied"`
	IsFinished bool       `json:"is_finished"`
	Board      [][]string `json:"board"`
}

type CellView struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Mark   string `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newGameView(game *entity.Game) GameView {
	size := game.Size()

	board := make([][]string, size)
	for i := 1; i <= size; i++ {
		row := game.Board.RowCells(i)
		board[i-1] = make([]string, len(row))
		for j, cell := range row {
			board[i-1][j] = string(cell.Mark)
		}
	}

	return GameView{
		ID:         game.ID,
		Size:       size,
		Turn:       string(game.Turn),
		Winner:     string(game.Winner),
		Status:     game.Status,
		IsTied:     game.IsTied(),
		IsFinished: game.IsFinished(),
		Board:      board,
	}
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	game, err := that.games.NewGame(r.Context(), req.ID, req.Size)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newGameView(game))
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *Server) handlePlayMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	game, err := that.games.PlayMove(r.Context(), mux.Vars(r)["id"], req.Row, req.Column)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *Server) handleResetGame(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	game, err := that.games.ResetGame(r.Context(), mux.Vars(r)["id"], req.Size)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *Server) handleGetCell(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// the route pattern only lets integers through
	row, _ := strconv.Atoi(vars["row"])
	column, _ := strconv.Atoi(vars["column"])

	mark, err := that.games.CellMark(r.Context(), vars["id"], row, column)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, CellView{Row: row, Column: column, Mark: string(mark)})
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), mux.Vars(r)["id"]); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody - an empty body leaves v at its zero value.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return errors.Join(errMalformedRequest, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, errMalformedRequest),
		errors.Is(err, apperror.ErrInvalidSize),
		errors.Is(err, apperror.ErrSizeNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrOutOfBounds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrCellAlreadyMarked),
		errors.Is(err, apperror.ErrGameAlreadyFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	log := that.logger.With("method", r.Method, "path", r.URL.Path, "status", status)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})

		return
	}

	log.Debug("request rejected", "error", err)
	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
