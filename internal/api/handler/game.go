package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/apierr"
	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/middleware"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		logger:         logger,
	}
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGames(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := response.GameList{Games: make([]string, len(ids))}
	for i, id := range ids {
		resp.Games[i] = string(id)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := decodeOptional(r, &req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	outcome, err := h.gameController.NewGame(r.Context(), game.Options{
		PlayerCount: req.PlayerCount,
		PlayerNames: req.PlayerNames,
		BoardSize:   req.BoardSize,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(outcome.Game, outcome.Message))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSONWithETag(w, r, response.GameFromModel(g, model.StatusMessage{}))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteGame(r.Context(), gameID(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.NoContent(w)
}

// Select handles POST /api/v1/games/{id}/select
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req request.SelectTileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TileID == "" {
		WriteError(w, NewInvalidRequestError("tile_id is required"))
		return
	}

	h.respond(w, r)(h.gameController.SelectTile(r.Context(), gameID(r), model.TileID(req.TileID)))
}

// Deselect handles POST /api/v1/games/{id}/deselect
func (h *GameHandler) Deselect(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.gameController.DeselectTile(r.Context(), gameID(r)))
}

// Click handles POST /api/v1/games/{id}/click
func (h *GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	var req request.ClickCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		WriteError(w, NewInvalidRequestError("row and col are required"))
		return
	}

	pos := model.Position{Row: *req.Row, Col: *req.Col}
	h.respond(w, r)(h.gameController.ClickCell(r.Context(), gameID(r), pos))
}

// Commit handles POST /api/v1/games/{id}/commit
func (h *GameHandler) Commit(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.gameController.CommitTurn(r.Context(), gameID(r)))
}

// Shuffle handles POST /api/v1/games/{id}/shuffle
func (h *GameHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.gameController.ShuffleRack(r.Context(), gameID(r)))
}

// Recall handles POST /api/v1/games/{id}/recall
func (h *GameHandler) Recall(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.gameController.RecallAll(r.Context(), gameID(r)))
}

// Restart handles POST /api/v1/games/{id}/restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.gameController.RestartGame(r.Context(), gameID(r)))
}

// Ranking handles GET /api/v1/games/{id}/ranking
func (h *GameHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.gameController.GetRanking(r.Context(), gameID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RankingFromModel(ranking))
}

// respond writes the outcome of a game operation as a GameResponse
func (h *GameHandler) respond(w http.ResponseWriter, r *http.Request) func(*game.Outcome, error) {
	return func(outcome *game.Outcome, err error) {
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		response.JSON(w, http.StatusOK, response.GameFromModel(outcome.Game, outcome.Message))
	}
}

// writeError logs unexpected failures before writing the error body
func (h *GameHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apierr.Status(err) >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("error", err.Error()),
		)
	}
	WriteError(w, err)
}

// maxBodyBytes bounds request bodies decoded by the handlers
const maxBodyBytes = 64 << 10

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// decodeOptional decodes a JSON body, treating an empty body as zero values
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
