package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/web/middleware"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
	"github.com/mcoot/wordtiles/internal/web/templates/pages"
)

// GameHandler handles game pages and actions
type GameHandler struct {
	gameController game.ControllerInterface
	logger         *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController game.ControllerInterface, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		logger:         logger,
	}
}

// View renders the game page
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		middleware.SetStatus(w, model.MessageFor(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := pages.GameData{
		PageData: layout.PageData{
			Title: "Game " + string(g.ID),
			Flash: middleware.GetFlash(r.Context()),
		},
		Game: g,
	}
	if g.GameOver {
		ranking, err := h.gameController.GetRanking(r.Context(), id)
		if err == nil {
			data.Ranking = &ranking
		}
	}

	render(w, r, pages.Game(data))
}

// Create handles new game creation from the home page form
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, string(model.SeverityError), "Invalid form data")
		redirect(w, r, "/")
		return
	}

	opts := game.Options{PlayerNames: parseNames(r.FormValue("player_names"))}
	if raw := strings.TrimSpace(r.FormValue("player_count")); raw != "" && len(opts.PlayerNames) == 0 {
		count, err := strconv.Atoi(raw)
		if err != nil {
			middleware.SetFlash(w, string(model.SeverityError), "Player count must be a number")
			redirect(w, r, "/")
			return
		}
		opts.PlayerCount = count
	}

	if raw := strings.TrimSpace(r.FormValue("board_size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			middleware.SetStatus(w, model.MessageFor(model.ErrInvalidBoardSize))
			redirect(w, r, "/")
			return
		}
		opts.BoardSize = size
	}

	outcome, err := h.gameController.NewGame(r.Context(), opts)
	if err != nil {
		h.fail(w, r, "/", err)
		return
	}

	middleware.SetStatus(w, outcome.Message)
	redirect(w, r, gamePath(outcome.Game.ID))
}

// Select handles choosing a rack tile
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, string(model.SeverityError), "Invalid form data")
		redirect(w, r, gamePath(gameID(r)))
		return
	}

	tileID := model.TileID(r.FormValue("tile_id"))
	h.act(w, r, func(ctx context.Context, id model.GameID) (*game.Outcome, error) {
		return h.gameController.SelectTile(ctx, id, tileID)
	})
}

// Click handles a click on a board cell
func (h *GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, string(model.SeverityError), "Invalid form data")
		redirect(w, r, gamePath(gameID(r)))
		return
	}

	row, rowErr := strconv.Atoi(r.FormValue("row"))
	col, colErr := strconv.Atoi(r.FormValue("col"))
	if rowErr != nil || colErr != nil {
		middleware.SetStatus(w, model.MessageFor(model.ErrInvalidPosition))
		redirect(w, r, gamePath(gameID(r)))
		return
	}

	pos := model.Position{Row: row, Col: col}
	h.act(w, r, func(ctx context.Context, id model.GameID) (*game.Outcome, error) {
		return h.gameController.ClickCell(ctx, id, pos)
	})
}

// Commit handles playing the placed tiles
func (h *GameHandler) Commit(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.gameController.CommitTurn)
}

// Shuffle handles shuffling the current rack
func (h *GameHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.gameController.ShuffleRack)
}

// Recall handles returning all placed tiles to the rack
func (h *GameHandler) Recall(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.gameController.RecallAll)
}

// Restart handles starting over with the same players
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.gameController.RestartGame)
}

// Delete handles removing a game
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteGame(r.Context(), gameID(r)); err != nil {
		h.fail(w, r, "/", err)
		return
	}

	middleware.SetFlash(w, string(model.SeverityInfo), "Game deleted")
	redirect(w, r, "/")
}

// act runs a game operation and redirects back to the game page with its
// message flashed
func (h *GameHandler) act(w http.ResponseWriter, r *http.Request, op func(context.Context, model.GameID) (*game.Outcome, error)) {
	id := gameID(r)
	outcome, err := op(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			h.fail(w, r, "/", err)
			return
		}
		h.fail(w, r, gamePath(id), err)
		return
	}

	middleware.SetStatus(w, outcome.Message)
	redirect(w, r, gamePath(id))
}

func (h *GameHandler) fail(w http.ResponseWriter, r *http.Request, target string, err error) {
	msg := model.MessageFor(err)
	if !model.IsRuleError(err) {
		h.logger.Error("game action failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	middleware.SetStatus(w, msg)
	redirect(w, r, target)
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

func gamePath(id model.GameID) string {
	return "/games/" + string(id)
}

func parseNames(raw string) []string {
	names := lo.Map(strings.Split(raw, ","), func(name string, _ int) string {
		return strings.TrimSpace(name)
	})
	return lo.Compact(names)
}

// redirect navigates the client, using HX-Redirect for HTMX requests
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
