package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/bag"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/web/middleware"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
	"github.com/mcoot/wordtiles/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	gameController game.ControllerInterface
	logger         *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(gameController game.ControllerInterface, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		gameController: gameController,
		logger:         logger,
	}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGames(r.Context())
	if err != nil {
		h.logger.Error("failed to list games", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Home",
			Flash: middleware.GetFlash(r.Context()),
		},
		Games: ids,
	}

	render(w, r, pages.Home(data))
}

// Rules renders how to play, with the tile table
func (h *HomeHandler) Rules(w http.ResponseWriter, r *http.Request) {
	letters := make([]pages.LetterInfo, len(bag.StandardDistribution))
	for i, spec := range bag.StandardDistribution {
		letters[i] = pages.LetterInfo{
			Letter: model.Tile{Letter: spec.Letter}.Display(),
			Value:  spec.Value,
			Count:  spec.Count,
		}
	}

	data := pages.RulesData{
		PageData: layout.PageData{
			Title: "Rules",
			Flash: middleware.GetFlash(r.Context()),
		},
		Letters: letters,
	}

	render(w, r, pages.Rules(data))
}
