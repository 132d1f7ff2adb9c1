package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/handler"
	"github.com/mcoot/wordtiles/internal/api/middleware"
	"github.com/mcoot/wordtiles/internal/api/response"
	sharedmw "github.com/mcoot/wordtiles/internal/middleware"
	"github.com/mcoot/wordtiles/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	Mount(r, cfg)
	return r
}

// Mount registers the API routes under /api/v1 on an existing router
func Mount(r *mux.Router, cfg RouterConfig) {
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(sharedmw.RequestID())
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(sharedmw.Logging(cfg.Logger))

	// Game routes
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/select", gameHandler.Select).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/deselect", gameHandler.Deselect).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/click", gameHandler.Click).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/commit", gameHandler.Commit).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/shuffle", gameHandler.Shuffle).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/recall", gameHandler.Recall).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/restart", gameHandler.Restart).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/ranking", gameHandler.Ranking).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
