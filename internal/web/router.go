package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	sharedmw "github.com/mcoot/wordtiles/internal/middleware"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/web/handler"
	"github.com/mcoot/wordtiles/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	StaticDir      string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	Mount(r, cfg)
	return r
}

// Mount registers the web routes on an existing router
func Mount(r *mux.Router, cfg RouterConfig) {
	homeHandler := handler.NewHomeHandler(cfg.GameController, cfg.Logger)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	pages := r.NewRoute().Subrouter()
	pages.Use(sharedmw.RequestID())
	pages.Use(middleware.Recovery(cfg.Logger))
	pages.Use(middleware.Logging(cfg.Logger))
	pages.Use(middleware.Flash())

	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/rules", homeHandler.Rules).Methods(http.MethodGet)

	// Game routes
	pages.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}", gameHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/games/{id}/select", gameHandler.Select).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/click", gameHandler.Click).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/commit", gameHandler.Commit).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/shuffle", gameHandler.Shuffle).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/recall", gameHandler.Recall).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/restart", gameHandler.Restart).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/delete", gameHandler.Delete).Methods(http.MethodPost)
}
