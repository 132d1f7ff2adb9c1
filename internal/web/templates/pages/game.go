package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/components"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
	"github.com/mcoot/wordtiles/internal/web/templates/markup"
)

// GameData holds data for the game page
type GameData struct {
	layout.PageData
	Game    *model.Game
	Ranking *model.Ranking // Set once the game is over
}

// Game renders the hot-seat game page
func Game(data GameData) templ.Component {
	body := markup.Func(func(ctx context.Context, w *markup.Writer) {
		g := data.Game
		w.Rawf(`<div class="game" data-game-id="%s" data-phase="%s">`, markup.Esc(string(g.ID)), g.Phase())
		w.Component(ctx, components.Players(g))
		w.Component(ctx, components.Board(g))
		w.Component(ctx, components.Rack(g))
		w.Component(ctx, components.Controls(g))
		if data.Ranking != nil {
			w.Component(ctx, components.Ranking(*data.Ranking))
		}
		w.Raw(`</div>`)
	})
	return layout.Base(data.PageData, body)
}
