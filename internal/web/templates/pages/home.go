package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
	"github.com/mcoot/wordtiles/internal/web/templates/markup"
)

// HomeData holds data for the home page
type HomeData struct {
	layout.PageData
	Games []model.GameID
}

// Home renders the new-game form and the list of stored games
func Home(data HomeData) templ.Component {
	body := markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Raw(`<section id="new-game"><h2>New game</h2>`)
		w.Raw(`<form method="post" action="/games">`)
		w.Rawf(`<label>Players <input type="number" name="player_count" min="1" max="%d" value="%d"></label>`,
			model.MaxPlayerCount, model.DefaultPlayerCount)
		w.Raw(`<label>Names <input type="text" name="player_names" placeholder="Comma separated, optional"></label>`)
		w.Rawf(`<label>Board size <input type="number" name="board_size" min="1" max="%d" value="%d"></label>`,
			model.MaxBoardSize, model.DefaultBoardSize)
		w.Raw(`<button type="submit">Start</button></form></section>`)

		w.Raw(`<section id="games"><h2>Games</h2>`)
		if len(data.Games) == 0 {
			w.Raw(`<p class="empty">No games yet.</p>`)
		} else {
			w.Raw(`<ul>`)
			for _, id := range data.Games {
				w.Rawf(`<li class="game-link"><a href="/games/%s">%s</a></li>`, markup.Esc(string(id)), markup.Esc(string(id)))
			}
			w.Raw(`</ul>`)
		}
		w.Raw(`</section>`)
	})
	return layout.Base(data.PageData, body)
}
