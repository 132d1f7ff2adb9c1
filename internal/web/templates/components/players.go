package components

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/markup"
)

// Players renders the scoreboard and bag count
func Players(g *model.Game) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Raw(`<section id="players" class="players"><h2>Players</h2><ul>`)
		for i, p := range g.Players {
			class := "player"
			if i == g.CurrentPlayerIdx && !g.GameOver {
				class += " current"
			}
			w.Rawf(`<li class="%s" data-player-id="%s">`, class, markup.Esc(string(p.ID)))
			w.Rawf(`<span class="name">%s</span>`, markup.Esc(p.Name))
			w.Rawf(`<span class="score">%d</span>`, p.Score)
			w.Rawf(`<span class="rack-size">%d tiles</span>`, len(p.Rack))
			w.Raw(`</li>`)
		}
		w.Raw(`</ul>`)
		w.Rawf(`<p class="game-info">Tiles in bag: <span id="bag-count">%d</span></p>`, g.BagCount())
		w.Rawf(`<p class="game-info">Turn: <span id="turn-number">%d</span></p>`, g.TurnNumber+1)
		w.Raw(`</section>`)
	})
}
