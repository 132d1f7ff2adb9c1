package components

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/markup"
)

// Controls renders the turn actions
func Controls(g *model.Game) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		id := markup.Esc(string(g.ID))
		w.Raw(`<section id="controls" class="controls">`)
		if !g.GameOver {
			action(w, id, "commit", "Play Word", len(g.PlacedTiles) == 0)
			action(w, id, "shuffle", "Shuffle", false)
			action(w, id, "recall", "Recall Tiles", len(g.PlacedTiles) == 0)
		}
		action(w, id, "restart", "New Game", false)
		w.Raw(`</section>`)
	})
}

func action(w *markup.Writer, id, name, label string, disabled bool) {
	w.Rawf(`<form method="post" action="/games/%s/%s" class="action-%s">`, id, name, name)
	if disabled {
		w.Rawf(`<button type="submit" disabled>%s</button>`, label)
	} else {
		w.Rawf(`<button type="submit">%s</button>`, label)
	}
	w.Raw(`</form>`)
}

// Ranking renders the final standings
func Ranking(r model.Ranking) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Raw(`<section id="game-over" class="game-over">`)
		if r.IsTie {
			w.Raw(`<h2>Game Over - It's a Tie!</h2>`)
		} else {
			w.Raw(`<h2>Game Over - We Have a Winner!</h2>`)
		}
		w.Raw(`<ol class="standings">`)
		for _, s := range r.Standings {
			class := "standing"
			if r.Winner != nil && *r.Winner == s.PlayerID {
				class += " winner"
			}
			w.Rawf(`<li class="%s" data-place="%d"><span class="name">%s</span> <span class="score">%d</span></li>`,
				class, s.Place, markup.Esc(s.Name), s.Score)
		}
		w.Raw(`</ol></section>`)
	})
}
