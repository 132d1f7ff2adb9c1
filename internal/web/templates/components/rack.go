package components

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/markup"
)

// Rack renders the current player's tiles as selectable buttons
func Rack(g *model.Game) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		player := g.CurrentPlayer()
		if player == nil {
			return
		}

		w.Raw(`<section id="rack" class="rack">`)
		w.Rawf(`<h2>%s's rack</h2>`, markup.Esc(player.Name))
		if len(player.Rack) == 0 {
			w.Raw(`<p class="empty">No tiles left.</p>`)
		}
		for _, t := range player.Rack {
			class := "rack-tile"
			if g.SelectedTileID != nil && *g.SelectedTileID == t.ID {
				class += " selected"
			}
			w.Rawf(`<form method="post" action="/games/%s/select" class="%s">`, markup.Esc(string(g.ID)), class)
			w.Rawf(`<input type="hidden" name="tile_id" value="%s">`, markup.Esc(string(t.ID)))
			if g.GameOver {
				w.Raw(`<button type="submit" disabled>`)
			} else {
				w.Raw(`<button type="submit">`)
			}
			w.Component(ctx, Tile(t))
			w.Raw(`</button></form>`)
		}
		w.Raw(`</section>`)
	})
}
