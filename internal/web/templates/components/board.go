package components

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/markup"
)

// Board renders the grid. Every cell is a button posting a click for
// that position, except once the game is over.
func Board(g *model.Game) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Rawf(`<table id="board" class="board" data-size="%d"><tbody>`, g.Board.Size)
		for _, row := range g.Board.Cells {
			w.Raw(`<tr>`)
			for _, cell := range row {
				cellView(ctx, w, g, cell)
			}
			w.Raw(`</tr>`)
		}
		w.Raw(`</tbody></table>`)
	})
}

func cellView(ctx context.Context, w *markup.Writer, g *model.Game, cell model.BoardCell) {
	class := "cell bonus-" + string(cell.Bonus)
	if cell.Tile != nil && g.IsPlacedThisTurn(cell.Tile.ID) {
		class += " placed"
	}
	w.Rawf(`<td class="%s" data-row="%d" data-col="%d">`, class, cell.Row, cell.Col)

	if !g.GameOver {
		w.Rawf(`<form method="post" action="/games/%s/click">`, markup.Esc(string(g.ID)))
		w.Rawf(`<input type="hidden" name="row" value="%d"><input type="hidden" name="col" value="%d">`, cell.Row, cell.Col)
		w.Raw(`<button type="submit" class="cell-button">`)
	}

	if cell.Tile != nil {
		w.Component(ctx, Tile(*cell.Tile))
	} else if label := cell.Bonus.Label(); label != "" {
		w.Rawf(`<span class="bonus-label">%s</span>`, markup.Esc(label))
	}

	if !g.GameOver {
		w.Raw(`</button></form>`)
	}
	w.Raw(`</td>`)
}

// Tile renders a single tile face
func Tile(t model.Tile) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		class := "tile"
		if t.IsBlank() {
			class += " blank"
		}
		w.Rawf(`<span class="%s" data-tile-id="%s"><span class="letter">%s</span><sub class="value">%d</sub></span>`,
			class, markup.Esc(string(t.ID)), markup.Esc(t.Display()), t.Value)
	})
}
