package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
	"github.com/mcoot/wordtiles/internal/web/templates/markup"
)

// LetterInfo is one row of the tile table
type LetterInfo struct {
	Letter string
	Value  int
	Count  int
}

// RulesData holds data for the rules page
type RulesData struct {
	layout.PageData
	Letters []LetterInfo
}

// Rules renders how to play and the tile table
func Rules(data RulesData) templ.Component {
	body := markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Raw(`<article id="rules">`)

		w.Raw(`<section id="rules-objective"><h2>Objective</h2>`)
		w.Raw(`<p>Form words on the board with your letter tiles. Score points from the letters you play and the bonus squares they land on.</p>`)
		w.Raw(`</section>`)

		w.Raw(`<section id="rules-play"><h2>Playing a turn</h2><ol>`)
		w.Rawf(`<li>Each player starts with %d tiles drawn from a shuffled bag.</li>`, model.RackSize)
		w.Raw(`<li>Select a tile in your rack, then click an empty square to place it.</li>`)
		w.Raw(`<li>Click a tile you placed this turn to pick it back up, or use Recall to return them all.</li>`)
		w.Raw(`<li>Play Word scores the placed tiles, refills your rack from the bag and passes the turn.</li>`)
		w.Raw(`<li>The game ends when the bag is empty and a player has no tiles left.</li>`)
		w.Raw(`</ol></section>`)

		w.Raw(`<section id="rules-scoring"><h2>Scoring</h2><ul>`)
		w.Raw(`<li>Each letter has the point value shown on its tile. Blanks are worth 0.</li>`)
		w.Raw(`<li>DL and TL squares double or triple a letter placed on them this turn.</li>`)
		w.Raw(`<li>DW and TW squares double or triple the whole word when covered this turn.</li>`)
		w.Raw(`<li>Bonus squares only count on the turn they are covered.</li>`)
		w.Raw(`</ul></section>`)

		w.Raw(`<section id="rules-tiles"><h2>Tiles</h2>`)
		w.Raw(`<table class="letters"><thead><tr><th>Letter</th><th>Points</th><th>Count</th></tr></thead><tbody>`)
		for _, l := range data.Letters {
			w.Rawf(`<tr class="letter" data-letter="%s"><td>%s</td><td class="value">%d</td><td class="count">%d</td></tr>`,
				markup.Esc(l.Letter), markup.Esc(l.Letter), l.Value, l.Count)
		}
		w.Raw(`</tbody></table></section>`)

		w.Raw(`</article>`)
	})
	return layout.Base(data.PageData, body)
}
