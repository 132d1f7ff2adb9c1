package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return NewOutputTo(format, os.Stdout, os.Stderr)
}

// NewOutputTo creates a new Output formatter writing to the given streams
func NewOutputTo(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	switch o.format {
	case "json":
		o.printJSON(data)
	case "yaml":
		o.printYAML(data)
	default:
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	switch o.format {
	case "json":
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errW, string(data))
	default:
		_, _ = fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	switch o.format {
	case "json":
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	case "yaml":
		o.printYAML(map[string]string{"message": msg})
	default:
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// printYAML round-trips through JSON so field names match the API
func (o *Output) printYAML(data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		o.PrintError(err)
		return
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		o.PrintError(err)
		return
	}
	enc := yaml.NewEncoder(o.w)
	enc.SetIndent(2)
	_ = enc.Encode(generic)
	_ = enc.Close()
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.GameResponse:
		o.printGame(v)
	case response.RankingResponse:
		o.printRanking(v)
	case response.GameList:
		o.printGameList(v)
	case response.Health:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGame(g response.GameResponse) {
	if g.Message != nil {
		o.printf("[%s] %s\n\n", g.Message.Type, g.Message.Text)
	}

	o.printf("Game: %s\n", g.ID)
	o.printf("Phase: %s\n", g.Phase)
	o.printf("Turn: %d\n", g.TurnNumber+1)
	o.printf("Tiles in bag: %d\n", g.BagCount)

	o.printf("\nPlayers:\n")
	for i, p := range g.Players {
		marker := " "
		if i == g.CurrentPlayerIndex && !g.GameOver {
			marker = ">"
		}
		o.printf(" %s %s (%s): %d points, %d tiles\n", marker, p.Name, p.ID, p.Score, p.RackSize)
	}

	o.printf("\n")
	o.printBoard(g.Board)

	if !g.GameOver && g.CurrentPlayerIndex < len(g.Players) {
		current := g.Players[g.CurrentPlayerIndex]
		o.printf("\n%s's rack:\n", current.Name)
		o.printRack(current.Rack, g.SelectedTileID)
	}

	if len(g.PlacedTileIDs) > 0 {
		o.printf("Placed this turn: %s\n", strings.Join(g.PlacedTileIDs, ", "))
	}
	if g.GameOver {
		o.printf("\nGame Over!\n")
	}
}

// bonusMarks are shown on empty squares
var bonusMarks = map[string]string{
	string(model.BonusDoubleLetter): "d",
	string(model.BonusTripleLetter): "t",
	string(model.BonusDoubleWord):   "D",
	string(model.BonusTripleWord):   "T",
	string(model.BonusCenter):       "*",
}

func (o *Output) printBoard(b response.Board) {
	if len(b.Cells) == 0 {
		return
	}

	// Print column headers
	o.printf("    ")
	for col := 0; col < b.Size; col++ {
		o.printf("%3d", col)
	}
	o.printf("\n")

	border := "    +" + strings.Repeat("---", b.Size) + "+\n"
	o.printf("%s", border)

	for row, cells := range b.Cells {
		o.printf("%3d |", row)
		for _, cell := range cells {
			switch {
			case cell.Tile != nil:
				o.printf(" %s ", cell.Tile.Letter)
			case bonusMarks[cell.Bonus] != "":
				o.printf(" %s ", bonusMarks[cell.Bonus])
			default:
				o.printf(" . ")
			}
		}
		o.printf("|\n")
	}

	o.printf("%s", border)
}

func (o *Output) printRack(rack []response.Tile, selected *string) {
	for i, t := range rack {
		marker := " "
		if selected != nil && *selected == t.ID {
			marker = "*"
		}
		o.printf(" %s %d. %s (%d) [%s]\n", marker, i+1, t.Letter, t.Value, t.ID)
	}
}

func (o *Output) printRanking(r response.RankingResponse) {
	if r.IsTie {
		o.printf("It's a tie!\n")
	} else if r.Winner != nil {
		o.printf("Winner: %s\n", *r.Winner)
	}
	for _, s := range r.Standings {
		o.printf("  %d. %s: %d points\n", s.Place, s.Name, s.Score)
	}
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		o.printf("No games\n")
		return
	}
	for _, id := range l.Games {
		o.printf("%s\n", id)
	}
}

func (o *Output) printHealth(h response.Health) {
	o.printf("Status: %s\n", h.Status)
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}
