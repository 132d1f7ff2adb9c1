package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/factory"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/game"
)

const playHelp = `Commands:
  show                 Show the game
  select <n|tile-id>   Select (or deselect) a rack tile by position or id
  deselect             Clear the selected tile
  place <row> <col>    Place the selected tile, or pick a tile placed this turn back up
  recall               Return all tiles placed this turn to the rack
  shuffle              Shuffle the rack
  commit               Play the placed tiles and end the turn
  ranking              Show the final standings
  new                  Start a new game with the same players
  help                 Show this help
  quit                 Leave the game`

func newPlayCmd() *cobra.Command {
	var (
		opts game.Options
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a local hot-seat game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg := factory.Config{}
			if cmd.Flags().Changed("seed") {
				appCfg.Seed = &seed
			}

			app, err := factory.New(appCfg)
			if err != nil {
				return err
			}

			session := NewSession(app.GameController, NewOutput("text"), opts)
			if err := session.Start(cmd.Context()); err != nil {
				return err
			}
			return session.Loop(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&opts.PlayerCount, "players", "p", 0, "Number of players (default 2)")
	cmd.Flags().StringSliceVarP(&opts.PlayerNames, "names", "n", nil, "Player names, overrides --players")
	cmd.Flags().IntVar(&opts.BoardSize, "board-size", 0, "Board size (default 15)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible tile bag")

	return cmd
}

// Session is an interactive hot-seat game driven in-process
type Session struct {
	controller game.ControllerInterface
	out        *Output
	opts       game.Options
	gameID     model.GameID
}

// NewSession creates a Session; call Start before executing commands
func NewSession(controller game.ControllerInterface, out *Output, opts game.Options) *Session {
	return &Session{
		controller: controller,
		out:        out,
		opts:       opts,
	}
}

// Start creates the game and shows it
func (s *Session) Start(ctx context.Context) error {
	outcome, err := s.controller.NewGame(ctx, s.opts)
	if err != nil {
		return err
	}
	s.gameID = outcome.Game.ID
	s.print(outcome.Game, outcome.Message)
	return nil
}

// Loop reads commands until quit, EOF or interrupt
func (s *Session) Loop(ctx context.Context) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "wordtiles> ",
		HistoryFile:     filepath.Join(os.TempDir(), "wordtiles_history"),
		AutoComplete:    completer(),
		EOFPrompt:       "quit",
		InterruptPrompt: "^C",

		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	s.out.PrintMessage(`Type "help" for commands.`)
	for {
		line, err := l.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		quit, err := s.Execute(ctx, line)
		if err != nil {
			s.out.PrintError(err)
		}
		if quit {
			return nil
		}
	}
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("show"),
		readline.PcItem("select"),
		readline.PcItem("deselect"),
		readline.PcItem("place"),
		readline.PcItem("recall"),
		readline.PcItem("shuffle"),
		readline.PcItem("commit"),
		readline.PcItem("ranking"),
		readline.PcItem("new"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Execute runs one command line. Rule violations are shown as messages
// alongside the unchanged game; only infrastructure failures are returned.
func (s *Session) Execute(ctx context.Context, line string) (bool, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return false, fmt.Errorf("could not parse command: %w", err)
	}
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		s.out.PrintMessage(playHelp)
		return false, nil
	case "show", "board":
		return false, s.show(ctx)
	case "ranking":
		return false, s.ranking(ctx)
	}

	var outcome *game.Outcome
	switch cmd {
	case "select":
		if len(args) != 1 {
			return false, errors.New("usage: select <n|tile-id>")
		}
		tileID, err := s.resolveTile(ctx, args[0])
		if err != nil {
			return false, err
		}
		outcome, err = s.controller.SelectTile(ctx, s.gameID, tileID)
		if err != nil {
			return false, s.reject(ctx, err)
		}
	case "deselect":
		outcome, err = s.controller.DeselectTile(ctx, s.gameID)
	case "place", "click":
		if len(args) != 2 {
			return false, errors.New("usage: place <row> <col>")
		}
		row, rowErr := strconv.Atoi(args[0])
		col, colErr := strconv.Atoi(args[1])
		if rowErr != nil || colErr != nil {
			return false, errors.New("row and col must be numbers")
		}
		outcome, err = s.controller.ClickCell(ctx, s.gameID, model.Position{Row: row, Col: col})
	case "recall":
		outcome, err = s.controller.RecallAll(ctx, s.gameID)
	case "shuffle":
		outcome, err = s.controller.ShuffleRack(ctx, s.gameID)
	case "commit", "play":
		outcome, err = s.controller.CommitTurn(ctx, s.gameID)
	case "new", "restart":
		outcome, err = s.controller.RestartGame(ctx, s.gameID)
	default:
		return false, fmt.Errorf("unknown command %q, try help", cmd)
	}
	if err != nil {
		return false, s.reject(ctx, err)
	}

	s.print(outcome.Game, outcome.Message)
	return false, nil
}

// resolveTile accepts a 1-based rack position or a tile id
func (s *Session) resolveTile(ctx context.Context, arg string) (model.TileID, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return model.TileID(arg), nil
	}

	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil {
		return "", err
	}
	player := g.CurrentPlayer()
	if player == nil || n < 1 || n > len(player.Rack) {
		return "", fmt.Errorf("no tile at rack position %d", n)
	}
	return player.Rack[n-1].ID, nil
}

// reject shows the message for a rule violation, or passes other errors up
func (s *Session) reject(ctx context.Context, err error) error {
	if !model.IsRuleError(err) {
		return err
	}
	g, getErr := s.controller.GetGame(ctx, s.gameID)
	if getErr != nil {
		return getErr
	}
	s.print(g, model.MessageFor(err))
	return nil
}

func (s *Session) show(ctx context.Context) error {
	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil {
		return err
	}
	s.print(g, model.StatusMessage{})
	return nil
}

func (s *Session) ranking(ctx context.Context) error {
	r, err := s.controller.GetRanking(ctx, s.gameID)
	if err != nil {
		if model.IsRuleError(err) {
			s.out.PrintMessage(model.MessageFor(err).Text)
			return nil
		}
		return err
	}
	s.out.Print(response.RankingFromModel(r))
	return nil
}

func (s *Session) print(g *model.Game, msg model.StatusMessage) {
	s.out.Print(response.GameFromModel(g, msg))
}
