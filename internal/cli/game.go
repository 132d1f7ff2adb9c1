package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameSelectCmd())
	cmd.AddCommand(newGameActionCmd("deselect", "Clear the selected rack tile"))
	cmd.AddCommand(newGameClickCmd())
	cmd.AddCommand(newGameActionCmd("commit", "Play the tiles placed this turn"))
	cmd.AddCommand(newGameActionCmd("shuffle", "Shuffle the current player's rack"))
	cmd.AddCommand(newGameActionCmd("recall", "Return placed tiles to the rack"))
	cmd.AddCommand(newGameActionCmd("restart", "Start over with the same players"))
	cmd.AddCommand(newGameRankingCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func gamePath(id string) string {
	return fmt.Sprintf("/api/v1/games/%s", id)
}

func newGameNewCmd() *cobra.Command {
	var req request.CreateGameRequest

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameResponse

			if err := client.Post(cmd.Context(), "/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&req.PlayerCount, "players", "p", 0, "Number of players (default 2)")
	cmd.Flags().StringSliceVarP(&req.PlayerNames, "names", "n", nil, "Player names, overrides --players")
	cmd.Flags().IntVar(&req.BoardSize, "board-size", 0, "Board size (default 15)")

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameList

			if err := client.Get(cmd.Context(), "/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameResponse

			if err := client.Get(cmd.Context(), gamePath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id> <tile-id>",
		Short: "Select or deselect a tile in the current player's rack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.SelectTileRequest{TileID: args[1]}
			var result response.GameResponse

			if err := client.Post(cmd.Context(), gamePath(args[0])+"/select", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameClickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "click <id> <row> <col>",
		Short: "Click a board cell: place the selected tile or pick one back up",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row: %w", err)
			}

			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid col: %w", err)
			}

			req := request.ClickCellRequest{Row: &row, Col: &col}
			var result response.GameResponse

			if err := client.Post(cmd.Context(), gamePath(args[0])+"/click", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// newGameActionCmd builds a command for a bodyless game action
func newGameActionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameResponse

			if err := client.Post(cmd.Context(), gamePath(args[0])+"/"+action, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRankingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranking <id>",
		Short: "Show the final standings of a finished game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.RankingResponse

			if err := client.Get(cmd.Context(), gamePath(args[0])+"/ranking", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), gamePath(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}
