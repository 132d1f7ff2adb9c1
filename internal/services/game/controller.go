package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/wordtiles/internal/dependencies/clock"
	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/bag"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/placement"
	"github.com/mcoot/wordtiles/internal/services/roster"
	"github.com/mcoot/wordtiles/internal/services/scoring"
	"github.com/mcoot/wordtiles/internal/services/words"
	"github.com/mcoot/wordtiles/internal/storage"
)

// ErrGameIDExhausted is returned when no unused game id could be generated
var ErrGameIDExhausted = errors.New("could not generate an unused game id")

const maxIDAttempts = 5

// Controller runs games: it loads a game, applies one engine operation and
// saves the result. Operations are serialized so every caller observes
// whole transitions.
type Controller struct {
	mu sync.Mutex

	storage          storage.Storage
	bagService       bag.ServiceInterface
	boardService     board.ServiceInterface
	rosterService    roster.ServiceInterface
	placementService placement.ServiceInterface
	scoringService   scoring.ServiceInterface
	extractor        words.Extractor
	clock            clock.Clock
	random           random.Random
	logger           *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	bagService bag.ServiceInterface,
	boardService board.ServiceInterface,
	rosterService roster.ServiceInterface,
	placementService placement.ServiceInterface,
	scoringService scoring.ServiceInterface,
	extractor words.Extractor,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:          storage,
		bagService:       bagService,
		boardService:     boardService,
		rosterService:    rosterService,
		placementService: placementService,
		scoringService:   scoringService,
		extractor:        extractor,
		clock:            clock,
		random:           random,
		logger:           logger,
	}
}

// NewGame deals a fresh game and stores it
func (c *Controller) NewGame(ctx context.Context, opts Options) (*Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	names, err := playerNames(opts)
	if err != nil {
		return nil, err
	}
	if opts.BoardSize < 0 || opts.BoardSize > model.MaxBoardSize {
		return nil, model.ErrInvalidBoardSize
	}

	id, err := c.newGameID(ctx)
	if err != nil {
		return nil, err
	}

	game, err := c.setup(id, names, opts.BoardSize)
	if err != nil {
		return nil, err
	}

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(game.Players)),
		slog.Int("board_size", game.Board.Size),
		slog.Int("bag_count", game.BagCount()),
	)

	return &Outcome{Game: game, Message: model.Info(welcomeText)}, nil
}

// RestartGame discards a game's state and deals again with the same
// players, keeping the game id
func (c *Controller) RestartGame(ctx context.Context, gameID model.GameID) (*Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game, err := c.setup(old.ID, old.PlayerNames(), old.Board.Size)
	if err != nil {
		return nil, err
	}

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game restarted",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(game.Players)),
		slog.Int("previous_turns", old.TurnNumber),
	)

	return &Outcome{Game: game, Message: model.Info(restartText)}, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns the ids of stored games
func (c *Controller) ListGames(ctx context.Context) ([]model.GameID, error) {
	return c.storage.ListGames(ctx)
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	exists, err := c.storage.GameExists(ctx, gameID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrGameNotFound
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// SelectTile toggles selection of a rack tile for the current player
func (c *Controller) SelectTile(ctx context.Context, gameID model.GameID, tileID model.TileID) (*Outcome, error) {
	return c.apply(ctx, gameID, "select", func(g *model.Game) (*model.Game, model.StatusMessage, error) {
		next, err := c.placementService.SelectTile(g, tileID)
		return next, model.StatusMessage{}, err
	})
}

// DeselectTile clears the current player's tile selection
func (c *Controller) DeselectTile(ctx context.Context, gameID model.GameID) (*Outcome, error) {
	return c.apply(ctx, gameID, "deselect", func(g *model.Game) (*model.Game, model.StatusMessage, error) {
		next, err := c.placementService.Deselect(g)
		return next, model.StatusMessage{}, err
	})
}

// ClickCell places the selected tile or recalls a tile placed this turn
func (c *Controller) ClickCell(ctx context.Context, gameID model.GameID, pos model.Position) (*Outcome, error) {
	return c.apply(ctx, gameID, "click", func(g *model.Game) (*model.Game, model.StatusMessage, error) {
		next, action, err := c.placementService.ClickCell(g, pos)
		if err == nil {
			c.logger.Debug("cell clicked",
				slog.String("game_id", string(g.ID)),
				slog.Int("row", pos.Row),
				slog.Int("col", pos.Col),
				slog.String("action", string(action)),
			)
		}
		return next, model.StatusMessage{}, err
	})
}

// RecallAll returns every tile placed this turn to the rack
func (c *Controller) RecallAll(ctx context.Context, gameID model.GameID) (*Outcome, error) {
	return c.apply(ctx, gameID, "recall", func(g *model.Game) (*model.Game, model.StatusMessage, error) {
		next, err := c.placementService.RecallAll(g)
		return next, model.Info(recalledText), err
	})
}

// ShuffleRack reorders the current player's rack
func (c *Controller) ShuffleRack(ctx context.Context, gameID model.GameID) (*Outcome, error) {
	return c.apply(ctx, gameID, "shuffle", func(g *model.Game) (*model.Game, model.StatusMessage, error) {
		next, err := c.placementService.ShuffleRack(g)
		return next, model.Info(shuffledText), err
	})
}

// CommitTurn scores the placed tiles and passes the turn
func (c *Controller) CommitTurn(ctx context.Context, gameID model.GameID) (*Outcome, error) {
	return c.apply(ctx, gameID, "commit", func(g *model.Game) (*model.Game, model.StatusMessage, error) {
		next, result, err := Commit(g, c.extractor, c.scoringService, c.clock.Now())
		if err != nil {
			return nil, model.StatusMessage{}, err
		}

		c.logger.Info("turn committed",
			slog.String("game_id", string(g.ID)),
			slog.String("player_id", string(result.PlayerID)),
			slog.Int("turn", next.TurnNumber),
			slog.Int("score", result.Score.Total),
			slog.Int("drawn", result.Drawn),
			slog.Int("bag_count", next.BagCount()),
		)
		if result.GameOver {
			c.logger.Info("game over",
				slog.String("game_id", string(g.ID)),
				slog.Int("total_turns", next.TurnNumber),
			)
		}

		return next, CommitMessage(result), nil
	})
}

// GetRanking returns the final standings of a finished game
func (c *Controller) GetRanking(ctx context.Context, gameID model.GameID) (model.Ranking, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.Ranking{}, err
	}
	if !game.GameOver {
		return model.Ranking{}, model.ErrGameNotOver
	}
	return c.scoringService.Rank(game.Players), nil
}

// transition is one engine operation on a loaded game
type transition func(g *model.Game) (*model.Game, model.StatusMessage, error)

// apply loads a game, runs fn and saves the result. When fn fails the
// stored game is left unchanged.
func (c *Controller) apply(ctx context.Context, gameID model.GameID, op string, fn transition) (*Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	next, msg, err := fn(game)
	if err != nil {
		c.logger.Debug("operation rejected",
			slog.String("game_id", string(gameID)),
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	next.UpdatedAt = c.clock.Now()
	if err := c.save(ctx, next); err != nil {
		return nil, err
	}

	return &Outcome{Game: next, Message: msg}, nil
}

func (c *Controller) save(ctx context.Context, game *model.Game) error {
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("save game %s: %w", game.ID, err)
	}
	return nil
}

// setup builds the opening state: shuffled bag, dealt racks, empty board
func (c *Controller) setup(id model.GameID, names []string, boardSize int) (*model.Game, error) {
	if boardSize == 0 {
		boardSize = model.DefaultBoardSize
	}

	b, err := c.boardService.Build(boardSize)
	if err != nil {
		return nil, err
	}

	players, remaining, err := c.rosterService.DealNamed(names, c.bagService.NewBag())
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	return &model.Game{
		ID:          id,
		Players:     players,
		Board:       b,
		Bag:         remaining,
		PlacedTiles: []model.Tile{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (c *Controller) newGameID(ctx context.Context) (model.GameID, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := model.GameID(c.random.String(gameIDLength, gameIDAlphabet))
		if id == "" {
			continue
		}
		exists, err := c.storage.GameExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrGameIDExhausted
}

// playerNames resolves the seats for a new game, checking the count before
// anything is allocated
func playerNames(opts Options) ([]string, error) {
	if len(opts.PlayerNames) > 0 {
		if len(opts.PlayerNames) > model.MaxPlayerCount {
			return nil, model.ErrInvalidPlayerCount
		}
		return opts.PlayerNames, nil
	}
	count := opts.PlayerCount
	if count == 0 {
		count = model.DefaultPlayerCount
	}
	if count < 1 || count > model.MaxPlayerCount {
		return nil, model.ErrInvalidPlayerCount
	}
	names := make([]string, count)
	for i := range names {
		names[i] = roster.DefaultName(i)
	}
	return names, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context, opts Options) (*Outcome, error)
	RestartGame(ctx context.Context, gameID model.GameID) (*Outcome, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]model.GameID, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	SelectTile(ctx context.Context, gameID model.GameID, tileID model.TileID) (*Outcome, error)
	DeselectTile(ctx context.Context, gameID model.GameID) (*Outcome, error)
	ClickCell(ctx context.Context, gameID model.GameID, pos model.Position) (*Outcome, error)
	RecallAll(ctx context.Context, gameID model.GameID) (*Outcome, error)
	ShuffleRack(ctx context.Context, gameID model.GameID) (*Outcome, error)
	CommitTurn(ctx context.Context, gameID model.GameID) (*Outcome, error)
	GetRanking(ctx context.Context, gameID model.GameID) (model.Ranking, error)
}

var _ ControllerInterface = (*Controller)(nil)
