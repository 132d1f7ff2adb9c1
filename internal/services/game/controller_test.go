package game

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/dependencies/mocks"
	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/bag"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/placement"
	"github.com/mcoot/wordtiles/internal/services/roster"
	"github.com/mcoot/wordtiles/internal/services/scoring"
	"github.com/mcoot/wordtiles/internal/services/words"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	"github.com/mcoot/wordtiles/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage      *memory.Storage
	boardService *board.Service
	clock        *mocks.MockClock
	random       *mocks.MockRandom
	controller   *Controller
	ctx          context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.boardService = board.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	bags := bag.New(random.NewSeeded(7))
	s.controller = NewController(
		s.storage,
		bags,
		s.boardService,
		roster.New(),
		placement.New(bags, s.boardService),
		scoring.New(),
		words.NewSingleWordExtractor(),
		s.clock,
		s.random,
		testutil.NopLogger(),
	)
	s.ctx = context.Background()
}

func (s *ControllerSuite) newGame() *model.Game {
	s.random.QueueString("GAME1")
	outcome, err := s.controller.NewGame(s.ctx, Options{})
	s.Require().NoError(err)
	return outcome.Game
}

// saveEndgame stores a game where player 1 holds one tile and the bag is
// empty, so committing that tile ends the game
func (s *ControllerSuite) saveEndgame() *model.Game {
	b, err := s.boardService.Build(model.DefaultBoardSize)
	s.Require().NoError(err)

	game := &model.Game{
		ID: "END",
		Players: []model.Player{
			{ID: "player-1", Name: "Player 1", Score: 10, Rack: []model.Tile{
				{ID: "tile-1", Letter: 'A', Value: 1},
			}},
			{ID: "player-2", Name: "Player 2", Score: 12, Rack: []model.Tile{
				{ID: "tile-2", Letter: 'B', Value: 3},
				{ID: "tile-3", Letter: 'C', Value: 3},
			}},
		},
		Board:       b,
		Bag:         []model.Tile{},
		PlacedTiles: []model.Tile{},
		CreatedAt:   s.clock.Now(),
		UpdatedAt:   s.clock.Now(),
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	return game
}

func (s *ControllerSuite) place(gameID model.GameID, tileID model.TileID, pos model.Position) *model.Game {
	_, err := s.controller.SelectTile(s.ctx, gameID, tileID)
	s.Require().NoError(err)
	outcome, err := s.controller.ClickCell(s.ctx, gameID, pos)
	s.Require().NoError(err)
	return outcome.Game
}

// NewGame tests

func (s *ControllerSuite) TestNewGameDefaults() {
	s.random.QueueString("GAME1")

	outcome, err := s.controller.NewGame(s.ctx, Options{})
	s.Require().NoError(err)

	game := outcome.Game
	s.Equal(model.GameID("GAME1"), game.ID)
	s.Len(game.Players, 2)
	for _, p := range game.Players {
		s.Len(p.Rack, model.RackSize)
		s.Equal(0, p.Score)
	}
	s.Equal(86, game.BagCount())
	s.Equal(model.DefaultBoardSize, game.Board.Size)
	s.Equal(0, game.Board.OccupiedCount())
	s.Equal(0, game.CurrentPlayerIdx)
	s.Empty(game.PlacedTiles)
	s.Nil(game.SelectedTileID)
	s.False(game.GameOver)
	s.Equal(model.PhaseAwaitingPlay, game.Phase())
	s.Equal(model.Info("Welcome! Place tiles to form words."), outcome.Message)

	stored, err := s.storage.GetGame(s.ctx, "GAME1")
	s.Require().NoError(err)
	s.Equal(game, stored)
}

func (s *ControllerSuite) TestNewGameTilesConserved() {
	game := s.newGame()

	seen := make(map[model.TileID]bool)
	for _, p := range game.Players {
		for _, t := range p.Rack {
			seen[t.ID] = true
		}
	}
	for _, t := range game.Bag {
		seen[t.ID] = true
	}
	s.Len(seen, bag.TotalTiles)
}

func (s *ControllerSuite) TestNewGameWithNames() {
	s.random.QueueString("GAME1")

	outcome, err := s.controller.NewGame(s.ctx, Options{PlayerNames: []string{"Ada", "Grace", "Linus"}})
	s.Require().NoError(err)

	s.Equal([]string{"Ada", "Grace", "Linus"}, outcome.Game.PlayerNames())
	s.Equal(100-21, outcome.Game.BagCount())
}

func (s *ControllerSuite) TestNewGameInvalidPlayerCount() {
	_, err := s.controller.NewGame(s.ctx, Options{PlayerCount: -1})
	s.ErrorIs(err, model.ErrInvalidPlayerCount)
}

func (s *ControllerSuite) TestNewGameRejectsTooManyPlayers() {
	_, err := s.controller.NewGame(s.ctx, Options{PlayerCount: model.MaxPlayerCount + 1})
	s.ErrorIs(err, model.ErrInvalidPlayerCount)

	_, err = s.controller.NewGame(s.ctx, Options{PlayerCount: 200000})
	s.ErrorIs(err, model.ErrInvalidPlayerCount)

	_, err = s.controller.NewGame(s.ctx, Options{PlayerNames: make([]string, model.MaxPlayerCount+1)})
	s.ErrorIs(err, model.ErrInvalidPlayerCount)

	ids, err := s.controller.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *ControllerSuite) TestNewGameMaxPlayers() {
	s.random.QueueString("GAME1")

	outcome, err := s.controller.NewGame(s.ctx, Options{PlayerCount: model.MaxPlayerCount})
	s.Require().NoError(err)
	s.Len(outcome.Game.Players, model.MaxPlayerCount)
	s.Equal(100-model.MaxPlayerCount*model.RackSize, outcome.Game.BagCount())
}

func (s *ControllerSuite) TestNewGameRejectsBoardSize() {
	for _, size := range []int{-1, model.MaxBoardSize + 1, 3000, 50000} {
		_, err := s.controller.NewGame(s.ctx, Options{BoardSize: size})
		s.ErrorIs(err, model.ErrInvalidBoardSize, "size %d", size)
	}

	ids, err := s.controller.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *ControllerSuite) TestNewGameMaxBoardSize() {
	s.random.QueueString("GAME1")

	outcome, err := s.controller.NewGame(s.ctx, Options{BoardSize: model.MaxBoardSize})
	s.Require().NoError(err)
	s.Equal(model.MaxBoardSize, outcome.Game.Board.Size)
}

func (s *ControllerSuite) TestNewGameSkipsUsedID() {
	s.newGame()
	s.random.QueueString("GAME1", "GAME2")

	outcome, err := s.controller.NewGame(s.ctx, Options{})
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME2"), outcome.Game.ID)
}

func (s *ControllerSuite) TestNewGameIDExhausted() {
	_, err := s.controller.NewGame(s.ctx, Options{})
	s.ErrorIs(err, ErrGameIDExhausted)
}

// Turn flow tests

func (s *ControllerSuite) TestDeselectTile() {
	game := s.newGame()
	_, err := s.controller.SelectTile(s.ctx, game.ID, game.Players[0].Rack[0].ID)
	s.Require().NoError(err)

	outcome, err := s.controller.DeselectTile(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Nil(outcome.Game.SelectedTileID)
	s.True(outcome.Message.IsZero())

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Nil(stored.SelectedTileID)
}

func (s *ControllerSuite) TestPlaceAndCommit() {
	game := s.newGame()
	first := game.Players[0].Rack[0]
	second := game.Players[0].Rack[1]

	s.place(game.ID, first.ID, model.Position{Row: 7, Col: 7})
	s.place(game.ID, second.ID, model.Position{Row: 7, Col: 8})
	s.clock.Advance(time.Minute)

	outcome, err := s.controller.CommitTurn(s.ctx, game.ID)
	s.Require().NoError(err)

	expected := first.Value + second.Value
	after := outcome.Game
	s.Equal(expected, after.Players[0].Score)
	s.Len(after.Players[0].Rack, model.RackSize)
	s.Equal(84, after.BagCount())
	s.Equal(1, after.CurrentPlayerIdx)
	s.Equal(1, after.TurnNumber)
	s.Empty(after.PlacedTiles)
	s.Nil(after.SelectedTileID)
	s.Equal(2, after.Board.OccupiedCount())
	s.False(after.GameOver)
	s.Equal(model.Success(fmt.Sprintf("You scored %d points!", expected)), outcome.Message)

	s.Require().Len(after.History, 1)
	record := after.History[0]
	s.Equal(model.PlayerID("player-1"), record.PlayerID)
	s.Equal(expected, record.Score)
	s.Equal(2, record.Drawn)
	s.Equal(s.clock.Now(), record.PlayedAt)
	s.Equal(s.clock.Now(), after.UpdatedAt)
}

func (s *ControllerSuite) TestCommitWithoutTilesLeavesGameUnchanged() {
	game := s.newGame()

	_, err := s.controller.CommitTurn(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNoTilesPlaced)
	s.Equal(model.Error("You need to place at least one tile!"), model.MessageFor(err))

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game, stored)
}

func (s *ControllerSuite) TestClickOccupiedCellIsRejected() {
	game := s.newGame()
	rack := game.Players[0].Rack
	pos := model.Position{Row: 7, Col: 7}
	s.place(game.ID, rack[0].ID, pos)

	_, err := s.controller.SelectTile(s.ctx, game.ID, rack[1].ID)
	s.Require().NoError(err)
	_, err = s.controller.ClickCell(s.ctx, game.ID, pos)
	s.ErrorIs(err, model.ErrCellOccupied)

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(rack[1].ID, *stored.SelectedTileID)
	s.Len(stored.PlacedTiles, 1)
}

func (s *ControllerSuite) TestClickPlacedTileRecallsIt() {
	game := s.newGame()
	tile := game.Players[0].Rack[3]
	pos := model.Position{Row: 2, Col: 2}
	s.place(game.ID, tile.ID, pos)

	outcome, err := s.controller.ClickCell(s.ctx, game.ID, pos)
	s.Require().NoError(err)

	s.Empty(outcome.Game.PlacedTiles)
	s.Len(outcome.Game.Players[0].Rack, model.RackSize)
	s.Equal(tile.ID, outcome.Game.Players[0].Rack[model.RackSize-1].ID)
}

func (s *ControllerSuite) TestRecallAll() {
	game := s.newGame()
	rack := game.Players[0].Rack
	s.place(game.ID, rack[0].ID, model.Position{Row: 7, Col: 7})
	s.place(game.ID, rack[1].ID, model.Position{Row: 8, Col: 7})

	outcome, err := s.controller.RecallAll(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(model.Info("Tiles recalled to your rack!"), outcome.Message)
	s.Equal(0, outcome.Game.Board.OccupiedCount())
	s.ElementsMatch(rack, outcome.Game.Players[0].Rack)
}

func (s *ControllerSuite) TestRecallAllNothingPlaced() {
	game := s.newGame()

	_, err := s.controller.RecallAll(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNothingToRecall)
	s.Equal(model.Info("No tiles to recall!"), model.MessageFor(err))
}

func (s *ControllerSuite) TestShuffleRack() {
	game := s.newGame()

	outcome, err := s.controller.ShuffleRack(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(model.Info("Rack shuffled!"), outcome.Message)
	s.ElementsMatch(game.Players[0].Rack, outcome.Game.Players[0].Rack)
	s.Equal(game.Players[1].Rack, outcome.Game.Players[1].Rack)
}

func (s *ControllerSuite) TestOperationsOnMissingGame() {
	_, err := s.controller.SelectTile(s.ctx, "missing", "tile-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	_, err = s.controller.CommitTurn(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)

	_, err = s.controller.RestartGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)

	_, err = s.controller.GetRanking(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Game over tests

func (s *ControllerSuite) TestCommitEndsGame() {
	s.saveEndgame()
	s.place("END", "tile-1", model.Position{Row: 0, Col: 0})

	outcome, err := s.controller.CommitTurn(s.ctx, "END")
	s.Require().NoError(err)

	s.True(outcome.Game.GameOver)
	s.Equal(model.PhaseGameOver, outcome.Game.Phase())
	s.Equal(model.Success("You scored 3 points! Game Over!"), outcome.Message)
	s.Equal(13, outcome.Game.Players[0].Score)
	s.Empty(outcome.Game.Players[0].Rack)
}

func (s *ControllerSuite) TestFinishedGameRejectsOperations() {
	s.saveEndgame()
	s.place("END", "tile-1", model.Position{Row: 0, Col: 0})
	_, err := s.controller.CommitTurn(s.ctx, "END")
	s.Require().NoError(err)

	_, err = s.controller.SelectTile(s.ctx, "END", "tile-2")
	s.ErrorIs(err, model.ErrGameOver)
	_, err = s.controller.ClickCell(s.ctx, "END", model.Position{Row: 5, Col: 5})
	s.ErrorIs(err, model.ErrGameOver)
	_, err = s.controller.ShuffleRack(s.ctx, "END")
	s.ErrorIs(err, model.ErrGameOver)
	_, err = s.controller.RecallAll(s.ctx, "END")
	s.ErrorIs(err, model.ErrGameOver)
	_, err = s.controller.CommitTurn(s.ctx, "END")
	s.ErrorIs(err, model.ErrGameOver)
}

func (s *ControllerSuite) TestGetRanking() {
	s.saveEndgame()
	s.place("END", "tile-1", model.Position{Row: 0, Col: 0})
	_, err := s.controller.CommitTurn(s.ctx, "END")
	s.Require().NoError(err)

	ranking, err := s.controller.GetRanking(s.ctx, "END")
	s.Require().NoError(err)

	s.False(ranking.IsTie)
	s.Require().NotNil(ranking.Winner)
	s.Equal(model.PlayerID("player-1"), *ranking.Winner)
	s.Equal(13, ranking.Standings[0].Score)
	s.Equal(12, ranking.Standings[1].Score)
}

func (s *ControllerSuite) TestGetRankingBeforeGameOver() {
	game := s.newGame()

	_, err := s.controller.GetRanking(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotOver)
}

// Restart and delete tests

func (s *ControllerSuite) TestRestartGame() {
	s.random.QueueString("GAME1")
	created, err := s.controller.NewGame(s.ctx, Options{PlayerNames: []string{"Ada", "Grace"}})
	s.Require().NoError(err)
	s.place("GAME1", created.Game.Players[0].Rack[0].ID, model.Position{Row: 7, Col: 7})
	_, err = s.controller.CommitTurn(s.ctx, "GAME1")
	s.Require().NoError(err)

	outcome, err := s.controller.RestartGame(s.ctx, "GAME1")
	s.Require().NoError(err)

	game := outcome.Game
	s.Equal(model.GameID("GAME1"), game.ID)
	s.Equal([]string{"Ada", "Grace"}, game.PlayerNames())
	s.Equal(86, game.BagCount())
	s.Equal(0, game.Board.OccupiedCount())
	s.Equal(0, game.TurnNumber)
	s.Empty(game.History)
	s.Equal(0, game.Players[0].Score)
	s.Equal(model.Info("New game started!"), outcome.Message)
}

func (s *ControllerSuite) TestDeleteGame() {
	game := s.newGame()

	err := s.controller.DeleteGame(s.ctx, game.ID)
	s.Require().NoError(err)

	_, err = s.controller.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)

	err = s.controller.DeleteGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestListGames() {
	game := s.newGame()

	ids, err := s.controller.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.GameID{game.ID}, ids)
}
