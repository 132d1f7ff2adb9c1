package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordtiles/internal/api"
	"github.com/mcoot/wordtiles/internal/api/apierr"
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/factory"
	"github.com/mcoot/wordtiles/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: app.GameController,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createGame(t *testing.T, body any) response.GameResponse {
	t.Helper()
	ts.app.MockRandom.QueueString("GAME01")

	rr := ts.request(http.MethodPost, "/api/v1/games", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	return decodeGame(t, rr)
}

func decodeGame(t *testing.T, rr *httptest.ResponseRecorder) response.GameResponse {
	t.Helper()
	var resp response.GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	game := ts.createGame(t, nil)

	assert.Equal(t, "GAME01", game.ID)
	assert.Equal(t, "awaiting_play", game.Phase)
	assert.Len(t, game.Players, 2)
	assert.Equal(t, 7, game.Players[0].RackSize)
	assert.Equal(t, 86, game.BagCount)
	assert.Equal(t, 15, game.Board.Size)
	assert.Equal(t, "CENTER", game.Board.Cells[7][7].Bonus)
	assert.Equal(t, "TRIPLE_WORD", game.Board.Cells[0][0].Bonus)
	require.NotNil(t, game.Message)
	assert.Equal(t, "Welcome! Place tiles to form words.", game.Message.Text)
	assert.Equal(t, "info", game.Message.Type)
}

func TestCreateGameWithNames(t *testing.T) {
	ts := newTestServer(t)

	game := ts.createGame(t, map[string]any{"player_names": []string{"Ada", "Grace", "Linus"}})

	require.Len(t, game.Players, 3)
	assert.Equal(t, "Linus", game.Players[2].Name)
}

func TestCreateGameInvalidPlayerCount(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{"player_count": -2})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidPlayerCount, decodeError(t, rr).Code)
}

func TestCreateGameTooManyPlayers(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{"player_count": 200000})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidPlayerCount, decodeError(t, rr).Code)
}

func TestCreateGameBoardTooLarge(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{"board_size": 50000})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidBoardSize, decodeError(t, rr).Code)
}

func TestCreateGameOversizedBody(t *testing.T) {
	ts := newTestServer(t)

	body := `{"player_names":["` + strings.Repeat("x", 70<<10) + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/games", strings.NewReader(body))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

func TestCreateGameMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/games", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

func TestGetGameWithETag(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games/GAME01", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	etag := rr.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Nil(t, decodeGame(t, rr).Message)

	rr = ts.request(http.MethodGet, "/api/v1/games/GAME01", nil, "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, rr.Code)
	assert.Empty(t, rr.Body.String())

	// A change produces a new tag
	ts.request(http.MethodPost, "/api/v1/games/GAME01/shuffle", nil)
	rr = ts.request(http.MethodGet, "/api/v1/games/GAME01", nil, "If-None-Match", etag)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEqual(t, etag, rr.Header().Get("ETag"))
}

func TestGetGameNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/NOPE", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeGameNotFound, decodeError(t, rr).Code)
}

func TestListGames(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list response.GameList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, []string{"GAME01"}, list.Games)
}

func TestPlaceAndCommitFlow(t *testing.T) {
	ts := newTestServer(t)
	game := ts.createGame(t, nil)
	tileID := game.Players[0].Rack[0].ID

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/select", map[string]string{"tile_id": tileID})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	selected := decodeGame(t, rr)
	require.NotNil(t, selected.SelectedTileID)
	assert.Equal(t, tileID, *selected.SelectedTileID)

	rr = ts.request(http.MethodPost, "/api/v1/games/GAME01/click", map[string]int{"row": 7, "col": 7})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	placed := decodeGame(t, rr)
	assert.Equal(t, []string{tileID}, placed.PlacedTileIDs)
	require.NotNil(t, placed.Board.Cells[7][7].Tile)
	assert.Equal(t, tileID, placed.Board.Cells[7][7].Tile.ID)

	rr = ts.request(http.MethodPost, "/api/v1/games/GAME01/commit", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	committed := decodeGame(t, rr)
	assert.Equal(t, 1, committed.Players[0].Score)
	assert.Equal(t, 1, committed.CurrentPlayerIndex)
	assert.Equal(t, "player-2", committed.CurrentPlayerID)
	assert.Empty(t, committed.PlacedTileIDs)
	require.Len(t, committed.History, 1)
	assert.Equal(t, []string{"A"}, committed.History[0].Words)
	require.NotNil(t, committed.Message)
	assert.Equal(t, "You scored 1 points!", committed.Message.Text)
	assert.Equal(t, "success", committed.Message.Type)
}

func TestClickOccupiedCell(t *testing.T) {
	ts := newTestServer(t)
	game := ts.createGame(t, nil)
	rack := game.Players[0].Rack

	ts.request(http.MethodPost, "/api/v1/games/GAME01/select", map[string]string{"tile_id": rack[0].ID})
	ts.request(http.MethodPost, "/api/v1/games/GAME01/click", map[string]int{"row": 7, "col": 7})
	ts.request(http.MethodPost, "/api/v1/games/GAME01/select", map[string]string{"tile_id": rack[1].ID})

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/click", map[string]int{"row": 7, "col": 7})

	assert.Equal(t, http.StatusConflict, rr.Code)
	apiErr := decodeError(t, rr)
	assert.Equal(t, apierr.CodeCellOccupied, apiErr.Code)
	assert.Equal(t, "This cell is already occupied!", apiErr.Message)
	assert.Equal(t, "error", apiErr.Severity)
}

func TestClickRequiresCoordinates(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/click", map[string]int{"row": 7})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeselectClearsSelection(t *testing.T) {
	ts := newTestServer(t)
	game := ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/select", map[string]string{"tile_id": game.Players[0].Rack[0].ID})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = ts.request(http.MethodPost, "/api/v1/games/GAME01/deselect", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Nil(t, decodeGame(t, rr).SelectedTileID)
}

func TestSelectRequiresTileID(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/select", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCommitWithoutTiles(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/commit", nil)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeNoTilesPlaced, decodeError(t, rr).Code)
}

func TestRecallWithoutTiles(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/recall", nil)

	assert.Equal(t, http.StatusConflict, rr.Code)
	apiErr := decodeError(t, rr)
	assert.Equal(t, apierr.CodeNothingToRecall, apiErr.Code)
	assert.Equal(t, "info", apiErr.Severity)
}

func TestShuffleAndRestart(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/shuffle", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Rack shuffled!", decodeGame(t, rr).Message.Text)

	rr = ts.request(http.MethodPost, "/api/v1/games/GAME01/restart", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	restarted := decodeGame(t, rr)
	assert.Equal(t, "GAME01", restarted.ID)
	assert.Equal(t, "New game started!", restarted.Message.Text)
}

func TestRankingBeforeGameOver(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games/GAME01/ranking", nil)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeGameNotOver, decodeError(t, rr).Code)
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, nil)

	rr := ts.request(http.MethodDelete, "/api/v1/games/GAME01", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodDelete, "/api/v1/games/GAME01", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
