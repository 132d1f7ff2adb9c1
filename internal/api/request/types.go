package request

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	PlayerCount int      `json:"player_count,omitempty"`
	PlayerNames []string `json:"player_names,omitempty"`
	BoardSize   int      `json:"board_size,omitempty"`
}

// SelectTileRequest is the request body for selecting a rack tile
type SelectTileRequest struct {
	TileID string `json:"tile_id"`
}

// ClickCellRequest is the request body for clicking a board cell.
// Both coordinates are required.
type ClickCellRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}
