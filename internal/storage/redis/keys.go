package redis

import (
	"fmt"

	"github.com/mcoot/wordtiles/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordtiles"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the ZSET of game ids scored by
// creation time
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
