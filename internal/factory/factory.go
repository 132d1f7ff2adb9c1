package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/wordtiles/internal/dependencies/clock"
	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/services/bag"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/services/placement"
	"github.com/mcoot/wordtiles/internal/services/roster"
	"github.com/mcoot/wordtiles/internal/services/scoring"
	"github.com/mcoot/wordtiles/internal/services/words"
	"github.com/mcoot/wordtiles/internal/storage"
	"github.com/mcoot/wordtiles/internal/storage/memory"
	redisstorage "github.com/mcoot/wordtiles/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BagService       *bag.Service
	BoardService     *board.Service
	RosterService    *roster.Service
	PlacementService *placement.Service
	ScoringService   *scoring.Service
	Extractor        words.Extractor
	GameController   *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes shuffles reproducible when set
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	bagService := bag.New(rnd)
	boardService := board.New()
	rosterService := roster.New()
	placementService := placement.New(bagService, boardService)
	scoringService := scoring.New()
	extractor := words.NewSingleWordExtractor()
	gameController := game.NewController(
		store,
		bagService,
		boardService,
		rosterService,
		placementService,
		scoringService,
		extractor,
		clk,
		rnd,
		logger,
	)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		BagService:       bagService,
		BoardService:     boardService,
		RosterService:    rosterService,
		PlacementService: placementService,
		ScoringService:   scoringService,
		Extractor:        extractor,
		GameController:   gameController,
	}
}
