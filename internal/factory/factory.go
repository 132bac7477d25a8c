package factory

import (
	"errors"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/mcoot/wordsland/internal/config"
	"github.com/mcoot/wordsland/internal/dependencies/clock"
	"github.com/mcoot/wordsland/internal/dependencies/random"
	"github.com/mcoot/wordsland/internal/model"
	"github.com/mcoot/wordsland/internal/services/dictionary"
	"github.com/mcoot/wordsland/internal/services/session"
	"github.com/mcoot/wordsland/internal/storage"
	"github.com/mcoot/wordsland/internal/storage/memory"
	redisstorage "github.com/mcoot/wordsland/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageTypeMemory
	StorageTypeRedis  = config.StorageTypeRedis
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	SessionManager    *session.Manager
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the dictionary file (optional)
	// If empty, dictionary must be loaded manually
	DictionaryPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Game holds the rules parameters for new sessions
	// If HandSize is zero, defaults to model.DefaultGameConfig()
	Game model.GameConfig
	// Seed makes every session's board and bag reproducible; 0 means unseeded
	Seed uint64
}

// ConfigFrom builds a factory config from the loaded server configuration
func ConfigFrom(cfg *config.Config, logger *slog.Logger) Config {
	out := Config{
		DictionaryPath: cfg.Dictionary.Path,
		Logger:         logger,
		StorageType:    cfg.Storage.Type,
		Game:           cfg.GameConfig(),
		Seed:           cfg.Game.Seed,
	}
	if cfg.Storage.Type == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		if cfg.Storage.RedisPoolSize > 0 {
			redisCfg.PoolSize = cfg.Storage.RedisPoolSize
		}
		if cfg.Storage.RoundHistoryTTL > 0 {
			redisCfg.RoundHistoryTTL = cfg.Storage.RoundHistoryTTL
		}
		out.RedisConfig = &redisCfg
	}
	return out
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

	gameCfg := cfg.Game
	if gameCfg.HandSize == 0 {
		gameCfg = model.DefaultGameConfig()
	}
	if gameCfg.Distribution == nil {
		gameCfg.Distribution = model.DefaultDistribution()
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, engineRandom(cfg.Seed, rnd), gameCfg, logger), nil
}

// engineRandom hands each new session its own random source.
// A seeded factory gives session n the seed+n generator.
func engineRandom(seed uint64, shared random.Random) session.RandomSource {
	if seed == 0 {
		return func() random.Random { return shared }
	}
	var counter atomic.Uint64
	return func() random.Random {
		return random.NewSeeded(seed + counter.Add(1) - 1)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	engineRand session.RandomSource,
	gameCfg model.GameConfig,
	logger *slog.Logger,
) *App {
	// Create services
	dictService := dictionary.New(store, logger)
	sessionManager := session.NewManager(store, dictService, gameCfg, clk, rnd, engineRand, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		SessionManager:    sessionManager,
	}
}
