package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/tannerhall/floorman/internal/dependencies/clock"
	"github.com/tannerhall/floorman/internal/dependencies/random"
	"github.com/tannerhall/floorman/internal/services/directory"
	"github.com/tannerhall/floorman/internal/services/registration"
	"github.com/tannerhall/floorman/internal/services/seating"
	"github.com/tannerhall/floorman/internal/services/tables"
	"github.com/tannerhall/floorman/internal/storage"
	"github.com/tannerhall/floorman/internal/storage/memory"
	redisstorage "github.com/tannerhall/floorman/internal/storage/redis"
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
	DirectoryService   *directory.Service
	RegistrationEngine *registration.Engine
	SeatingEngine      *seating.Engine
	TablesPolicy       *tables.Policy
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the backing store
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
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
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	directoryService := directory.New(store, clk, logger)
	registrationEngine := registration.New(store, directoryService, clk, logger)
	tablesPolicy := tables.New(store, logger)
	seatingEngine := seating.New(store, tablesPolicy, rnd, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		DirectoryService:   directoryService,
		RegistrationEngine: registrationEngine,
		SeatingEngine:      seatingEngine,
		TablesPolicy:       tablesPolicy,
	}
}
