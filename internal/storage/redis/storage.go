package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface. An
// event's player directory and registration ledger are each stored as a
// single JSON value, so replace-all writes are atomic single-key SETs and
// readers never observe a half-committed ledger.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, storeErr(err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// storeErr wraps transport failures so callers can match ErrStoreUnavailable
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
}

// Player directory operations

func (s *Storage) GetPlayers(ctx context.Context, eventName string) ([]*model.Player, error) {
	data, err := s.client.Get(ctx, playersKey(eventName)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*model.Player{}, nil
		}
		return nil, storeErr(err)
	}

	var players []*model.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Storage) ReplacePlayers(ctx context.Context, eventName string, players []*model.Player) error {
	data, err := json.Marshal(players)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, playersKey(eventName), data, 0).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Storage) SavePlayer(ctx context.Context, eventName string, player *model.Player) error {
	players, err := s.GetPlayers(ctx, eventName)
	if err != nil {
		return err
	}

	replaced := false
	for i, p := range players {
		if p.AccountNumber == player.AccountNumber {
			players[i] = player
			replaced = true
			break
		}
	}
	if !replaced {
		players = append(players, player)
	}

	return s.ReplacePlayers(ctx, eventName, players)
}

// Registration ledger operations

func (s *Storage) GetRegistrations(ctx context.Context, eventName string) ([]*model.Registration, error) {
	data, err := s.client.Get(ctx, registrationsKey(eventName)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*model.Registration{}, nil
		}
		return nil, storeErr(err)
	}

	var regs []*model.Registration
	if err := json.Unmarshal(data, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *Storage) CommitRegistrations(ctx context.Context, eventName string, regs []*model.Registration) error {
	data, err := json.Marshal(regs)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, registrationsKey(eventName), data, 0).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

// Tournament config operations

func (s *Storage) GetTournament(ctx context.Context, name string) (*model.Tournament, error) {
	data, err := s.client.Get(ctx, tournamentKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTournamentNotFound
		}
		return nil, storeErr(err)
	}

	var tournament model.Tournament
	if err := json.Unmarshal(data, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (s *Storage) SaveTournament(ctx context.Context, tournament *model.Tournament) error {
	data, err := json.Marshal(tournament)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, tournamentKey(tournament.Name), data, 0).Err(); err != nil {
		return storeErr(err)
	}
	return nil
}

// Disabled table operations

func (s *Storage) GetDisabledTables(ctx context.Context, eventName string) (map[model.TableKey]bool, error) {
	fields, err := s.client.HGetAll(ctx, disabledTablesKey(eventName)).Result()
	if err != nil {
		return nil, storeErr(err)
	}

	tables := make(map[model.TableKey]bool, len(fields))
	for field, value := range fields {
		if value != "1" {
			continue
		}
		key, err := parseTableField(eventName, field)
		if err != nil {
			continue // Skip unrecognized fields
		}
		tables[key] = true
	}
	return tables, nil
}

func (s *Storage) SetDisabledTable(ctx context.Context, key model.TableKey, disabled bool) error {
	hashKey := disabledTablesKey(key.EventName)

	var err error
	if disabled {
		err = s.client.HSet(ctx, hashKey, tableField(key), "1").Err()
	} else {
		err = s.client.HDel(ctx, hashKey, tableField(key)).Err()
	}
	if err != nil {
		return storeErr(err)
	}
	return nil
}
