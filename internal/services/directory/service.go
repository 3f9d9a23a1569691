package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tannerhall/floorman/internal/dependencies/clock"
	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/storage"
)

// Service manages the per-event master list of enrolled players
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new directory service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Lookup finds a player by account number. The raw account is normalized
// before comparison; directory entries are assumed to be stored normalized.
func (s *Service) Lookup(ctx context.Context, eventName string, rawAccount string) (*model.Player, error) {
	account, err := model.NormalizeAccount(rawAccount)
	if err != nil {
		return nil, err
	}

	players, err := s.storage.GetPlayers(ctx, eventName)
	if err != nil {
		return nil, err
	}

	for _, p := range players {
		if p.AccountNumber == account {
			return p, nil
		}
	}
	return nil, model.ErrPlayerNotFound
}

// Add enrolls a new player. Fails with ErrDuplicateAccount if the normalized
// account number collides with an existing entry.
func (s *Service) Add(ctx context.Context, eventName string, player *model.Player) (*model.Player, error) {
	account, err := model.NormalizeAccount(string(player.AccountNumber))
	if err != nil {
		return nil, err
	}

	players, err := s.storage.GetPlayers(ctx, eventName)
	if err != nil {
		return nil, err
	}

	for _, p := range players {
		if p.AccountNumber == account {
			return nil, model.ErrDuplicateAccount
		}
	}

	added := *player
	added.AccountNumber = account
	added.CreatedAt = s.clock.Now()
	if added.EntryType == "" {
		added.EntryType = model.EntryTypePay
	}

	if err := s.storage.SavePlayer(ctx, eventName, &added); err != nil {
		return nil, err
	}

	s.logger.Info("player enrolled",
		slog.String("event", eventName),
		slog.String("account", string(account)),
	)

	return &added, nil
}

// Replace performs a bulk import with full-replace semantics. Every account
// is normalized and duplicates within the batch are rejected before anything
// is written.
func (s *Service) Replace(ctx context.Context, eventName string, players []*model.Player) error {
	now := s.clock.Now()

	seen := make(map[model.AccountNumber]bool, len(players))
	normalized := make([]*model.Player, 0, len(players))
	for _, p := range players {
		account, err := model.NormalizeAccount(string(p.AccountNumber))
		if err != nil {
			return fmt.Errorf("account %q: %w", p.AccountNumber, err)
		}
		if seen[account] {
			return fmt.Errorf("account %s: %w", account, model.ErrDuplicateAccount)
		}
		seen[account] = true

		cp := *p
		cp.AccountNumber = account
		if cp.EntryType == "" {
			cp.EntryType = model.EntryTypePay
		}
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = now
		}
		normalized = append(normalized, &cp)
	}

	if err := s.storage.ReplacePlayers(ctx, eventName, normalized); err != nil {
		return err
	}

	s.logger.Info("player directory replaced",
		slog.String("event", eventName),
		slog.Int("players", len(normalized)),
	)
	return nil
}

// List returns every enrolled player for the event
func (s *Service) List(ctx context.Context, eventName string) ([]*model.Player, error) {
	return s.storage.GetPlayers(ctx, eventName)
}
