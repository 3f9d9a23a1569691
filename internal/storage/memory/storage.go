package memory

import (
	"context"
	"sync"

	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/storage"
)

// Storage is an in-memory implementation of the storage interface. Reads
// return deep copies so engines can treat every load as a fresh snapshot of
// the shared ledger, matching the multi-terminal model.
type Storage struct {
	mu sync.RWMutex

	players       map[string]map[model.AccountNumber]*model.Player
	registrations map[string][]*model.Registration
	tournaments   map[string]*model.Tournament
	disabled      map[model.TableKey]bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:       make(map[string]map[model.AccountNumber]*model.Player),
		registrations: make(map[string][]*model.Registration),
		tournaments:   make(map[string]*model.Tournament),
		disabled:      make(map[model.TableKey]bool),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player directory operations

func (s *Storage) GetPlayers(ctx context.Context, eventName string) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players[eventName]))
	for _, p := range s.players[eventName] {
		cp := *p
		players = append(players, &cp)
	}
	return players, nil
}

func (s *Storage) ReplacePlayers(ctx context.Context, eventName string, players []*model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byAccount := make(map[model.AccountNumber]*model.Player, len(players))
	for _, p := range players {
		cp := *p
		byAccount[p.AccountNumber] = &cp
	}
	s.players[eventName] = byAccount
	return nil
}

func (s *Storage) SavePlayer(ctx context.Context, eventName string, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.players[eventName] == nil {
		s.players[eventName] = make(map[model.AccountNumber]*model.Player)
	}
	cp := *player
	s.players[eventName][player.AccountNumber] = &cp
	return nil
}

// Registration ledger operations

func (s *Storage) GetRegistrations(ctx context.Context, eventName string) ([]*model.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	regs := make([]*model.Registration, 0, len(s.registrations[eventName]))
	for _, r := range s.registrations[eventName] {
		regs = append(regs, r.Clone())
	}
	return regs, nil
}

func (s *Storage) CommitRegistrations(ctx context.Context, eventName string, regs []*model.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := make([]*model.Registration, 0, len(regs))
	for _, r := range regs {
		replaced = append(replaced, r.Clone())
	}
	s.registrations[eventName] = replaced
	return nil
}

// Tournament config operations

func (s *Storage) GetTournament(ctx context.Context, name string) (*model.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tournaments[name]
	if !ok {
		return nil, model.ErrTournamentNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *Storage) SaveTournament(ctx context.Context, tournament *model.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *tournament
	s.tournaments[tournament.Name] = &cp
	return nil
}

// Disabled table operations

func (s *Storage) GetDisabledTables(ctx context.Context, eventName string) (map[model.TableKey]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tables := make(map[model.TableKey]bool)
	for key, disabled := range s.disabled {
		if key.EventName == eventName && disabled {
			tables[key] = true
		}
	}
	return tables, nil
}

func (s *Storage) SetDisabledTable(ctx context.Context, key model.TableKey, disabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if disabled {
		s.disabled[key] = true
	} else {
		delete(s.disabled, key)
	}
	return nil
}
