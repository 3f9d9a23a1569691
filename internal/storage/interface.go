package storage

import (
	"context"

	"github.com/tannerhall/floorman/internal/model"
)

// Storage defines the interface to the external store the tournament floor
// shares between terminals. Reads return fresh snapshots; mutating operations
// on the registration ledger use replace-all semantics so multi-record
// commits land atomically.
type Storage interface {
	// Player directory operations
	GetPlayers(ctx context.Context, eventName string) ([]*model.Player, error)
	ReplacePlayers(ctx context.Context, eventName string, players []*model.Player) error
	SavePlayer(ctx context.Context, eventName string, player *model.Player) error

	// Registration ledger operations
	GetRegistrations(ctx context.Context, eventName string) ([]*model.Registration, error)
	CommitRegistrations(ctx context.Context, eventName string, regs []*model.Registration) error

	// Tournament config operations
	GetTournament(ctx context.Context, name string) (*model.Tournament, error)
	SaveTournament(ctx context.Context, tournament *model.Tournament) error

	// Disabled table operations
	GetDisabledTables(ctx context.Context, eventName string) (map[model.TableKey]bool, error)
	SetDisabledTable(ctx context.Context, key model.TableKey, disabled bool) error
}
