package tables

import (
	"context"
	"log/slog"

	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/storage"
)

// Policy tracks which tables are closed for play. Flags are stored
// independently per (event, round, time slot, table); the semifinal round
// additionally closes table 6 unconditionally.
type Policy struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new table availability policy
func New(storage storage.Storage, logger *slog.Logger) *Policy {
	return &Policy{
		storage: storage,
		logger:  logger,
	}
}

// IsTableDisabled reports whether a table is closed for the given round and
// time slot. The semifinal table 6 rule is fixed and cannot be overridden by
// stored state.
func (p *Policy) IsTableDisabled(ctx context.Context, key model.TableKey) (bool, error) {
	if fixedClosed(key.Round, key.Table) {
		return true, nil
	}

	disabled, err := p.storage.GetDisabledTables(ctx, key.EventName)
	if err != nil {
		return false, err
	}
	return disabled[key], nil
}

// DisabledTables returns the set of closed table numbers for one round and
// time slot, fixed closures included
func (p *Policy) DisabledTables(ctx context.Context, eventName string, round model.Round, timeSlot int) (map[int]bool, error) {
	stored, err := p.storage.GetDisabledTables(ctx, eventName)
	if err != nil {
		return nil, err
	}

	closed := make(map[int]bool)
	for table := 1; table <= model.NumTables; table++ {
		key := model.TableKey{EventName: eventName, Round: round, TimeSlot: timeSlot, Table: table}
		if stored[key] || fixedClosed(round, table) {
			closed[table] = true
		}
	}
	return closed, nil
}

// ToggleTable flips a table's disabled flag. The toggle is refused when any
// seat at the table currently holds a player, and the semifinal table 6
// closure cannot be toggled at all. Returns the new disabled state.
func (p *Policy) ToggleTable(ctx context.Context, eventName string, round model.Round, timeSlot int, table int) (bool, error) {
	if table < 1 || table > model.NumTables {
		return false, model.ErrInvalidSeat
	}
	if fixedClosed(round, table) {
		return false, model.ErrTableFixedClosed
	}

	regs, err := p.storage.GetRegistrations(ctx, eventName)
	if err != nil {
		return false, err
	}
	for _, r := range regs {
		if r.Round != round || !r.Seated() {
			continue
		}
		if *r.TimeSlot == timeSlot && *r.TableNumber == table {
			return false, model.ErrTableOccupied
		}
	}

	key := model.TableKey{EventName: eventName, Round: round, TimeSlot: timeSlot, Table: table}
	disabled, err := p.storage.GetDisabledTables(ctx, eventName)
	if err != nil {
		return false, err
	}

	next := !disabled[key]
	if err := p.storage.SetDisabledTable(ctx, key, next); err != nil {
		return false, err
	}

	p.logger.Info("table toggled",
		slog.String("event", eventName),
		slog.String("round", string(round)),
		slog.Int("time_slot", timeSlot),
		slog.Int("table", table),
		slog.Bool("disabled", next),
	)
	return next, nil
}

func fixedClosed(round model.Round, table int) bool {
	return round == model.RoundSemifinals && table == model.SemifinalClosedTable
}
