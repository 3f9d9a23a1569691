package seating

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tannerhall/floorman/internal/dependencies/random"
	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/services/tables"
	"github.com/tannerhall/floorman/internal/storage"
)

// Engine assigns seats to pending registrations and commits the result to the
// ledger. Each terminal holds at most one seating session at a time; sessions
// live in memory, so abandoning one (or crashing the terminal) leaves the
// ledger untouched.
type Engine struct {
	storage storage.Storage
	tables  *tables.Policy
	random  random.Random
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// session is one terminal's in-flight seat assignment
type session struct {
	pending *model.PendingRegistration

	selected *model.Seat
	// expectedOccupant is who held the selected seat when it was chosen. A
	// different occupant at confirm time means another terminal took the seat
	// in between, which is a conflict rather than a deliberate eviction.
	expectedOccupant model.AccountNumber

	// conflictTables are tables the floor has reported as unusable for this
	// session; random assignment skips them.
	conflictTables map[int]bool
}

// New creates a new seating engine
func New(storage storage.Storage, tables *tables.Policy, random random.Random, logger *slog.Logger) *Engine {
	return &Engine{
		storage:  storage,
		tables:   tables,
		random:   random,
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

// Begin opens a seating session for the terminal, replacing any session the
// terminal already had
func (e *Engine) Begin(terminal string, pending *model.PendingRegistration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions[terminal] = &session{
		pending:        pending,
		conflictTables: make(map[int]bool),
	}
}

// Pending returns the registration staged in the terminal's session
func (e *Engine) Pending(terminal string) (*model.PendingRegistration, error) {
	sess, err := e.session(terminal)
	if err != nil {
		return nil, err
	}
	return sess.pending, nil
}

// Selected returns the seat currently chosen in the terminal's session, or
// nil when none has been picked yet
func (e *Engine) Selected(terminal string) (*model.Seat, error) {
	sess, err := e.session(terminal)
	if err != nil {
		return nil, err
	}
	return sess.selected, nil
}

// ListAvailableSeats returns the open seats per table for the terminal's
// pending round and time slot. Disabled tables and tables marked as conflicts
// in this session are excluded; when seat preferences are given only those
// seat positions are listed.
func (e *Engine) ListAvailableSeats(ctx context.Context, terminal string, preferences []int) (map[int][]int, error) {
	sess, err := e.session(terminal)
	if err != nil {
		return nil, err
	}

	open, err := e.openSeats(ctx, sess, preferences)
	if err != nil {
		return nil, err
	}

	byTable := make(map[int][]int)
	for _, seat := range open {
		byTable[seat.Table] = append(byTable[seat.Table], seat.Seat)
	}
	return byTable, nil
}

// AssignRandomSeat picks a uniformly random open seat for the terminal's
// session. When seat preferences are given only those seat positions are
// considered; an empty candidate set surfaces as a NoSeatsError.
func (e *Engine) AssignRandomSeat(ctx context.Context, terminal string, preferences []int) (model.Seat, error) {
	sess, err := e.session(terminal)
	if err != nil {
		return model.Seat{}, err
	}

	open, err := e.openSeats(ctx, sess, preferences)
	if err != nil {
		return model.Seat{}, err
	}
	if len(open) == 0 {
		return model.Seat{}, &model.NoSeatsError{
			PreferenceApplied: len(preferences) > 0,
			Preferences:       preferences,
		}
	}

	seat := open[e.random.Intn(len(open))]

	e.mu.Lock()
	sess.selected = &seat
	sess.expectedOccupant = ""
	e.mu.Unlock()

	e.logger.Info("random seat offered",
		slog.String("terminal", terminal),
		slog.String("account", string(sess.pending.AccountNumber)),
		slog.Int("table", seat.Table),
		slog.Int("seat", seat.Seat),
	)
	return seat, nil
}

// SelectSeat records a manual seat choice. Choosing an occupied seat is
// allowed; the occupant at selection time is remembered so that confirmation
// can tell a deliberate eviction apart from a seat raced away by another
// terminal.
func (e *Engine) SelectSeat(ctx context.Context, terminal string, table, seat int) error {
	sess, err := e.session(terminal)
	if err != nil {
		return err
	}

	if !model.ValidSeat(table, seat) {
		return model.ErrInvalidSeat
	}

	disabled, err := e.tables.IsTableDisabled(ctx, model.TableKey{
		EventName: sess.pending.EventName,
		Round:     sess.pending.Round,
		TimeSlot:  sess.pending.TimeSlot,
		Table:     table,
	})
	if err != nil {
		return err
	}
	if disabled {
		return model.ErrSeatUnavailable
	}

	occupants, err := e.occupants(ctx, sess.pending)
	if err != nil {
		return err
	}

	e.mu.Lock()
	sess.selected = &model.Seat{Table: table, Seat: seat}
	sess.expectedOccupant = occupants[model.Seat{Table: table, Seat: seat}]
	e.mu.Unlock()
	return nil
}

// MarkConflictTable excludes a table from this session's random assignment,
// used when the floor reports the table unusable. Marking a table with no
// open seats is a no-op since random assignment could never offer it.
func (e *Engine) MarkConflictTable(ctx context.Context, terminal string, table int) error {
	sess, err := e.session(terminal)
	if err != nil {
		return err
	}
	if table < 1 || table > model.NumTables {
		return model.ErrInvalidSeat
	}

	occupants, err := e.occupants(ctx, sess.pending)
	if err != nil {
		return err
	}
	openAtTable := 0
	for seatNum := 1; seatNum <= model.NumSeats; seatNum++ {
		if _, taken := occupants[model.Seat{Table: table, Seat: seatNum}]; !taken {
			openAtTable++
		}
	}
	if openAtTable == 0 {
		return nil
	}

	e.mu.Lock()
	sess.conflictTables[table] = true
	if sess.selected != nil && sess.selected.Table == table {
		sess.selected = nil
		sess.expectedOccupant = ""
	}
	e.mu.Unlock()
	return nil
}

// ClearConflictTable removes a session conflict mark from a table
func (e *Engine) ClearConflictTable(terminal string, table int) error {
	sess, err := e.session(terminal)
	if err != nil {
		return err
	}
	e.mu.Lock()
	delete(sess.conflictTables, table)
	e.mu.Unlock()
	return nil
}

// ConfirmAssignment commits the session's pending registration at the
// selected seat. The ledger is re-read first: if the seat's occupant has
// changed since selection the commit is refused with ErrSeatConflict and the
// selection is cleared so the terminal can pick again. On success the staged
// entries land with the seat stamped, any evicted occupant keeps their ledger
// entry with the seat fields cleared, and the session ends.
func (e *Engine) ConfirmAssignment(ctx context.Context, terminal string) ([]*model.Registration, error) {
	sess, err := e.session(terminal)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	selected := sess.selected
	expected := sess.expectedOccupant
	e.mu.Unlock()
	if selected == nil {
		return nil, model.ErrNoSeatSelected
	}

	pending := sess.pending

	disabled, err := e.tables.IsTableDisabled(ctx, model.TableKey{
		EventName: pending.EventName,
		Round:     pending.Round,
		TimeSlot:  pending.TimeSlot,
		Table:     selected.Table,
	})
	if err != nil {
		return nil, err
	}
	if disabled {
		return nil, model.ErrSeatUnavailable
	}

	regs, err := e.storage.GetRegistrations(ctx, pending.EventName)
	if err != nil {
		return nil, err
	}

	occupant := e.occupantOf(regs, pending, *selected)
	if occupant != expected {
		e.mu.Lock()
		sess.selected = nil
		sess.expectedOccupant = ""
		e.mu.Unlock()
		return nil, model.ErrSeatConflict
	}

	replaced := pending.ReplacedKeys()
	next := make([]*model.Registration, 0, len(regs)+len(pending.Entries))
	for _, r := range regs {
		if replaced[r.Identity()] {
			continue
		}
		cp := r.Clone()
		if occupant != "" && cp.AccountNumber == occupant && sameSeat(cp, pending, *selected) {
			cp.ClearSeat()
		}
		next = append(next, cp)
	}

	committed := make([]*model.Registration, 0, len(pending.Entries))
	for _, entry := range pending.Entries {
		cp := entry.Clone()
		slot := pending.TimeSlot
		table := selected.Table
		seat := selected.Seat
		cp.TimeSlot = &slot
		cp.TableNumber = &table
		cp.SeatNumber = &seat
		next = append(next, cp)
		committed = append(committed, cp)
	}

	if err := e.storage.CommitRegistrations(ctx, pending.EventName, next); err != nil {
		return nil, err
	}

	e.mu.Lock()
	delete(e.sessions, terminal)
	e.mu.Unlock()

	e.logger.Info("seat assignment committed",
		slog.String("terminal", terminal),
		slog.String("account", string(pending.AccountNumber)),
		slog.String("round", string(pending.Round)),
		slog.Int("time_slot", pending.TimeSlot),
		slog.Int("table", selected.Table),
		slog.Int("seat", selected.Seat),
		slog.Bool("evicted", occupant != ""),
	)
	return committed, nil
}

// Abandon discards the terminal's session without touching the ledger
func (e *Engine) Abandon(terminal string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.sessions[terminal]; !ok {
		return model.ErrNoPendingRegistration
	}
	delete(e.sessions, terminal)
	return nil
}

func (e *Engine) session(terminal string) (*session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	sess, ok := e.sessions[terminal]
	if !ok {
		return nil, model.ErrNoPendingRegistration
	}
	return sess, nil
}

// openSeats returns every open seat for the session, optionally filtered to
// preferred seat positions
func (e *Engine) openSeats(ctx context.Context, sess *session, preferences []int) ([]model.Seat, error) {
	pending := sess.pending

	disabled, err := e.tables.DisabledTables(ctx, pending.EventName, pending.Round, pending.TimeSlot)
	if err != nil {
		return nil, err
	}

	occupants, err := e.occupants(ctx, pending)
	if err != nil {
		return nil, err
	}

	preferred := make(map[int]bool, len(preferences))
	for _, p := range preferences {
		preferred[p] = true
	}

	e.mu.Lock()
	conflicts := make(map[int]bool, len(sess.conflictTables))
	for t := range sess.conflictTables {
		conflicts[t] = true
	}
	e.mu.Unlock()

	var open []model.Seat
	for table := 1; table <= model.NumTables; table++ {
		if disabled[table] || conflicts[table] {
			continue
		}
		for seatNum := 1; seatNum <= model.NumSeats; seatNum++ {
			if len(preferred) > 0 && !preferred[seatNum] {
				continue
			}
			seat := model.Seat{Table: table, Seat: seatNum}
			if _, taken := occupants[seat]; taken {
				continue
			}
			open = append(open, seat)
		}
	}
	return open, nil
}

// occupants maps each taken seat in the pending round and time slot to the
// account holding it. The pending player's own rows are skipped so that their
// current seat stays selectable when re-registering.
func (e *Engine) occupants(ctx context.Context, pending *model.PendingRegistration) (map[model.Seat]model.AccountNumber, error) {
	regs, err := e.storage.GetRegistrations(ctx, pending.EventName)
	if err != nil {
		return nil, err
	}

	taken := make(map[model.Seat]model.AccountNumber)
	for _, r := range regs {
		if r.IsMulligan || r.AccountNumber == pending.AccountNumber {
			continue
		}
		if r.Round != pending.Round || !r.Seated() || *r.TimeSlot != pending.TimeSlot {
			continue
		}
		taken[model.Seat{Table: *r.TableNumber, Seat: *r.SeatNumber}] = r.AccountNumber
	}
	return taken, nil
}

// occupantOf returns the account seated at the given seat in the pending
// round and time slot, or "" when the seat is open. The pending player's own
// rows do not count as occupancy.
func (e *Engine) occupantOf(regs []*model.Registration, pending *model.PendingRegistration, seat model.Seat) model.AccountNumber {
	for _, r := range regs {
		if r.IsMulligan || r.AccountNumber == pending.AccountNumber {
			continue
		}
		if r.Round != pending.Round || !r.Seated() || *r.TimeSlot != pending.TimeSlot {
			continue
		}
		if *r.TableNumber == seat.Table && *r.SeatNumber == seat.Seat {
			return r.AccountNumber
		}
	}
	return ""
}

func sameSeat(r *model.Registration, pending *model.PendingRegistration, seat model.Seat) bool {
	return r.Round == pending.Round &&
		r.Seated() &&
		*r.TimeSlot == pending.TimeSlot &&
		*r.TableNumber == seat.Table &&
		*r.SeatNumber == seat.Seat
}
