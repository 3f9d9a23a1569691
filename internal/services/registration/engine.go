package registration

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tannerhall/floorman/internal/dependencies/clock"
	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/services/directory"
	"github.com/tannerhall/floorman/internal/storage"
)

// Engine validates and executes registration transactions against the ledger
// and player directory. A successful submission produces a pending
// registration for the seating engine; nothing reaches the committed ledger
// until a seat assignment is confirmed.
type Engine struct {
	storage   storage.Storage
	directory *directory.Service
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates a new registration engine
func New(storage storage.Storage, directory *directory.Service, clock clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{
		storage:   storage,
		directory: directory,
		clock:     clock,
		logger:    logger,
	}
}

// SearchResult is what a successful player search surfaces: the player, any
// registrations already held for the target round (to support edit-existing
// semantics), and the payment fields to pre-fill.
type SearchResult struct {
	Player           *model.Player
	Existing         *model.Registration
	ExistingMulligan *model.Registration
	Prefill          model.PaymentSpec
}

// SubmitRequest carries one registration submission
type SubmitRequest struct {
	EventName     string
	AccountNumber string
	Round         model.Round
	TimeSlot      int
	Payment       model.PaymentSpec
	Mulligan      *model.PaymentSpec

	// Update marks an edit of an existing registration surfaced by a prior
	// search; a fresh round 1 submission for an already-registered player is
	// rejected unless it changes the mulligan.
	Update bool

	Host     string
	Comment  string
	Employee string
}

// SearchPlayer looks up a candidate account number for the given round and
// decides whether a registration may proceed. Unknown accounts are routed to
// the new-player flow only in round 1.
func (e *Engine) SearchPlayer(ctx context.Context, eventName, rawAccount string, round model.Round) (*SearchResult, error) {
	player, err := e.directory.Lookup(ctx, eventName, rawAccount)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) && round == model.RoundOne {
			return nil, model.ErrNewPlayerRequired
		}
		return nil, err
	}

	regs, err := e.storage.GetRegistrations(ctx, eventName)
	if err != nil {
		return nil, err
	}

	if err := checkEligibility(regs, player.AccountNumber, round); err != nil {
		return nil, err
	}

	existing := findRegistration(regs, player.AccountNumber, round, false)
	existingMulligan := findRegistration(regs, player.AccountNumber, round, true)

	tournament, err := e.tournament(ctx, eventName)
	if err != nil {
		return nil, err
	}

	var prefill model.PaymentSpec
	switch {
	case existing != nil:
		prefill = model.PaymentSpec{
			Type:        existing.PaymentType,
			Amount:      existing.PaymentAmount,
			SplitType:   existing.PaymentType2,
			SplitAmount: existing.PaymentAmount2,
		}
	case player.EntryType == model.EntryTypeComp && round == model.RoundOne:
		prefill = model.PaymentSpec{Type: model.PaymentComp, Amount: 0}
	default:
		prefill = model.PaymentSpec{Amount: tournament.CostFor(round, false)}
	}

	return &SearchResult{
		Player:           player,
		Existing:         existing,
		ExistingMulligan: existingMulligan,
		Prefill:          prefill,
	}, nil
}

// SubmitRegistration validates a submission and stages it for seating. The
// returned pending registration bundles the main entry and any mulligan; the
// seating engine commits or the bundle is abandoned as a unit.
func (e *Engine) SubmitRegistration(ctx context.Context, req SubmitRequest) (*model.PendingRegistration, error) {
	if _, err := model.ParseRound(string(req.Round)); err != nil {
		return nil, err
	}
	if req.TimeSlot < 1 {
		return nil, model.ErrInvalidTimeSlot
	}

	player, err := e.directory.Lookup(ctx, req.EventName, req.AccountNumber)
	if err != nil {
		return nil, err
	}
	account := player.AccountNumber

	regs, err := e.storage.GetRegistrations(ctx, req.EventName)
	if err != nil {
		return nil, err
	}

	if err := checkEligibility(regs, account, req.Round); err != nil {
		return nil, err
	}

	existing := findRegistration(regs, account, req.Round, false)
	existingMulligan := findRegistration(regs, account, req.Round, true)

	mulliganChanged := (req.Mulligan != nil) != (existingMulligan != nil)
	if req.Round == model.RoundOne && existing != nil && !req.Update && !mulliganChanged {
		return nil, model.ErrAlreadyRegistered
	}

	tournament, err := e.tournament(ctx, req.EventName)
	if err != nil {
		return nil, err
	}

	cost := tournament.CostFor(req.Round, false)
	payment, err := validatePayment(req.Payment, cost)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	main := &model.Registration{
		ID:             newID(existing),
		AccountNumber:  account,
		FirstName:      player.FirstName,
		LastName:       player.LastName,
		EventName:      req.EventName,
		Round:          req.Round,
		IsRebuy:        req.Round.IsRebuy(),
		EventType:      model.EventTypeLabel(req.Round, false, payment, cost),
		PaymentType:    payment.Type,
		PaymentAmount:  payment.Amount,
		PaymentType2:   payment.SplitType,
		PaymentAmount2: payment.SplitAmount,
		RegisteredAt:   now,
		Host:           firstNonEmpty(req.Host, player.Host),
		Comment:        req.Comment,
		Employee:       req.Employee,
	}

	entries := []*model.Registration{main}

	if req.Mulligan != nil {
		mulliganCost := tournament.CostFor(req.Round, true)
		mulliganPayment, err := validatePayment(*req.Mulligan, mulliganCost)
		if err != nil {
			return nil, err
		}

		entries = append(entries, &model.Registration{
			ID:             newID(existingMulligan),
			AccountNumber:  account,
			FirstName:      player.FirstName,
			LastName:       player.LastName,
			EventName:      req.EventName,
			Round:          req.Round,
			IsMulligan:     true,
			IsRebuy:        req.Round.IsRebuy(),
			EventType:      model.EventTypeLabel(req.Round, true, mulliganPayment, mulliganCost),
			PaymentType:    mulliganPayment.Type,
			PaymentAmount:  mulliganPayment.Amount,
			PaymentType2:   mulliganPayment.SplitType,
			PaymentAmount2: mulliganPayment.SplitAmount,
			RegisteredAt:   now,
			Host:           firstNonEmpty(req.Host, player.Host),
			Comment:        req.Comment,
			Employee:       req.Employee,
		})
	}

	pending := &model.PendingRegistration{
		EventName:      req.EventName,
		AccountNumber:  account,
		Round:          req.Round,
		TimeSlot:       req.TimeSlot,
		Entries:        entries,
		RemoveMulligan: existingMulligan != nil && req.Mulligan == nil,
	}

	e.logger.Info("registration staged",
		slog.String("event", req.EventName),
		slog.String("account", string(account)),
		slog.String("round", string(req.Round)),
		slog.Int("time_slot", req.TimeSlot),
		slog.Bool("mulligan", req.Mulligan != nil),
	)

	return pending, nil
}

// RegisterNewPlayer enrolls a player who is not yet in the directory and,
// when a submission is supplied, immediately stages their round 1
// registration.
func (e *Engine) RegisterNewPlayer(ctx context.Context, eventName string, player *model.Player, submit *SubmitRequest) (*model.Player, *model.PendingRegistration, error) {
	added, err := e.directory.Add(ctx, eventName, player)
	if err != nil {
		return nil, nil, err
	}

	if submit == nil {
		return added, nil, nil
	}

	req := *submit
	req.EventName = eventName
	req.AccountNumber = string(added.AccountNumber)
	req.Round = model.RoundOne

	pending, err := e.SubmitRegistration(ctx, req)
	if err != nil {
		return added, nil, err
	}
	return added, pending, nil
}

// IsRegisteredForRound reports whether the player holds a non-mulligan
// registration for the round
func (e *Engine) IsRegisteredForRound(ctx context.Context, eventName, rawAccount string, round model.Round) (bool, error) {
	account, err := model.NormalizeAccount(rawAccount)
	if err != nil {
		return false, err
	}
	regs, err := e.storage.GetRegistrations(ctx, eventName)
	if err != nil {
		return false, err
	}
	return findRegistration(regs, account, round, false) != nil, nil
}

// PlayerHasMulligan reports whether the player holds a mulligan for the round
func (e *Engine) PlayerHasMulligan(ctx context.Context, eventName, rawAccount string, round model.Round) (bool, error) {
	account, err := model.NormalizeAccount(rawAccount)
	if err != nil {
		return false, err
	}
	regs, err := e.storage.GetRegistrations(ctx, eventName)
	if err != nil {
		return false, err
	}
	return findRegistration(regs, account, round, true) != nil, nil
}

// Registrations returns the event's committed ledger
func (e *Engine) Registrations(ctx context.Context, eventName string) ([]*model.Registration, error) {
	return e.storage.GetRegistrations(ctx, eventName)
}

// tournament loads the event's cost config, falling back to the standard
// schedule when none has been saved
func (e *Engine) tournament(ctx context.Context, name string) (*model.Tournament, error) {
	t, err := e.storage.GetTournament(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrTournamentNotFound) {
			return model.DefaultTournament(name), nil
		}
		return nil, err
	}
	return t, nil
}

// checkEligibility enforces the round prerequisites: everything past round 1
// requires a round 1 registration, and the second rebuy requires the first.
func checkEligibility(regs []*model.Registration, account model.AccountNumber, round model.Round) error {
	if round.RequiresRoundOne() && findRegistration(regs, account, model.RoundOne, false) == nil {
		return model.ErrNotEligible
	}
	if round == model.RoundRebuyTwo && findRegistration(regs, account, model.RoundRebuyOne, false) == nil {
		return model.ErrNotEligible
	}
	return nil
}

// validatePayment checks a payment spec against the required cost and
// returns it in normalized form. Comp payments are forced to zero.
func validatePayment(spec model.PaymentSpec, cost int) (model.PaymentSpec, error) {
	if spec.Type == model.PaymentComp {
		return model.PaymentSpec{Type: model.PaymentComp}, nil
	}

	if cost == 0 {
		if spec.Total() != 0 {
			return model.PaymentSpec{}, model.ErrPaymentMismatch
		}
		return model.PaymentSpec{}, nil
	}

	if spec.Type == "" {
		return model.PaymentSpec{}, model.ErrPaymentTypeRequired
	}
	if !model.ValidPaymentType(spec.Type) {
		return model.PaymentSpec{}, model.ErrPaymentTypeRequired
	}

	if spec.Split() {
		if !model.ValidPaymentType(spec.SplitType) || spec.SplitType == model.PaymentComp {
			return model.PaymentSpec{}, model.ErrPaymentTypeRequired
		}
		if spec.SplitType == spec.Type {
			return model.PaymentSpec{}, model.ErrSplitTypesSame
		}
		if spec.Amount <= 0 || spec.SplitAmount <= 0 {
			return model.PaymentSpec{}, model.ErrSplitAmountInvalid
		}
	}

	if spec.Total() != cost {
		return model.PaymentSpec{}, model.ErrPaymentMismatch
	}

	return spec, nil
}

// findRegistration locates a ledger entry by its logical identity
func findRegistration(regs []*model.Registration, account model.AccountNumber, round model.Round, isMulligan bool) *model.Registration {
	for _, r := range regs {
		if r.AccountNumber == account && r.Round == round && r.IsMulligan == isMulligan {
			return r
		}
	}
	return nil
}

// newID reuses the identity of the record being replaced so edits stay
// in place in the ledger
func newID(existing *model.Registration) model.RegistrationID {
	if existing != nil {
		return existing.ID
	}
	return model.RegistrationID(uuid.NewString())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
