package response

import (
	"time"

	"github.com/tannerhall/floorman/internal/model"
	"github.com/tannerhall/floorman/internal/services/registration"
)

// Player represents a directory entry in API responses
type Player struct {
	AccountNumber string    `json:"account_number"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	EntryType     string    `json:"entry_type"`
	Host          string    `json:"host,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		AccountNumber: string(p.AccountNumber),
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		EntryType:     string(p.EntryType),
		Host:          p.Host,
		CreatedAt:     p.CreatedAt,
	}
}

// Payment represents the payment portion of a ledger entry
type Payment struct {
	Type        string `json:"type,omitempty"`
	Amount      int    `json:"amount"`
	SplitType   string `json:"split_type,omitempty"`
	SplitAmount int    `json:"split_amount,omitempty"`
}

// PaymentFromSpec converts a model.PaymentSpec
func PaymentFromSpec(p model.PaymentSpec) Payment {
	return Payment{
		Type:        string(p.Type),
		Amount:      p.Amount,
		SplitType:   string(p.SplitType),
		SplitAmount: p.SplitAmount,
	}
}

// Registration represents a ledger entry in API responses
type Registration struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"account_number"`
	FirstName     string    `json:"first_name,omitempty"`
	LastName      string    `json:"last_name,omitempty"`
	Round         string    `json:"round"`
	IsMulligan    bool      `json:"is_mulligan,omitempty"`
	IsRebuy       bool      `json:"is_rebuy,omitempty"`
	EventType     string    `json:"event_type"`
	Payment       Payment   `json:"payment"`
	RegisteredAt  time.Time `json:"registered_at"`
	Host          string    `json:"host,omitempty"`
	Comment       string    `json:"comment,omitempty"`
	Employee      string    `json:"employee,omitempty"`
	TimeSlot      *int      `json:"time_slot"`
	Table         *int      `json:"table"`
	Seat          *int      `json:"seat"`
}

// RegistrationFromModel converts a model.Registration
func RegistrationFromModel(r *model.Registration) Registration {
	return Registration{
		ID:            string(r.ID),
		AccountNumber: string(r.AccountNumber),
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Round:         string(r.Round),
		IsMulligan:    r.IsMulligan,
		IsRebuy:       r.IsRebuy,
		EventType:     r.EventType,
		Payment: Payment{
			Type:        string(r.PaymentType),
			Amount:      r.PaymentAmount,
			SplitType:   string(r.PaymentType2),
			SplitAmount: r.PaymentAmount2,
		},
		RegisteredAt: r.RegisteredAt,
		Host:         r.Host,
		Comment:      r.Comment,
		Employee:     r.Employee,
		TimeSlot:     r.TimeSlot,
		Table:        r.TableNumber,
		Seat:         r.SeatNumber,
	}
}

// RegistrationsFromModel converts a ledger slice
func RegistrationsFromModel(regs []*model.Registration) []Registration {
	out := make([]Registration, len(regs))
	for i, r := range regs {
		out[i] = RegistrationFromModel(r)
	}
	return out
}

// SearchResult is the response for a player search
type SearchResult struct {
	Player           Player        `json:"player"`
	Existing         *Registration `json:"existing,omitempty"`
	ExistingMulligan *Registration `json:"existing_mulligan,omitempty"`
	Prefill          Payment       `json:"prefill"`
}

// SearchResultFromService converts a registration.SearchResult
func SearchResultFromService(r *registration.SearchResult) SearchResult {
	out := SearchResult{
		Player:  PlayerFromModel(r.Player),
		Prefill: PaymentFromSpec(r.Prefill),
	}
	if r.Existing != nil {
		existing := RegistrationFromModel(r.Existing)
		out.Existing = &existing
	}
	if r.ExistingMulligan != nil {
		mulligan := RegistrationFromModel(r.ExistingMulligan)
		out.ExistingMulligan = &mulligan
	}
	return out
}

// Pending is the response for a staged registration awaiting seating
type Pending struct {
	AccountNumber  string         `json:"account_number"`
	Round          string         `json:"round"`
	TimeSlot       int            `json:"time_slot"`
	Entries        []Registration `json:"entries"`
	RemoveMulligan bool           `json:"remove_mulligan,omitempty"`
}

// PendingFromModel converts a model.PendingRegistration
func PendingFromModel(p *model.PendingRegistration) Pending {
	return Pending{
		AccountNumber:  string(p.AccountNumber),
		Round:          string(p.Round),
		TimeSlot:       p.TimeSlot,
		Entries:        RegistrationsFromModel(p.Entries),
		RemoveMulligan: p.RemoveMulligan,
	}
}

// NewPlayerResponse is the response for enrolling a new player
type NewPlayerResponse struct {
	Player  Player   `json:"player"`
	Pending *Pending `json:"pending,omitempty"`
}

// Seat is a table/seat pair in API responses
type Seat struct {
	Table int `json:"table"`
	Seat  int `json:"seat"`
}

// SeatFromModel converts a model.Seat
func SeatFromModel(s model.Seat) Seat {
	return Seat{Table: s.Table, Seat: s.Seat}
}

// AvailableSeats maps each open table to its open seat positions
type AvailableSeats struct {
	Tables map[int][]int `json:"tables"`
}

// ConfirmResponse is the response after committing a seat assignment
type ConfirmResponse struct {
	Committed []Registration `json:"committed"`
}

// TablesStatus reports which tables are closed for a round and time slot
type TablesStatus struct {
	Round    string       `json:"round"`
	TimeSlot int          `json:"time_slot"`
	Disabled map[int]bool `json:"disabled"`
}

// ToggleTableResponse is the response after toggling a table
type ToggleTableResponse struct {
	Table    int  `json:"table"`
	Disabled bool `json:"disabled"`
}

// Tournament is the per-event cost configuration in API responses
type Tournament struct {
	Name         string `json:"name"`
	EntryCost    int    `json:"entry_cost"`
	RebuyCost    int    `json:"rebuy_cost"`
	MulliganCost int    `json:"mulligan_cost"`
}

// TournamentFromModel converts a model.Tournament
func TournamentFromModel(t *model.Tournament) Tournament {
	return Tournament{
		Name:         t.Name,
		EntryCost:    t.EntryCost,
		RebuyCost:    t.RebuyCost,
		MulliganCost: t.MulliganCost,
	}
}
