package model

import (
	"fmt"
	"time"
)

// RegistrationID uniquely identifies a ledger entry
type RegistrationID string

// PaymentType is how an entry, rebuy or mulligan was paid for
type PaymentType string

const (
	PaymentCash   PaymentType = "Cash"
	PaymentCredit PaymentType = "Credit"
	PaymentChips  PaymentType = "Chips"
	PaymentComp   PaymentType = "Comp"
)

// PaymentTypes lists the accepted payment types
var PaymentTypes = []PaymentType{PaymentCash, PaymentCredit, PaymentChips, PaymentComp}

// ValidPaymentType reports whether t names a known payment type
func ValidPaymentType(t PaymentType) bool {
	for _, p := range PaymentTypes {
		if t == p {
			return true
		}
	}
	return false
}

// PaymentSpec is the payment portion of a registration submission. A split
// payment carries a second type and amount; both halves must be positive and
// the types must differ.
type PaymentSpec struct {
	Type        PaymentType
	Amount      int
	SplitType   PaymentType
	SplitAmount int
}

// Split reports whether this spec carries a second payment
func (p PaymentSpec) Split() bool {
	return p.SplitType != "" || p.SplitAmount != 0
}

// Total returns the combined payment amount
func (p PaymentSpec) Total() int {
	return p.Amount + p.SplitAmount
}

// Registration is a single ledger entry: one entry, rebuy or mulligan
// purchase by one player in one round. Table and seat stay nil until the
// seating engine commits an assignment.
type Registration struct {
	ID            RegistrationID
	AccountNumber AccountNumber
	FirstName     string
	LastName      string
	EventName     string
	Round         Round
	IsMulligan    bool
	IsRebuy       bool
	EventType     string
	PaymentType   PaymentType
	PaymentAmount int
	PaymentType2  PaymentType
	PaymentAmount2 int
	RegisteredAt  time.Time
	Host          string
	Comment       string
	Employee      string
	TimeSlot      *int
	TableNumber   *int
	SeatNumber    *int
}

// IdentityKey is the logical identity of a registration. AccountNumber,
// Round and IsMulligan never change after creation; together they locate the
// record a resubmission replaces.
type IdentityKey struct {
	AccountNumber AccountNumber
	Round         Round
	IsMulligan    bool
}

// Identity returns the registration's logical key
func (r *Registration) Identity() IdentityKey {
	return IdentityKey{
		AccountNumber: r.AccountNumber,
		Round:         r.Round,
		IsMulligan:    r.IsMulligan,
	}
}

// Seated reports whether the registration holds a confirmed table and seat
func (r *Registration) Seated() bool {
	return r.TimeSlot != nil && r.TableNumber != nil && r.SeatNumber != nil
}

// SeatKey returns the registration's seat coordinates, if seated
func (r *Registration) SeatKey() (SeatKey, bool) {
	if !r.Seated() {
		return SeatKey{}, false
	}
	return SeatKey{
		EventName: r.EventName,
		Round:     r.Round,
		TimeSlot:  *r.TimeSlot,
		Table:     *r.TableNumber,
		Seat:      *r.SeatNumber,
	}, true
}

// ClearSeat removes the table/seat assignment without deleting the entry.
// This is the eviction operation.
func (r *Registration) ClearSeat() {
	r.TableNumber = nil
	r.SeatNumber = nil
}

// Clone returns a deep copy of the registration
func (r *Registration) Clone() *Registration {
	c := *r
	c.TimeSlot = cloneIntPtr(r.TimeSlot)
	c.TableNumber = cloneIntPtr(r.TableNumber)
	c.SeatNumber = cloneIntPtr(r.SeatNumber)
	return &c
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// SeatKey is the composite coordinate of a single seat within a round's time
// slot. Two committed registrations must never share a SeatKey.
type SeatKey struct {
	EventName string
	Round     Round
	TimeSlot  int
	Table     int
	Seat      int
}

// Seat is a table/seat pair within an already-known round and time slot
type Seat struct {
	Table int
	Seat  int
}

// ValidSeat reports whether the table and seat numbers are within range
func ValidSeat(table, seat int) bool {
	return table >= 1 && table <= NumTables && seat >= 1 && seat <= NumSeats
}

// EventTypeLabel derives the display label stored on a registration
func EventTypeLabel(round Round, isMulligan bool, payment PaymentSpec, cost int) string {
	switch {
	case isMulligan:
		return fmt.Sprintf("Mulligan $%d", cost)
	case payment.Type == PaymentComp:
		return string(EntryTypeComp)
	case round.IsRebuy():
		return fmt.Sprintf("Rebuy $%d", cost)
	case cost == 0:
		return "Check-In"
	default:
		return fmt.Sprintf("%s $%d", EntryTypePay, cost)
	}
}
