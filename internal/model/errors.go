package model

import "errors"

// Common errors used across the application. Every failure here is
// recoverable: the operation that raised it has left committed state
// untouched.
var (
	// Account number validation
	ErrAccountNotNumeric = errors.New("account number must contain only digits")
	ErrAccountLength     = errors.New("account number must be 14 digits")

	// Directory errors
	ErrPlayerNotFound    = errors.New("player not found")
	ErrNewPlayerRequired = errors.New("player not enrolled; new player registration required")
	ErrDuplicateAccount  = errors.New("a player with this account number already exists")

	// Registration errors
	ErrInvalidRound        = errors.New("invalid round")
	ErrInvalidTimeSlot     = errors.New("time slot must be a positive number")
	ErrNotEligible         = errors.New("player is not eligible for this round")
	ErrAlreadyRegistered   = errors.New("player is already registered for this round")
	ErrPaymentTypeRequired = errors.New("payment type is required")
	ErrPaymentMismatch     = errors.New("payment amounts do not add up to the round cost")
	ErrSplitTypesSame      = errors.New("split payment types must differ")
	ErrSplitAmountInvalid  = errors.New("both split payment amounts must be greater than zero")
	ErrTournamentNotFound  = errors.New("tournament not found")

	// Seating errors
	ErrNoPendingRegistration = errors.New("no pending registration to seat")
	ErrNoSeatSelected        = errors.New("no seat selected")
	ErrNoSeatsAvailable      = errors.New("no seats available")
	ErrSeatConflict          = errors.New("seat was taken by another terminal; re-select")
	ErrSeatUnavailable       = errors.New("seat is not available")
	ErrInvalidSeat           = errors.New("table and seat must be between 1 and 6")

	// Table policy errors
	ErrTableOccupied    = errors.New("table has seated players and cannot be toggled")
	ErrTableFixedClosed = errors.New("table is permanently closed for this round")

	// Store errors. Transport and storage failures from the external store
	// surface as this; retry policy belongs to the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// NoSeatsError is returned by random assignment when no seat can be offered.
// PreferenceApplied tells the caller whether a seat-preference filter was in
// effect so the message can mention the excluded seats.
type NoSeatsError struct {
	PreferenceApplied bool
	Preferences       []int
}

func (e *NoSeatsError) Error() string {
	if e.PreferenceApplied {
		return "no seats available matching the requested seat preferences"
	}
	return ErrNoSeatsAvailable.Error()
}

// Is makes the error match ErrNoSeatsAvailable in errors.Is checks
func (e *NoSeatsError) Is(target error) bool {
	return target == ErrNoSeatsAvailable
}
