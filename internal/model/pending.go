package model

// PendingRegistration is the staging token handed from the registration
// engine to the seating engine. Its entries carry no table or seat; nothing
// reaches the committed ledger until the seating engine confirms an
// assignment, and abandoning the token has no ledger side effects.
type PendingRegistration struct {
	EventName     string
	AccountNumber AccountNumber
	Round         Round
	TimeSlot      int

	// Entries are the seatless registrations to commit: the main entry and,
	// when purchased, the mulligan.
	Entries []*Registration

	// RemoveMulligan marks a previously held mulligan for removal as part of
	// the same commit.
	RemoveMulligan bool
}

// HasMulligan reports whether the bundle includes a mulligan purchase
func (p *PendingRegistration) HasMulligan() bool {
	for _, e := range p.Entries {
		if e.IsMulligan {
			return true
		}
	}
	return false
}

// ReplacedKeys returns the identity keys this commit will replace or remove
// in the ledger
func (p *PendingRegistration) ReplacedKeys() map[IdentityKey]bool {
	keys := make(map[IdentityKey]bool, len(p.Entries)+1)
	for _, e := range p.Entries {
		keys[e.Identity()] = true
	}
	if p.RemoveMulligan {
		keys[IdentityKey{AccountNumber: p.AccountNumber, Round: p.Round, IsMulligan: true}] = true
	}
	return keys
}
