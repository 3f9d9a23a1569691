package model

import (
	"strings"
	"time"
)

// AccountNumber is a player's 14-digit card account number. It is the
// canonical key for a player within an event; always compare normalized
// values (see NormalizeAccount).
type AccountNumber string

// AccountNumberLength is the required number of digits in an account number.
const AccountNumberLength = 14

// EntryType describes how a player's tournament entry is funded
type EntryType string

const (
	EntryTypePay  EntryType = "PAY"
	EntryTypeComp EntryType = "COMP"
)

// Player is a directory entry for an enrolled player
type Player struct {
	AccountNumber AccountNumber
	FirstName     string
	LastName      string
	EntryType     EntryType
	Host          string
	CreatedAt     time.Time
}

// FullName returns the player's display name
func (p *Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// NormalizeAccount strips non-digit separators from a raw account number and
// left-pads with zeros to the canonical 14-character form. It distinguishes
// non-numeric input from wrong-length input so callers can surface the right
// message.
func NormalizeAccount(raw string) (AccountNumber, error) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			// Separators are tolerated and stripped
		default:
			return "", ErrAccountNotNumeric
		}
	}

	digits := b.String()
	if digits == "" || len(digits) > AccountNumberLength {
		return "", ErrAccountLength
	}

	return AccountNumber(strings.Repeat("0", AccountNumberLength-len(digits)) + digits), nil
}
