package model

import "fmt"

// Round is a named phase of the tournament. Each round has its own set of
// time slots and its own table layout.
type Round string

const (
	RoundOne           Round = "round1"
	RoundRebuyOne      Round = "rebuy1"
	RoundRebuyTwo      Round = "rebuy2"
	RoundTwo           Round = "round2"
	RoundSuperRebuy    Round = "superrebuy"
	RoundQuarterfinals Round = "quarterfinals"
	RoundSemifinals    Round = "semifinals"
)

// Rounds lists every round in play order
var Rounds = []Round{
	RoundOne,
	RoundRebuyOne,
	RoundRebuyTwo,
	RoundTwo,
	RoundSuperRebuy,
	RoundQuarterfinals,
	RoundSemifinals,
}

// ParseRound validates a round name
func ParseRound(s string) (Round, error) {
	for _, r := range Rounds {
		if Round(s) == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRound, s)
}

// IsRebuy reports whether registrations in this round are rebuys
func (r Round) IsRebuy() bool {
	return r == RoundRebuyOne || r == RoundRebuyTwo || r == RoundSuperRebuy
}

// RequiresRoundOne reports whether a player must already hold a round 1
// registration before entering this round
func (r Round) RequiresRoundOne() bool {
	return r != RoundOne
}
