package model

// Default costs for a tournament whose config has never been saved
const (
	DefaultEntryCost    = 500
	DefaultRebuyCost    = 500
	DefaultMulliganCost = 100
)

// Tournament is the per-event cost configuration
type Tournament struct {
	Name         string
	EntryCost    int
	RebuyCost    int
	MulliganCost int
}

// DefaultTournament returns a tournament with the standard cost schedule
func DefaultTournament(name string) *Tournament {
	return &Tournament{
		Name:         name,
		EntryCost:    DefaultEntryCost,
		RebuyCost:    DefaultRebuyCost,
		MulliganCost: DefaultMulliganCost,
	}
}

// CostFor returns the required payment total for a registration in the given
// round. Mulligans always cost the mulligan price regardless of round.
// Advancement rounds past round 1 that are not rebuys are check-ins and cost
// nothing.
func (t *Tournament) CostFor(round Round, isMulligan bool) int {
	switch {
	case isMulligan:
		return t.MulliganCost
	case round == RoundOne:
		return t.EntryCost
	case round.IsRebuy():
		return t.RebuyCost
	default:
		return 0
	}
}
