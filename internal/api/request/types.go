package request

// Payment is the payment portion of a registration submission
type Payment struct {
	Type        string `json:"type,omitempty"`
	Amount      int    `json:"amount,omitempty"`
	SplitType   string `json:"split_type,omitempty"`
	SplitAmount int    `json:"split_amount,omitempty"`
}

// NewPlayerRequest is the request body for enrolling a new player
type NewPlayerRequest struct {
	AccountNumber string `json:"account_number"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EntryType     string `json:"entry_type,omitempty"`
	Host          string `json:"host,omitempty"`

	// Registration, when present, stages a round 1 registration as part of
	// the same call
	Registration *NewPlayerRegistration `json:"registration,omitempty"`
}

// NewPlayerRegistration is the registration portion of a new player request
type NewPlayerRegistration struct {
	TimeSlot int      `json:"time_slot"`
	Payment  Payment  `json:"payment"`
	Mulligan *Payment `json:"mulligan,omitempty"`
	Comment  string   `json:"comment,omitempty"`
	Employee string   `json:"employee,omitempty"`
}

// ReplacePlayersRequest is the request body for a bulk directory import
type ReplacePlayersRequest struct {
	Players []ImportPlayer `json:"players"`
}

// ImportPlayer is one row of a bulk directory import
type ImportPlayer struct {
	AccountNumber string `json:"account_number"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EntryType     string `json:"entry_type,omitempty"`
	Host          string `json:"host,omitempty"`
}

// SearchRequest is the request body for a player search
type SearchRequest struct {
	AccountNumber string `json:"account_number"`
	Round         string `json:"round"`
}

// SubmitRequest is the request body for submitting a registration
type SubmitRequest struct {
	AccountNumber string   `json:"account_number"`
	Round         string   `json:"round"`
	TimeSlot      int      `json:"time_slot"`
	Payment       Payment  `json:"payment"`
	Mulligan      *Payment `json:"mulligan,omitempty"`
	Update        bool     `json:"update,omitempty"`
	Host          string   `json:"host,omitempty"`
	Comment       string   `json:"comment,omitempty"`
	Employee      string   `json:"employee,omitempty"`
}

// RandomSeatRequest is the request body for a random seat assignment
type RandomSeatRequest struct {
	Preferences []int `json:"preferences,omitempty"`
}

// SelectSeatRequest is the request body for a manual seat selection
type SelectSeatRequest struct {
	Table int `json:"table"`
	Seat  int `json:"seat"`
}

// ConflictTableRequest is the request body for marking or clearing a
// conflict table
type ConflictTableRequest struct {
	Table int  `json:"table"`
	Clear bool `json:"clear,omitempty"`
}

// ToggleTableRequest is the request body for toggling table availability
type ToggleTableRequest struct {
	Round    string `json:"round"`
	TimeSlot int    `json:"time_slot"`
	Table    int    `json:"table"`
}

// SaveTournamentRequest is the request body for saving tournament costs
type SaveTournamentRequest struct {
	EntryCost    int `json:"entry_cost"`
	RebuyCost    int `json:"rebuy_cost"`
	MulliganCost int `json:"mulligan_cost"`
}
