package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case NewPlayerResult:
		o.printNewPlayerResult(v)
	case SearchResult:
		o.printSearchResult(v)
	case Pending:
		o.printPending(v)
	case Seat:
		o.printSeat(v)
	case AvailableSeats:
		o.printAvailableSeats(v)
	case ConfirmResult:
		o.printConfirmResult(v)
	case []Registration:
		o.printRegistrations(v)
	case TablesStatus:
		o.printTablesStatus(v)
	case ToggleResult:
		o.printToggleResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	AccountNumber string    `json:"account_number"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	EntryType     string    `json:"entry_type"`
	Host          string    `json:"host,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Payment response type
type Payment struct {
	Type        string `json:"type,omitempty"`
	Amount      int    `json:"amount"`
	SplitType   string `json:"split_type,omitempty"`
	SplitAmount int    `json:"split_amount,omitempty"`
}

// Registration response type
type Registration struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"account_number"`
	FirstName     string    `json:"first_name,omitempty"`
	LastName      string    `json:"last_name,omitempty"`
	Round         string    `json:"round"`
	IsMulligan    bool      `json:"is_mulligan,omitempty"`
	EventType     string    `json:"event_type"`
	Payment       Payment   `json:"payment"`
	RegisteredAt  time.Time `json:"registered_at"`
	TimeSlot      *int      `json:"time_slot"`
	Table         *int      `json:"table"`
	Seat          *int      `json:"seat"`
}

// NewPlayerResult response type
type NewPlayerResult struct {
	Player  Player   `json:"player"`
	Pending *Pending `json:"pending,omitempty"`
}

// SearchResult response type
type SearchResult struct {
	Player           Player        `json:"player"`
	Existing         *Registration `json:"existing,omitempty"`
	ExistingMulligan *Registration `json:"existing_mulligan,omitempty"`
	Prefill          Payment       `json:"prefill"`
}

// Pending response type
type Pending struct {
	AccountNumber  string         `json:"account_number"`
	Round          string         `json:"round"`
	TimeSlot       int            `json:"time_slot"`
	Entries        []Registration `json:"entries"`
	RemoveMulligan bool           `json:"remove_mulligan,omitempty"`
}

// Seat response type
type Seat struct {
	Table int `json:"table"`
	Seat  int `json:"seat"`
}

// AvailableSeats response type
type AvailableSeats struct {
	Tables map[int][]int `json:"tables"`
}

// ConfirmResult response type
type ConfirmResult struct {
	Committed []Registration `json:"committed"`
}

// TablesStatus response type
type TablesStatus struct {
	Round    string       `json:"round"`
	TimeSlot int          `json:"time_slot"`
	Disabled map[int]bool `json:"disabled"`
}

// ToggleResult response type
type ToggleResult struct {
	Table    int  `json:"table"`
	Disabled bool `json:"disabled"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Account: %s\n", p.AccountNumber)
	fmt.Printf("Name: %s %s\n", p.FirstName, p.LastName)
	fmt.Printf("Entry Type: %s\n", p.EntryType)
	if p.Host != "" {
		fmt.Printf("Host: %s\n", p.Host)
	}
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  %s  %s %s (%s)\n", p.AccountNumber, p.FirstName, p.LastName, p.EntryType)
	}
}

func (o *Output) printNewPlayerResult(r NewPlayerResult) {
	o.printPlayer(r.Player)
	if r.Pending != nil {
		fmt.Println()
		o.printPending(*r.Pending)
	}
}

func (o *Output) printPayment(p Payment) string {
	if p.Type == "" {
		return "none"
	}
	s := fmt.Sprintf("%s $%d", p.Type, p.Amount)
	if p.SplitType != "" {
		s += fmt.Sprintf(" + %s $%d", p.SplitType, p.SplitAmount)
	}
	return s
}

func (o *Output) printSearchResult(r SearchResult) {
	o.printPlayer(r.Player)
	fmt.Printf("Prefill: %s\n", o.printPayment(r.Prefill))
	if r.Existing != nil {
		fmt.Printf("Existing: %s", r.Existing.EventType)
		if r.Existing.Table != nil && r.Existing.Seat != nil {
			fmt.Printf(" at table %d seat %d", *r.Existing.Table, *r.Existing.Seat)
		}
		fmt.Println()
	}
	if r.ExistingMulligan != nil {
		fmt.Println("Has mulligan: yes")
	}
}

func (o *Output) printPending(p Pending) {
	fmt.Printf("Pending: %s, %s, slot %d\n", p.AccountNumber, p.Round, p.TimeSlot)
	for _, e := range p.Entries {
		fmt.Printf("  - %s (%s)\n", e.EventType, o.printPayment(e.Payment))
	}
	if p.RemoveMulligan {
		fmt.Println("  - previous mulligan will be removed")
	}
	fmt.Println("Pick a seat to complete the registration.")
}

func (o *Output) printSeat(s Seat) {
	fmt.Printf("Table %d, seat %d\n", s.Table, s.Seat)
}

func (o *Output) printAvailableSeats(a AvailableSeats) {
	tables := make([]int, 0, len(a.Tables))
	for t := range a.Tables {
		tables = append(tables, t)
	}
	sort.Ints(tables)

	fmt.Println("Open seats:")
	for _, t := range tables {
		seats := make([]string, len(a.Tables[t]))
		for i, s := range a.Tables[t] {
			seats[i] = fmt.Sprintf("%d", s)
		}
		fmt.Printf("  Table %d: %s\n", t, strings.Join(seats, ", "))
	}
}

func (o *Output) printConfirmResult(c ConfirmResult) {
	fmt.Println("Registration committed:")
	o.printRegistrations(c.Committed)
}

func (o *Output) printRegistrations(regs []Registration) {
	for _, r := range regs {
		seat := "unseated"
		if r.Table != nil && r.Seat != nil && r.TimeSlot != nil {
			seat = fmt.Sprintf("slot %d, table %d, seat %d", *r.TimeSlot, *r.Table, *r.Seat)
		}
		fmt.Printf("  %s  %s %s  %s  %s  [%s]\n",
			r.AccountNumber, r.FirstName, r.LastName, r.Round, r.EventType, seat)
	}
}

func (o *Output) printTablesStatus(t TablesStatus) {
	fmt.Printf("Tables for %s, slot %d:\n", t.Round, t.TimeSlot)
	for table := 1; table <= 6; table++ {
		state := "open"
		if t.Disabled[table] {
			state = "closed"
		}
		fmt.Printf("  Table %d: %s\n", table, state)
	}
}

func (o *Output) printToggleResult(t ToggleResult) {
	state := "open"
	if t.Disabled {
		state = "closed"
	}
	fmt.Printf("Table %d is now %s\n", t.Table, state)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
