package model

// Floor layout constants. Every round runs six six-seat tables per time slot.
const (
	NumTables = 6
	NumSeats  = 6

	// SemifinalClosedTable is permanently closed during the semifinal round
	SemifinalClosedTable = 6
)

// TableKey identifies a single table within a round's time slot. Disabled
// flags are stored against this composite key so that disabling a table in
// one time slot never affects another.
type TableKey struct {
	EventName string
	Round     Round
	TimeSlot  int
	Table     int
}
