package redis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tannerhall/floorman/internal/model"
)

// Key prefix for all floor-related data
const keyPrefix = "floorman"

// playersKey returns the Redis key holding an event's player directory
func playersKey(eventName string) string {
	return fmt.Sprintf("%s:event:%s:players", keyPrefix, eventName)
}

// registrationsKey returns the Redis key holding an event's registration ledger
func registrationsKey(eventName string) string {
	return fmt.Sprintf("%s:event:%s:registrations", keyPrefix, eventName)
}

// tournamentKey returns the Redis key for a tournament's cost config
func tournamentKey(name string) string {
	return fmt.Sprintf("%s:tournament:%s", keyPrefix, name)
}

// disabledTablesKey returns the Redis key for an event's disabled-table hash
func disabledTablesKey(eventName string) string {
	return fmt.Sprintf("%s:event:%s:disabled_tables", keyPrefix, eventName)
}

// tableField serializes the per-event portion of a TableKey into a hash
// field. The structured key stays the source of truth; this is wire format
// only.
func tableField(key model.TableKey) string {
	return fmt.Sprintf("%s:%d:%d", key.Round, key.TimeSlot, key.Table)
}

// parseTableField reverses tableField
func parseTableField(eventName, field string) (model.TableKey, error) {
	parts := strings.Split(field, ":")
	if len(parts) != 3 {
		return model.TableKey{}, fmt.Errorf("malformed table field %q", field)
	}
	round, err := model.ParseRound(parts[0])
	if err != nil {
		return model.TableKey{}, err
	}
	timeSlot, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.TableKey{}, fmt.Errorf("malformed time slot in %q", field)
	}
	table, err := strconv.Atoi(parts[2])
	if err != nil {
		return model.TableKey{}, fmt.Errorf("malformed table number in %q", field)
	}
	return model.TableKey{
		EventName: eventName,
		Round:     round,
		TimeSlot:  timeSlot,
		Table:     table,
	}, nil
}
