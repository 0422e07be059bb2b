package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidKey reports a malformed or out-of-range slot key encoding.
// A malformed key must never silently coerce into a different key.
var ErrInvalidKey = errors.New("invalid slot key")

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// SlotKey identifies one reservable cell: a room on a date at a slot index.
// At most one live booking may exist per key.
type SlotKey struct {
	Room int
	Date string // DateLayout
	Slot int
}

// String returns the flattened "{room}_{date}_{slot}" encoding used at the
// API boundary.
func (k SlotKey) String() string {
	return fmt.Sprintf("%d_%s_%d", k.Room, k.Date, k.Slot)
}

// Schedule describes the fixed daily grid: rooms are numbered 1..Rooms and
// each day has SlotsPerDay discrete, non-overlapping slots indexed from 0.
type Schedule struct {
	Rooms       int
	SlotsPerDay int
}

// DefaultSchedule matches the original facility: 3 rooms, 8 one-hour slots.
var DefaultSchedule = Schedule{Rooms: 3, SlotsPerDay: 8}

// DefaultSlotLabels are the display labels for DefaultSchedule's slots, in
// slot-index order.
var DefaultSlotLabels = []string{
	"7AM-8AM", "8AM-9AM", "9AM-10AM", "10AM-11AM",
	"12PM-1PM", "2PM-3PM", "3PM-4PM", "4PM-5PM",
}

// SlotLabels returns display labels for the schedule. Slots beyond the
// default label set fall back to a generic numbered label.
func (s Schedule) SlotLabels() []string {
	labels := make([]string, s.SlotsPerDay)
	for i := range labels {
		if i < len(DefaultSlotLabels) && s.SlotsPerDay == len(DefaultSlotLabels) {
			labels[i] = DefaultSlotLabels[i]
		} else {
			labels[i] = fmt.Sprintf("Slot %d", i)
		}
	}
	return labels
}

// ParseKey parses a flattened key back into its 3 typed fields and validates
// them against the schedule. Any malformed encoding (wrong field count,
// non-numeric room/slot, bad date, out-of-range index) fails with
// ErrInvalidKey.
func (s Schedule) ParseKey(raw string) (SlotKey, error) {
	parts := strings.Split(raw, "_")
	if len(parts) != 3 {
		return SlotKey{}, fmt.Errorf("%w: expected room_date_slot, got %q", ErrInvalidKey, raw)
	}

	room, err := strconv.Atoi(parts[0])
	if err != nil {
		return SlotKey{}, fmt.Errorf("%w: room %q is not numeric", ErrInvalidKey, parts[0])
	}
	if room < 1 || room > s.Rooms {
		return SlotKey{}, fmt.Errorf("%w: room %d out of range 1..%d", ErrInvalidKey, room, s.Rooms)
	}

	if _, err := time.Parse(DateLayout, parts[1]); err != nil {
		return SlotKey{}, fmt.Errorf("%w: date %q is not %s", ErrInvalidKey, parts[1], DateLayout)
	}

	slot, err := strconv.Atoi(parts[2])
	if err != nil {
		return SlotKey{}, fmt.Errorf("%w: slot %q is not numeric", ErrInvalidKey, parts[2])
	}
	if slot < 0 || slot >= s.SlotsPerDay {
		return SlotKey{}, fmt.Errorf("%w: slot %d out of range 0..%d", ErrInvalidKey, slot, s.SlotsPerDay-1)
	}

	return SlotKey{Room: room, Date: parts[1], Slot: slot}, nil
}

// Booking is a live exclusive reservation of one slot key by one user.
type Booking struct {
	ID        string
	UserID    string
	Key       SlotKey
	CreatedAt time.Time
}

// BookingView is the public projection of a booking used in listings. It
// deliberately carries the owner's display name and nothing else about them.
type BookingView struct {
	Key       SlotKey
	OwnerName string
}
