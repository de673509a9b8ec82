// Package inventory models the per-event seat pool: a capacity, a live
// available count and a monotonic version. All mutations go through the
// entity so the 0 <= available <= total invariant holds everywhere.
package inventory

import (
	"errors"
	"time"
)

var (
	ErrInsufficientSeats = errors.New("not enough seats available")
	ErrInvalidSeatDelta  = errors.New("seat delta must be positive")
	ErrCapacityExceeded  = errors.New("available seats would exceed capacity")
	ErrCorruptInventory  = errors.New("inventory state violates capacity bounds")
)

type EventInventory struct {
	eventID        string
	name           string
	totalSeats     int32
	availableSeats int32
	version        int32
	updatedAt      time.Time
}

func ReconstructEventInventory(eventID, name string, totalSeats, availableSeats, version int32, updatedAt time.Time) (*EventInventory, error) {
	if availableSeats < 0 || availableSeats > totalSeats {
		return nil, ErrCorruptInventory
	}
	return &EventInventory{
		eventID:        eventID,
		name:           name,
		totalSeats:     totalSeats,
		availableSeats: availableSeats,
		version:        version,
		updatedAt:      updatedAt,
	}, nil
}

// Reserve takes seats out of the pool and bumps the version.
// Callers must hold the row lock for this event while applying the result.
func (e *EventInventory) Reserve(seats int32) error {
	if seats <= 0 {
		return ErrInvalidSeatDelta
	}
	if e.availableSeats < seats {
		return ErrInsufficientSeats
	}
	e.availableSeats -= seats
	e.version++
	return nil
}

// Release returns previously reserved seats to the pool. Seats returned can
// never exceed capacity as long as Reserve enforced availability at creation,
// so exceeding totalSeats here means the ledger and the pool disagree.
func (e *EventInventory) Release(seats int32) error {
	if seats <= 0 {
		return ErrInvalidSeatDelta
	}
	if e.availableSeats+seats > e.totalSeats {
		return ErrCapacityExceeded
	}
	e.availableSeats += seats
	e.version++
	return nil
}

func (e *EventInventory) EventID() string       { return e.eventID }
func (e *EventInventory) Name() string          { return e.name }
func (e *EventInventory) TotalSeats() int32     { return e.totalSeats }
func (e *EventInventory) AvailableSeats() int32 { return e.availableSeats }
func (e *EventInventory) Version() int32        { return e.version }
func (e *EventInventory) UpdatedAt() time.Time  { return e.updatedAt }
