package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSeatCount = errors.New("seat count out of range")
	ErrEmptyPartnerID   = errors.New("partner id is empty")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrInvalidStatus    = errors.New("invalid reservation status")
)

type Reservation struct {
	id          uuid.UUID
	eventID     string
	partnerID   PartnerID
	seats       SeatCount
	status      Status
	createdAt   time.Time
	cancelledAt *time.Time
}

// NewReservation mints a confirmed reservation. The random UUID is the
// system-wide uniqueness guarantee; the ledger has no extra constraint on it.
func NewReservation(eventID string, partnerID PartnerID, seats SeatCount, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		eventID:   eventID,
		partnerID: partnerID,
		seats:     seats,
		status:    StatusConfirmed,
		createdAt: now,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	eventID string,
	partnerID PartnerID,
	seats SeatCount,
	status Status,
	createdAt time.Time,
	cancelledAt *time.Time,
) (*Reservation, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:          id,
		eventID:     eventID,
		partnerID:   partnerID,
		seats:       seats,
		status:      status,
		createdAt:   createdAt,
		cancelledAt: cancelledAt,
	}, nil
}

// Cancel is the only state transition a reservation has, and it is one-way.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	t := now
	r.cancelledAt = &t
	return nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) EventID() string         { return r.eventID }
func (r *Reservation) PartnerID() PartnerID    { return r.partnerID }
func (r *Reservation) Seats() SeatCount        { return r.seats }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) CancelledAt() *time.Time { return r.cancelledAt }
