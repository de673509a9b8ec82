package repository

import (
	"context"
	"time"

	"ticketboss/internal/domain/reservation"
	"ticketboss/internal/infra"
	"ticketboss/internal/infra/db"
	"ticketboss/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() shared.ReservationRepository {
	return &ReservationRepository{}
}

const createReservationSQL = `
INSERT INTO reservations (reservation_id, event_id, partner_id, seats, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	_, err := tx.Exec(ctx, createReservationSQL,
		res.ID(),
		res.EventID(),
		res.PartnerID().String(),
		res.Seats().Value(),
		res.Status().String(),
		res.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

const findReservationByIDSQL = `
SELECT reservation_id, event_id, partner_id, seats, status, created_at, cancelled_at
FROM reservations
WHERE reservation_id = $1`

func (r *ReservationRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	var snap shared.ReservationSnapshot
	err := tx.QueryRow(ctx, findReservationByIDSQL, id).Scan(
		&snap.ID,
		&snap.EventID,
		&snap.PartnerID,
		&snap.Seats,
		&snap.Status,
		&snap.CreatedAt,
		&snap.CancelledAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &snap, nil
}

const markCancelledSQL = `
UPDATE reservations
SET status = $2, cancelled_at = $3
WHERE reservation_id = $1 AND status = $4`

// MarkCancelled is conditional on the current status so that two cancels
// racing through the event lock cannot both restore seats.
func (r *ReservationRepository) MarkCancelled(ctx context.Context, tx db.DBTX, id uuid.UUID, cancelledAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, markCancelledSQL,
		id,
		reservation.StatusCancelled.String(),
		cancelledAt,
		reservation.StatusConfirmed.String(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark reservation cancelled", err)
	}
	return tag.RowsAffected(), nil
}

const deleteByEventSQL = `
DELETE FROM reservations
WHERE event_id = $1`

func (r *ReservationRepository) DeleteByEvent(ctx context.Context, tx db.DBTX, eventID string) error {
	if _, err := tx.Exec(ctx, deleteByEventSQL, eventID); err != nil {
		return infra.WrapRepoErr("failed to purge reservations for event", err)
	}
	return nil
}
