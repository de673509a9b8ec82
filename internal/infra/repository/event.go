package repository

import (
	"context"
	"time"

	"ticketboss/internal/domain/inventory"
	"ticketboss/internal/infra"
	"ticketboss/internal/infra/db"
	"ticketboss/internal/usecase/shared"
)

type EventRepository struct{}

func NewEventRepository() shared.EventRepository {
	return &EventRepository{}
}

const findEventForUpdateSQL = `
SELECT event_id, name, total_seats, available_seats, version, updated_at
FROM events
WHERE event_id = $1
FOR UPDATE`

// FindForUpdate blocks concurrent writers on the same event until the
// surrounding transaction ends. Plain reads are not affected.
func (r *EventRepository) FindForUpdate(ctx context.Context, tx db.DBTX, eventID string) (*inventory.EventInventory, error) {
	var (
		id, name  string
		total     int32
		available int32
		version   int32
		updatedAt time.Time
	)
	err := tx.QueryRow(ctx, findEventForUpdateSQL, eventID).
		Scan(&id, &name, &total, &available, &version, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock event row", err)
	}

	inv, err := inventory.ReconstructEventInventory(id, name, total, available, version, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt event inventory row", err, infra.KindDBFailure)
	}
	return inv, nil
}

const saveEventSQL = `
UPDATE events
SET available_seats = $2, version = $3, updated_at = CURRENT_TIMESTAMP
WHERE event_id = $1`

func (r *EventRepository) Save(ctx context.Context, tx db.DBTX, inv *inventory.EventInventory) error {
	tag, err := tx.Exec(ctx, saveEventSQL, inv.EventID(), inv.AvailableSeats(), inv.Version())
	if err != nil {
		return infra.WrapRepoErr("failed to save event inventory", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event disappeared during save", nil, infra.KindNotFound)
	}
	return nil
}

const resetEventSQL = `
UPDATE events
SET available_seats = total_seats, version = 0, updated_at = CURRENT_TIMESTAMP
WHERE event_id = $1
RETURNING event_id, name, total_seats, available_seats, version, updated_at`

func (r *EventRepository) Reset(ctx context.Context, tx db.DBTX, eventID string) (*inventory.EventInventory, error) {
	var (
		id, name  string
		total     int32
		available int32
		version   int32
		updatedAt time.Time
	)
	err := tx.QueryRow(ctx, resetEventSQL, eventID).
		Scan(&id, &name, &total, &available, &version, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reset event", err)
	}

	inv, err := inventory.ReconstructEventInventory(id, name, total, available, version, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt event inventory row", err, infra.KindDBFailure)
	}
	return inv, nil
}

const seedEventSQL = `
INSERT INTO events (event_id, name, total_seats, available_seats, version)
VALUES ($1, $2, $3, $3, 0)
ON CONFLICT (event_id) DO NOTHING`

// Seed creates the event row when it is missing. Bootstrap is the only
// caller; steady-state operations treat a missing row as a configuration fault.
func (r *EventRepository) Seed(ctx context.Context, tx db.DBTX, eventID, name string, totalSeats int32) error {
	if _, err := tx.Exec(ctx, seedEventSQL, eventID, name, totalSeats); err != nil {
		return infra.WrapRepoErr("failed to seed event", err)
	}
	return nil
}
