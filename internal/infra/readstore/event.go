package readstore

import (
	"context"

	"ticketboss/internal/infra"
	"ticketboss/internal/infra/db"
	"ticketboss/internal/usecase/queries"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) queries.EventReadStore {
	return &EventReadStore{db: dbtx}
}

const eventSummarySQL = `
SELECT e.event_id,
       e.name,
       e.total_seats,
       e.available_seats,
       e.version,
       (SELECT COUNT(*)
          FROM reservations r
         WHERE r.event_id = e.event_id AND r.status = 'confirmed') AS reservation_count
FROM events e
WHERE e.event_id = $1`

// Summary reads without any lock; it may observe state mid-mutation, which
// is fine at read-committed.
func (r *EventReadStore) Summary(ctx context.Context, eventID string) (*queries.EventSummary, error) {
	var s queries.EventSummary
	err := r.db.QueryRow(ctx, eventSummarySQL, eventID).Scan(
		&s.EventID,
		&s.Name,
		&s.TotalSeats,
		&s.AvailableSeats,
		&s.Version,
		&s.ReservationCount,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read event summary", err)
	}
	return &s, nil
}

func (r *EventReadStore) Ping(ctx context.Context) error {
	var one int
	if err := r.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return infra.WrapRepoErr("store ping failed", err, infra.KindDBFailure)
	}
	return nil
}
