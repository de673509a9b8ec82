//go:build unit || e2e

// Package dbtest resets database state between scenarios.
package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetEvent wipes the reservation ledger and restores the event to a fresh
// pool of the given size. Version goes back to zero so scenarios can assert
// exact version progressions.
func ResetEvent(pool *pgxpool.Pool, eventID string, totalSeats int32) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, `DELETE FROM reservations WHERE event_id = $1`, eventID); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, `
		UPDATE events
		SET total_seats = $2, available_seats = $2, version = 0, updated_at = CURRENT_TIMESTAMP
		WHERE event_id = $1`, eventID, totalSeats)
	return err
}

// CountReservations returns the number of ledger rows in the given status.
func CountReservations(pool *pgxpool.Pool, eventID, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var count int64
	err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE event_id = $1 AND status = $2`,
		eventID, status,
	).Scan(&count)
	return count, err
}
