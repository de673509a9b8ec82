package queries

import (
	"context"
	"time"

	"ticketboss/internal/infra"
	"ticketboss/internal/pkg/clock"
	"ticketboss/internal/pkg/errs"
)

var ErrEventNotFound = errs.New("event not found")

// EventSummary is the read model for the summary endpoint: the inventory row
// plus a live count of confirmed reservations. It may trail an in-flight
// mutation; readers detect change through version, not through locking.
type EventSummary struct {
	EventID          string
	Name             string
	TotalSeats       int32
	AvailableSeats   int32
	ReservationCount int64
	Version          int32
}

type HealthStatus struct {
	Healthy   bool
	Database  string
	CheckedAt time.Time
}

type EventReadStore interface {
	Summary(ctx context.Context, eventID string) (*EventSummary, error)
	Ping(ctx context.Context) error
}

type EventQueries interface {
	GetSummary(ctx context.Context, eventID string) (*EventSummary, error)
	CheckHealth(ctx context.Context) HealthStatus
}

type eventQueriesImpl struct {
	readStore EventReadStore
	clock     clock.Clock
}

func NewEventQueries(readStore EventReadStore, clock clock.Clock) EventQueries {
	return &eventQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *eventQueriesImpl) GetSummary(ctx context.Context, eventID string) (*EventSummary, error) {
	summary, err := q.readStore.Summary(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, err
	}
	return summary, nil
}

func (q *eventQueriesImpl) CheckHealth(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Database:  "connected",
		Healthy:   true,
		CheckedAt: q.clock.Now(),
	}
	if err := q.readStore.Ping(ctx); err != nil {
		status.Healthy = false
		status.Database = "disconnected"
	}
	return status
}
