package shared

import (
	"context"
	"time"

	"ticketboss/internal/domain/inventory"
	"ticketboss/internal/domain/reservation"
	"ticketboss/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: single atomic read-check-mutate unit with retry on
	// serialization failures; everything inside commits or nothing does.
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

// EventRepository is the write side of the inventory store. FindForUpdate
// takes the event row lock that serializes every Create/Cancel on the event.
type EventRepository interface {
	FindForUpdate(ctx context.Context, tx db.DBTX, eventID string) (*inventory.EventInventory, error)
	Save(ctx context.Context, tx db.DBTX, inv *inventory.EventInventory) error
	Reset(ctx context.Context, tx db.DBTX, eventID string) (*inventory.EventInventory, error)
	Seed(ctx context.Context, tx db.DBTX, eventID, name string, totalSeats int32) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*ReservationSnapshot, error)
	// MarkCancelled flips status to cancelled only when still confirmed and
	// reports how many rows changed, so a lost cancel race surfaces as 0.
	MarkCancelled(ctx context.Context, tx db.DBTX, id uuid.UUID, cancelledAt time.Time) (int64, error)
	DeleteByEvent(ctx context.Context, tx db.DBTX, eventID string) error
}

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID          uuid.UUID
	EventID     string
	PartnerID   string
	Seats       int32
	Status      string
	CreatedAt   time.Time
	CancelledAt *time.Time
}
