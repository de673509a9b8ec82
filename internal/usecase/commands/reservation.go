// Package commands holds the reservation coordinator: every write against an
// event's seat pool runs here as one transaction, serialized per event by the
// inventory row lock.
package commands

import (
	"context"
	"errors"

	"ticketboss/internal/domain/inventory"
	"ticketboss/internal/domain/reservation"
	"ticketboss/internal/infra"
	"ticketboss/internal/infra/db"
	"ticketboss/internal/pkg/clock"
	"ticketboss/internal/pkg/errs"
	"ticketboss/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrValidation          = errs.New("validation failed")
	ErrEventNotFound       = errs.New("event not found")
	ErrInsufficientSeats   = errs.New("not enough seats left")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrAlreadyCancelled    = errs.New("reservation already cancelled")
	ErrStoreUnavailable    = errs.New("store unavailable")
)

type CreateReservationResult struct {
	ReservationID uuid.UUID
	Seats         int32
	Status        string
}

type ReservationCommands interface {
	Create(ctx context.Context, eventID, partnerID string, seats int32) (*CreateReservationResult, error)
	Cancel(ctx context.Context, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow             shared.UnitOfWork
	eventRepo       shared.EventRepository
	reservationRepo shared.ReservationRepository
	clock           clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	eventRepo shared.EventRepository,
	reservationRepo shared.ReservationRepository,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:             uow,
		eventRepo:       eventRepo,
		reservationRepo: reservationRepo,
		clock:           clock,
	}
}

// Create checks availability and claims seats as one atomic unit.
// Validation happens before any store access.
func (r *reservationCommandsImpl) Create(ctx context.Context, eventID, partnerID string, seats int32) (*CreateReservationResult, error) {
	partner, err := reservation.NewPartnerID(partnerID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	seatCount, err := reservation.NewSeatCount(seats)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var created *reservation.Reservation
	err = r.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		inv, err := r.eventRepo.FindForUpdate(ctx, tx, eventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEventNotFound)
			}
			return err
		}

		if err := inv.Reserve(seatCount.Value()); err != nil {
			if errors.Is(err, inventory.ErrInsufficientSeats) {
				return errs.Mark(err, ErrInsufficientSeats)
			}
			return err
		}

		created = reservation.NewReservation(eventID, partner, seatCount, r.clock.Now())
		if err := r.reservationRepo.Create(ctx, tx, created); err != nil {
			return err
		}

		return r.eventRepo.Save(ctx, tx, inv)
	})
	if err != nil {
		return nil, r.asCommandError(err)
	}

	return &CreateReservationResult{
		ReservationID: created.ID(),
		Seats:         created.Seats().Value(),
		Status:        created.Status().String(),
	}, nil
}

// Cancel flips a reservation to cancelled and returns its seats, exactly
// once. The reservation row itself has no lock; the event row lock taken
// before the conditional status update serializes competing cancels.
func (r *reservationCommandsImpl) Cancel(ctx context.Context, reservationID uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		snap, err := r.reservationRepo.FindByID(ctx, tx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return err
		}
		if snap.Status == reservation.StatusCancelled.String() {
			return ErrAlreadyCancelled
		}

		inv, err := r.eventRepo.FindForUpdate(ctx, tx, snap.EventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEventNotFound)
			}
			return err
		}

		affected, err := r.reservationRepo.MarkCancelled(ctx, tx, reservationID, r.clock.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			// Another cancel won the event lock between our unlocked read
			// and this update.
			return ErrAlreadyCancelled
		}

		if err := inv.Release(snap.Seats); err != nil {
			return err
		}

		return r.eventRepo.Save(ctx, tx, inv)
	})
	if err != nil {
		return r.asCommandError(err)
	}
	return nil
}

// asCommandError passes business failures through untouched and folds
// everything else into the retryable store failure the caller sees.
func (r *reservationCommandsImpl) asCommandError(err error) error {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrInsufficientSeats),
		errors.Is(err, ErrReservationNotFound),
		errors.Is(err, ErrAlreadyCancelled):
		return err
	default:
		return errs.Mark(err, ErrStoreUnavailable)
	}
}
