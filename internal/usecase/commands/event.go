package commands

import (
	"context"

	"ticketboss/internal/domain/inventory"
	"ticketboss/internal/infra"
	"ticketboss/internal/infra/db"
	"ticketboss/internal/pkg/config"
	"ticketboss/internal/pkg/errs"
	"ticketboss/internal/usecase/shared"
)

type BootstrapResult struct {
	EventID        string
	Name           string
	TotalSeats     int32
	AvailableSeats int32
	Version        int32
}

type EventCommands interface {
	// Bootstrap resets the event to fully available and wipes its
	// reservation history. Destructive; meant for operational reset.
	Bootstrap(ctx context.Context, eventID string) (*BootstrapResult, error)
}

type eventCommandsImpl struct {
	uow             shared.UnitOfWork
	eventRepo       shared.EventRepository
	reservationRepo shared.ReservationRepository
	eventCfg        config.EventConfig
}

func NewEventCommands(
	uow shared.UnitOfWork,
	eventRepo shared.EventRepository,
	reservationRepo shared.ReservationRepository,
	cfg config.Config,
) EventCommands {
	return &eventCommandsImpl{
		uow:             uow,
		eventRepo:       eventRepo,
		reservationRepo: reservationRepo,
		eventCfg:        cfg.Event,
	}
}

func (e *eventCommandsImpl) Bootstrap(ctx context.Context, eventID string) (*BootstrapResult, error) {
	var inv *inventory.EventInventory
	err := e.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		// Seeding makes bootstrap usable against an empty database; the
		// configured event is the only row it will ever create.
		if eventID == e.eventCfg.ID {
			if err := e.eventRepo.Seed(ctx, tx, e.eventCfg.ID, e.eventCfg.Name, e.eventCfg.TotalSeats); err != nil {
				return err
			}
		}

		if err := e.reservationRepo.DeleteByEvent(ctx, tx, eventID); err != nil {
			return err
		}

		var err error
		inv, err = e.eventRepo.Reset(ctx, tx, eventID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return &BootstrapResult{
		EventID:        inv.EventID(),
		Name:           inv.Name(),
		TotalSeats:     inv.TotalSeats(),
		AvailableSeats: inv.AvailableSeats(),
		Version:        inv.Version(),
	}, nil
}
