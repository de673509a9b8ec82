package response

import (
	"ticketboss/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Seats         int32     `json:"seats"`
	Status        string    `json:"status"`
}

func FromCreateReservationResult(result *commands.CreateReservationResult) *ReservationResponse {
	return &ReservationResponse{
		ReservationID: result.ReservationID,
		Seats:         result.Seats,
		Status:        result.Status,
	}
}
