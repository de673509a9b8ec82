package api

import (
	"errors"
	"net/http"

	reqdto "ticketboss/internal/handler/dto/request"
	resdto "ticketboss/internal/handler/dto/response"
	"ticketboss/internal/handler/httperr"
	"ticketboss/internal/pkg/config"
	"ticketboss/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	eventCfg            config.EventConfig
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, cfg config.Config) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		eventCfg:            cfg.Event,
	}
}

// @Summary Reserve seats
// @Description Reserve between 1 and 10 seats for a partner
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields: partnerId and seats", nil)
		return
	}

	result, err := h.reservationCommands.Create(c.Request.Context(), h.eventCfg.ID, req.PartnerID, req.Seats)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Seats must be between 1 and 10", nil)
		case errors.Is(err, commands.ErrEventNotFound):
			// Missing event row is a deployment fault, not caller error
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Event not found", nil)
		case errors.Is(err, commands.ErrInsufficientSeats):
			httperr.AbortWithError(c, http.StatusConflict, err, "Not enough seats left", nil)
		case errors.Is(err, commands.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to create reservation, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateReservationResult(result))
}

// @Summary Cancel reservation
// @Description Cancel a confirmed reservation and return its seats to the pool
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, commands.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already cancelled", nil)
		case errors.Is(err, commands.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to cancel reservation, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
