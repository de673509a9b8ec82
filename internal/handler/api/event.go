package api

import (
	"errors"
	"net/http"

	resdto "ticketboss/internal/handler/dto/response"
	"ticketboss/internal/handler/httperr"
	"ticketboss/internal/pkg/config"
	"ticketboss/internal/usecase/commands"
	"ticketboss/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventCommands commands.EventCommands
	eventQueries  queries.EventQueries
	eventCfg      config.EventConfig
}

func NewEventHandler(eventCommands commands.EventCommands, eventQueries queries.EventQueries, cfg config.Config) *EventHandler {
	return &EventHandler{
		eventCommands: eventCommands,
		eventQueries:  eventQueries,
		eventCfg:      cfg.Event,
	}
}

// @Summary Bootstrap event
// @Description Reset the event to fully available and purge all reservations
// @Tags events
// @Produce json
// @Success 201 {object} resdto.BootstrapResponse
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /events/bootstrap [post]
func (h *EventHandler) Bootstrap(c *gin.Context) {
	result, err := h.eventCommands.Bootstrap(c.Request.Context(), h.eventCfg.ID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to initialize event, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to initialize event", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBootstrapResult(result))
}

// @Summary Event summary
// @Description Current inventory state plus the live confirmed reservation count
// @Tags events
// @Produce json
// @Success 200 {object} resdto.EventSummaryResponse
// @Failure 500 {object} httperr.Response
// @Router /reservations [get]
func (h *EventHandler) Summary(c *gin.Context) {
	summary, err := h.eventQueries.GetSummary(c.Request.Context(), h.eventCfg.ID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Event not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get event summary", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventSummary(summary))
}
