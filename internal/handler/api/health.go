package api

import (
	"net/http"

	resdto "ticketboss/internal/handler/dto/response"
	"ticketboss/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	eventQueries queries.EventQueries
}

func NewHealthHandler(eventQueries queries.EventQueries) *HealthHandler {
	return &HealthHandler{eventQueries: eventQueries}
}

// @Summary Health check
// @Description Check service and store reachability
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Failure 503 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status := h.eventQueries.CheckHealth(c.Request.Context())

	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resdto.FromHealthStatus(status))
}
