package response

import (
	"time"

	"ticketboss/internal/usecase/commands"
	"ticketboss/internal/usecase/queries"
)

type EventSnapshotResponse struct {
	EventID        string `json:"eventId"`
	Name           string `json:"name"`
	TotalSeats     int32  `json:"totalSeats"`
	AvailableSeats int32  `json:"availableSeats"`
	Version        int32  `json:"version"`
}

type BootstrapResponse struct {
	Message string                `json:"message"`
	Event   EventSnapshotResponse `json:"event"`
}

type EventSummaryResponse struct {
	EventID          string `json:"eventId"`
	Name             string `json:"name"`
	TotalSeats       int32  `json:"totalSeats"`
	AvailableSeats   int32  `json:"availableSeats"`
	ReservationCount int64  `json:"reservationCount"`
	Version          int32  `json:"version"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

func FromBootstrapResult(result *commands.BootstrapResult) *BootstrapResponse {
	return &BootstrapResponse{
		Message: "Event initialized successfully",
		Event: EventSnapshotResponse{
			EventID:        result.EventID,
			Name:           result.Name,
			TotalSeats:     result.TotalSeats,
			AvailableSeats: result.AvailableSeats,
			Version:        result.Version,
		},
	}
}

func FromEventSummary(summary *queries.EventSummary) *EventSummaryResponse {
	return &EventSummaryResponse{
		EventID:          summary.EventID,
		Name:             summary.Name,
		TotalSeats:       summary.TotalSeats,
		AvailableSeats:   summary.AvailableSeats,
		ReservationCount: summary.ReservationCount,
		Version:          summary.Version,
	}
}

func FromHealthStatus(status queries.HealthStatus) *HealthResponse {
	s := "healthy"
	if !status.Healthy {
		s = "unhealthy"
	}
	return &HealthResponse{
		Status:    s,
		Database:  status.Database,
		Timestamp: status.CheckedAt,
	}
}
