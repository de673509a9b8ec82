package request

type CreateReservationRequest struct {
	PartnerID string `json:"partnerId" binding:"required"`
	Seats     int32  `json:"seats" binding:"required"`
}
