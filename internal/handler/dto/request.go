package dto

type CreateReservationRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	SpaceID   string `json:"space_id" binding:"required,uuid"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Notes     string `json:"notes"`
}

// UpdateReservationRequest carries the same fields as create: an update
// overwrites the booked fields wholesale.
type UpdateReservationRequest = CreateReservationRequest
