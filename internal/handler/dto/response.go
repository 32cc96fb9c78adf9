package dto

import (
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
)

type ReservationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	SpaceID   string `json:"space_id"`
	SpaceName string `json:"space_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReservationResponse(d *domain.ReservationDetails) ReservationResponse {
	r := d.Reservation
	return ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		UserName:  d.UserName,
		SpaceID:   r.SpaceID,
		SpaceName: d.SpaceName,
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Status:    string(r.Status),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponses(details []*domain.ReservationDetails) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, ToReservationResponse(d))
	}
	return resp
}
