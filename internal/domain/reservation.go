package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	SpaceID    string            `json:"space_id"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time"`
	Status     ReservationStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	RemindedAt *time.Time        `json:"reminded_at,omitempty"`
}

// ReservationDetails is a reservation enriched with display names resolved
// from the user and space directories at read time.
type ReservationDetails struct {
	Reservation Reservation `json:"reservation"`
	UserName    string      `json:"user_name"`
	SpaceName   string      `json:"space_name"`
}

type ReservationInput struct {
	UserID    string
	SpaceID   string
	StartTime time.Time
	EndTime   time.Time
	Notes     string
}
