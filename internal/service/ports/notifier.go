package ports

import (
	"context"

	"github.com/coworkly/SpaceBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, d *domain.ReservationDetails)
	NotifyReservationCancelled(ctx context.Context, d *domain.ReservationDetails)
	NotifyReservationUpcoming(ctx context.Context, d *domain.ReservationDetails)
}
