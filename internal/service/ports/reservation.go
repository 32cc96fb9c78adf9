package ports

import (
	"context"
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	Update(ctx context.Context, r *domain.Reservation) error
	Cancel(ctx context.Context, id string, at time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	ListBySpace(ctx context.Context, spaceID string) ([]*domain.Reservation, error)
	FindOverlapping(ctx context.Context, spaceID string, start, end time.Time, excludeID string) ([]*domain.Reservation, error)
	MarkUpcomingReminded(ctx context.Context, within time.Duration) ([]*domain.Reservation, error)
}
