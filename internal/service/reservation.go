package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
	"github.com/coworkly/SpaceBooker/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

// Placeholder names used when best-effort enrichment cannot resolve a
// referenced entity.
const (
	unknownUserName  = "Unknown User"
	unknownSpaceName = "Unknown Space"
)

// ReservationService orchestrates the reservation workflow: it resolves the
// referenced user and space in the external directories, validates the
// proposed window against the space's operating hours, runs conflict
// detection against existing reservations and only then writes.
//
// Update is status-agnostic: it overwrites the booked fields of any
// reservation, cancelled or not, and leaves status untouched. Cancelling is
// the only modeled status transition and is terminal.
type ReservationService struct {
	repo     ports.ReservationRepo
	users    ports.UserDirectory
	spaces   ports.SpaceDirectory
	notifier ports.ReservationNotifier
	logger   logger.Logger
}

func NewReservationService(
	repo ports.ReservationRepo,
	users ports.UserDirectory,
	spaces ports.SpaceDirectory,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:     repo,
		users:    users,
		spaces:   spaces,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, input domain.ReservationInput) (*domain.ReservationDetails, error) {
	user, space, err := s.resolve(ctx, input.UserID, input.SpaceID)
	if err != nil {
		return nil, err
	}

	if err = domain.ValidateWindow(input.StartTime, input.EndTime, space); err != nil {
		return nil, err
	}

	if err = s.checkConflicts(ctx, input.SpaceID, input.StartTime, input.EndTime, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res := &domain.Reservation{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		SpaceID:   input.SpaceID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    domain.ReservationStatusPending,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("user_id", res.UserID),
		logger.String("space_id", res.SpaceID),
	)

	details := &domain.ReservationDetails{Reservation: *res, UserName: user.Name, SpaceName: space.Name}

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), details)

	return details, nil
}

func (s *ReservationService) Update(ctx context.Context, id string, input domain.ReservationInput) (*domain.ReservationDetails, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	user, space, err := s.resolve(ctx, input.UserID, input.SpaceID)
	if err != nil {
		return nil, err
	}

	if err = domain.ValidateWindow(input.StartTime, input.EndTime, space); err != nil {
		return nil, err
	}

	// The reservation must not conflict with itself.
	if err = s.checkConflicts(ctx, input.SpaceID, input.StartTime, input.EndTime, id); err != nil {
		return nil, err
	}

	res.UserID = input.UserID
	res.SpaceID = input.SpaceID
	res.StartTime = input.StartTime
	res.EndTime = input.EndTime
	res.Notes = input.Notes
	res.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, res); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("reservation updated",
		logger.String("reservation_id", res.ID),
		logger.String("space_id", res.SpaceID),
	)

	return &domain.ReservationDetails{Reservation: *res, UserName: user.Name, SpaceName: space.Name}, nil
}

// Cancel marks a reservation cancelled. Cancelling an already-cancelled
// reservation re-applies the same state and succeeds.
func (s *ReservationService) Cancel(ctx context.Context, id string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	now := time.Now().UTC()
	if err = s.repo.Cancel(ctx, id, now); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	res.Status = domain.ReservationStatusCancelled
	res.UpdatedAt = now

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", res.ID),
		logger.String("space_id", res.SpaceID),
	)

	go func(ctx context.Context) {
		s.notifier.NotifyReservationCancelled(ctx, s.enrich(ctx, res))
	}(context.WithoutCancel(ctx))

	return nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.ReservationDetails, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return s.enrich(ctx, res), nil
}

func (s *ReservationService) List(ctx context.Context) ([]*domain.ReservationDetails, error) {
	reservations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return s.enrichAll(ctx, reservations), nil
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.ReservationDetails, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	reservations, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}

	return s.enrichAll(ctx, reservations), nil
}

func (s *ReservationService) ListBySpace(ctx context.Context, spaceID string) ([]*domain.ReservationDetails, error) {
	if _, err := s.spaces.Get(ctx, spaceID); err != nil {
		return nil, fmt.Errorf("check space: %w", err)
	}

	reservations, err := s.repo.ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by space: %w", err)
	}

	return s.enrichAll(ctx, reservations), nil
}

// RemindUpcoming flags pending reservations starting within the window and
// notifies about each one.
func (s *ReservationService) RemindUpcoming(ctx context.Context, within time.Duration) ([]*domain.Reservation, error) {
	upcoming, err := s.repo.MarkUpcomingReminded(ctx, within)
	if err != nil {
		return nil, fmt.Errorf("mark upcoming reminded: %w", err)
	}

	if len(upcoming) > 0 {
		s.logger.Info("upcoming reservations flagged for reminder",
			logger.Int("count", len(upcoming)),
		)

		go s.notifyUpcoming(context.WithoutCancel(ctx), upcoming)
	}

	return upcoming, nil
}

func (s *ReservationService) notifyUpcoming(ctx context.Context, reservations []*domain.Reservation) {
	for _, res := range reservations {
		s.notifier.NotifyReservationUpcoming(ctx, s.enrich(ctx, res))
	}
}

// resolve looks up the referenced user and space in strict mode. The lookups
// are independent and run concurrently; both must succeed before validation.
func (s *ReservationService) resolve(ctx context.Context, userID, spaceID string) (*domain.User, *domain.Space, error) {
	var (
		user  *domain.User
		space *domain.Space
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.users.Get(gctx, userID)
		if err != nil {
			return fmt.Errorf("check user: %w", err)
		}
		user = u
		return nil
	})
	g.Go(func() error {
		sp, err := s.spaces.Get(gctx, spaceID)
		if err != nil {
			return fmt.Errorf("check space: %w", err)
		}
		space = sp
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return user, space, nil
}

func (s *ReservationService) checkConflicts(ctx context.Context, spaceID string, start, end time.Time, excludeID string) error {
	candidates, err := s.repo.FindOverlapping(ctx, spaceID, start, end, excludeID)
	if err != nil {
		return fmt.Errorf("find overlapping: %w", err)
	}

	for _, other := range candidates {
		if domain.Overlaps(start, end, other.StartTime, other.EndTime) {
			return domain.ErrReservationConflict
		}
	}

	return nil
}

// enrich resolves display names in best-effort mode: a missing or unreachable
// directory entry degrades to a placeholder name and never fails the read.
func (s *ReservationService) enrich(ctx context.Context, res *domain.Reservation) *domain.ReservationDetails {
	details := &domain.ReservationDetails{
		Reservation: *res,
		UserName:    unknownUserName,
		SpaceName:   unknownSpaceName,
	}

	if user, err := s.users.Get(ctx, res.UserID); err == nil {
		details.UserName = user.Name
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Warn("user enrichment degraded",
			logger.String("user_id", res.UserID),
			logger.String("error", err.Error()),
		)
	}

	if space, err := s.spaces.Get(ctx, res.SpaceID); err == nil {
		details.SpaceName = space.Name
	} else if !errors.Is(err, domain.ErrSpaceNotFound) {
		s.logger.Warn("space enrichment degraded",
			logger.String("space_id", res.SpaceID),
			logger.String("error", err.Error()),
		)
	}

	return details
}

func (s *ReservationService) enrichAll(ctx context.Context, reservations []*domain.Reservation) []*domain.ReservationDetails {
	details := make([]*domain.ReservationDetails, 0, len(reservations))
	for _, res := range reservations {
		details = append(details, s.enrich(ctx, res))
	}

	return details
}
