package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
	"github.com/coworkly/SpaceBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixture struct {
	repo     *mocks.MockReservationRepo
	users    *mocks.MockUserDirectory
	spaces   *mocks.MockSpaceDirectory
	notifier *mocks.MockReservationNotifier
	svc      *ReservationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:     mocks.NewMockReservationRepo(t),
		users:    mocks.NewMockUserDirectory(t),
		spaces:   mocks.NewMockSpaceDirectory(t),
		notifier: mocks.NewMockReservationNotifier(t),
	}
	f.svc = NewReservationService(f.repo, f.users, f.spaces, f.notifier, newTestLogger(t))
	return f
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func testUser() *domain.User {
	return &domain.User{ID: "u1", Name: "Alice"}
}

func testSpace(t *testing.T) *domain.Space {
	t.Helper()
	opening, err := domain.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	closing, err := domain.ParseTimeOfDay("17:00")
	require.NoError(t, err)
	return &domain.Space{ID: "s1", Name: "Open Space", OpeningTime: opening, ClosingTime: closing, Active: true}
}

func testInput(t *testing.T, start, end string) domain.ReservationInput {
	t.Helper()
	return domain.ReservationInput{
		UserID:    "u1",
		SpaceID:   "s1",
		StartTime: mustTime(t, start),
		EndTime:   mustTime(t, end),
		Notes:     "team sync",
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z")

	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)
	f.repo.EXPECT().FindOverlapping(mock.Anything, "s1", input.StartTime, input.EndTime, "").Return(nil, nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()

	details, err := f.svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, details.Reservation.Status)
	assert.Equal(t, "Alice", details.UserName)
	assert.Equal(t, "Open Space", details.SpaceName)
	assert.Equal(t, "team sync", details.Reservation.Notes)
	assert.NotEmpty(t, details.Reservation.ID)
	assert.Equal(t, details.Reservation.CreatedAt, details.Reservation.UpdatedAt)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_Conflict(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T10:30:00Z", "2025-06-02T12:00:00Z")

	existing := &domain.Reservation{
		ID:        "r1",
		SpaceID:   "s1",
		StartTime: mustTime(t, "2025-06-02T10:00:00Z"),
		EndTime:   mustTime(t, "2025-06-02T11:00:00Z"),
		Status:    domain.ReservationStatusPending,
	}

	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)
	f.repo.EXPECT().FindOverlapping(mock.Anything, "s1", input.StartTime, input.EndTime, "").
		Return([]*domain.Reservation{existing}, nil)

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationConflict)
}

func TestReservationService_Create_AdjacentAllowed(t *testing.T) {
	f := newFixture(t)
	// Touches the end of an existing booking; the store's half-open overlap
	// query returns nothing for it.
	input := testInput(t, "2025-06-02T11:00:00Z", "2025-06-02T12:00:00Z")

	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)
	f.repo.EXPECT().FindOverlapping(mock.Anything, "s1", input.StartTime, input.EndTime, "").Return(nil, nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()

	details, err := f.svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, details.Reservation.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Create_BackToBackCandidateIsNotConflict(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T11:00:00Z", "2025-06-02T12:00:00Z")

	// A candidate ending exactly at the requested start does not satisfy the
	// half-open overlap predicate and must not block the booking.
	adjacent := &domain.Reservation{
		ID:        "r1",
		SpaceID:   "s1",
		StartTime: mustTime(t, "2025-06-02T10:00:00Z"),
		EndTime:   mustTime(t, "2025-06-02T11:00:00Z"),
		Status:    domain.ReservationStatusPending,
	}

	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)
	f.repo.EXPECT().FindOverlapping(mock.Anything, "s1", input.StartTime, input.EndTime, "").
		Return([]*domain.Reservation{adjacent}, nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything).Return()

	_, err := f.svc.Create(context.Background(), input)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Create_UserNotFound(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z")

	f.users.EXPECT().Get(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil).Maybe()

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReservationService_Create_SpaceNotFound(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z")

	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil).Maybe()
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(nil, domain.ErrSpaceNotFound)

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpaceNotFound)
}

func TestReservationService_Create_DirectoryUnavailable(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z")

	f.users.EXPECT().Get(mock.Anything, "u1").Return(nil, domain.ErrDirectoryUnavailable)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil).Maybe()

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDirectoryUnavailable)
}

func TestReservationService_Create_OutsideOperatingHours(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T08:00:00Z", "2025-06-02T10:00:00Z")

	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_StartNotBeforeEnd(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T11:00:00Z", "2025-06-02T10:00:00Z")

	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)

	_, err := f.svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Update_Success(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T13:00:00Z", "2025-06-02T14:00:00Z")

	existing := &domain.Reservation{
		ID:        "r1",
		UserID:    "u1",
		SpaceID:   "s1",
		StartTime: mustTime(t, "2025-06-02T10:00:00Z"),
		EndTime:   mustTime(t, "2025-06-02T11:00:00Z"),
		Status:    domain.ReservationStatusPending,
		CreatedAt: mustTime(t, "2025-06-01T09:00:00Z"),
		UpdatedAt: mustTime(t, "2025-06-01T09:00:00Z"),
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)
	f.repo.EXPECT().FindOverlapping(mock.Anything, "s1", input.StartTime, input.EndTime, "r1").Return(nil, nil)
	f.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	details, err := f.svc.Update(context.Background(), "r1", input)

	require.NoError(t, err)
	assert.Equal(t, input.StartTime, details.Reservation.StartTime)
	assert.Equal(t, input.EndTime, details.Reservation.EndTime)
	assert.Equal(t, domain.ReservationStatusPending, details.Reservation.Status)
	assert.True(t, details.Reservation.UpdatedAt.After(details.Reservation.CreatedAt))
}

func TestReservationService_Update_SelfExclusion(t *testing.T) {
	f := newFixture(t)
	// Re-submitting the exact interval the reservation already occupies must
	// never conflict with itself.
	input := testInput(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z")

	existing := &domain.Reservation{
		ID:        "r1",
		UserID:    "u1",
		SpaceID:   "s1",
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    domain.ReservationStatusPending,
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)
	f.repo.EXPECT().FindOverlapping(mock.Anything, "s1", input.StartTime, input.EndTime, "r1").Return(nil, nil)
	f.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.Update(context.Background(), "r1", input)

	require.NoError(t, err)
}

func TestReservationService_Update_NotFound(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z")

	f.repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := f.svc.Update(context.Background(), "missing", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Update_Conflict(t *testing.T) {
	f := newFixture(t)
	input := testInput(t, "2025-06-02T10:00:00Z", "2025-06-02T11:00:00Z")

	existing := &domain.Reservation{ID: "r1", UserID: "u1", SpaceID: "s1"}
	other := &domain.Reservation{
		ID:        "r2",
		SpaceID:   "s1",
		StartTime: mustTime(t, "2025-06-02T10:30:00Z"),
		EndTime:   mustTime(t, "2025-06-02T11:30:00Z"),
		Status:    domain.ReservationStatusPending,
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)
	f.repo.EXPECT().FindOverlapping(mock.Anything, "s1", input.StartTime, input.EndTime, "r1").
		Return([]*domain.Reservation{other}, nil)

	_, err := f.svc.Update(context.Background(), "r1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationConflict)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	f := newFixture(t)

	existing := &domain.Reservation{
		ID:      "r1",
		UserID:  "u1",
		SpaceID: "s1",
		Status:  domain.ReservationStatusPending,
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.repo.EXPECT().Cancel(mock.Anything, "r1", mock.Anything).Return(nil)
	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)
	f.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, mock.Anything).Return()

	err := f.svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Cancel_AlreadyCancelled(t *testing.T) {
	f := newFixture(t)

	existing := &domain.Reservation{
		ID:      "r1",
		UserID:  "u1",
		SpaceID: "s1",
		Status:  domain.ReservationStatusCancelled,
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(existing, nil)
	f.repo.EXPECT().Cancel(mock.Anything, "r1", mock.Anything).Return(nil)
	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)
	f.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, mock.Anything).Return()

	err := f.svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	err := f.svc.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_GetByID_Enriched(t *testing.T) {
	f := newFixture(t)

	res := &domain.Reservation{ID: "r1", UserID: "u1", SpaceID: "s1", Status: domain.ReservationStatusPending}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)

	details, err := f.svc.GetByID(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "Alice", details.UserName)
	assert.Equal(t, "Open Space", details.SpaceName)
}

func TestReservationService_GetByID_EnrichmentDegrades(t *testing.T) {
	f := newFixture(t)

	res := &domain.Reservation{ID: "r1", UserID: "gone", SpaceID: "s1", Status: domain.ReservationStatusPending}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	f.users.EXPECT().Get(mock.Anything, "gone").Return(nil, domain.ErrUserNotFound)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)

	details, err := f.svc.GetByID(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "Unknown User", details.UserName)
	assert.Equal(t, "Open Space", details.SpaceName)
}

func TestReservationService_List_MixedEnrichment(t *testing.T) {
	f := newFixture(t)

	reservations := []*domain.Reservation{
		{ID: "r1", UserID: "u1", SpaceID: "s1"},
		{ID: "r2", UserID: "gone", SpaceID: "s1"},
	}

	f.repo.EXPECT().List(mock.Anything).Return(reservations, nil)
	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.users.EXPECT().Get(mock.Anything, "gone").Return(nil, domain.ErrUserNotFound)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil).Times(2)

	details, err := f.svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "Alice", details[0].UserName)
	assert.Equal(t, "Unknown User", details[1].UserName)
	assert.Equal(t, "Open Space", details[1].SpaceName)
}

func TestReservationService_List_EnrichmentAbsorbsTransportFailure(t *testing.T) {
	f := newFixture(t)

	reservations := []*domain.Reservation{{ID: "r1", UserID: "u1", SpaceID: "s1"}}

	f.repo.EXPECT().List(mock.Anything).Return(reservations, nil)
	f.users.EXPECT().Get(mock.Anything, "u1").Return(nil, domain.ErrDirectoryUnavailable)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)

	details, err := f.svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Unknown User", details[0].UserName)
}

func TestReservationService_ListByUser_Success(t *testing.T) {
	f := newFixture(t)

	reservations := []*domain.Reservation{{ID: "r1", UserID: "u1", SpaceID: "s1"}}

	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil).Times(2) // strict check + enrichment
	f.repo.EXPECT().ListByUser(mock.Anything, "u1").Return(reservations, nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)

	details, err := f.svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Alice", details[0].UserName)
}

func TestReservationService_ListByUser_UserNotFound(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := f.svc.ListByUser(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReservationService_ListBySpace_SpaceNotFound(t *testing.T) {
	f := newFixture(t)

	f.spaces.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrSpaceNotFound)

	_, err := f.svc.ListBySpace(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpaceNotFound)
}

func TestReservationService_ListBySpace_Success(t *testing.T) {
	f := newFixture(t)

	reservations := []*domain.Reservation{{ID: "r1", UserID: "u1", SpaceID: "s1"}}

	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil).Times(2) // strict check + enrichment
	f.repo.EXPECT().ListBySpace(mock.Anything, "s1").Return(reservations, nil)
	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)

	details, err := f.svc.ListBySpace(context.Background(), "s1")

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Open Space", details[0].SpaceName)
}

func TestReservationService_RemindUpcoming_Success(t *testing.T) {
	f := newFixture(t)

	upcoming := []*domain.Reservation{{ID: "r1", UserID: "u1", SpaceID: "s1"}}

	f.repo.EXPECT().MarkUpcomingReminded(mock.Anything, time.Hour).Return(upcoming, nil)
	f.users.EXPECT().Get(mock.Anything, "u1").Return(testUser(), nil)
	f.spaces.EXPECT().Get(mock.Anything, "s1").Return(testSpace(t), nil)
	f.notifier.EXPECT().NotifyReservationUpcoming(mock.Anything, mock.Anything).Return()

	result, err := f.svc.RemindUpcoming(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Len(t, result, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_RemindUpcoming_NoneDue(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().MarkUpcomingReminded(mock.Anything, time.Hour).Return(nil, nil)

	result, err := f.svc.RemindUpcoming(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestReservationService_RemindUpcoming_RepoError(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().MarkUpcomingReminded(mock.Anything, time.Hour).Return(nil, errors.New("db error"))

	_, err := f.svc.RemindUpcoming(context.Background(), time.Hour)

	require.Error(t, err)
}
