package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// pgExclusionViolation is raised by the no-overlap exclusion constraint when
// two concurrent writes race past the service-level conflict check.
const pgExclusionViolation = "23P01"

const reservationColumns = `id, user_id, space_id, start_time, end_time, status, notes, created_at, updated_at, reminded_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, user_id, space_id, start_time, end_time, status, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.UserID, res.SpaceID, res.StartTime, res.EndTime,
		res.Status, res.Notes, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrReservationConflict
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations
			  SET user_id = $2, space_id = $3, start_time = $4, end_time = $5, notes = $6, updated_at = $7
			  WHERE id = $1`
	result, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.UserID, res.SpaceID, res.StartTime, res.EndTime,
		res.Notes, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrReservationConflict
		}
		return fmt.Errorf("update reservation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE reservations
			  SET status = $2, updated_at = $3
			  WHERE id = $1`
	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.ReservationStatusCancelled, at)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  ORDER BY start_time DESC`

	return r.queryMany(ctx, query)
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE user_id = $1
			  ORDER BY start_time DESC`

	return r.queryMany(ctx, query, userID)
}

func (r *ReservationRepository) ListBySpace(ctx context.Context, spaceID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE space_id = $1
			  ORDER BY start_time DESC`

	return r.queryMany(ctx, query, spaceID)
}

// FindOverlapping returns every non-cancelled reservation for the space whose
// half-open interval intersects [start, end). When excludeID is non-empty that
// reservation is left out, so an update never conflicts with itself.
func (r *ReservationRepository) FindOverlapping(ctx context.Context, spaceID string, start, end time.Time, excludeID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE space_id = $1
			    AND status <> $2
			    AND start_time < $4
			    AND $3 < end_time`
	args := []any{spaceID, domain.ReservationStatusCancelled, start, end}

	if excludeID != "" {
		query += ` AND id <> $5`
		args = append(args, excludeID)
	}

	return r.queryMany(ctx, query, args...)
}

// MarkUpcomingReminded atomically flags pending reservations starting within
// the window that have not been reminded yet and returns them.
func (r *ReservationRepository) MarkUpcomingReminded(ctx context.Context, within time.Duration) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET reminded_at = NOW()
			  WHERE status = $1
			    AND reminded_at IS NULL
			    AND start_time > NOW()
			    AND start_time <= NOW() + make_interval(secs => $2)
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.ReservationStatusPending, within.Seconds())
	if err != nil {
		return nil, fmt.Errorf("mark upcoming reminded: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) queryMany(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	var remindedAt sql.NullTime
	if err := scan(
		&res.ID, &res.UserID, &res.SpaceID, &res.StartTime, &res.EndTime,
		&res.Status, &res.Notes, &res.CreatedAt, &res.UpdatedAt, &remindedAt,
	); err != nil {
		return nil, err
	}
	if remindedAt.Valid {
		res.RemindedAt = &remindedAt.Time
	}

	return &res, nil
}
