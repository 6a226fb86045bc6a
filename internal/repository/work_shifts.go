package repository

import (
	"context"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

func (r *Repository) GetWorkShiftsByUser(userID int64) ([]*domain.WorkShift, error) {
	query := `
		SELECT id, day_of_week, start_hour, end_hour, created_at, version
		FROM work_shifts
		WHERE user_id = $1
		ORDER BY day_of_week, start_hour
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.WorkShift, 0)
	for rows.Next() {
		shift := &domain.WorkShift{
			UserID: userID,
		}
		dst := []any{&shift.ID, &shift.DayOfWeek, &shift.StartHour, &shift.EndHour, &shift.CreatedAt, &shift.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) GetWorkShiftByID(id int64) (*domain.WorkShift, error) {
	query := `
		SELECT user_id, day_of_week, start_hour, end_hour, created_at, version
		FROM work_shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.WorkShift{
		ID: id,
	}

	dst := []any{&shift.UserID, &shift.DayOfWeek, &shift.StartHour, &shift.EndHour, &shift.CreatedAt, &shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return shift, nil
}

func (r *Repository) CreateWorkShift(shift *domain.WorkShift) error {
	query := `
		INSERT INTO work_shifts (user_id, day_of_week, start_hour, end_hour)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{shift.UserID, shift.DayOfWeek, shift.StartHour, shift.EndHour}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateWorkShift(shift *domain.WorkShift) error {
	query := `
		UPDATE work_shifts
		SET
			day_of_week = $1,
			start_hour = $2,
			end_hour = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{shift.DayOfWeek, shift.StartHour, shift.EndHour, shift.ID, shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteWorkShift(id int64) error {
	query := `
		DELETE FROM work_shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
