package repository

import (
	"context"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/booking"
	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

func (r *Repository) CreateTrainingRequest(req *domain.TrainingRequest) error {
	query := `
		INSERT INTO training_requests (from_uid, to_uid, start_epoch_millis, end_epoch_millis, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{req.FromUID, req.ToUID, req.StartEpochMillis, req.EndEpochMillis, req.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.UpdatedAt, &req.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTrainingRequestByID(id int64) (*domain.TrainingRequest, error) {
	query := `
		SELECT from_uid, to_uid, start_epoch_millis, end_epoch_millis, status, updated_at, version
		FROM training_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	req := &domain.TrainingRequest{
		ID: id,
	}

	dst := []any{&req.FromUID, &req.ToUID, &req.StartEpochMillis, &req.EndEpochMillis, &req.Status, &req.UpdatedAt, &req.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return req, nil
}

// GetIncomingTrainingRequests 获取发给该用户且还没有被处理的请求
func (r *Repository) GetIncomingTrainingRequests(toUID int64) ([]*domain.TrainingRequest, error) {
	query := `
		SELECT id, from_uid, start_epoch_millis, end_epoch_millis, status, updated_at, version
		FROM training_requests
		WHERE to_uid = $1 AND status = $2
		ORDER BY start_epoch_millis
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, toUID, domain.TrainingRequestPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.TrainingRequest, 0)
	for rows.Next() {
		req := &domain.TrainingRequest{
			ToUID: toUID,
		}
		dst := []any{&req.ID, &req.FromUID, &req.StartEpochMillis, &req.EndEpochMillis, &req.Status, &req.UpdatedAt, &req.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetOutgoingTrainingRequests 获取该用户发出的所有请求，包括已处理的
func (r *Repository) GetOutgoingTrainingRequests(fromUID int64) ([]*domain.TrainingRequest, error) {
	query := `
		SELECT id, to_uid, start_epoch_millis, end_epoch_millis, status, updated_at, version
		FROM training_requests
		WHERE from_uid = $1
		ORDER BY start_epoch_millis
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, fromUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.TrainingRequest, 0)
	for rows.Next() {
		req := &domain.TrainingRequest{
			FromUID: fromUID,
		}
		dst := []any{&req.ID, &req.ToUID, &req.StartEpochMillis, &req.EndEpochMillis, &req.Status, &req.UpdatedAt, &req.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// AcceptTrainingRequest 在一个事务内完成状态流转和两条预约的写入
// 协调器在事务外做过的冲突检查和这里的写入之间存在竞态窗口，
// 因此事务内必须针对双方重新做一次冲突检查，冲突时返回 booking.ErrBookingConflict
func (r *Repository) AcceptTrainingRequest(req *domain.TrainingRequest, first *domain.Booking, second *domain.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE owner_uid IN ($1, $2)
				AND $3 < end_epoch_millis
				AND start_epoch_millis < $4
		)
	`

	hasConflict := false
	args := []any{first.OwnerUID, second.OwnerUID, req.StartEpochMillis, req.EndEpochMillis}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&hasConflict); err != nil {
		return err
	}
	if hasConflict {
		return booking.ErrBookingConflict
	}

	query = `
		UPDATE training_requests
		SET status = $1, updated_at = NOW(), version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version
	`

	if err := tx.QueryRowContext(ctx, query, req.Status, req.ID, req.Version).Scan(&req.UpdatedAt, &req.Version); err != nil {
		return err
	}

	query = `
		INSERT INTO bookings (owner_uid, partner_uid, request_id, start_epoch_millis, end_epoch_millis)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	for _, b := range []*domain.Booking{first, second} {
		args := []any{b.OwnerUID, b.PartnerUID, b.RequestID, b.StartEpochMillis, b.EndEpochMillis}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeclineTrainingRequest(req *domain.TrainingRequest) error {
	query := `
		UPDATE training_requests
		SET status = $1, updated_at = NOW(), version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, req.Status, req.ID, req.Version).Scan(&req.UpdatedAt, &req.Version); err != nil {
		return err
	}

	return nil
}
