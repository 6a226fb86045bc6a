package repository

import (
	"context"
	"time"

	"github.com/fitmate-dev/workout-partner/backend/internal/domain"
)

func (r *Repository) GetBookingsByOwner(ownerUID int64) ([]*domain.Booking, error) {
	query := `
		SELECT id, partner_uid, request_id, start_epoch_millis, end_epoch_millis, created_at
		FROM bookings
		WHERE owner_uid = $1
		ORDER BY start_epoch_millis
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ownerUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b := &domain.Booking{
			OwnerUID: ownerUID,
		}
		dst := []any{&b.ID, &b.PartnerUID, &b.RequestID, &b.StartEpochMillis, &b.EndEpochMillis, &b.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetUpcomingBookings 获取该用户从现在起还没开始或正在进行的预约，附带搭子的姓名
func (r *Repository) GetUpcomingBookings(ownerUID int64, nowMillis int64, limit int) ([]*domain.UpcomingBooking, error) {
	query := `
		SELECT b.id, b.partner_uid, u.full_name, b.start_epoch_millis, b.end_epoch_millis
		FROM bookings b
		JOIN users u ON b.partner_uid = u.id
		WHERE b.owner_uid = $1 AND b.end_epoch_millis > $2
		ORDER BY b.start_epoch_millis
		LIMIT $3
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ownerUID, nowMillis, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*domain.UpcomingBooking, 0)
	for rows.Next() {
		b := &domain.UpcomingBooking{}
		dst := []any{&b.ID, &b.PartnerUID, &b.PartnerName, &b.StartEpochMillis, &b.EndEpochMillis}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
