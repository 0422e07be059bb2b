package sqlite

import (
	"context"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
)

type bookingsRepo struct {
	db dbtx
}

func (r *bookingsRepo) CreateBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (id, user_id, room, date, slot, created_at)
		VALUES (?, ?, ?, ?, ?, ?);
	`, b.ID, b.UserID, b.Key.Room, b.Key.Date, b.Key.Slot, b.CreatedAt)
	return mapConstraint(err)
}

func (r *bookingsRepo) GetBookingByKey(ctx context.Context, key domain.SlotKey) (domain.Booking, error) {
	var b domain.Booking
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, room, date, slot, created_at
		FROM bookings
		WHERE room = ? AND date = ? AND slot = ?;
	`, key.Room, key.Date, key.Slot).Scan(
		&b.ID, &b.UserID, &b.Key.Room, &b.Key.Date, &b.Key.Slot, &b.CreatedAt,
	)
	if err != nil {
		return domain.Booking{}, mapNotFound(err)
	}
	return b, nil
}

func (r *bookingsRepo) DeleteBooking(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM bookings
		WHERE id = ?;
	`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *bookingsRepo) ListBookingViews(ctx context.Context) ([]domain.BookingView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.room, b.date, b.slot, u.name
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.date ASC, b.room ASC, b.slot ASC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []domain.BookingView
	for rows.Next() {
		var v domain.BookingView
		if err := rows.Scan(&v.Key.Room, &v.Key.Date, &v.Key.Slot, &v.OwnerName); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *bookingsRepo) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM bookings
		WHERE user_id = ?;
	`, userID)
	return err
}

func (r *bookingsRepo) CountForUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM bookings
		WHERE user_id = ?;
	`, userID).Scan(&n)
	return n, err
}
