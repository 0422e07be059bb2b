package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, name, email, phone, password_hash, role,
	verified_at, otp_hash, otp_expires_at, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u            domain.User
		verifiedAt   sql.NullTime
		otpHash      sql.NullString
		otpExpiresAt sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.Role, &verifiedAt, &otpHash, &otpExpiresAt, &u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.VerifiedAt = mapNullTimePtr(verifiedAt)
	u.OTPHash = mapNullStringPtr(otpHash)
	u.OTPExpiresAt = mapNullTimePtr(otpExpiresAt)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = ?;
	`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE username = ?;
	`, username)
	return scanUser(row)
}

func (r *usersRepo) IdentityTaken(ctx context.Context, username, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM users
		WHERE username = ? OR email = ?;
	`, username, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, username, name, email, phone, password_hash, role,
			verified_at, otp_hash, otp_expires_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		u.ID, u.Username, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role,
		mapOptionalTime(u.VerifiedAt), mapOptionalString(u.OTPHash),
		mapOptionalTime(u.OTPExpiresAt), u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) SetOTP(ctx context.Context, userID, otpHash string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET otp_hash = ?, otp_expires_at = ?, updated_at = ?
		WHERE id = ?;
	`, otpHash, expiresAt, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *usersRepo) MarkVerified(ctx context.Context, userID string) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET verified_at = ?, otp_hash = NULL, otp_expires_at = NULL, updated_at = ?
		WHERE id = ?;
	`, now, now, userID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM users
		WHERE id = ?;
	`, userID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *usersRepo) ListWithBookingCounts(ctx context.Context) ([]domain.AdminUserView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.username, u.name, u.email, u.phone, u.role,
		       u.verified_at IS NOT NULL,
		       COUNT(b.id)
		FROM users u
		LEFT JOIN bookings b ON b.user_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at ASC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []domain.AdminUserView
	for rows.Next() {
		var v domain.AdminUserView
		if err := rows.Scan(
			&v.ID, &v.Username, &v.Name, &v.Email, &v.Phone, &v.Role,
			&v.Verified, &v.BookingCount,
		); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *usersRepo) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM users
		WHERE role = ?;
	`, domain.RoleAdmin).Scan(&n)
	return n, err
}

func (r *usersRepo) DeleteStaleUnverified(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM users
		WHERE verified_at IS NULL
		  AND (otp_expires_at IS NULL OR otp_expires_at < ?)
		  AND created_at < ?;
	`, cutoff, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// requireRowsAffected turns a zero-row UPDATE/DELETE into ErrNotFound so
// callers can distinguish "row gone" from success.
func requireRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
