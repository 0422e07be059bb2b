package sqlite

import (
	"context"
	"time"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
)

type signupSessionsRepo struct {
	db dbtx
}

func (r *signupSessionsRepo) CreateSignupSession(ctx context.Context, s domain.SignupSession) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO signup_sessions (id, token_hash, user_id, attempts, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?);
	`, s.ID, s.TokenHash, s.UserID, s.Attempts, s.ExpiresAt, s.CreatedAt)
	return mapConstraint(err)
}

func (r *signupSessionsRepo) GetSignupSessionByTokenHash(ctx context.Context, hash string) (domain.SignupSession, error) {
	var s domain.SignupSession
	err := r.db.QueryRowContext(ctx, `
		SELECT id, token_hash, user_id, attempts, expires_at, created_at
		FROM signup_sessions
		WHERE token_hash = ? AND expires_at > ?;
	`, hash, time.Now().UTC()).Scan(
		&s.ID, &s.TokenHash, &s.UserID, &s.Attempts, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		return domain.SignupSession{}, mapNotFound(err)
	}
	return s, nil
}

func (r *signupSessionsRepo) IncrementSignupAttempts(ctx context.Context, id string) (domain.SignupSession, error) {
	var s domain.SignupSession
	err := r.db.QueryRowContext(ctx, `
		UPDATE signup_sessions
		SET attempts = attempts + 1
		WHERE id = ?
		RETURNING id, token_hash, user_id, attempts, expires_at, created_at;
	`, id).Scan(
		&s.ID, &s.TokenHash, &s.UserID, &s.Attempts, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		return domain.SignupSession{}, mapNotFound(err)
	}
	return s, nil
}

func (r *signupSessionsRepo) DeleteSignupSession(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM signup_sessions
		WHERE id = ?;
	`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *signupSessionsRepo) DeleteSignupSessionsForUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM signup_sessions
		WHERE user_id = ?;
	`, userID)
	return err
}

func (r *signupSessionsRepo) DeleteExpiredSignupSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM signup_sessions
		WHERE expires_at <= ?;
	`, time.Now().UTC())
	return err
}
