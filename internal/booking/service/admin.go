package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
	"github.com/parkside-labs/roomgrid/internal/booking/store"
	"github.com/parkside-labs/roomgrid/pkg/slogx"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCannotDeleteAdmin = errors.New("admin accounts cannot be deleted")
)

// AdminService backs the administrative user listing and removal. Authorization
// happens at the HTTP layer; these operations assume an admin caller.
type AdminService struct {
	Store store.Store
}

// ListUsers returns the admin projection of every account, with live booking
// counts. Password hashes and OTP state never appear in the projection.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.AdminUserView, error) {
	views, err := s.Store.Users().ListWithBookingCounts(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list users", slog.Any("error", err))
		return nil, err
	}
	return views, nil
}

// DeleteUser removes an account and releases everything it holds: bookings,
// signup sessions, then the user row, in one transaction. Admin accounts are
// refused.
func (s *AdminService) DeleteUser(ctx context.Context, targetID string) error {
	log := slogx.FromContext(ctx)

	target, err := s.Store.Users().GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	if target.IsAdmin() {
		log.Warn("refused to delete admin account", slog.String("user_id", targetID))
		return ErrCannotDeleteAdmin
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Bookings().DeleteAllForUser(ctx, target.ID); err != nil {
			return err
		}
		if err := tx.SignupSessions().DeleteSignupSessionsForUser(ctx, target.ID); err != nil {
			return err
		}
		return tx.Users().DeleteUser(ctx, target.ID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Deleted concurrently; the end state is what we wanted.
			return ErrUserNotFound
		}
		log.Error("failed to delete user", slog.Any("error", err))
		return err
	}

	log.Info("user deleted",
		slog.String("user_id", target.ID),
		slog.String("username", target.Username),
	)
	return nil
}
