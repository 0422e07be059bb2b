package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
	"github.com/parkside-labs/roomgrid/internal/booking/store"
	"github.com/parkside-labs/roomgrid/pkg/idx"
	"github.com/parkside-labs/roomgrid/pkg/slogx"
)

var (
	ErrNotVerified     = errors.New("account is not verified")
	ErrSlotTaken       = errors.New("slot is already booked")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotOwner        = errors.New("booking belongs to another user")
)

// BookingService guards the slot grid: exclusive reservations, owner-only
// cancellation, verified-accounts-only access.
type BookingService struct {
	Store    store.Store
	Schedule domain.Schedule
}

// List returns every live booking keyed by its flattened slot key. Values
// expose the owner's display name and nothing else about them.
func (s *BookingService) List(ctx context.Context) (map[string]domain.BookingView, error) {
	views, err := s.Store.Bookings().ListBookingViews(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list bookings", slog.Any("error", err))
		return nil, err
	}

	out := make(map[string]domain.BookingView, len(views))
	for _, v := range views {
		out[v.Key.String()] = v
	}
	return out, nil
}

// Reserve books a slot for the user. The uniqueness guarantee rides on the
// single INSERT: under any interleaving exactly one of two racing reserves
// succeeds and the other observes ErrSlotTaken.
func (s *BookingService) Reserve(ctx context.Context, user domain.User, rawKey string) (domain.Booking, error) {
	log := slogx.FromContext(ctx)

	// 1. Only verified accounts may hold bookings.
	if !user.Verified() {
		log.Warn("reserve by unverified account", slog.String("user_id", user.ID))
		return domain.Booking{}, ErrNotVerified
	}

	// 2. Parse and range-check the key. Malformed keys never coerce.
	key, err := s.Schedule.ParseKey(rawKey)
	if err != nil {
		log.Warn("reserve with invalid key", slog.String("key", rawKey))
		return domain.Booking{}, err
	}

	// 3. One atomic INSERT. No check-then-insert.
	booking := domain.Booking{
		ID:        idx.New().String(),
		UserID:    user.ID,
		Key:       key,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Bookings().CreateBooking(ctx, booking); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("reserve lost to existing booking", slog.String("key", key.String()))
			return domain.Booking{}, ErrSlotTaken
		}
		log.Error("failed to create booking", slog.Any("error", err))
		return domain.Booking{}, err
	}

	log.Info("booking created",
		slog.String("booking_id", booking.ID),
		slog.String("user_id", user.ID),
		slog.String("key", key.String()),
	)
	return booking, nil
}

// Cancel releases the user's booking at a key. Lookup, ownership check, and
// delete run in one transaction so a racing cancel cannot double-release.
func (s *BookingService) Cancel(ctx context.Context, user domain.User, rawKey string) error {
	log := slogx.FromContext(ctx)

	key, err := s.Schedule.ParseKey(rawKey)
	if err != nil {
		log.Warn("cancel with invalid key", slog.String("key", rawKey))
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		booking, err := tx.Bookings().GetBookingByKey(ctx, key)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.UserID != user.ID {
			log.Warn("cancel by non-owner",
				slog.String("user_id", user.ID),
				slog.String("key", key.String()),
			)
			return ErrNotOwner
		}
		return tx.Bookings().DeleteBooking(ctx, booking.ID)
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrNotOwner) {
			return err
		}
		if errors.Is(err, store.ErrNotFound) {
			// Deleted out from under us mid-transaction.
			return ErrBookingNotFound
		}
		log.Error("failed to cancel booking", slog.Any("error", err))
		return err
	}

	log.Info("booking cancelled",
		slog.String("user_id", user.ID),
		slog.String("key", key.String()),
	)
	return nil
}

// ReleaseAllFor drops every booking a user owns, within the caller's
// transaction. Idempotent; no per-booking checks, the caller is already
// authorized (admin cascade).
func (s *BookingService) ReleaseAllFor(ctx context.Context, tx store.Tx, userID string) error {
	return tx.Bookings().DeleteAllForUser(ctx, userID)
}
