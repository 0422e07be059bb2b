package store

import (
	"context"
	"errors"
	"time"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Bookings() Bookings
	SignupSessions() SignupSessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back if fn returns an
	// error and committing otherwise. Inside fn, only the tx-scoped repos may
	// be used; touching the outer store would escape the transaction.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// IdentityTaken reports whether any principal, verified or not, already
	// holds the username or email.
	IdentityTaken(ctx context.Context, username, email string) (bool, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists if the username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// SetOTP replaces the pending challenge fingerprint and expiry.
	SetOTP(ctx context.Context, userID, otpHash string, expiresAt time.Time) error

	// MarkVerified sets verified_at and clears the OTP columns in one
	// statement so a concurrent verify attempt can never see a half-updated
	// row.
	MarkVerified(ctx context.Context, userID string) error

	// DeleteUser removes the user row. Bookings and signup sessions must be
	// removed first by the caller (inside a transaction).
	DeleteUser(ctx context.Context, userID string) error

	// ListWithBookingCounts returns the admin projection of all users.
	ListWithBookingCounts(ctx context.Context) ([]domain.AdminUserView, error)

	// CountAdmins returns the number of admin-role users (bootstrap guard).
	CountAdmins(ctx context.Context) (int, error)

	// DeleteStaleUnverified removes never-verified accounts whose OTP expired
	// before cutoff, freeing their identity for re-registration. Returns the
	// number of rows removed.
	DeleteStaleUnverified(ctx context.Context, cutoff time.Time) (int64, error)
}

type Bookings interface {
	// CreateBooking inserts a new booking. The UNIQUE(room, date, slot)
	// constraint makes the check-then-insert a single atomic step: a
	// concurrent insert on the same key surfaces as ErrAlreadyExists.
	CreateBooking(ctx context.Context, b domain.Booking) error

	// GetBookingByKey returns the live booking at a key, or ErrNotFound.
	GetBookingByKey(ctx context.Context, key domain.SlotKey) (domain.Booking, error)

	// DeleteBooking removes a booking by id.
	DeleteBooking(ctx context.Context, id string) error

	// ListBookingViews returns every live booking joined with its owner's
	// display name, and nothing else about the owner.
	ListBookingViews(ctx context.Context) ([]domain.BookingView, error)

	// DeleteAllForUser releases every booking owned by a user. Idempotent;
	// deleting for a user with no bookings is a no-op.
	DeleteAllForUser(ctx context.Context, userID string) error

	// CountForUser returns the number of live bookings a user owns.
	CountForUser(ctx context.Context, userID string) (int, error)
}

type SignupSessions interface {
	// CreateSignupSession stores a new pending-verification session.
	CreateSignupSession(ctx context.Context, s domain.SignupSession) error

	// GetSignupSessionByTokenHash returns a not-expired session by the
	// fingerprint of its opaque token.
	GetSignupSessionByTokenHash(ctx context.Context, hash string) (domain.SignupSession, error)

	// IncrementSignupAttempts bumps the failed-attempt counter and returns
	// the updated session.
	IncrementSignupAttempts(ctx context.Context, id string) (domain.SignupSession, error)

	// DeleteSignupSession removes a session by id.
	DeleteSignupSession(ctx context.Context, id string) error

	// DeleteSignupSessionsForUser removes all sessions referencing a user.
	DeleteSignupSessionsForUser(ctx context.Context, userID string) error

	// DeleteExpiredSignupSessions is housekeeping.
	DeleteExpiredSignupSessions(ctx context.Context) error
}
