package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
	"github.com/parkside-labs/roomgrid/internal/booking/store"
	"github.com/parkside-labs/roomgrid/pkg/cryptox"
	"github.com/parkside-labs/roomgrid/pkg/idx"
	"github.com/parkside-labs/roomgrid/pkg/slogx"
)

var (
	ErrBootstrapDisabled     = errors.New("bootstrap is not enabled")
	ErrBootstrapAlready      = errors.New("an admin account already exists")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the first admin account, guarded by a
// pre-configured token. Once any admin exists the endpoint is inert.
type BootstrapService struct {
	Store store.Store
	Token string
}

// IsBootstrapped reports whether an admin account already exists.
func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	n, err := s.Store.Users().CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Bootstrap creates a verified admin account. The created admin skips email
// verification; whoever holds the bootstrap token controls the deployment.
func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token, username, name, email, password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. No configured token means bootstrap is off entirely.
	if s.Token == "" {
		return domain.User{}, ErrBootstrapDisabled
	}

	// 2. Refuse once an admin exists.
	bootstrapped, err := s.IsBootstrapped(ctx)
	if err != nil {
		log.Error("failed to check bootstrap state", slog.Any("error", err))
		return domain.User{}, err
	}
	if bootstrapped {
		log.Warn("bootstrap attempted on already-bootstrapped system")
		return domain.User{}, ErrBootstrapAlready
	}

	// 3. Validate the provided token.
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		log.Warn("unauthorized bootstrap attempt")
		return domain.User{}, ErrBootstrapUnauthorized
	}

	// 4. Hash the password and create the account, verified from the start.
	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash admin password", slog.Any("error", err))
		return domain.User{}, err
	}

	now := time.Now().UTC()
	admin := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: passHash,
		Role:         domain.RoleAdmin,
		VerifiedAt:   &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, admin); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateIdentity
		}
		log.Error("failed to create admin user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("system bootstrapped",
		slog.String("user_id", admin.ID),
		slog.String("username", admin.Username),
	)
	return admin, nil
}
