package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
	"github.com/parkside-labs/roomgrid/internal/booking/store"
	"github.com/parkside-labs/roomgrid/pkg/cryptox"
	"github.com/parkside-labs/roomgrid/pkg/jwtx"
	"github.com/parkside-labs/roomgrid/pkg/slogx"
)

// ErrInvalidCredentials covers bad username, bad password, and an unverified
// account. One caller-visible error keeps login unusable for account probing;
// the log lines stay distinct.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionService exchanges username/password for an access token.
type SessionService struct {
	Store  store.Store
	Signer jwtx.Signer

	Issuer         string
	AccessTokenTTL time.Duration
}

// Session is a minted access token plus the metadata clients need to use it.
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int // seconds
}

func (s *SessionService) ttl() time.Duration {
	if s.AccessTokenTTL > 0 {
		return s.AccessTokenTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

// Mint issues an access token for an already-authenticated user. Used right
// after verification succeeds so the new account doesn't have to log in
// separately.
func (s *SessionService) Mint(ctx context.Context, user domain.User) (Session, error) {
	ttl := s.ttl()
	claims := jwtx.NewAccessClaims(
		user.ID, user.Username, user.Name, user.Role,
		user.Verified(), s.Issuer, ttl, time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to sign access token", slog.Any("error", err))
		return Session{}, err
	}

	return Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	}, nil
}

// Login verifies the password and, for verified accounts, mints an
// EdDSA-signed access token.
func (s *SessionService) Login(ctx context.Context, username, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	// 1. Look up the user.
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login with unknown username", slog.String("username", username))
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return Session{}, err
	}

	// 2. Verify the password.
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login with wrong password", slog.String("username", username))
		return Session{}, ErrInvalidCredentials
	}

	// 3. Unverified accounts cannot log in.
	if !user.Verified() {
		log.Warn("login on unverified account", slog.String("username", username))
		return Session{}, ErrInvalidCredentials
	}

	// 4. Mint the access token.
	session, err := s.Mint(ctx, user)
	if err != nil {
		return Session{}, err
	}

	log.Info("login succeeded",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return session, nil
}
