package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
	"github.com/parkside-labs/roomgrid/internal/booking/mail"
	"github.com/parkside-labs/roomgrid/internal/booking/store"
	"github.com/parkside-labs/roomgrid/pkg/cryptox"
	"github.com/parkside-labs/roomgrid/pkg/idx"
	"github.com/parkside-labs/roomgrid/pkg/slogx"
)

var (
	ErrDuplicateIdentity     = errors.New("username or email already registered")
	ErrNoPendingVerification = errors.New("no signup is pending verification")
	ErrInvalidCode           = errors.New("verification code is invalid or expired")
	ErrTooManyAttempts       = errors.New("too many failed verification attempts")
)

const (
	// DefaultOTPTTL is how long an emailed verification code stays valid.
	DefaultOTPTTL = 10 * time.Minute

	// DefaultSignupSessionTTL bounds how long a signup may sit unverified
	// before the caller has to start over.
	DefaultSignupSessionTTL = 30 * time.Minute

	// MaxVerifyAttempts caps failed code submissions per signup session.
	MaxVerifyAttempts = 5
)

// SignupService runs the registration flow: create a pending account, email a
// one-time code, and flip the account to verified when the code comes back.
type SignupService struct {
	Store    store.Store
	Notifier mail.Notifier

	OTPTTL     time.Duration
	SessionTTL time.Duration

	// ExposeCodeOnFailure makes BeginSignup/ResendOTP return the raw code when
	// delivery fails, so development environments without a relay stay usable.
	// Must be off in production.
	ExposeCodeOnFailure bool
}

// SignupResult is handed back to the caller after BeginSignup or ResendOTP.
type SignupResult struct {
	// Token is the opaque reference the caller presents to verify or resend.
	Token string

	// OTPDelivered is false when the notifier failed; the signup itself still
	// succeeded.
	OTPDelivered bool

	// DebugCode carries the raw code only when delivery failed and
	// ExposeCodeOnFailure is set.
	DebugCode string
}

func (s *SignupService) otpTTL() time.Duration {
	if s.OTPTTL > 0 {
		return s.OTPTTL
	}
	return DefaultOTPTTL
}

func (s *SignupService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSignupSessionTTL
}

// BeginSignup registers a new pending account and emails it a verification
// code. The account cannot hold bookings until the code is confirmed.
func (s *SignupService) BeginSignup(
	ctx context.Context,
	username, name, email, phone, password string,
) (SignupResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Friendly duplicate check up front. The UNIQUE constraints still
	// back this for the race window between check and insert.
	taken, err := s.Store.Users().IdentityTaken(ctx, username, email)
	if err != nil {
		log.Error("failed to check identity availability", slog.Any("error", err))
		return SignupResult{}, err
	}
	if taken {
		log.Warn("signup with taken identity", slog.String("username", username))
		return SignupResult{}, ErrDuplicateIdentity
	}

	// 2. Hash password.
	passHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return SignupResult{}, err
	}

	// 3. Generate the one-time code and the caller's opaque session token.
	// Only fingerprints of either are persisted.
	code, err := cryptox.GenerateOTP()
	if err != nil {
		log.Error("failed to generate verification code", slog.Any("error", err))
		return SignupResult{}, err
	}
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate signup token", slog.Any("error", err))
		return SignupResult{}, err
	}

	now := time.Now().UTC()
	otpHash := cryptox.FingerprintToken(code)
	otpExpiry := now.Add(s.otpTTL())

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: passHash,
		Role:         domain.RoleMember,
		OTPHash:      &otpHash,
		OTPExpiresAt: &otpExpiry,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	session := domain.SignupSession{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL()),
		CreatedAt: now,
	}

	// 4. Persist user and session in one transaction.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.SignupSessions().CreateSignupSession(ctx, session)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("signup lost identity race", slog.String("username", username))
			return SignupResult{}, ErrDuplicateIdentity
		}
		log.Error("failed to persist signup", slog.Any("error", err))
		return SignupResult{}, err
	}

	log.Info("signup created, verification pending",
		slog.String("user_id", user.ID),
		slog.String("username", username),
	)

	// 5. Deliver the code after commit. Delivery failure never fails the
	// signup; the caller can resend.
	return s.deliver(ctx, token, email, code, otpExpiry), nil
}

// CompleteVerification confirms the emailed code and activates the account.
func (s *SignupService) CompleteVerification(
	ctx context.Context,
	signupToken, code string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Resolve the signup session from the token fingerprint.
	session, err := s.Store.SignupSessions().GetSignupSessionByTokenHash(
		ctx, cryptox.FingerprintToken(signupToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("verification with unknown or expired signup token")
			return domain.User{}, ErrNoPendingVerification
		}
		log.Error("failed to fetch signup session", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Enforce the attempts cap before touching the code.
	if session.Attempts >= MaxVerifyAttempts {
		log.Warn("verification attempts exhausted", slog.String("user_id", session.UserID))
		return domain.User{}, ErrTooManyAttempts
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNoPendingVerification
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. A verified account, or one whose OTP was cleared by a concurrent
	// success, has nothing pending.
	if user.Verified() || user.OTPHash == nil || user.OTPExpiresAt == nil {
		return domain.User{}, ErrNoPendingVerification
	}

	// 4. Check expiry and the code fingerprint. A wrong code burns an
	// attempt but never changes OTP state or extends expiry.
	submitted := cryptox.FingerprintToken(cryptox.NormalizeOTP(code))
	expired := time.Now().UTC().After(*user.OTPExpiresAt)
	if expired || subtle.ConstantTimeCompare([]byte(submitted), []byte(*user.OTPHash)) != 1 {
		if _, err := s.Store.SignupSessions().IncrementSignupAttempts(ctx, session.ID); err != nil {
			log.Error("failed to record verification attempt", slog.Any("error", err))
		}
		log.Warn("verification code rejected",
			slog.String("user_id", user.ID),
			slog.Bool("expired", expired),
		)
		return domain.User{}, ErrInvalidCode
	}

	// 5. Activate: set verified_at, clear OTP columns, drop the session,
	// all atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().MarkVerified(ctx, user.ID); err != nil {
			return err
		}
		return tx.SignupSessions().DeleteSignupSession(ctx, session.ID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost a race with another successful submission.
			return domain.User{}, ErrNoPendingVerification
		}
		log.Error("failed to mark user verified", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("account verified",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	now := time.Now().UTC()
	user.VerifiedAt = &now
	user.OTPHash = nil
	user.OTPExpiresAt = nil
	return user, nil
}

// ResendOTP regenerates and re-delivers the code for a still-pending signup.
func (s *SignupService) ResendOTP(ctx context.Context, signupToken string) (SignupResult, error) {
	log := slogx.FromContext(ctx)

	session, err := s.Store.SignupSessions().GetSignupSessionByTokenHash(
		ctx, cryptox.FingerprintToken(signupToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SignupResult{}, ErrNoPendingVerification
		}
		log.Error("failed to fetch signup session", slog.Any("error", err))
		return SignupResult{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SignupResult{}, ErrNoPendingVerification
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return SignupResult{}, err
	}
	if user.Verified() {
		return SignupResult{}, ErrNoPendingVerification
	}

	code, err := cryptox.GenerateOTP()
	if err != nil {
		log.Error("failed to generate verification code", slog.Any("error", err))
		return SignupResult{}, err
	}

	otpExpiry := time.Now().UTC().Add(s.otpTTL())
	otpHash := cryptox.FingerprintToken(code)
	if err := s.Store.Users().SetOTP(ctx, user.ID, otpHash, otpExpiry); err != nil {
		log.Error("failed to store regenerated code", slog.Any("error", err))
		return SignupResult{}, err
	}

	log.Info("verification code regenerated", slog.String("user_id", user.ID))

	return s.deliver(ctx, signupToken, user.Email, code, otpExpiry), nil
}

func (s *SignupService) deliver(
	ctx context.Context,
	token, email, code string,
	expiresAt time.Time,
) SignupResult {
	log := slogx.FromContext(ctx)

	result := SignupResult{Token: token, OTPDelivered: true}
	if err := s.Notifier.SendOTP(ctx, email, code, expiresAt); err != nil {
		log.Error("failed to deliver verification code", slog.Any("error", err))
		result.OTPDelivered = false
		if s.ExposeCodeOnFailure {
			result.DebugCode = code
		}
	}
	return result
}
