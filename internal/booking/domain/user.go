package domain

import "time"

// Roles a principal can hold. Admin is a role on the record, not a magic
// username.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User is a registered principal. A user may hold bookings only once
// verified; until then the OTP columns carry the pending challenge.
type User struct {
	ID           string
	Username     string
	Name         string // display name, the only field exposed in booking listings
	Email        string
	Phone        string
	PasswordHash string // argon2id encoded
	Role         string

	// VerifiedAt is set when the email challenge succeeds. Nil means the
	// account is still pending verification.
	VerifiedAt *time.Time

	// OTPHash is the SHA-256 fingerprint of the outstanding one-time code,
	// nil once verification succeeds or no challenge is pending.
	OTPHash      *string
	OTPExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Verified reports whether the account completed email verification.
func (u User) Verified() bool { return u.VerifiedAt != nil }

// IsAdmin reports whether the account holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// AdminUserView is the administrative projection of a user, including the
// number of live bookings they own. Password hash and OTP state never appear
// here.
type AdminUserView struct {
	ID           string
	Username     string
	Name         string
	Email        string
	Phone        string
	Role         string
	Verified     bool
	BookingCount int
}
