package domain

import "time"

// SignupSession is the caller-scoped reference to a signup that is waiting
// for OTP verification. The opaque token handed to the caller is stored only
// as a fingerprint. Concurrent signups each get their own session, so two
// callers mid-signup can never observe each other's state.
type SignupSession struct {
	ID        string
	TokenHash string
	UserID    string
	Attempts  int // failed verification attempts, capped to stop brute force
	ExpiresAt time.Time
	CreatedAt time.Time
}
