package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// OTPLength is the fixed width of generated one-time codes.
const OTPLength = 6

// GenerateOTP returns a random 6-character uppercase hex code, e.g. "3FA91C".
// Codes are compared case-insensitively; use NormalizeOTP before matching.
func GenerateOTP() (string, error) {
	buf := make([]byte, OTPLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// NormalizeOTP canonicalizes a user-submitted code for comparison.
func NormalizeOTP(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
