package booking_test

import (
	"strings"
	"testing"

	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
	"github.com/stretchr/testify/require"
)

// TestSignupAndVerifyFlow walks the full registration path: signup, verify
// with the one-time code, then use the returned token.
func TestSignupAndVerifyFlow(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := roomsdk.NewClient(baseURL)
	alice := signupAndVerify(t, client, "alice")

	// The token minted by verification works immediately.
	listing, err := alice.Bookings(t.Context())
	require.NoError(t, err)
	require.Empty(t, listing.Bookings)

	// And a fresh login works too.
	tokens, err := client.Login(t.Context(), roomsdk.LoginRequest{
		Username: "alice",
		Password: memberPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
}

// TestSignupDuplicateIdentity verifies username and email uniqueness across
// verified and pending accounts.
func TestSignupDuplicateIdentity(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := roomsdk.NewClient(baseURL)
	signupAndVerify(t, client, "alice")

	_, err := client.Signup(t.Context(), roomsdk.SignupRequest{
		Username:        "alice",
		Name:            "Second Alice",
		Email:           "second@example.com",
		Password:        memberPassword,
		ConfirmPassword: memberPassword,
	})
	requireAPIError(t, err, roomsdk.ErrorCodeDuplicateIdentity)

	_, err = client.Signup(t.Context(), roomsdk.SignupRequest{
		Username:        "alice2",
		Name:            "Second Alice",
		Email:           "alice@example.com",
		Password:        memberPassword,
		ConfirmPassword: memberPassword,
	})
	requireAPIError(t, err, roomsdk.ErrorCodeDuplicateIdentity)
}

// TestVerifyWrongCode verifies a wrong code is rejected without consuming
// the signup, and the right code still works afterwards.
func TestVerifyWrongCode(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := roomsdk.NewClient(baseURL)

	signup, err := client.Signup(t.Context(), roomsdk.SignupRequest{
		Username:        "bob",
		Name:            "Bob",
		Email:           "bob@example.com",
		Password:        memberPassword,
		ConfirmPassword: memberPassword,
	})
	require.NoError(t, err)

	wrong := "000000"
	if signup.DebugOTP == wrong {
		wrong = "000001"
	}
	_, err = client.Verify(t.Context(), roomsdk.VerifyRequest{
		SignupToken: signup.SignupToken,
		Code:        wrong,
	})
	requireAPIError(t, err, roomsdk.ErrorCodeInvalidCode)

	// Codes are case-insensitive on submission.
	tokens, err := client.Verify(t.Context(), roomsdk.VerifyRequest{
		SignupToken: signup.SignupToken,
		Code:        strings.ToLower(signup.DebugOTP),
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
}

// TestVerifyAttemptsCap verifies the failed-attempt cap locks the signup
// session out even for the correct code.
func TestVerifyAttemptsCap(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := roomsdk.NewClient(baseURL)

	signup, err := client.Signup(t.Context(), roomsdk.SignupRequest{
		Username:        "carol",
		Name:            "Carol",
		Email:           "carol@example.com",
		Password:        memberPassword,
		ConfirmPassword: memberPassword,
	})
	require.NoError(t, err)

	wrong := "000000"
	if signup.DebugOTP == wrong {
		wrong = "000001"
	}
	for range 5 {
		_, err = client.Verify(t.Context(), roomsdk.VerifyRequest{
			SignupToken: signup.SignupToken,
			Code:        wrong,
		})
		requireAPIError(t, err, roomsdk.ErrorCodeInvalidCode)
	}

	_, err = client.Verify(t.Context(), roomsdk.VerifyRequest{
		SignupToken: signup.SignupToken,
		Code:        signup.DebugOTP,
	})
	requireAPIError(t, err, roomsdk.ErrorCodeTooManyAttempts)
}

// TestResendOTP verifies a regenerated code invalidates the old one.
func TestResendOTP(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := roomsdk.NewClient(baseURL)

	signup, err := client.Signup(t.Context(), roomsdk.SignupRequest{
		Username:        "dave",
		Name:            "Dave",
		Email:           "dave@example.com",
		Password:        memberPassword,
		ConfirmPassword: memberPassword,
	})
	require.NoError(t, err)
	firstCode := signup.DebugOTP

	resent, err := client.ResendOTP(t.Context(), roomsdk.ResendRequest{
		SignupToken: signup.SignupToken,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resent.DebugOTP)

	if firstCode != resent.DebugOTP {
		_, err = client.Verify(t.Context(), roomsdk.VerifyRequest{
			SignupToken: signup.SignupToken,
			Code:        firstCode,
		})
		requireAPIError(t, err, roomsdk.ErrorCodeInvalidCode)
	}

	tokens, err := client.Verify(t.Context(), roomsdk.VerifyRequest{
		SignupToken: signup.SignupToken,
		Code:        resent.DebugOTP,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
}

// TestLoginRejections verifies the login failure modes are indistinguishable
// to callers.
func TestLoginRejections(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := roomsdk.NewClient(baseURL)
	signupAndVerify(t, client, "erin")

	// Wrong password.
	_, err := client.Login(t.Context(), roomsdk.LoginRequest{
		Username: "erin",
		Password: "wrong-password-123",
	})
	requireAPIError(t, err, roomsdk.ErrorCodeInvalidCredentials)

	// Unknown username gets the same code.
	_, err = client.Login(t.Context(), roomsdk.LoginRequest{
		Username: "nobody",
		Password: memberPassword,
	})
	requireAPIError(t, err, roomsdk.ErrorCodeInvalidCredentials)

	// An unverified account too.
	_, err = client.Signup(t.Context(), roomsdk.SignupRequest{
		Username:        "frank",
		Name:            "Frank",
		Email:           "frank@example.com",
		Password:        memberPassword,
		ConfirmPassword: memberPassword,
	})
	require.NoError(t, err)

	_, err = client.Login(t.Context(), roomsdk.LoginRequest{
		Username: "frank",
		Password: memberPassword,
	})
	requireAPIError(t, err, roomsdk.ErrorCodeInvalidCredentials)
}
