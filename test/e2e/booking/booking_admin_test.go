package booking_test

import (
	"testing"

	"github.com/parkside-labs/roomgrid/pkg/roomsdk"
	"github.com/stretchr/testify/require"
)

// TestBootstrapFlow verifies the first-admin bootstrap and its guards.
func TestBootstrapFlow(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := roomsdk.NewClient(baseURL)

	// Wrong token is rejected and creates nothing.
	_, err := client.Bootstrap(t.Context(), roomsdk.BootstrapRequest{
		Token:    "wrong-token",
		Username: adminUsername,
		Name:     adminName,
		Email:    "admin@example.com",
		Password: adminPassword,
	})
	requireAPIError(t, err, roomsdk.ErrorCodeAccessDenied)

	admin := bootstrapAdmin(t, client)

	// The admin account is born verified and can use the API immediately.
	listing, err := admin.AdminUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, listing.Users, 1)
	require.Equal(t, adminUsername, listing.Users[0].Username)
	require.True(t, listing.Users[0].Verified)

	// Bootstrap is one-shot.
	_, err = client.Bootstrap(t.Context(), roomsdk.BootstrapRequest{
		Token:    bootstrapToken,
		Username: "admin2",
		Name:     "Second Admin",
		Email:    "admin2@example.com",
		Password: adminPassword,
	})
	requireAPIError(t, err, roomsdk.ErrorCodeAlreadyBootstrapped)
}

// TestAdminUserManagement verifies listing and deletion, including the
// booking cascade and the admin-deletion guard.
func TestAdminUserManagement(t *testing.T) {
	baseURL, cleanup := setupBookingContainer(t)
	defer cleanup()

	client := roomsdk.NewClient(baseURL)
	admin := bootstrapAdmin(t, client)
	alice := signupAndVerify(t, client, "alice")
	bob := signupAndVerify(t, client, "bob")

	// Members cannot reach admin endpoints.
	_, err := alice.AdminUsers(t.Context())
	require.Error(t, err)

	// Alice holds two slots, Bob one.
	_, err = alice.Reserve(t.Context(), "1_2026-07-01_0")
	require.NoError(t, err)
	_, err = alice.Reserve(t.Context(), "1_2026-07-01_1")
	require.NoError(t, err)
	_, err = bob.Reserve(t.Context(), "2_2026-07-01_0")
	require.NoError(t, err)

	listing, err := admin.AdminUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, listing.Users, 3)

	byUsername := make(map[string]roomsdk.AdminUser)
	for _, u := range listing.Users {
		byUsername[u.Username] = u
	}
	require.Equal(t, 2, byUsername["alice"].BookingCount)
	require.Equal(t, 1, byUsername["bob"].BookingCount)
	require.Equal(t, 0, byUsername[adminUsername].BookingCount)

	// Deleting Alice releases her slots.
	require.NoError(t, admin.AdminDeleteUser(t.Context(), byUsername["alice"].ID))

	bookings, err := bob.Bookings(t.Context())
	require.NoError(t, err)
	require.Len(t, bookings.Bookings, 1, "only Bob's booking survives")

	_, err = bob.Reserve(t.Context(), "1_2026-07-01_0")
	require.NoError(t, err, "freed slot is immediately rebookable")

	// Alice's token is dead, and so is her login.
	_, err = alice.Reserve(t.Context(), "3_2026-07-01_0")
	requireAPIError(t, err, roomsdk.ErrorCodeAccessDenied)

	_, err = client.Login(t.Context(), roomsdk.LoginRequest{
		Username: "alice",
		Password: memberPassword,
	})
	requireAPIError(t, err, roomsdk.ErrorCodeInvalidCredentials)

	// Her identity is reusable now.
	_, err = client.Signup(t.Context(), roomsdk.SignupRequest{
		Username:        "alice",
		Name:            "New Alice",
		Email:           "alice@example.com",
		Password:        memberPassword,
		ConfirmPassword: memberPassword,
	})
	require.NoError(t, err)

	// Deleting an admin or an unknown user fails cleanly.
	err = admin.AdminDeleteUser(t.Context(), byUsername[adminUsername].ID)
	requireAPIError(t, err, roomsdk.ErrorCodeCannotDeleteAdmin)

	err = admin.AdminDeleteUser(t.Context(), byUsername["alice"].ID)
	requireAPIError(t, err, roomsdk.ErrorCodeUserNotFound)
}
