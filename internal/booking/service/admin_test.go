package service

import (
	"context"
	"testing"

	"github.com/parkside-labs/roomgrid/internal/booking/domain"
	"github.com/parkside-labs/roomgrid/internal/booking/store"
	"github.com/stretchr/testify/require"
)

func TestAdminListUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := &AdminService{Store: st}
	bookings := &BookingService{Store: st, Schedule: domain.DefaultSchedule}

	alice := createVerifiedUser(t, st, "alice", "hunter2hunter2")
	createVerifiedUser(t, st, "bob", "hunter2hunter2")

	_, err := bookings.Reserve(ctx, alice, "1_2026-03-14_2")
	require.NoError(t, err)
	_, err = bookings.Reserve(ctx, alice, "1_2026-03-14_3")
	require.NoError(t, err)

	views, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byUsername := make(map[string]domain.AdminUserView, len(views))
	for _, v := range views {
		byUsername[v.Username] = v
	}

	require.Equal(t, 2, byUsername["alice"].BookingCount)
	require.Equal(t, 0, byUsername["bob"].BookingCount)
	require.True(t, byUsername["alice"].Verified)
	require.Equal(t, domain.RoleMember, byUsername["alice"].Role)
}

func TestAdminDeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := &AdminService{Store: st}
	bookings := &BookingService{Store: st, Schedule: domain.DefaultSchedule}

	alice := createVerifiedUser(t, st, "alice", "hunter2hunter2")
	bob := createVerifiedUser(t, st, "bob", "hunter2hunter2")

	_, err := bookings.Reserve(ctx, alice, "1_2026-03-14_2")
	require.NoError(t, err)
	_, err = bookings.Reserve(ctx, alice, "2_2026-03-15_4")
	require.NoError(t, err)
	_, err = bookings.Reserve(ctx, bob, "3_2026-03-14_2")
	require.NoError(t, err)

	require.NoError(t, admin.DeleteUser(ctx, alice.ID))

	t.Run("user row is gone", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, alice.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("their slots are released, others keep theirs", func(t *testing.T) {
		views, err := bookings.List(ctx)
		require.NoError(t, err)
		require.Len(t, views, 1)
		_, ok := views["3_2026-03-14_2"]
		require.True(t, ok)
	})

	t.Run("released slots can be rebooked", func(t *testing.T) {
		_, err := bookings.Reserve(ctx, bob, "1_2026-03-14_2")
		require.NoError(t, err)
	})

	t.Run("deleting again reports not found", func(t *testing.T) {
		err := admin.DeleteUser(ctx, alice.ID)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAdminDeleteRefusesAdmins(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	adminSvc := &AdminService{Store: st}

	bootstrap := &BootstrapService{Store: st, Token: "setup-token"}
	boss, err := bootstrap.Bootstrap(ctx, "setup-token", "boss", "Boss", "boss@example.com", "hunter2hunter2")
	require.NoError(t, err)

	err = adminSvc.DeleteUser(ctx, boss.ID)
	require.ErrorIs(t, err, ErrCannotDeleteAdmin)

	_, err = st.Users().GetUserByID(ctx, boss.ID)
	require.NoError(t, err)
}
