package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legalsuite/go-legalsuite/session"
	"github.com/legalsuite/go-legalsuite/session/storefakes"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want session.Role
	}{
		{name: "admin", raw: "ADMIN", want: session.RoleAdmin},
		{name: "advocate", raw: "ADVOCATE", want: session.RoleAdvocate},
		{name: "staff", raw: "STAFF", want: session.RoleStaff},
		{name: "client", raw: "CLIENT", want: session.RoleClient},
		{name: "empty", raw: "", want: session.RoleUnknown},
		{name: "lowercase is not a backend literal", raw: "client", want: session.RoleUnknown},
		{name: "future role", raw: "PARALEGAL", want: session.RoleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, session.ParseRole(tt.raw))
		})
	}
}

func TestDashboardRouteDispatch(t *testing.T) {
	// Only CLIENT reaches the restricted portal; every other role
	// value, including absent, lands on the advocate workspace.
	require.Equal(t, session.ClientDashboardRoute, session.RoleClient.DashboardRoute())
	require.Equal(t, session.AdvocateDashboardRoute, session.RoleAdvocate.DashboardRoute())
	require.Equal(t, session.AdvocateDashboardRoute, session.RoleAdmin.DashboardRoute())
	require.Equal(t, session.AdvocateDashboardRoute, session.RoleStaff.DashboardRoute())
	require.Equal(t, session.AdvocateDashboardRoute, session.RoleUnknown.DashboardRoute())
}

func TestGuardRoute(t *testing.T) {
	require.Equal(t, session.LoginRoute, session.GuardRoute(nil))
	require.Equal(t, session.LoginRoute, session.GuardRoute(&session.Session{}))

	advocate := &session.Session{AccessToken: "tok", Role: session.RoleAdvocate}
	require.Equal(t, session.AdvocateDashboardRoute, session.GuardRoute(advocate))

	client := &session.Session{AccessToken: "tok", Role: session.RoleClient}
	require.Equal(t, session.ClientDashboardRoute, session.GuardRoute(client))
}

func TestStoreSingleResidentSession(t *testing.T) {
	store := storefakes.NewFakeStore()

	first := &session.Session{AccessToken: "tokA", Role: session.RoleAdvocate, DisplayName: "A. Smith"}
	require.NoError(t, store.Save(first))

	// A second login overwrites the first wholesale.
	second := &session.Session{AccessToken: "tokB", Role: session.RoleClient, DisplayName: "C. Jones"}
	require.NoError(t, store.Save(second))

	current, err := store.Current()
	require.NoError(t, err)
	require.Equal(t, "tokB", current.AccessToken)
	require.Equal(t, session.RoleClient, current.Role)
	require.Empty(t, current.RefreshToken)
}

func TestClearIsIdempotent(t *testing.T) {
	store := storefakes.NewFakeStore()

	// Clearing an empty store must not error.
	require.NoError(t, store.Clear())

	require.NoError(t, store.Save(&session.Session{AccessToken: "tok"}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	current, err := store.Current()
	require.NoError(t, err)
	require.Nil(t, current)
}
