package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vortextv/vortexcli/internal/client/guard"
	"github.com/vortextv/vortexcli/internal/client/models"
	"github.com/vortextv/vortexcli/internal/client/session"
	"github.com/vortextv/vortexcli/internal/common"
)

// appWithSession builds a minimal App around a pre-set session, enough to
// exercise the guard gating without a database or network.
func appWithSession(t *testing.T, s *session.Store) *App {
	t.Helper()
	return &App{sessions: s, route: common.RouteLogin}
}

func TestPassRedirectsAndNavigates(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	store := session.NewTestStore(session.Session{
		User:            &models.User{ID: 1, Role: models.RoleUser},
		IsAuthenticated: true,
	})
	app := appWithSession(t, store)

	// A plain user hitting the admin gate lands on /browse.
	require.False(t, app.pass(guard.CapabilityAdmin))
	require.Equal(t, common.RouteBrowse, app.currentRoute())

	// Without entitlement flags the subscriber gate sends to plan selection.
	require.False(t, app.pass(guard.CapabilitySubscriber))
	require.Equal(t, common.RouteSubscriptions, app.currentRoute())
}

func TestPassAllowsStaff(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	store := session.NewTestStore(session.Session{
		User:            &models.User{ID: 1, Role: models.RoleAdmin},
		IsAuthenticated: true,
	})
	app := appWithSession(t, store)

	require.True(t, app.pass(guard.CapabilityAdmin))
	require.True(t, app.pass(guard.CapabilitySubscriber))
	// Admin is not superadmin.
	require.False(t, app.pass(guard.CapabilitySuperAdmin))
	require.Equal(t, common.RouteAdmin, app.currentRoute())
}

func TestPassLoadingBlocksWithoutNavigation(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	app := appWithSession(t, session.NewTestStore(session.Session{IsLoading: true}))

	require.False(t, app.pass(guard.CapabilityAuthenticated))
	require.Equal(t, common.RouteLogin, app.currentRoute())
}
