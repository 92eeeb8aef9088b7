package cli

import (
	"context"

	"github.com/vortextv/vortexcli/internal/client/guard"
	"github.com/vortextv/vortexcli/internal/common"
)

// Admin opens the admin console. Requires the admin or superadmin role;
// superadmins additionally see the management section.
func (a *App) Admin(ctx context.Context) error {
	if !a.pass(guard.CapabilityAdmin) {
		return nil
	}

	a.NavigateTo(common.RouteAdmin)
	printlnFn("VortexTV admin console")

	if guard.Evaluate(a.sessions.Current(), guard.CapabilitySuperAdmin).Kind == guard.DecisionAllow {
		printlnFn("Superadmin tools enabled: user and role management ('users')")
	}
	return nil
}

// Users opens the user management section. Superadmin only; a plain admin is
// sent back to the admin landing.
func (a *App) Users(ctx context.Context) error {
	if !a.pass(guard.CapabilitySuperAdmin) {
		return nil
	}

	s := a.sessions.Current()
	printlnFn("User management — signed in as " + s.User.Username)
	printlnFn("Role changes and account removal are applied on the server immediately.")
	return nil
}
