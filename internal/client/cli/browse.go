package cli

import (
	"context"
	"fmt"

	"github.com/vortextv/vortexcli/internal/client/guard"
	"github.com/vortextv/vortexcli/internal/common"
)

// pass runs a route guard against the current session. On a redirect it
// performs the navigation and tells the user why access was denied.
func (a *App) pass(capability guard.Capability) bool {
	d := guard.Evaluate(a.sessions.Current(), capability)
	switch d.Kind {
	case guard.DecisionAllow:
		return true
	case guard.DecisionLoading:
		printlnFn("Session is still loading, try again in a moment")
		return false
	default:
		switch d.Target {
		case common.RouteLogin:
			printlnFn("Please log in first")
		case common.RouteSubscriptions:
			printlnFn("A subscription or access code is required")
		default:
			printlnFn("Access denied")
		}
		a.NavigateTo(d.Target)
		return false
	}
}

// Browse opens the content catalog. Any authenticated user may browse;
// playback is gated separately.
func (a *App) Browse(ctx context.Context) error {
	if !a.pass(guard.CapabilityAuthenticated) {
		return nil
	}

	a.NavigateTo(common.RouteBrowse)
	printlnFn("Browsing the VortexTV catalog. Use 'watch <id>' to play a title.")
	return nil
}

// WatchTitle starts playback of one title. The cached entitlement flags gate
// entry cheaply; right before playback the authoritative server check runs,
// so an expired subscription is caught here even if the cache still says
// otherwise.
func (a *App) WatchTitle(ctx context.Context, id string) error {
	if !a.pass(guard.CapabilitySubscriber) {
		return nil
	}

	s := a.sessions.Current()
	if s.User != nil && !s.User.Role.IsStaff() {
		if !a.controller.CheckSubscription(ctx) {
			printlnFn("Your access has expired. Please renew your subscription.")
			a.NavigateTo(common.RouteSubscriptions)
			return nil
		}
	}

	printlnFn(fmt.Sprintf("Now playing title %s ...", id))
	return nil
}
