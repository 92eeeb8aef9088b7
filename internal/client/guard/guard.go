// Package guard decides whether a protected page may render for the current
// session. Evaluate is a pure function so the policy is unit-testable
// without any UI in the loop.
package guard

import (
	"github.com/vortextv/vortexcli/internal/client/models"
	"github.com/vortextv/vortexcli/internal/client/session"
	"github.com/vortextv/vortexcli/internal/common"
)

// Capability is what a route demands of the session.
type Capability int

const (
	// CapabilityAuthenticated admits any logged-in user.
	CapabilityAuthenticated Capability = iota

	// CapabilitySubscriber admits staff roles unconditionally, and regular
	// users holding either a subscription or an access code.
	//
	// The check uses the cached HasSubscription/HasAccessCode booleans on
	// the session user and deliberately makes no network call: guards run
	// on every navigation and only need to turn away users known to have
	// neither. The expiry-accurate decision is the page's job, via
	// Controller.CheckSubscription, right before content playback.
	CapabilitySubscriber

	// CapabilityAdmin admits admin and superadmin.
	CapabilityAdmin

	// CapabilitySuperAdmin admits superadmin only.
	CapabilitySuperAdmin
)

func (c Capability) String() string {
	switch c {
	case CapabilityAuthenticated:
		return "authenticated"
	case CapabilitySubscriber:
		return "subscriber"
	case CapabilityAdmin:
		return "admin"
	case CapabilitySuperAdmin:
		return "superadmin"
	default:
		return "unknown"
	}
}

// DecisionKind enumerates guard outcomes.
type DecisionKind int

const (
	// DecisionLoading means session state is still being resolved; render
	// a placeholder and re-evaluate on the next state change.
	DecisionLoading DecisionKind = iota

	// DecisionRedirect denies access and names where to send the user.
	DecisionRedirect

	// DecisionAllow renders the protected content.
	DecisionAllow
)

// Decision is the outcome of evaluating one guard.
type Decision struct {
	Kind   DecisionKind
	Target string // redirect target, set only for DecisionRedirect
}

func loading() Decision          { return Decision{Kind: DecisionLoading} }
func allow() Decision            { return Decision{Kind: DecisionAllow} }
func redirect(t string) Decision { return Decision{Kind: DecisionRedirect, Target: t} }

// Evaluate applies the guard rules in fixed order: loading, authentication,
// then the capability-specific predicate.
func Evaluate(s session.Session, capability Capability) Decision {
	if s.IsLoading {
		return loading()
	}

	if !s.IsAuthenticated || s.User == nil {
		return redirect(common.RouteLogin)
	}

	switch capability {
	case CapabilityAuthenticated:
		return allow()

	case CapabilitySubscriber:
		if s.User.Role.IsStaff() {
			return allow()
		}
		if s.User.HasSubscription || s.User.HasAccessCode {
			return allow()
		}
		return redirect(common.RouteSubscriptions)

	case CapabilityAdmin:
		if s.User.Role.IsStaff() {
			return allow()
		}
		return redirect(common.RouteBrowse)

	case CapabilitySuperAdmin:
		if s.User.Role == models.RoleSuperAdmin {
			return allow()
		}
		// The user is authenticated, just under-privileged: back to the
		// admin landing, not to login.
		return redirect(common.RouteAdmin)

	default:
		return redirect(common.RouteLogin)
	}
}
