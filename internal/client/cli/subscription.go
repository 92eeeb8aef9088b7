package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vortextv/vortexcli/internal/client/guard"
	"github.com/vortextv/vortexcli/internal/client/profile"
	"github.com/vortextv/vortexcli/internal/common"
)

// Profile shows the account page: subscription state reconciled against the
// server, with a note when only cached data is available.
func (a *App) Profile(ctx context.Context) error {
	if !a.pass(guard.CapabilityAuthenticated) {
		return nil
	}
	a.NavigateTo(common.RouteProfile)

	view := a.profiles.Load(ctx)
	switch view.Tier {
	case profile.TierNone:
		printlnFn("No subscription data available")
		return nil
	case profile.TierCached:
		printlnFn("(offline — showing last known subscription data)")
	}

	st := view.Status
	now := time.Now()
	switch {
	case st.HasSubscription:
		plan := ""
		if st.SubscriptionPlan != nil {
			plan = st.SubscriptionPlan.Name
		}
		printlnFn(fmt.Sprintf("Plan: %s, status: %s", plan, st.Status))
		if exp, ok := view.AccessExpiry(); ok {
			printlnFn("Expires: " + exp.Format("2006-01-02"))
		}
		if view.SubscriptionExpired(now) {
			printlnFn("Your subscription has expired")
		}
		printlnFn(fmt.Sprintf("Access codes: %d of %d used, %d remaining",
			st.GeneratedCodes, st.MaxAllowedCodes, view.RemainingCodes()))
	case st.HasAccessCode && st.AccessCodeDetails != nil:
		printlnFn("Shared access from " + st.AccessCodeDetails.OwnerUsername)
		if exp, ok := view.AccessExpiry(); ok {
			printlnFn("Expires: " + exp.Format("2006-01-02"))
		}
	default:
		printlnFn("No active subscription")
	}
	return nil
}

// Plans lists the available subscription plans.
func (a *App) Plans(ctx context.Context) error {
	plans, err := a.controller.Plans(ctx)
	if err != nil {
		printlnFn("Failed to fetch plans:", err.Error())
		return err
	}

	for _, p := range plans {
		printlnFn(fmt.Sprintf("[%d] %s — $%.2f / %d mo, up to %d access codes",
			p.ID, p.Name, p.Price, p.DurationMonths, p.MaxAccessCodes))
		if p.Description != "" {
			printlnFn("    " + p.Description)
		}
		if len(p.Features) > 0 {
			printlnFn("    " + strings.Join(p.Features, ", "))
		}
	}
	return nil
}

// Subscribe purchases the plan with the given id.
func (a *App) Subscribe(ctx context.Context, id string) error {
	if !a.pass(guard.CapabilityAuthenticated) {
		return nil
	}

	planID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Invalid plan id:", id)
		return nil
	}

	if !a.controller.Subscribe(ctx, planID) {
		printlnFn(a.sessions.Current().Error)
		return nil
	}

	printlnFn(a.sessions.Current().Success)
	a.NavigateTo(common.RouteBrowse)
	return nil
}

// Cancel cancels the current subscription after confirmation.
func (a *App) Cancel(ctx context.Context) error {
	if !a.pass(guard.CapabilityAuthenticated) {
		return nil
	}

	answer, err := getSimpleText(a.reader, "Cancel your subscription? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") && !strings.EqualFold(answer, "y") {
		printlnFn("Aborted")
		return nil
	}

	if !a.controller.CancelSubscription(ctx) {
		printlnFn(a.sessions.Current().Error)
		return nil
	}

	printlnFn(a.sessions.Current().Success)
	return nil
}
