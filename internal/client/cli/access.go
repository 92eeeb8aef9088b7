package cli

import (
	"context"
	"fmt"

	"github.com/vortextv/vortexcli/internal/client/guard"
)

// GenerateCode mints a sharable access code on the user's subscription.
func (a *App) GenerateCode(ctx context.Context) error {
	if !a.pass(guard.CapabilityAuthenticated) {
		return nil
	}

	res := a.controller.GenerateAccessCode(ctx)
	if res == nil {
		printlnFn(a.sessions.Current().Error)
		return nil
	}

	printlnFn("Access code: " + res.Code)
	if !res.ExpiryDate.IsZero() {
		printlnFn("Valid until: " + res.ExpiryDate.Format("2006-01-02"))
	}
	printlnFn(fmt.Sprintf("%d of %d codes remaining", res.RemainingCodes, res.MaxAllowedCodes))
	return nil
}

// Redeem activates a shared access code for the current user.
func (a *App) Redeem(ctx context.Context, code string) error {
	if !a.pass(guard.CapabilityAuthenticated) {
		return nil
	}

	details := a.controller.RedeemAccessCode(ctx, code)
	if details == nil {
		printlnFn(a.sessions.Current().Error)
		return nil
	}

	printlnFn("Code redeemed — shared access from " + details.OwnerUsername)
	if !details.ExpiryDate.IsZero() {
		printlnFn("Valid until: " + details.ExpiryDate.Format("2006-01-02"))
	}
	return nil
}

// Codes lists the access codes the current user has generated.
func (a *App) Codes(ctx context.Context) error {
	list := a.controller.AccessCodes(ctx)
	if !list.Success {
		printlnFn(list.Error)
		return nil
	}
	if len(list.Codes) == 0 {
		printlnFn("No access codes generated yet")
		return nil
	}

	for _, c := range list.Codes {
		state := "unused"
		if c.UsedBy != nil {
			state = "in use"
		}
		if !c.IsActive {
			state = "inactive"
		}
		printlnFn(fmt.Sprintf("[%d] %s — %s, expires %s",
			c.CodeID, c.Code, state, c.ExpiresAt.Format("2006-01-02")))
	}
	return nil
}
