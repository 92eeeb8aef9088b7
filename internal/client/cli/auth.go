package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/vortextv/vortexcli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// controller. The controller handles credential storage, header updates and
// navigation; this handler only collects input and reports the outcome.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if !a.controller.Login(ctx, models.Credentials{Username: username, Password: password}) {
		printlnFn(a.sessions.Current().Error)
		return nil
	}

	printlnFn("Login successful!")
	return nil
}

// Register prompts for account details and creates a new account. New
// accounts are logged in immediately and land on plan selection.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if !a.controller.Register(ctx, models.Registration{Username: username, Email: email, Password: password}) {
		printlnFn(a.sessions.Current().Error)
		return nil
	}

	printlnFn("Registration successful!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.controller.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// Whoami prints the current session identity and entitlement summary.
func (a *App) Whoami(ctx context.Context) error {
	s := a.sessions.Current()
	if !s.IsAuthenticated || s.User == nil {
		printlnFn("Not logged in")
		return nil
	}

	u := s.User
	printlnFn(fmt.Sprintf("%s <%s> role=%s", u.Username, u.Email, u.Role))
	switch {
	case u.HasSubscription:
		plan := ""
		if u.SubscriptionPlan != nil {
			plan = u.SubscriptionPlan.Name
		}
		printlnFn(fmt.Sprintf("Subscription: %s (%s)", plan, u.SubscriptionStatus))
	case u.HasAccessCode:
		printlnFn("Access: shared via access code")
	default:
		printlnFn("No subscription")
	}
	return nil
}

// UpdatePassword prompts for the current and new password and changes it.
func (a *App) UpdatePassword(ctx context.Context) error {
	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}

	next, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := getPassword("Repeat new password", os.Stdout)
	if err != nil {
		return err
	}
	if next != confirm {
		printlnFn("Passwords do not match")
		return nil
	}

	if !a.controller.UpdatePassword(ctx, current, next) {
		printlnFn(a.sessions.Current().Error)
		return nil
	}

	printlnFn(a.sessions.Current().Success)
	return nil
}
