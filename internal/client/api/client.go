// Package api talks to the VortexTV REST backend. The Client interface is
// the seam unit tests mock; HTTPClient is the real transport.
package api

import (
	"context"

	"github.com/vortextv/vortexcli/internal/client/models"
)

// Client is the surface of the VortexTV backend the session layer consumes.
//
// All methods honor context cancellation/timeouts. Errors are mapped onto
// the sentinels in internal/common where the failure class matters
// (ErrUnauthorized, ErrServerUnavailable); everything else surfaces as an
// *APIError carrying the server-provided message.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	CheckSubscription(ctx context.Context) (*models.SubscriptionStatus, error)
	GenerateAccessCode(ctx context.Context) (*models.GenerateCodeResult, error)
	RedeemAccessCode(ctx context.Context, code string) (*models.RedeemResult, error)
	AccessCodes(ctx context.Context) ([]models.AccessCode, error)
	Plans(ctx context.Context) ([]models.Plan, error)
	Subscribe(ctx context.Context, planID int64) error
	CancelSubscription(ctx context.Context) error
	UpdatePassword(ctx context.Context, currentPassword, newPassword string) error
	Close() error
}
