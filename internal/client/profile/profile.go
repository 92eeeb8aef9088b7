// Package profile assembles the data behind the account/profile view:
// the cached subscription snapshot for instant display, reconciled against
// the authoritative server check.
package profile

import (
	"context"
	"time"

	"github.com/vortextv/vortexcli/internal/client/api"
	"github.com/vortextv/vortexcli/internal/client/models"
	"github.com/vortextv/vortexcli/internal/client/repositories/snapshot"
	"github.com/vortextv/vortexcli/internal/logging"
)

// Tier says where the data in a View came from.
type Tier int

const (
	// TierNone: no data at all — neither server nor cache had anything.
	TierNone Tier = iota

	// TierCached: the server check failed, showing the last-known-good
	// snapshot from this device.
	TierCached

	// TierLive: fresh from the server.
	TierLive
)

func (t Tier) String() string {
	switch t {
	case TierCached:
		return "cached"
	case TierLive:
		return "live"
	default:
		return "none"
	}
}

// View is the subscription state to render, tagged with its provenance so
// the UI can flag stale data.
type View struct {
	Status *models.SubscriptionStatus
	Tier   Tier
}

// RemainingCodes returns how many access codes the user can still generate.
func (v View) RemainingCodes() int {
	if v.Status == nil {
		return 0
	}
	return v.Status.RemainingCodes
}

// CanGenerateCode reports whether the generate action should be offered:
// an active own subscription with code quota left. Shared access never
// grants generation.
func (v View) CanGenerateCode(now time.Time) bool {
	if v.Status == nil {
		return false
	}
	return v.Status.SubscriptionActive(now) && v.Status.RemainingCodes > 0
}

// SubscriptionExpired reports whether the user had a subscription that has
// since lapsed. False when there was never a subscription to expire.
func (v View) SubscriptionExpired(now time.Time) bool {
	if v.Status == nil || !v.Status.HasSubscription {
		return false
	}
	return !v.Status.ExpiryDate.Valid(now)
}

// AccessExpiry returns the date the user's access runs out: the
// subscription expiry for subscribers, the code expiry for shared access.
// ok is false when no expiry applies.
func (v View) AccessExpiry() (time.Time, bool) {
	if v.Status == nil {
		return time.Time{}, false
	}
	if v.Status.HasSubscription && !v.Status.ExpiryDate.IsZero() {
		return v.Status.ExpiryDate.Time, true
	}
	if v.Status.AccessCodeDetails != nil && !v.Status.AccessCodeDetails.ExpiryDate.IsZero() {
		return v.Status.AccessCodeDetails.ExpiryDate.Time, true
	}
	return time.Time{}, false
}

// Reconciler produces Views. It always prefers the server; the snapshot
// cache only papers over outages.
type Reconciler struct {
	api       api.Client
	snapshots *snapshot.Cache
	log       logging.Logger
	timeout   time.Duration
}

func NewReconciler(apiClient api.Client, snapshots *snapshot.Cache, timeout time.Duration, log logging.Logger) *Reconciler {
	return &Reconciler{
		api:       apiClient,
		snapshots: snapshots,
		log:       log,
		timeout:   timeout,
	}
}

// Cached returns whatever this device remembers, without touching the
// network. Render this first, then replace it with the Load result.
func (r *Reconciler) Cached(ctx context.Context) View {
	if st := r.snapshots.Load(ctx); st != nil {
		return View{Status: st, Tier: TierCached}
	}
	return View{Tier: TierNone}
}

// Load fetches the authoritative subscription state. On success the
// snapshot cache is refreshed; on failure the last-known-good snapshot is
// returned instead, tagged TierCached so the caller can say so.
func (r *Reconciler) Load(ctx context.Context) View {
	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	st, err := r.api.CheckSubscription(cctx)
	if err != nil {
		r.log.Warn(ctx, "subscription fetch failed, falling back to cache", "error", err)
		return r.Cached(ctx)
	}

	if err := r.snapshots.Save(ctx, st); err != nil {
		r.log.Warn(ctx, "failed to cache subscription data", "error", err)
	}
	return View{Status: st, Tier: TierLive}
}
