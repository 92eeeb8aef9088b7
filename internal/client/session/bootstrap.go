package session

import (
	"context"
	"errors"
	"time"

	"github.com/vortextv/vortexcli/internal/client/models"
	"github.com/vortextv/vortexcli/internal/common"
)

// Bootstrap turns the persisted credential (if any) into a hydrated session.
// Called at startup and whenever the credential changes out-of-band.
//
// Every terminal branch clears IsLoading — a stuck loading flag blocks all
// route guards.
func (c *Controller) Bootstrap(ctx context.Context) {
	c.sessions.update(func(s *Session) { s.IsLoading = true })
	defer c.finish()

	tok, err := c.tokens.Get(ctx)
	if err != nil {
		c.log.Error(ctx, "failed to read stored credential", "error", err)
		c.resetSession()
		return
	}
	if tok == "" {
		c.log.Debug(ctx, "no stored credential, starting logged out")
		c.rememberToken("")
		c.resetSession()
		return
	}
	c.rememberToken(tok)

	claims, err := decodeClaims(tok)
	if err != nil {
		c.log.Warn(ctx, "stored credential is not a usable token, clearing", "error", err)
		c.tokens.Clear(ctx)
		c.rememberToken("")
		c.resetSession()
		return
	}

	if !claims.ExpiresAt.After(c.now()) {
		// Do not leave a dead token in storage.
		c.log.Info(ctx, "stored credential expired, clearing")
		c.tokens.Clear(ctx)
		c.rememberToken("")
		c.resetSession()
		return
	}

	// Re-sync headers in case a client was constructed after the token was
	// written.
	if err := c.tokens.Sync(ctx); err != nil {
		c.log.Warn(ctx, "failed to re-sync auth headers", "error", err)
	}

	cached := c.snapshots.Load(ctx)

	cctx, cancel := context.WithTimeout(ctx, c.cfg.AuthTimeout)
	defer cancel()

	user, err := c.api.CurrentUser(cctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			c.log.Warn(ctx, "server rejected stored credential, clearing")
			c.tokens.Clear(ctx)
			c.rememberToken("")
			c.resetSession()
			return
		}

		// Transient backend failure: the token is locally valid, so stay
		// usable with the identity embedded in the claims instead of
		// forcing a logout.
		c.log.Warn(ctx, "user fetch failed, falling back to token claims", "error", err)
		user = &models.User{ID: claims.UserID, Role: claims.Role}
	}

	if cached != nil {
		user.ApplyStatus(cached)
	}

	c.sessions.update(func(s *Session) {
		s.User = user
		s.IsAuthenticated = true
		s.Error = ""
	})
	c.log.Info(ctx, "session restored", "user_id", user.ID, "role", user.Role)
}

// Watch polls the persisted credential and reacts to out-of-band changes:
// another process logging in (re-bootstrap) or logging out (immediate local
// logout, no network). Blocks until ctx is cancelled; run it on its own
// goroutine.
func (c *Controller) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			tok, err := c.tokens.Get(ctx)
			if err != nil {
				c.log.Warn(ctx, "credential watch read failed", "error", err)
				continue
			}
			if tok == c.lastSeenToken() {
				continue
			}

			c.rememberToken(tok)
			if tok == "" {
				c.log.Info(ctx, "credential removed externally, logging out")
				c.resetSession()
				continue
			}
			c.log.Info(ctx, "credential changed externally, refreshing session")
			c.Bootstrap(ctx)

		case <-ctx.Done():
			return
		}
	}
}
