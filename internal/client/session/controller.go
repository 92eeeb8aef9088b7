package session

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/vortextv/vortexcli/internal/client/api"
	"github.com/vortextv/vortexcli/internal/client/config"
	"github.com/vortextv/vortexcli/internal/client/models"
	"github.com/vortextv/vortexcli/internal/client/repositories/snapshot"
	"github.com/vortextv/vortexcli/internal/client/token"
	"github.com/vortextv/vortexcli/internal/common"
	"github.com/vortextv/vortexcli/internal/logging"
)

// Controller owns the session: it is the only component that logs users in
// and out, refreshes entitlement state, and mints/redeems access codes.
// Route guards and pages read session state through the Store and call back
// into the controller; they never touch the credential directly.
type Controller struct {
	api       api.Client
	tokens    *token.Store
	snapshots *snapshot.Cache
	sessions  *Store
	nav       Navigator
	cfg       *config.Config
	log       logging.Logger

	// now is a test seam for entitlement expiry decisions.
	now func() time.Time

	mu       sync.Mutex
	lastSeen string
}

func NewController(
	apiClient api.Client,
	tokens *token.Store,
	snapshots *snapshot.Cache,
	sessions *Store,
	nav Navigator,
	cfg *config.Config,
	log logging.Logger,
) *Controller {
	return &Controller{
		api:       apiClient,
		tokens:    tokens,
		snapshots: snapshots,
		sessions:  sessions,
		nav:       nav,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Sessions exposes the observable session store.
func (c *Controller) Sessions() *Store {
	return c.sessions
}

func (c *Controller) begin() {
	c.sessions.update(func(s *Session) {
		s.IsLoading = true
		s.Error = ""
		s.Success = ""
	})
}

func (c *Controller) finish() {
	c.sessions.update(func(s *Session) { s.IsLoading = false })
}

func (c *Controller) fail(ctx context.Context, msg string, err error) {
	if err != nil {
		c.log.Error(ctx, msg, "error", err)
	} else {
		c.log.Error(ctx, msg)
	}
	c.sessions.update(func(s *Session) { s.Error = msg })
}

func (c *Controller) succeed(msg string) {
	c.sessions.update(func(s *Session) { s.Success = msg })
}

func (c *Controller) rememberToken(tok string) {
	c.mu.Lock()
	c.lastSeen = tok
	c.mu.Unlock()
}

func (c *Controller) lastSeenToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

// Login authenticates and hydrates the session. Success is defined by
// receiving a usable token; the follow-up user-detail fetch is best-effort
// and falls back to the fields embedded in the login response.
func (c *Controller) Login(ctx context.Context, creds models.Credentials) bool {
	c.begin()
	defer c.finish()

	// Drop any stale credential so the login request carries no old bearer.
	c.tokens.Clear(ctx)
	c.rememberToken("")

	cctx, cancel := context.WithTimeout(ctx, c.cfg.AuthTimeout)
	defer cancel()

	resp, err := c.api.Login(cctx, creds)
	if err != nil {
		c.fail(ctx, api.ErrorMessage(err, "Login failed"), err)
		return false
	}

	if resp.Token == "" {
		c.fail(ctx, "Authentication failed: no token received", common.ErrNoToken)
		return false
	}

	// Store-then-use: the credential is persisted and the headers updated
	// before any authenticated request goes out.
	if !c.tokens.Set(ctx, resp.Token) {
		c.fail(ctx, "Failed to store credentials", nil)
		return false
	}
	c.rememberToken(resp.Token)

	user, uerr := c.api.CurrentUser(cctx)
	if uerr != nil {
		// Still logged in: we hold a valid token. Degrade to the login
		// response fields instead of failing the whole login.
		c.log.Warn(ctx, "user fetch after login failed, using login response fields", "error", uerr)
		user = resp.FallbackUser()
	}

	c.sessions.update(func(s *Session) {
		s.User = user
		s.IsAuthenticated = true
		s.Error = ""
	})
	c.log.Info(ctx, "login successful", "user_id", user.ID, "role", user.Role)

	if user.Role.IsStaff() {
		c.nav.NavigateTo(common.RouteAdmin)
	} else {
		c.nav.NavigateTo(common.RouteBrowse)
	}
	return true
}

// Register creates an account and logs the new user in. New users have no
// entitlement yet, so navigation lands on the subscription selection page.
func (c *Controller) Register(ctx context.Context, reg models.Registration) bool {
	c.begin()
	defer c.finish()

	c.tokens.Clear(ctx)
	c.rememberToken("")

	cctx, cancel := context.WithTimeout(ctx, c.cfg.AuthTimeout)
	defer cancel()

	resp, err := c.api.Register(cctx, reg)
	if err != nil {
		c.fail(ctx, api.ErrorMessage(err, "Registration failed"), err)
		return false
	}

	if resp.Token == "" {
		c.fail(ctx, "Registration successful but no authentication token received", common.ErrNoToken)
		return false
	}

	if !c.tokens.Set(ctx, resp.Token) {
		c.fail(ctx, "Failed to store credentials", nil)
		return false
	}
	c.rememberToken(resp.Token)

	user := resp.FallbackUser()
	if user.Username == "" {
		user.Username = reg.Username
	}
	if user.Email == "" {
		user.Email = reg.Email
	}

	c.sessions.update(func(s *Session) {
		s.User = user
		s.IsAuthenticated = true
		s.Error = ""
	})
	c.log.Info(ctx, "registration successful", "user_id", user.ID)

	c.nav.NavigateTo(common.RouteSubscriptions)
	return true
}

// Logout destroys the session, credential and cached subscription data and
// returns to the login page. The snapshot must go too: the next login may be
// a different account and must not inherit this one's entitlement cache.
func (c *Controller) Logout(ctx context.Context) {
	c.resetSession()
	c.tokens.Clear(ctx)
	if err := c.snapshots.Clear(ctx); err != nil {
		c.log.Warn(ctx, "failed to clear subscription cache", "error", err)
	}
	c.rememberToken("")
	c.nav.NavigateTo(common.RouteLogin)
}

// HandleUnauthorized reacts to a 401 on a non-login endpoint: the credential
// is dead, so drop it and the session. No navigation — the next guard
// evaluation redirects.
func (c *Controller) HandleUnauthorized(ctx context.Context) {
	c.log.Warn(ctx, "authentication rejected by server, clearing credentials")
	c.resetSession()
	c.tokens.Clear(ctx)
	if err := c.snapshots.Clear(ctx); err != nil {
		c.log.Warn(ctx, "failed to clear subscription cache", "error", err)
	}
	c.rememberToken("")
}

func (c *Controller) resetSession() {
	c.sessions.update(func(s *Session) {
		s.User = nil
		s.IsAuthenticated = false
		s.IsLoading = false
		s.Error = ""
		s.Success = ""
	})
}

// CheckSubscription fetches authoritative entitlement state and merges it
// into the session user. Returns the role-agnostic entitlement boolean:
// an active subscription or a valid access code. On total failure the
// cached snapshot (if any) is kept on the user for display continuity, but
// the result is false — the cache is never promoted to authoritative.
func (c *Controller) CheckSubscription(ctx context.Context) bool {
	cur := c.sessions.Current()
	if !cur.IsAuthenticated {
		c.log.Debug(ctx, "not authenticated, skipping subscription check")
		return false
	}

	var status *models.SubscriptionStatus
	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		cctx, cancel := context.WithTimeout(ctx, c.cfg.AuthTimeout)
		defer cancel()

		st, err := c.api.CheckSubscription(cctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		status = st
		return nil
	})
	if err != nil {
		c.log.Error(ctx, "subscription check failed", "error", err)
		if cached := c.snapshots.Load(ctx); cached != nil {
			c.sessions.update(func(s *Session) {
				if s.User != nil {
					s.User.ApplyStatus(cached)
				}
			})
		}
		return false
	}

	if err := c.snapshots.Save(ctx, status); err != nil {
		c.log.Warn(ctx, "failed to cache subscription data", "error", err)
	}

	c.sessions.update(func(s *Session) {
		if s.User != nil {
			s.User.ApplyStatus(status)
		}
	})

	return status.Entitled(c.now())
}

// GenerateAccessCode mints a sharable access code on the user's
// subscription. Success is defined by the business-level success flag in
// the response body — HTTP 200 alone is not success. Returns the full
// payload on success, nil otherwise.
func (c *Controller) GenerateAccessCode(ctx context.Context) *models.GenerateCodeResult {
	c.begin()
	defer c.finish()

	cur := c.sessions.Current()
	if !cur.IsAuthenticated {
		c.fail(ctx, "Authentication required", common.ErrNotAuthenticated)
		return nil
	}
	if cur.User == nil {
		c.fail(ctx, "User data unavailable", nil)
		return nil
	}
	if !cur.User.HasSubscription {
		c.fail(ctx, "No active subscription found", nil)
		return nil
	}

	// Hard client-side limit, independent of the transport timeout: the UI
	// must unblock even if the transport never gives up.
	cctx, cancel := context.WithTimeout(ctx, c.cfg.CodeGenTimeout)
	defer cancel()

	res, err := c.api.GenerateAccessCode(cctx)
	if err != nil {
		c.fail(ctx, api.ErrorMessage(err, "Failed to generate access code"), err)
		return nil
	}

	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "Failed to generate access code"
		}
		c.fail(ctx, msg, nil)
		return nil
	}

	c.sessions.update(func(s *Session) {
		if s.User != nil {
			s.User.RemainingCodes = res.RemainingCodes
			s.User.GeneratedCodes = res.GeneratedCodes
		}
	})
	c.succeed("Access code generated: " + res.Code)
	return res
}

// RedeemAccessCode redeems a shared code for the current user. On success
// the entitlement state is refreshed before returning, so there is no
// window where the UI still shows the old state.
func (c *Controller) RedeemAccessCode(ctx context.Context, code string) *models.AccessCodeDetails {
	c.begin()
	defer c.finish()

	cur := c.sessions.Current()
	if !cur.IsAuthenticated {
		c.fail(ctx, "Authentication required", common.ErrNotAuthenticated)
		return nil
	}

	cctx, cancel := context.WithTimeout(ctx, c.cfg.AuthTimeout)
	defer cancel()

	res, err := c.api.RedeemAccessCode(cctx, code)
	if err != nil {
		c.fail(ctx, api.ErrorMessage(err, "Failed to redeem access code"), err)
		return nil
	}

	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "Failed to redeem access code"
		}
		c.fail(ctx, msg, nil)
		return nil
	}

	c.succeed("Access code redeemed successfully")
	c.CheckSubscription(ctx)
	return res.AccessCodeDetails
}

// AccessCodes lists the codes the current user has generated. Codes only
// exist for subscribers, so a missing subscription short-circuits without a
// network call.
func (c *Controller) AccessCodes(ctx context.Context) models.AccessCodeList {
	cur := c.sessions.Current()
	if !cur.IsAuthenticated {
		return models.AccessCodeList{Codes: []models.AccessCode{}, Error: "Authentication required"}
	}
	if cur.User == nil || !cur.User.HasSubscription {
		return models.AccessCodeList{Codes: []models.AccessCode{}, Error: "No active subscription"}
	}

	cctx, cancel := context.WithTimeout(ctx, c.cfg.AuthTimeout)
	defer cancel()

	codes, err := c.api.AccessCodes(cctx)
	if err != nil {
		c.log.Error(ctx, "failed to fetch access codes", "error", err)
		return models.AccessCodeList{
			Codes: []models.AccessCode{},
			Error: api.ErrorMessage(err, "Error fetching access codes"),
		}
	}
	if codes == nil {
		codes = []models.AccessCode{}
	}
	return models.AccessCodeList{Success: true, Codes: codes}
}

// Plans lists the available subscription plans.
func (c *Controller) Plans(ctx context.Context) ([]models.Plan, error) {
	cctx, cancel := context.WithTimeout(ctx, c.cfg.AuthTimeout)
	defer cancel()
	return c.api.Plans(cctx)
}

// Subscribe purchases a plan for the current user and refreshes entitlement
// state.
func (c *Controller) Subscribe(ctx context.Context, planID int64) bool {
	c.begin()
	defer c.finish()

	cur := c.sessions.Current()
	if !cur.IsAuthenticated {
		c.fail(ctx, "Authentication required", common.ErrNotAuthenticated)
		return false
	}

	cctx, cancel := context.WithTimeout(ctx, c.cfg.AuthTimeout)
	defer cancel()

	if err := c.api.Subscribe(cctx, planID); err != nil {
		c.fail(ctx, api.ErrorMessage(err, "Failed to create subscription"), err)
		return false
	}

	c.succeed("Subscription created successfully")
	c.CheckSubscription(ctx)
	return true
}

// CancelSubscription cancels the current user's subscription and refreshes
// entitlement state.
func (c *Controller) CancelSubscription(ctx context.Context) bool {
	c.begin()
	defer c.finish()

	cur := c.sessions.Current()
	if !cur.IsAuthenticated {
		c.fail(ctx, "Authentication required", common.ErrNotAuthenticated)
		return false
	}

	cctx, cancel := context.WithTimeout(ctx, c.cfg.AuthTimeout)
	defer cancel()

	if err := c.api.CancelSubscription(cctx); err != nil {
		c.fail(ctx, api.ErrorMessage(err, "Failed to cancel subscription"), err)
		return false
	}

	c.succeed("Subscription cancelled successfully")
	c.CheckSubscription(ctx)
	return true
}

// UpdatePassword changes the current user's password.
func (c *Controller) UpdatePassword(ctx context.Context, currentPassword, newPassword string) bool {
	c.begin()
	defer c.finish()

	cur := c.sessions.Current()
	if !cur.IsAuthenticated {
		c.fail(ctx, "Authentication required", common.ErrNotAuthenticated)
		return false
	}
	if len(newPassword) < 8 {
		c.fail(ctx, "New password must be at least 8 characters", nil)
		return false
	}

	cctx, cancel := context.WithTimeout(ctx, c.cfg.AuthTimeout)
	defer cancel()

	if err := c.api.UpdatePassword(cctx, currentPassword, newPassword); err != nil {
		c.fail(ctx, api.ErrorMessage(err, "Failed to update password"), err)
		return false
	}

	c.succeed("Password updated successfully")
	return true
}
