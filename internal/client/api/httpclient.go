package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vortextv/vortexcli/internal/client/models"
	"github.com/vortextv/vortexcli/internal/common"
	"github.com/vortextv/vortexcli/internal/logging"
)

// HTTPClient is the REST implementation of Client.
//
// Its Authorization header lives in a Header provider that the credential
// store writes; the client itself never mutates it. A 401 on any endpoint
// except login/register invokes the unauthorized handler so the session
// layer can drop the dead credential.
type HTTPClient struct {
	baseURL        string
	hc             *http.Client
	header         *Header
	onUnauthorized func()
	log            logging.Logger
	debug          bool
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger, debug bool) *HTTPClient {
	header := NewHeader()
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		header:  header,
		hc: &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{header: header},
		},
		log:   log,
		debug: debug,
	}
}

// Header exposes this client's auth header target for registration with the
// credential store.
func (c *HTTPClient) Header() *Header {
	return c.header
}

// SetUnauthorizedHandler installs the hook invoked on a 401 from any
// non-login endpoint.
func (c *HTTPClient) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, extra http.Header) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	if c.debug {
		c.log.Debug(ctx, "api request", "method", method, "path", path)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if c.debug {
			c.log.Debug(ctx, "api transport failure", "method", method, "path", path, "error", err)
		}
		return fmt.Errorf("%w: %v", common.ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if c.debug {
		c.log.Debug(ctx, "api response", "method", method, "path", path, "status", resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		skip, _ := ctx.Value(skipAuthKey{}).(bool)
		// A 401 from login itself is just a bad password; there is no
		// credential to drop.
		if !skip && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		if msg := eb.text(); msg != "" {
			return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
		}
		return common.ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		return &APIError{StatusCode: resp.StatusCode, Message: eb.text()}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(withSkipAuth(ctx), http.MethodPost, "/auth/login", creds, &resp, nil); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(withSkipAuth(ctx), http.MethodPost, "/auth/register", reg, &resp, nil); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) CheckSubscription(ctx context.Context) (*models.SubscriptionStatus, error) {
	var st models.SubscriptionStatus
	if err := c.do(ctx, http.MethodGet, "/subscriptions/check", nil, &st, nil); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) GenerateAccessCode(ctx context.Context) (*models.GenerateCodeResult, error) {
	var res models.GenerateCodeResult
	extra := http.Header{"Cache-Control": []string{"no-cache"}}
	if err := c.do(ctx, http.MethodPost, "/access/generate", struct{}{}, &res, extra); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) RedeemAccessCode(ctx context.Context, code string) (*models.RedeemResult, error) {
	var res models.RedeemResult
	body := map[string]string{"code": code}
	if err := c.do(ctx, http.MethodPost, "/access/redeem", body, &res, nil); err != nil {
		return nil, err
	}
	return &res, nil
}

// AccessCodes tolerates both response shapes the backend has used: a bare
// array and a {"codes": [...]} wrapper.
func (c *HTTPClient) AccessCodes(ctx context.Context) ([]models.AccessCode, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/access/me", nil, &raw, nil); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var codes []models.AccessCode
		if err := json.Unmarshal(trimmed, &codes); err != nil {
			return nil, fmt.Errorf("failed to decode access codes: %w", err)
		}
		return codes, nil
	}

	var wrapper struct {
		Codes []models.AccessCode `json:"codes"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode access codes: %w", err)
	}
	return wrapper.Codes, nil
}

func (c *HTTPClient) Plans(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if err := c.do(ctx, http.MethodGet, "/subscriptions/plans", nil, &plans, nil); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *HTTPClient) Subscribe(ctx context.Context, planID int64) error {
	body := map[string]int64{"plan_id": planID}
	return c.do(ctx, http.MethodPost, "/subscriptions", body, nil, nil)
}

func (c *HTTPClient) CancelSubscription(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/subscriptions/me", nil, nil, nil)
}

func (c *HTTPClient) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return c.do(ctx, http.MethodPost, "/auth/update-password", body, nil, nil)
}
