// Package cli is the interactive terminal front end: a REPL dispatching to
// the session controller, with route-guard checks standing in for protected
// pages.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/vortextv/vortexcli/internal/client/api"
	"github.com/vortextv/vortexcli/internal/client/config"
	"github.com/vortextv/vortexcli/internal/client/profile"
	"github.com/vortextv/vortexcli/internal/client/repositories"
	"github.com/vortextv/vortexcli/internal/client/repositories/snapshot"
	"github.com/vortextv/vortexcli/internal/client/session"
	"github.com/vortextv/vortexcli/internal/client/token"
	"github.com/vortextv/vortexcli/internal/common"
	"github.com/vortextv/vortexcli/internal/logging"
)

type App struct {
	config     *config.Config
	repos      *repositories.Repositories
	apiClient  *api.HTTPClient
	controller *session.Controller
	sessions   *session.Store
	profiles   *profile.Reconciler
	log        logging.Logger
	reader     *bufio.Reader

	mu    sync.Mutex
	route string
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault(cfg.Debug)

	repos, err := repositories.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local database: %w", err)
	}

	// The transport timeout stays well under the auth timeout so the
	// controller's retries get a chance to run inside their own deadline.
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.AuthTimeout/3, log, cfg.Debug)

	// Both the API client's header and the process-wide shared header are
	// kept in sync through the single credential store.
	tokens := token.NewStore(repos.Metadata, log, apiClient.Header(), api.SharedHeader)
	snapshots := snapshot.NewCache(repos.Metadata, log)
	sessions := session.NewStore()

	app := &App{
		config:    cfg,
		repos:     repos,
		apiClient: apiClient,
		sessions:  sessions,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		route:     common.RouteLogin,
	}

	app.controller = session.NewController(apiClient, tokens, snapshots, sessions, app, cfg, log)
	app.profiles = profile.NewReconciler(apiClient, snapshots, cfg.AuthTimeout, log)

	apiClient.SetUnauthorizedHandler(func() {
		app.controller.HandleUnauthorized(context.Background())
	})

	return app, nil
}

// NavigateTo implements session.Navigator. The CLI's "navigation" is a
// current-route field plus a line telling the user where they landed.
func (a *App) NavigateTo(route string) {
	a.mu.Lock()
	a.route = route
	a.mu.Unlock()
	printlnFn("-> " + route)
}

func (a *App) currentRoute() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().IsAuthenticated
}

func (a *App) getStatus() string {
	s := a.sessions.Current()
	status := a.currentRoute()
	if s.User != nil {
		status = s.User.Username + " " + status
	}
	return "(" + status + ")"
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to VortexTV CLI (type 'help' for commands)")

	// Restore any persisted session before the first prompt, then keep
	// watching the credential for out-of-band changes.
	a.controller.Bootstrap(ctx)

	go a.controller.Watch(ctx, a.config.TokenRefreshInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	if err := a.apiClient.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close api client", "error", err)
	}
	if err := a.repos.DB.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close database", "error", err)
	}
}
