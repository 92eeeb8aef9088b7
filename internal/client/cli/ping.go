package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/vortextv/vortexcli/internal/client/api"
)

// Ping probes the backend health endpoint. It deliberately uses a raw
// client outside the API surface, so it also proves the shared auth header
// wiring works for ad-hoc requests.
func (a *App) Ping(ctx context.Context) error {
	hc := api.NewRawClient(5 * time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.config.APIBaseURL+"/health", nil)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		printlnFn("Server unreachable:", err.Error())
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		printlnFn("Server answered with status", resp.StatusCode)
		return nil
	}

	printlnFn("Server is up,", time.Since(start).Round(time.Millisecond).String())
	return nil
}
