package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vortextv/vortexcli/internal/client/models"
	"github.com/vortextv/vortexcli/internal/common"
)

func TestBootstrapNoToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &fakeAPI{})

	f.controller.Bootstrap(ctx)

	s := f.sessions.Current()
	require.False(t, s.IsAuthenticated)
	require.False(t, s.IsLoading)
	require.Nil(t, s.User)
}

func TestBootstrapGarbageTokenIsPurged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &fakeAPI{})
	require.NoError(t, f.repo.Set(ctx, common.TokenStorageKey, []byte("not-a-jwt")))

	f.controller.Bootstrap(ctx)

	s := f.sessions.Current()
	require.False(t, s.IsAuthenticated)
	require.False(t, s.IsLoading)
	require.Empty(t, f.repo.data[common.TokenStorageKey])
}

func TestBootstrapExpiredTokenIsPurged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &fakeAPI{})

	tok := signedToken(t, 42, "user", time.Now().Add(-time.Hour))
	require.NoError(t, f.repo.Set(ctx, common.TokenStorageKey, []byte(tok)))

	f.controller.Bootstrap(ctx)

	s := f.sessions.Current()
	require.False(t, s.IsAuthenticated)
	require.False(t, s.IsLoading)
	require.Empty(t, f.repo.data[common.TokenStorageKey])
	require.Empty(t, f.header.Value())
}

func TestBootstrapRestoresSession(t *testing.T) {
	ctx := context.Background()

	apiClient := &fakeAPI{
		userFn: func(ctx context.Context) (*models.User, error) {
			return &models.User{ID: 42, Username: "alice", Role: models.RoleUser}, nil
		},
	}
	f := newFixture(t, apiClient)

	tok := signedToken(t, 42, "user", time.Now().Add(time.Hour))
	require.NoError(t, f.repo.Set(ctx, common.TokenStorageKey, []byte(tok)))

	f.controller.Bootstrap(ctx)

	s := f.sessions.Current()
	require.True(t, s.IsAuthenticated)
	require.False(t, s.IsLoading)
	require.Equal(t, "alice", s.User.Username)

	// Headers re-synced from the persisted credential.
	require.Equal(t, "Bearer "+tok, f.header.Value())
}

func TestBootstrapRejectedTokenClearsEverything(t *testing.T) {
	ctx := context.Background()

	apiClient := &fakeAPI{
		userFn: func(ctx context.Context) (*models.User, error) {
			return nil, common.ErrUnauthorized
		},
	}
	f := newFixture(t, apiClient)

	tok := signedToken(t, 42, "user", time.Now().Add(time.Hour))
	require.NoError(t, f.repo.Set(ctx, common.TokenStorageKey, []byte(tok)))

	f.controller.Bootstrap(ctx)

	s := f.sessions.Current()
	require.False(t, s.IsAuthenticated)
	require.False(t, s.IsLoading)
	require.Empty(t, f.repo.data[common.TokenStorageKey])
}

func TestBootstrapFetchFailureFallsBackToClaims(t *testing.T) {
	ctx := context.Background()

	apiClient := &fakeAPI{
		userFn: func(ctx context.Context) (*models.User, error) {
			return nil, errors.New("backend down")
		},
	}
	f := newFixture(t, apiClient)

	// A superadmin must keep staff powers even when the backend is down —
	// the role rides in the token claims.
	tok := signedToken(t, 7, "superadmin", time.Now().Add(time.Hour))
	require.NoError(t, f.repo.Set(ctx, common.TokenStorageKey, []byte(tok)))

	f.controller.Bootstrap(ctx)

	s := f.sessions.Current()
	require.True(t, s.IsAuthenticated)
	require.False(t, s.IsLoading)
	require.Equal(t, int64(7), s.User.ID)
	require.Equal(t, models.RoleSuperAdmin, s.User.Role)
}

func TestBootstrapMergesCachedSnapshot(t *testing.T) {
	ctx := context.Background()

	apiClient := &fakeAPI{
		userFn: func(ctx context.Context) (*models.User, error) {
			return nil, errors.New("backend down")
		},
	}
	f := newFixture(t, apiClient)

	tok := signedToken(t, 42, "user", time.Now().Add(time.Hour))
	require.NoError(t, f.repo.Set(ctx, common.TokenStorageKey, []byte(tok)))

	cached := activeSubscription(time.Now().Add(24 * time.Hour))
	data, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, f.repo.Set(ctx, common.SubscriptionCacheKey, data))

	f.controller.Bootstrap(ctx)

	s := f.sessions.Current()
	require.True(t, s.IsAuthenticated)
	require.True(t, s.User.HasSubscription)
}

func TestWatchReactsToExternalChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	apiClient := &fakeAPI{
		userFn: func(ctx context.Context) (*models.User, error) {
			return &models.User{ID: 42, Username: "alice", Role: models.RoleUser}, nil
		},
	}
	f := newFixture(t, apiClient)

	f.controller.Bootstrap(ctx)
	require.False(t, f.sessions.Current().IsAuthenticated)

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.controller.Watch(ctx, 10*time.Millisecond)
	}()

	// Another process logs in: the watcher picks up the new credential.
	tok := signedToken(t, 42, "user", time.Now().Add(time.Hour))
	require.NoError(t, f.repo.Set(context.Background(), common.TokenStorageKey, []byte(tok)))

	require.Eventually(t, func() bool {
		return f.sessions.Current().IsAuthenticated
	}, 2*time.Second, 10*time.Millisecond)

	// And logs out again: immediate local logout, no network.
	require.NoError(t, f.repo.Delete(context.Background(), common.TokenStorageKey))

	require.Eventually(t, func() bool {
		return !f.sessions.Current().IsAuthenticated
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
