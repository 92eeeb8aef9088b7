// Package token owns the persisted bearer credential. Store is the single
// writer for both the persisted value and every registered Authorization
// header target — no other component may touch either.
package token

import (
	"context"

	"github.com/vortextv/vortexcli/internal/client/repositories/metadata"
	"github.com/vortextv/vortexcli/internal/common"
	"github.com/vortextv/vortexcli/internal/logging"
)

// HeaderTarget is an outbound-header sink kept in sync with the credential:
// the API client's header provider and the process-wide shared header.
type HeaderTarget interface {
	ApplyAuthHeader(token string)
	RemoveAuthHeader()
}

type Store struct {
	repo    metadata.Repository
	targets []HeaderTarget
	log     logging.Logger
}

func NewStore(repo metadata.Repository, log logging.Logger, targets ...HeaderTarget) *Store {
	return &Store{repo: repo, targets: targets, log: log}
}

// RegisterTarget adds another header sink. Targets added after a credential
// was stored should be followed by a Sync call.
func (s *Store) RegisterTarget(t HeaderTarget) {
	s.targets = append(s.targets, t)
}

// Get returns the persisted token, or the empty string when absent.
func (s *Store) Get(ctx context.Context) (string, error) {
	value, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// Set persists the token and then updates every header target. The persist
// completes before any header is touched, so a request issued right after
// Set returns can never observe a header without a matching stored
// credential. Returns false for an empty token or a storage failure.
func (s *Store) Set(ctx context.Context, tok string) bool {
	if tok == "" {
		s.log.Warn(ctx, "attempted to store empty token")
		return false
	}

	if err := s.repo.Set(ctx, common.TokenStorageKey, []byte(tok)); err != nil {
		s.log.Error(ctx, "failed to persist token", "error", err)
		return false
	}

	for _, t := range s.targets {
		t.ApplyAuthHeader(tok)
	}
	s.log.Debug(ctx, "token stored and headers set")
	return true
}

// Clear removes the persisted token and strips the header from every target.
func (s *Store) Clear(ctx context.Context) bool {
	if err := s.repo.Delete(ctx, common.TokenStorageKey); err != nil {
		s.log.Error(ctx, "failed to clear token", "error", err)
		return false
	}

	for _, t := range s.targets {
		t.RemoveAuthHeader()
	}
	s.log.Debug(ctx, "auth token cleared")
	return true
}

// Sync re-applies the persisted token (or its absence) to every header
// target. Defensive: covers targets constructed after the token was written.
func (s *Store) Sync(ctx context.Context) error {
	tok, err := s.Get(ctx)
	if err != nil {
		return err
	}

	if tok == "" {
		for _, t := range s.targets {
			t.RemoveAuthHeader()
		}
		return nil
	}
	for _, t := range s.targets {
		t.ApplyAuthHeader(tok)
	}
	return nil
}
