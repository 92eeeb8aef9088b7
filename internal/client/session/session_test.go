package session

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vortextv/vortexcli/internal/client/models"
)

func TestStoreStartsLoading(t *testing.T) {
	s := NewStore()
	require.True(t, s.Current().IsLoading)
	require.False(t, s.Current().IsAuthenticated)
}

func TestStoreSubscribe(t *testing.T) {
	s := NewStore()

	var seen []Session
	unsub := s.Subscribe(func(sess Session) {
		seen = append(seen, sess)
	})

	s.update(func(sess *Session) {
		sess.User = &models.User{ID: 1}
		sess.IsAuthenticated = true
		sess.IsLoading = false
	})

	require.Len(t, seen, 1)
	require.True(t, seen[0].IsAuthenticated)

	unsub()

	s.update(func(sess *Session) { sess.IsAuthenticated = false })
	require.Len(t, seen, 1, "unsubscribed listener must not be called")

	// The store itself moved on.
	require.False(t, s.Current().IsAuthenticated)
}

func TestStoreUpdateCopies(t *testing.T) {
	s := NewStore()
	s.update(func(sess *Session) {
		sess.User = &models.User{ID: 1, Username: "alice"}
		sess.IsAuthenticated = true
	})

	snap := s.Current()
	s.update(func(sess *Session) { sess.User = nil; sess.IsAuthenticated = false })

	// A previously taken snapshot is unaffected by later transitions.
	require.NotNil(t, snap.User)
	require.Equal(t, "alice", snap.User.Username)
}
