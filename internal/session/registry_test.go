package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueAndResolve(t *testing.T) {
	r := NewRegistry()

	token, err := r.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, ok := r.Resolve(token)
	require.True(t, ok)
	require.Equal(t, "alice", username)
}

func TestIssueTokensAreUnique(t *testing.T) {
	r := NewRegistry()
	seen := make(map[string]bool)

	for range 100 {
		token, err := r.Issue("alice")
		require.NoError(t, err)
		require.False(t, seen[token], "duplicate token issued")
		seen[token] = true
	}
}

func TestResolveUnknownToken(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Resolve("not-a-token")
	require.False(t, ok)
}

func TestRevoke(t *testing.T) {
	r := NewRegistry()

	token, err := r.Issue("alice")
	require.NoError(t, err)

	require.True(t, r.Revoke(token))

	_, ok := r.Resolve(token)
	require.False(t, ok)

	require.False(t, r.Revoke(token), "second revoke is a no-op")
}
