package lib

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	id := NewSessionId()

	token, exp, err := IssueSessionToken(id, "secret", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)

	claims, err := ParseSessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, id, claims.Sub)
	assert.NotEqual(t, uuid.Nil, claims.Jti)
	assert.Equal(t, exp.Unix(), claims.Exp.Unix())
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, _, err := IssueSessionToken(NewSessionId(), "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "other")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_Expired(t *testing.T) {
	token, _, err := IssueSessionToken(NewSessionId(), "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "secret")
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionToken_Garbage(t *testing.T) {
	_, err := ParseSessionToken("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewRequestId_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := NewRequestId()
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		assert.False(t, seen[id], "duplicate request id %s", id)
		seen[id] = true
	}
}
