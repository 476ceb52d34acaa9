package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/model"
	"planner/testutil"
)

func newTestSessions() (*SessionManager, *testutil.Clock) {
	m := NewSessionManager("test-secret", 720*time.Hour, 24*time.Hour)
	clock := testutil.NewClock(testNow)
	m.SetClock(clock.Now)
	return m, clock
}

var sessionUser = &model.User{UserID: "u1", Email: "a@example.com", Name: "Alice"}

func TestSessionIssueAndParse(t *testing.T) {
	m, _ := newTestSessions()

	token, expiresAt, err := m.Issue(sessionUser)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(720*time.Hour), expiresAt.UTC())

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, sessionIssuer, claims.Issuer)
}

func TestSessionExpires(t *testing.T) {
	m, clock := newTestSessions()
	token, _, err := m.Issue(sessionUser)
	require.NoError(t, err)

	clock.Advance(721 * time.Hour)
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSessionRejectsForeignSignature(t *testing.T) {
	m, _ := newTestSessions()
	other := NewSessionManager("other-secret", time.Hour, 0)
	other.SetClock(func() time.Time { return testNow })

	token, _, err := other.Issue(sessionUser)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSessionNeedsRefresh(t *testing.T) {
	m, clock := newTestSessions()
	token, _, err := m.Issue(sessionUser)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.False(t, m.NeedsRefresh(claims))

	clock.Advance(25 * time.Hour)
	claims, err = m.Parse(token)
	require.NoError(t, err)
	assert.True(t, m.NeedsRefresh(claims))
}
