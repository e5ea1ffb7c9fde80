package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	keys := NewLocalKeys()
	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "bystrodel",
		Audience:   "bystrodel-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
	}, keys)
	require.NoError(t, err)
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.Must(uuid.NewV7())
	sessionID := uuid.Must(uuid.NewV7())

	tok, err := m.IssueAccess(Identity{
		UserID:    userID,
		SessionID: &sessionID,
		Role:      RoleClient,
		Email:     "ivan@example.com",
	})
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, userID, claims.UserID)
	require.NotNil(t, claims.SessionID)
	assert.Equal(t, sessionID, *claims.SessionID)
	assert.Equal(t, RoleClient, claims.Role)
	assert.Equal(t, "ivan@example.com", claims.Email)
	assert.False(t, claims.IsAdmin())
	assert.False(t, claims.IsExpired())
}

func TestVerifyTokenIssuedAfterConstruction(t *testing.T) {
	// The Manager is built once at startup while tokens are issued for
	// the whole process lifetime; a token minted well after New must
	// still verify.
	m := newTestManager(t)

	time.Sleep(1500 * time.Millisecond)

	tok, err := m.IssueAccess(Identity{
		UserID: uuid.Must(uuid.NewV7()),
		Role:   RoleClient,
	})
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.NoError(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Verify("v4.local.not-a-real-token")
	assert.Error(t, err)
}

func TestAdminRoleClaim(t *testing.T) {
	m := newTestManager(t)

	tok, err := m.IssueAccess(Identity{
		UserID: uuid.Must(uuid.NewV7()),
		Role:   RoleAdmin,
	})
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	m1 := newTestManager(t)
	m2 := newTestManager(t)

	tok, err := m1.IssueAccess(Identity{UserID: uuid.Must(uuid.NewV7()), Role: RoleClient})
	require.NoError(t, err)

	_, err = m2.Verify(tok)
	assert.Error(t, err)
}
