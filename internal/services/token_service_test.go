package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.GenerateToken("dwisneski@csumb.edu")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dwisneski@csumb.edu", email)
}

func TestTokenValidationFailures(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	// signed with a different secret
	other := NewTokenService("other-secret", time.Hour)
	token, err := other.GenerateToken("dwisneski@csumb.edu")
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)

	// expired
	expired := NewTokenService("test-secret", -time.Hour)
	token, err = expired.GenerateToken("dwisneski@csumb.edu")
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
