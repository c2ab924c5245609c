package auth_test

import (
	"testing"
	"time"

	"go-skillstack-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "skillstack", time.Hour)

	token, err := tokens.Generate(42, "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, err := tokens.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "jane@example.com", email)
}

func TestTokenExpiry(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "skillstack", -time.Minute)

	token, err := tokens.Generate(42, "jane@example.com")
	require.NoError(t, err)

	_, _, err = tokens.Verify(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", "skillstack", time.Hour)
	verifier := auth.NewTokenManager("secret-b", "skillstack", time.Hour)

	token, err := issuer.Generate(42, "jane@example.com")
	require.NoError(t, err)

	_, _, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestTokenWrongIssuer(t *testing.T) {
	issuer := auth.NewTokenManager("secret", "someone-else", time.Hour)
	verifier := auth.NewTokenManager("secret", "skillstack", time.Hour)

	token, err := issuer.Generate(42, "jane@example.com")
	require.NoError(t, err)

	_, _, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "skillstack", time.Hour)

	_, _, err := tokens.Verify("not.a.token")
	assert.Error(t, err)
}
