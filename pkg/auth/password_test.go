package auth_test

import (
	"testing"

	"go-skillstack-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, auth.CheckPassword(hash, "hunter22"))
	assert.False(t, auth.CheckPassword(hash, "hunter23"))
	assert.False(t, auth.CheckPassword("", "hunter22"))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	h1, err := auth.HashPassword("same-password", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := auth.HashPassword("same-password", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
