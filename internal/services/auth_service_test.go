package services

import (
	"bodylover-backend/internal/database"
	"bodylover-backend/internal/models"
	"bodylover-backend/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	setupTestDB(t)

	user := createUser(t, "alice", 0)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	assert.Equal(t, 0, user.Points)
	assert.Equal(t, 1, user.Version)

	_, err := RegisterUser(models.User{AccountID: "alice", Username: "another alice", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestRegisterUserAllowsSharedDisplayName(t *testing.T) {
	setupTestDB(t)

	_, err := RegisterUser(models.User{AccountID: "a1", Username: "Grandpa", Password: "pw"})
	require.NoError(t, err)
	_, err = RegisterUser(models.User{AccountID: "a2", Username: "Grandpa", Password: "pw"})
	assert.NoError(t, err)
}

func TestLoginUser(t *testing.T) {
	setupTestDB(t)
	created := createUser(t, "bob", 0)

	token, user, err := LoginUser("bob", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, float64(created.ID), claims["user_id"])
	assert.Equal(t, "bob", claims["account_id"])

	_, _, err = LoginUser("bob", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = LoginUser("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDenylist(t *testing.T) {
	mr := setupTestDB(t)

	listed, err := IsDenylisted("token-a")
	require.NoError(t, err)
	assert.False(t, listed)

	require.NoError(t, AddToDenylist("token-a", utils.TokenLifetime))
	assert.True(t, mr.Exists(denylistPrefix+"token-a"))

	listed, err = IsDenylisted("token-a")
	require.NoError(t, err)
	assert.True(t, listed)
}

func TestDenylistWithoutRedis(t *testing.T) {
	setupTestDB(t)
	database.RedisClient = nil

	listed, err := IsDenylisted("token-a")
	assert.NoError(t, err)
	assert.False(t, listed)

	assert.ErrorIs(t, AddToDenylist("token-a", utils.TokenLifetime), ErrDenylistUnavailable)
}
