package services

import (
	"testing"

	"github.com/ghostblade1342/olimpiada--inf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(db, "test-secret"), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, db := newTestAuthService(t)

	user, token, err := svc.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, 1000, user.Rating)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	var stats models.UserStats
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&stats).Error)

	logged, token, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login("alice", "wrongpass")
	assert.EqualError(t, err, "invalid credentials")

	_, _, err = svc.Login("nobody", "secret123")
	assert.EqualError(t, err, "invalid credentials")
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, _, err := svc.Register("alice", "", "short")
	assert.EqualError(t, err, "password must be at least 6 characters")

	_, _, err = svc.Register("alice", "", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register("alice", "", "secret123")
	assert.EqualError(t, err, "username already taken")

	_, _, err = svc.Register("bob", "shared@example.com", "secret123")
	require.NoError(t, err)
	_, _, err = svc.Register("carol", "shared@example.com", "secret123")
	assert.EqualError(t, err, "email already registered")
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	_, err = svc.ValidateToken("not.a.token")
	assert.EqualError(t, err, "invalid token")

	other := NewAuthService(newTestDB(t), "other-secret")
	_, err = other.ValidateToken(token)
	assert.EqualError(t, err, "invalid token", "token signed with a different secret")
}

func TestIsAdmin(t *testing.T) {
	svc, db := newTestAuthService(t)

	admin := models.User{Username: "root", PasswordHash: "x", Role: models.RoleAdmin, Rating: 1000, Level: 1}
	plain := models.User{Username: "user", PasswordHash: "x", Role: models.RoleUser, Rating: 1000, Level: 1}
	require.NoError(t, db.Create(&admin).Error)
	require.NoError(t, db.Create(&plain).Error)

	assert.True(t, svc.IsAdmin(admin.ID))
	assert.False(t, svc.IsAdmin(plain.ID))
	assert.False(t, svc.IsAdmin(99999))
}
