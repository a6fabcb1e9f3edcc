package repositories

import (
	"testing"

	"agroyield-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndLookups(t *testing.T) {
	repo := NewUserGormRepository(newTestDB(t))

	u := &entities.User{
		Username:     "grower",
		Email:        "grower@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Create(u))
	require.NotZero(t, u.ID)

	byName, err := repo.GetByUsername("grower")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byEmail, err := repo.GetByEmail("grower@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	repo := NewUserGormRepository(newTestDB(t))

	require.NoError(t, repo.Create(&entities.User{Username: "a", Email: "dup@example.com", PasswordHash: "h"}))
	err := repo.Create(&entities.User{Username: "b", Email: "dup@example.com", PasswordHash: "h"})
	assert.Error(t, err)
}

func TestUserRepository_ResetTokenRoundTrip(t *testing.T) {
	repo := NewUserGormRepository(newTestDB(t))

	u := &entities.User{Username: "grower", Email: "grower@example.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(u))

	_, err := repo.GetByResetToken("")
	assert.ErrorIs(t, err, ErrNotFound, "empty token must never match")

	u.ResetToken = "token-123"
	require.NoError(t, repo.Update(u))

	got, err := repo.GetByResetToken("token-123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got.ResetToken = ""
	got.PasswordHash = "new-hash"
	require.NoError(t, repo.Update(got))

	_, err = repo.GetByResetToken("token-123")
	assert.ErrorIs(t, err, ErrNotFound, "consumed token must stop matching")
}
