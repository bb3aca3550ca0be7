package repository

import (
	"testing"

	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryFindFiltersDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	user := seedUser(t, db, entity.RoleIDAdmin, "admin@example.com")

	found, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.Email, found.Email)

	found, err = repo.FindByEmail(db, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)

	affected, err := repo.SoftDelete(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// Default reads no longer see the row, and missing is not an error
	found, err = repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = repo.FindByEmail(db, "admin@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepositoryIncludeDeletedBypass(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	user := seedUser(t, db, entity.RoleIDDoctor, "doctor@example.com")

	_, err := repo.SoftDelete(db, user.ID)
	require.NoError(t, err)

	// The bypass variants still see the soft-deleted row
	exists, err := repo.ExistsIncludeDeleted(db, user.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.FindByEmailIncludeDeleted(db, "doctor@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.IsDeleted)
}

func TestUserRepositorySoftDeleteIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository()

	user := seedUser(t, db, entity.RoleIDPatient, "patient@example.com")

	affected, err := repo.SoftDelete(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// A second delete touches nothing; callers translate 0 to not found
	affected, err = repo.SoftDelete(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	// Deleting a row that never existed behaves the same way
	affected, err = repo.SoftDelete(db, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
