package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientProfileRepositoryFindAssignedToDoctor(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientProfileRepository()

	doctor := seedDoctor(t, db, "doc@example.com", "LIC-400")
	otherDoctor := seedDoctor(t, db, "other@example.com", "LIC-401")
	assigned := seedPatient(t, db, "assigned@example.com")
	unassigned := seedPatient(t, db, "unassigned@example.com")

	seedAppointment(t, db, doctor.ID, assigned.ID)
	seedAppointment(t, db, otherDoctor.ID, unassigned.ID)

	profiles, total, err := repo.FindAssignedToDoctor(db, doctor.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, profiles, 1)
	assert.Equal(t, assigned.ID, profiles[0].UserID)
	assert.Equal(t, "assigned@example.com", profiles[0].User.Email)
}

func TestPatientProfileRepositorySoftDeleteHidesProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewPatientProfileRepository()

	patient := seedPatient(t, db, "pat@example.com")

	profile, err := repo.FindByUserID(db, patient.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "pat@example.com", profile.User.Email)

	affected, err := repo.SoftDelete(db, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	profile, err = repo.FindByUserID(db, patient.ID)
	require.NoError(t, err)
	assert.Nil(t, profile)

	exists, err := repo.ExistsIncludeDeleted(db, patient.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	affected, err = repo.SoftDelete(db, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	_, total, err := repo.FindAll(db, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
