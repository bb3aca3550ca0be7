package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentRepositoryFindAllFiltersDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository()

	doctor := seedDoctor(t, db, "doc@example.com", "LIC-100")
	patient := seedPatient(t, db, "pat@example.com")

	kept := seedAppointment(t, db, doctor.ID, patient.ID)
	dropped := seedAppointment(t, db, doctor.ID, patient.ID)

	_, err := repo.SoftDelete(db, dropped.ID)
	require.NoError(t, err)

	appointments, total, err := repo.FindAll(db, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, appointments, 1)
	assert.Equal(t, kept.ID, appointments[0].ID)

	// FindByID on the soft-deleted row reports missing without an error
	found, err := repo.FindByID(db, dropped.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = repo.FindByID(db, kept.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, patient.ID, found.PatientID)
}

func TestAppointmentRepositoryFindByParticipant(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository()

	doctorA := seedDoctor(t, db, "doc-a@example.com", "LIC-200")
	doctorB := seedDoctor(t, db, "doc-b@example.com", "LIC-201")
	patient := seedPatient(t, db, "pat2@example.com")

	forA := seedAppointment(t, db, doctorA.ID, patient.ID)
	seedAppointment(t, db, doctorB.ID, patient.ID)

	appointments, total, err := repo.FindByDoctorID(db, doctorA.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, appointments, 1)
	assert.Equal(t, forA.ID, appointments[0].ID)

	appointments, total, err = repo.FindByPatientID(db, patient.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, appointments, 2)
}

func TestAppointmentRepositoryExistsForDoctorPatient(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository()

	doctor := seedDoctor(t, db, "doc3@example.com", "LIC-300")
	assigned := seedPatient(t, db, "assigned@example.com")
	stranger := seedPatient(t, db, "stranger@example.com")

	appointment := seedAppointment(t, db, doctor.ID, assigned.ID)

	exists, err := repo.ExistsForDoctorPatient(db, doctor.ID, assigned.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForDoctorPatient(db, doctor.ID, stranger.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// A cancelled (soft-deleted) appointment no longer counts as assignment
	_, err = repo.SoftDelete(db, appointment.ID)
	require.NoError(t, err)

	exists, err = repo.ExistsForDoctorPatient(db, doctor.ID, assigned.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
