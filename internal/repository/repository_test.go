package repository

import (
	"testing"
	"time"

	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the schema created by
// hand. The production schema uses postgres defaults like gen_random_uuid(),
// so tests set IDs explicitly instead of relying on column defaults.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	statements := []string{
		`CREATE TABLE roles (
			id INTEGER PRIMARY KEY,
			role_name TEXT NOT NULL UNIQUE,
			description TEXT
		)`,
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			role_id INTEGER NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			full_name TEXT NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE patient_profiles (
			user_id TEXT PRIMARY KEY,
			phone_number TEXT,
			date_of_birth DATE NOT NULL,
			gender TEXT NOT NULL,
			blood_group TEXT,
			address TEXT,
			is_deleted BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE doctor_profiles (
			user_id TEXT PRIMARY KEY,
			license_number TEXT NOT NULL UNIQUE,
			specialization TEXT NOT NULL,
			biography TEXT,
			is_deleted BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE appointments (
			id TEXT PRIMARY KEY,
			patient_id TEXT NOT NULL,
			doctor_id TEXT NOT NULL,
			appointment_date DATE NOT NULL,
			start_time TEXT NOT NULL,
			reason TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			is_deleted BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE test_masters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			test_name TEXT NOT NULL UNIQUE,
			description TEXT,
			price DECIMAL(10,2) NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE recommended_tests (
			id TEXT PRIMARY KEY,
			medical_record_id TEXT NOT NULL,
			test_id INTEGER NOT NULL,
			notes TEXT,
			is_deleted BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

// seedUser inserts a user with an explicit ID and returns it.
func seedUser(t *testing.T, db *gorm.DB, roleID int, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:       uuid.New(),
		RoleID:   roleID,
		Email:    email,
		Password: "hashed",
		FullName: "Test User",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPatient(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := seedUser(t, db, entity.RoleIDPatient, email)
	profile := &entity.PatientProfile{
		UserID:      user.ID,
		DateOfBirth: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Gender:      entity.GenderFemale,
	}
	require.NoError(t, db.Create(profile).Error)
	return user
}

func seedDoctor(t *testing.T, db *gorm.DB, email, license string) *entity.User {
	t.Helper()

	user := seedUser(t, db, entity.RoleIDDoctor, email)
	profile := &entity.DoctorProfile{
		UserID:         user.ID,
		LicenseNumber:  license,
		Specialization: "Cardiology",
	}
	require.NoError(t, db.Create(profile).Error)
	return user
}

func seedAppointment(t *testing.T, db *gorm.DB, doctorID, patientID uuid.UUID) *entity.Appointment {
	t.Helper()

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:30",
		Status:          entity.AppointmentStatusPending,
	}
	require.NoError(t, db.Create(appointment).Error)
	return appointment
}
