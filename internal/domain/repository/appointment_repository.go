package repository

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Appointment, int64, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	ExistsIncludeDeleted(db *gorm.DB, id uuid.UUID) (bool, error)
	// ExistsForDoctorPatient reports whether the patient has at least one live
	// appointment with the doctor. Backs the assigned-scope checks.
	ExistsForDoctorPatient(db *gorm.DB, doctorID, patientID uuid.UUID) (bool, error)
}
