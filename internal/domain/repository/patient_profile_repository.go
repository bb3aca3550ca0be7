package repository

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.PatientProfile, int64, error)
	// FindAssignedToDoctor returns patients that have at least one appointment
	// with the given doctor.
	FindAssignedToDoctor(db *gorm.DB, doctorID uuid.UUID, limit, offset int) ([]entity.PatientProfile, int64, error)
	Update(db *gorm.DB, profile *entity.PatientProfile) error
	SoftDelete(db *gorm.DB, userID uuid.UUID) (int64, error)
	ExistsIncludeDeleted(db *gorm.DB, userID uuid.UUID) (bool, error)
}
