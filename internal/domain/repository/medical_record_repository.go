package repository

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.MedicalRecord, int64, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit, offset int) ([]entity.MedicalRecord, int64, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID, limit, offset int) ([]entity.MedicalRecord, int64, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	ExistsIncludeDeleted(db *gorm.DB, id uuid.UUID) (bool, error)
}
