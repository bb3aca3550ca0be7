package repository

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	FindByMedicalRecordID(db *gorm.DB, medicalRecordID uuid.UUID) ([]entity.Prescription, error)
	Update(db *gorm.DB, prescription *entity.Prescription) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
}
