package repository

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecommendedTestRepository interface {
	Create(db *gorm.DB, test *entity.RecommendedTest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.RecommendedTest, error)
	FindByMedicalRecordID(db *gorm.DB, medicalRecordID uuid.UUID) ([]entity.RecommendedTest, error)
	Update(db *gorm.DB, test *entity.RecommendedTest) error
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
}
