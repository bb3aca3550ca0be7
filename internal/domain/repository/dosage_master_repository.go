package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type DosageMasterRepository interface {
	Create(db *gorm.DB, dosage *entity.DosageMaster) error
	FindByID(db *gorm.DB, id int) (*entity.DosageMaster, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.DosageMaster, int64, error)
	Update(db *gorm.DB, dosage *entity.DosageMaster) error
	SoftDelete(db *gorm.DB, id int) (int64, error)
}
