package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type TestMasterRepository interface {
	Create(db *gorm.DB, test *entity.TestMaster) error
	FindByID(db *gorm.DB, id int) (*entity.TestMaster, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.TestMaster, int64, error)
	Update(db *gorm.DB, test *entity.TestMaster) error
	SoftDelete(db *gorm.DB, id int) (int64, error)
}
