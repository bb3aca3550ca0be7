package repository

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminProfileRepository interface {
	Create(db *gorm.DB, profile *entity.AdminProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.AdminProfile, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.AdminProfile, int64, error)
	Update(db *gorm.DB, profile *entity.AdminProfile) error
	SoftDelete(db *gorm.DB, userID uuid.UUID) (int64, error)
}
