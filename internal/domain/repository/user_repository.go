package repository

import (
	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	// SoftDelete flips is_deleted on a live row and reports affected rows.
	SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error)
	// ExistsIncludeDeleted bypasses the soft-delete filter. Used only to make
	// repeated deletes report not-found instead of erroring.
	ExistsIncludeDeleted(db *gorm.DB, id uuid.UUID) (bool, error)
	// FindByEmailIncludeDeleted bypasses the soft-delete filter so that
	// addresses of deleted accounts stay reserved.
	FindByEmailIncludeDeleted(db *gorm.DB, email string) (*entity.User, error)
}
