package repository

import (
	"go-hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type PermissionGrantRepository interface {
	Upsert(db *gorm.DB, grant *entity.PermissionGrant) error
	FindAll(db *gorm.DB) ([]entity.PermissionGrant, error)
	FindByRoleID(db *gorm.DB, roleID int) ([]entity.PermissionGrant, error)
}
