package repository

import (
	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type permissionGrantRepository struct{}

func NewPermissionGrantRepository() domainRepo.PermissionGrantRepository {
	return &permissionGrantRepository{}
}

func (r *permissionGrantRepository) Upsert(db *gorm.DB, grant *entity.PermissionGrant) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role_id"}, {Name: "permission"}},
		DoNothing: true,
	}).Create(grant).Error
}

func (r *permissionGrantRepository) FindAll(db *gorm.DB) ([]entity.PermissionGrant, error) {
	var grants []entity.PermissionGrant
	err := db.Preload("Role").Order("role_id, permission").Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}

func (r *permissionGrantRepository) FindByRoleID(db *gorm.DB, roleID int) ([]entity.PermissionGrant, error) {
	var grants []entity.PermissionGrant
	err := db.Where("role_id = ?", roleID).Order("permission").Find(&grants).Error
	if err != nil {
		return nil, err
	}
	return grants, nil
}
