package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminProfileRepository struct{}

func NewAdminProfileRepository() domainRepo.AdminProfileRepository {
	return &adminProfileRepository{}
}

func (r *adminProfileRepository) Create(db *gorm.DB, profile *entity.AdminProfile) error {
	return db.Create(profile).Error
}

func (r *adminProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.AdminProfile, error) {
	var profile entity.AdminProfile
	err := db.Scopes(notDeleted).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *adminProfileRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.AdminProfile, int64, error) {
	var profiles []entity.AdminProfile
	var total int64

	if err := db.Model(&entity.AdminProfile{}).Scopes(notDeleted).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Scopes(notDeleted).Preload("User").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *adminProfileRepository) Update(db *gorm.DB, profile *entity.AdminProfile) error {
	return db.Save(profile).Error
}

func (r *adminProfileRepository) SoftDelete(db *gorm.DB, userID uuid.UUID) (int64, error) {
	result := db.Model(&entity.AdminProfile{}).
		Scopes(notDeleted).
		Where("user_id = ?", userID).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
