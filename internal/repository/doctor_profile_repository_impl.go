package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Scopes(notDeleted).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.DoctorProfile, int64, error) {
	var profiles []entity.DoctorProfile
	var total int64

	if err := db.Model(&entity.DoctorProfile{}).Scopes(notDeleted).Count(&total).Error; err != nil {
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

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Save(profile).Error
}

func (r *doctorProfileRepository) SoftDelete(db *gorm.DB, userID uuid.UUID) (int64, error) {
	result := db.Model(&entity.DoctorProfile{}).
		Scopes(notDeleted).
		Where("user_id = ?", userID).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}

func (r *doctorProfileRepository) ExistsIncludeDeleted(db *gorm.DB, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.DoctorProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}
