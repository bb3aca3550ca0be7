package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Create(profile).Error
}

func (r *patientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.Scopes(notDeleted).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.PatientProfile, int64, error) {
	var profiles []entity.PatientProfile
	var total int64

	if err := db.Model(&entity.PatientProfile{}).Scopes(notDeleted).Count(&total).Error; err != nil {
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

func (r *patientProfileRepository) FindAssignedToDoctor(db *gorm.DB, doctorID uuid.UUID, limit, offset int) ([]entity.PatientProfile, int64, error) {
	var profiles []entity.PatientProfile
	var total int64

	base := db.Model(&entity.PatientProfile{}).
		Scopes(notDeleted).
		Where("user_id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Model(&entity.Appointment{}).
			Select("patient_id").
			Where("doctor_id = ? AND is_deleted = ?", doctorID, false))

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Preload("User").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *patientProfileRepository) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Save(profile).Error
}

func (r *patientProfileRepository) SoftDelete(db *gorm.DB, userID uuid.UUID) (int64, error) {
	result := db.Model(&entity.PatientProfile{}).
		Scopes(notDeleted).
		Where("user_id = ?", userID).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}

func (r *patientProfileRepository) ExistsIncludeDeleted(db *gorm.DB, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.PatientProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}
