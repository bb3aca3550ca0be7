package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type dosageMasterRepository struct{}

func NewDosageMasterRepository() domainRepo.DosageMasterRepository {
	return &dosageMasterRepository{}
}

func (r *dosageMasterRepository) Create(db *gorm.DB, dosage *entity.DosageMaster) error {
	return db.Create(dosage).Error
}

func (r *dosageMasterRepository) FindByID(db *gorm.DB, id int) (*entity.DosageMaster, error) {
	var dosage entity.DosageMaster
	err := db.Scopes(notDeleted).Where("id = ?", id).First(&dosage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dosage, nil
}

func (r *dosageMasterRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.DosageMaster, int64, error) {
	var dosages []entity.DosageMaster
	var total int64

	if err := db.Model(&entity.DosageMaster{}).Scopes(notDeleted).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Scopes(notDeleted).
		Limit(limit).Offset(offset).
		Order("dosage_name").
		Find(&dosages).Error
	if err != nil {
		return nil, 0, err
	}
	return dosages, total, nil
}

func (r *dosageMasterRepository) Update(db *gorm.DB, dosage *entity.DosageMaster) error {
	return db.Save(dosage).Error
}

func (r *dosageMasterRepository) SoftDelete(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.DosageMaster{}).
		Scopes(notDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
