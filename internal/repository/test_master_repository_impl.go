package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type testMasterRepository struct{}

func NewTestMasterRepository() domainRepo.TestMasterRepository {
	return &testMasterRepository{}
}

func (r *testMasterRepository) Create(db *gorm.DB, test *entity.TestMaster) error {
	return db.Create(test).Error
}

func (r *testMasterRepository) FindByID(db *gorm.DB, id int) (*entity.TestMaster, error) {
	var test entity.TestMaster
	err := db.Scopes(notDeleted).Where("id = ?", id).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *testMasterRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.TestMaster, int64, error) {
	var tests []entity.TestMaster
	var total int64

	if err := db.Model(&entity.TestMaster{}).Scopes(notDeleted).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Scopes(notDeleted).
		Limit(limit).Offset(offset).
		Order("test_name").
		Find(&tests).Error
	if err != nil {
		return nil, 0, err
	}
	return tests, total, nil
}

func (r *testMasterRepository) Update(db *gorm.DB, test *entity.TestMaster) error {
	return db.Save(test).Error
}

func (r *testMasterRepository) SoftDelete(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.TestMaster{}).
		Scopes(notDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
