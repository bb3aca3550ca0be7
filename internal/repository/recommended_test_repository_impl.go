package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recommendedTestRepository struct{}

func NewRecommendedTestRepository() domainRepo.RecommendedTestRepository {
	return &recommendedTestRepository{}
}

func (r *recommendedTestRepository) Create(db *gorm.DB, test *entity.RecommendedTest) error {
	return db.Create(test).Error
}

func (r *recommendedTestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.RecommendedTest, error) {
	var test entity.RecommendedTest
	err := db.Scopes(notDeleted).Preload("Test").Where("id = ?", id).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *recommendedTestRepository) FindByMedicalRecordID(db *gorm.DB, medicalRecordID uuid.UUID) ([]entity.RecommendedTest, error) {
	var tests []entity.RecommendedTest
	err := db.Scopes(notDeleted).Preload("Test").
		Where("medical_record_id = ?", medicalRecordID).
		Order("created_at").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *recommendedTestRepository) Update(db *gorm.DB, test *entity.RecommendedTest) error {
	return db.Save(test).Error
}

func (r *recommendedTestRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.RecommendedTest{}).
		Scopes(notDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
