package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Scopes(notDeleted).
		Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Prescriptions", "is_deleted = ?", false).
		Preload("Prescriptions.Dosage").
		Preload("RecommendedTests", "is_deleted = ?", false).
		Preload("RecommendedTests.Test").
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.MedicalRecord, int64, error) {
	return r.findWhere(db, limit, offset)
}

func (r *medicalRecordRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit, offset int) ([]entity.MedicalRecord, int64, error) {
	return r.findWhere(db, limit, offset, "doctor_id = ?", doctorID)
}

func (r *medicalRecordRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID, limit, offset int) ([]entity.MedicalRecord, int64, error) {
	return r.findWhere(db, limit, offset, "patient_id = ?", patientID)
}

func (r *medicalRecordRepository) findWhere(db *gorm.DB, limit, offset int, conds ...interface{}) ([]entity.MedicalRecord, int64, error) {
	var records []entity.MedicalRecord
	var total int64

	countQuery := db.Model(&entity.MedicalRecord{}).Scopes(notDeleted)
	listQuery := db.Scopes(notDeleted)
	if len(conds) > 0 {
		countQuery = countQuery.Where(conds[0], conds[1:]...)
		listQuery = listQuery.Where(conds[0], conds[1:]...)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := listQuery.
		Preload("Patient.User").
		Preload("Doctor.User").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *medicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Save(record).Error
}

func (r *medicalRecordRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.MedicalRecord{}).
		Scopes(notDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}

func (r *medicalRecordRepository) ExistsIncludeDeleted(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.MedicalRecord{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
