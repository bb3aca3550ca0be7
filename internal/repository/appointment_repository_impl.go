package repository

import (
	"errors"

	"go-hospital-management/internal/domain/entity"
	domainRepo "go-hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Scopes(notDeleted).
		Preload("Patient.User").
		Preload("Doctor.User").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Appointment, int64, error) {
	return r.findWhere(db, limit, offset)
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error) {
	return r.findWhere(db, limit, offset, "doctor_id = ?", doctorID)
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID, limit, offset int) ([]entity.Appointment, int64, error) {
	return r.findWhere(db, limit, offset, "patient_id = ?", patientID)
}

func (r *appointmentRepository) findWhere(db *gorm.DB, limit, offset int, conds ...interface{}) ([]entity.Appointment, int64, error) {
	var appointments []entity.Appointment
	var total int64

	countQuery := db.Model(&entity.Appointment{}).Scopes(notDeleted)
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
		Order("appointment_date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

func (r *appointmentRepository) SoftDelete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Scopes(notDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) ExistsIncludeDeleted(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepository) ExistsForDoctorPatient(db *gorm.DB, doctorID, patientID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Scopes(notDeleted).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Count(&count).Error
	return count > 0, err
}
