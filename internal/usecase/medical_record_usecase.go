package usecase

import (
	"context"
	"errors"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"
	"go-hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicalRecordNotFound   = errors.New("medical record not found")
	ErrNotRecordOwner          = errors.New("medical record belongs to another doctor")
	ErrRecordNotVisible        = errors.New("medical record is not visible to this user")
	ErrDosageNotFound          = errors.New("dosage not found")
	ErrTestNotFound            = errors.New("test not found")
	ErrPrescriptionNotFound    = errors.New("prescription not found")
	ErrRecommendedTestNotFound = errors.New("recommended test not found")
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, doctorID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetRecord(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID) (*dto.MedicalRecordResponse, error)
	GetRecords(ctx context.Context, actorID uuid.UUID, actorRoleID int, page, limit int) (*dto.MedicalRecordListResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	AddPrescription(ctx context.Context, actorID uuid.UUID, recordID uuid.UUID, req *dto.PrescriptionRequest) (*dto.PrescriptionResponse, error)
	RemovePrescription(ctx context.Context, actorID uuid.UUID, recordID, prescriptionID uuid.UUID) error
	AddRecommendedTest(ctx context.Context, actorID uuid.UUID, recordID uuid.UUID, req *dto.RecommendedTestRequest) (*dto.RecommendedTestResponse, error)
	RemoveRecommendedTest(ctx context.Context, actorID uuid.UUID, recordID, testID uuid.UUID) error
}

type medicalRecordUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	recordRepo       repository.MedicalRecordRepository
	prescriptionRepo repository.PrescriptionRepository
	recommendedRepo  repository.RecommendedTestRepository
	patientRepo      repository.PatientProfileRepository
	dosageRepo       repository.DosageMasterRepository
	testRepo         repository.TestMasterRepository
	auditService     service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	prescriptionRepo repository.PrescriptionRepository,
	recommendedRepo repository.RecommendedTestRepository,
	patientRepo repository.PatientProfileRepository,
	dosageRepo repository.DosageMasterRepository,
	testRepo repository.TestMasterRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:               db,
		log:              log,
		recordRepo:       recordRepo,
		prescriptionRepo: prescriptionRepo,
		recommendedRepo:  recommendedRepo,
		patientRepo:      patientRepo,
		dosageRepo:       dosageRepo,
		testRepo:         testRepo,
		auditService:     auditService,
	}
}

func (u *medicalRecordUsecase) Create(ctx context.Context, doctorID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record := &entity.MedicalRecord{
		PatientID: req.PatientID,
		DoctorID:  doctorID,
		Diagnosis: req.Diagnosis,
		Symptoms:  req.Symptoms,
		Notes:     req.Notes,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	for i := range req.Prescriptions {
		if _, err := u.createPrescription(tx, record.ID, &req.Prescriptions[i]); err != nil {
			return nil, err
		}
	}
	for i := range req.RecommendedTests {
		if _, err := u.createRecommendedTest(tx, record.ID, &req.RecommendedTests[i]); err != nil {
			return nil, err
		}
	}

	if err := u.auditService.LogCreate(ctx, tx, &doctorID, entity.AuditActionMedicalRecordCreate, "medical_record", record.ID.String(), map[string]interface{}{
		"patient_id": req.PatientID.String(),
		"diagnosis":  req.Diagnosis,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	created, err := u.recordRepo.FindByID(u.db.WithContext(ctx), record.ID)
	if err != nil || created == nil {
		return converter.MedicalRecordToResponse(record), nil
	}
	return converter.MedicalRecordToResponse(created), nil
}

func (u *medicalRecordUsecase) createPrescription(tx *gorm.DB, recordID uuid.UUID, req *dto.PrescriptionRequest) (*entity.Prescription, error) {
	dosage, err := u.dosageRepo.FindByID(tx, req.DosageID)
	if err != nil {
		u.log.Warnf("Failed to find dosage master: %+v", err)
		return nil, err
	}
	if dosage == nil {
		return nil, ErrDosageNotFound
	}

	prescription := &entity.Prescription{
		MedicalRecordID: recordID,
		DosageID:        req.DosageID,
		MedicineName:    req.MedicineName,
		Instructions:    req.Instructions,
		DurationDays:    req.DurationDays,
	}
	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}
	prescription.Dosage = *dosage
	return prescription, nil
}

func (u *medicalRecordUsecase) createRecommendedTest(tx *gorm.DB, recordID uuid.UUID, req *dto.RecommendedTestRequest) (*entity.RecommendedTest, error) {
	test, err := u.testRepo.FindByID(tx, req.TestID)
	if err != nil {
		u.log.Warnf("Failed to find test master: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	recommended := &entity.RecommendedTest{
		MedicalRecordID: recordID,
		TestID:          req.TestID,
		Notes:           req.Notes,
	}
	if err := u.recommendedRepo.Create(tx, recommended); err != nil {
		u.log.Warnf("Failed to create recommended test: %+v", err)
		return nil, err
	}
	recommended.Test = *test
	return recommended, nil
}

// checkRecordVisibility: VIEW_ALL reaches everything, VIEW_ASSIGNED only the
// acting doctor's own records, and a patient sees records written about them.
func checkRecordVisibility(actorID uuid.UUID, actorRoleID int, record *entity.MedicalRecord) error {
	if entity.HasPermission(actorRoleID, entity.PermissionViewAllMedicalRecords) {
		return nil
	}
	if entity.HasPermission(actorRoleID, entity.PermissionViewAssignedMedicalRecords) && record.DoctorID == actorID {
		return nil
	}
	if record.PatientID == actorID {
		return nil
	}
	return ErrRecordNotVisible
}

func (u *medicalRecordUsecase) GetRecord(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}

	if err := checkRecordVisibility(actorID, actorRoleID, record); err != nil {
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetRecords(ctx context.Context, actorID uuid.UUID, actorRoleID int, page, limit int) (*dto.MedicalRecordListResponse, error) {
	db := u.db.WithContext(ctx)
	offset := (page - 1) * limit

	var (
		records []entity.MedicalRecord
		total   int64
		err     error
	)
	switch {
	case entity.HasPermission(actorRoleID, entity.PermissionViewAllMedicalRecords):
		records, total, err = u.recordRepo.FindAll(db, limit, offset)
	case entity.HasPermission(actorRoleID, entity.PermissionViewAssignedMedicalRecords):
		records, total, err = u.recordRepo.FindByDoctorID(db, actorID, limit, offset)
	default:
		records, total, err = u.recordRepo.FindByPatientID(db, actorID, limit, offset)
	}
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   total,
	}, nil
}

// findOwnedRecord loads a live record and verifies the acting doctor wrote it.
// Only the owning doctor may modify a record.
func (u *medicalRecordUsecase) findOwnedRecord(tx *gorm.DB, actorID uuid.UUID, id uuid.UUID) (*entity.MedicalRecord, error) {
	record, err := u.recordRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	if record.DoctorID != actorID {
		return nil, ErrNotRecordOwner
	}
	return record, nil
}

func (u *medicalRecordUsecase) Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.findOwnedRecord(tx, actorID, id)
	if err != nil {
		return nil, err
	}

	old := map[string]interface{}{
		"diagnosis": record.Diagnosis,
		"symptoms":  record.Symptoms,
		"notes":     record.Notes,
	}

	if req.Diagnosis != "" {
		record.Diagnosis = req.Diagnosis
	}
	if req.Symptoms != "" {
		record.Symptoms = req.Symptoms
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}

	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update medical record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionMedicalRecordUpdate, "medical_record", id.String(), old, map[string]interface{}{
		"diagnosis": record.Diagnosis,
		"symptoms":  record.Symptoms,
		"notes":     record.Notes,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

// Delete soft-deletes the record. Re-deleting reports not-found without error.
func (u *medicalRecordUsecase) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.findOwnedRecord(tx, actorID, id)
	if err != nil {
		return err
	}

	affected, err := u.recordRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete medical record: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrMedicalRecordNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionMedicalRecordDelete, "medical_record", id.String(), map[string]interface{}{
		"diagnosis": record.Diagnosis,
	}); err != nil {
		return err
	}

	return tx.Commit().Error
}

func (u *medicalRecordUsecase) AddPrescription(ctx context.Context, actorID uuid.UUID, recordID uuid.UUID, req *dto.PrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findOwnedRecord(tx, actorID, recordID); err != nil {
		return nil, err
	}

	prescription, err := u.createPrescription(tx, recordID, req)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionMedicalRecordUpdate, "medical_record", recordID.String(), nil, map[string]interface{}{
		"prescription_added": prescription.ID.String(),
		"medicine_name":      prescription.MedicineName,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *medicalRecordUsecase) RemovePrescription(ctx context.Context, actorID uuid.UUID, recordID, prescriptionID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findOwnedRecord(tx, actorID, recordID); err != nil {
		return err
	}

	prescription, err := u.prescriptionRepo.FindByID(tx, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return err
	}
	if prescription == nil || prescription.MedicalRecordID != recordID {
		return ErrPrescriptionNotFound
	}

	affected, err := u.prescriptionRepo.SoftDelete(tx, prescriptionID)
	if err != nil {
		u.log.Warnf("Failed to soft delete prescription: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPrescriptionNotFound
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionMedicalRecordUpdate, "medical_record", recordID.String(), map[string]interface{}{
		"prescription_removed": prescriptionID.String(),
	}, nil); err != nil {
		return err
	}

	return tx.Commit().Error
}

func (u *medicalRecordUsecase) AddRecommendedTest(ctx context.Context, actorID uuid.UUID, recordID uuid.UUID, req *dto.RecommendedTestRequest) (*dto.RecommendedTestResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findOwnedRecord(tx, actorID, recordID); err != nil {
		return nil, err
	}

	recommended, err := u.createRecommendedTest(tx, recordID, req)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionMedicalRecordUpdate, "medical_record", recordID.String(), nil, map[string]interface{}{
		"recommended_test_added": recommended.ID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RecommendedTestToResponse(recommended), nil
}

func (u *medicalRecordUsecase) RemoveRecommendedTest(ctx context.Context, actorID uuid.UUID, recordID, testID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findOwnedRecord(tx, actorID, recordID); err != nil {
		return err
	}

	recommended, err := u.recommendedRepo.FindByID(tx, testID)
	if err != nil {
		u.log.Warnf("Failed to find recommended test: %+v", err)
		return err
	}
	if recommended == nil || recommended.MedicalRecordID != recordID {
		return ErrRecommendedTestNotFound
	}

	affected, err := u.recommendedRepo.SoftDelete(tx, testID)
	if err != nil {
		u.log.Warnf("Failed to soft delete recommended test: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrRecommendedTestNotFound
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionMedicalRecordUpdate, "medical_record", recordID.String(), map[string]interface{}{
		"recommended_test_removed": testID.String(),
	}, nil); err != nil {
		return err
	}

	return tx.Commit().Error
}
