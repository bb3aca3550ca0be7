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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrNotAssignedPatient = errors.New("patient is not assigned to this doctor")
	ErrWrongOldPassword   = errors.New("old password does not match")
)

type PatientUsecase interface {
	GetPatient(ctx context.Context, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID) (*dto.PatientResponse, error)
	GetPatients(ctx context.Context, actorID uuid.UUID, actorRoleID int, page, limit int) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	UpdateSelfProfile(ctx context.Context, userID uuid.UUID, req *dto.PatientUpdateSelfRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID) error
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	patientRepo     repository.PatientProfileRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// checkPatientScope enforces record-level access on top of the route gate:
// MANAGE_ALL_PATIENTS reaches everyone, MANAGE_ASSIGNED_PATIENTS only patients
// with a live appointment with the acting doctor, MANAGE_OWN_DATA only the
// actor's own row.
func (u *patientUsecase) checkPatientScope(db *gorm.DB, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID) error {
	if entity.HasPermission(actorRoleID, entity.PermissionManageAllPatients) {
		return nil
	}
	if entity.HasPermission(actorRoleID, entity.PermissionManageAssignedPatients) {
		assigned, err := u.appointmentRepo.ExistsForDoctorPatient(db, actorID, patientID)
		if err != nil {
			u.log.Warnf("Failed to check patient assignment: %+v", err)
			return err
		}
		if !assigned {
			return ErrNotAssignedPatient
		}
		return nil
	}
	if actorID == patientID {
		return nil
	}
	return ErrNotAssignedPatient
}

func (u *patientUsecase) GetPatient(ctx context.Context, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.checkPatientScope(db, actorID, actorRoleID, patientID); err != nil {
		return nil, err
	}

	profile, err := u.patientRepo.FindByUserID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientUsecase) GetPatients(ctx context.Context, actorID uuid.UUID, actorRoleID int, page, limit int) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)
	offset := (page - 1) * limit

	var (
		profiles []entity.PatientProfile
		total    int64
		err      error
	)
	if entity.HasPermission(actorRoleID, entity.PermissionManageAllPatients) {
		profiles, total, err = u.patientRepo.FindAll(db, limit, offset)
	} else {
		profiles, total, err = u.patientRepo.FindAssignedToDoctor(db, actorID, limit, offset)
	}
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientProfilesToResponses(profiles),
		Total:    total,
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkPatientScope(tx, actorID, actorRoleID, patientID); err != nil {
		return nil, err
	}

	// Deleted rows are invisible here, so updating one reports not-found
	profile, err := u.patientRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	old := map[string]interface{}{
		"email":        profile.User.Email,
		"full_name":    profile.User.FullName,
		"phone_number": profile.PhoneNumber,
	}

	if req.Email != "" && req.Email != profile.User.Email {
		existing, err := u.userRepo.FindByEmailIncludeDeleted(tx, req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailAlreadyExists
		}
		profile.User.Email = req.Email
	}
	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.BloodGroup != "" {
		profile.BloodGroup = req.BloodGroup
	}
	if req.Address != "" {
		profile.Address = req.Address
	}

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}
	if err := u.patientRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionPatientUpdate, "patient", patientID.String(), old, map[string]interface{}{
		"email":        profile.User.Email,
		"full_name":    profile.User.FullName,
		"phone_number": profile.PhoneNumber,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientProfileToResponse(profile), nil
}

// UpdateSelfProfile covers the MANAGE_OWN_DATA surface: contact details and an
// old-password-verified password change. Identity fields stay fixed.
func (u *patientUsecase) UpdateSelfProfile(ctx context.Context, userID uuid.UUID, req *dto.PatientUpdateSelfRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	if req.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(profile.User.Password), []byte(req.OldPassword)); err != nil {
			return nil, ErrWrongOldPassword
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		profile.User.Password = string(hashedPassword)
		if err := u.userRepo.Update(tx, &profile.User); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
	}

	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		profile.Address = req.Address
	}

	if err := u.patientRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionPatientUpdate, "patient", userID.String(), nil, map[string]interface{}{
		"phone_number": profile.PhoneNumber,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientProfileToResponse(profile), nil
}

// DeletePatient soft-deletes the account and profile. Re-deleting reports
// not-found without error.
func (u *patientUsecase) DeletePatient(ctx context.Context, actorID uuid.UUID, actorRoleID int, patientID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkPatientScope(tx, actorID, actorRoleID, patientID); err != nil {
		return err
	}

	affected, err := u.patientRepo.SoftDelete(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to soft delete patient profile: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if _, err := u.userRepo.SoftDelete(tx, patientID); err != nil {
		u.log.Warnf("Failed to soft delete user: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionPatientDelete, "patient", patientID.String(), nil); err != nil {
		return err
	}

	return tx.Commit().Error
}
