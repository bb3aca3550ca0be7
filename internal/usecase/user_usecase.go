package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrCannotCreateRole = errors.New("not allowed to create a user with this role")
	ErrCannotManageUser = errors.New("not allowed to manage this user")
	ErrProfileRequired  = errors.New("profile data required for this role")
	ErrLicenseRequired  = errors.New("license number required for doctor accounts")
	ErrCannotDeleteSelf = errors.New("cannot delete own account")
)

type UserUsecase interface {
	CreateUser(ctx context.Context, actorID uuid.UUID, actorRoleID int, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, actorID uuid.UUID, actorRoleID int, targetID uuid.UUID) error
}

type userUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	adminProfileRepo   repository.AdminProfileRepository
	auditService       service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	adminProfileRepo repository.AdminProfileRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		adminProfileRepo:   adminProfileRepo,
		auditService:       auditService,
	}
}

// createPermissionFor maps a target role to the permission the creator must
// hold. Holding a CREATE_* permission is necessary but not sufficient: the
// hierarchy check runs as well, so nobody can create at or above their own
// level even when the matrix grants the permission.
func createPermissionFor(roleID int) string {
	switch roleID {
	case entity.RoleIDPatient:
		return entity.PermissionCreatePatient
	case entity.RoleIDDoctor:
		return entity.PermissionCreateDoctor
	case entity.RoleIDAdmin:
		return entity.PermissionCreateAdmin
	case entity.RoleIDSuperAdmin:
		return entity.PermissionCreateSuperAdmin
	default:
		return ""
	}
}

func (u *userUsecase) CreateUser(ctx context.Context, actorID uuid.UUID, actorRoleID int, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.CanCreate(actorRoleID, req.RoleID) {
		return nil, ErrCannotCreateRole
	}
	if !entity.HasPermission(actorRoleID, createPermissionFor(req.RoleID)) {
		return nil, ErrCannotCreateRole
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Deleted accounts keep their email reserved
	existing, err := u.userRepo.FindByEmailIncludeDeleted(tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   req.RoleID,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.createProfile(tx, user, req); err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionUserCreate, "user", user.ID.String(), map[string]interface{}{
		"email":   user.Email,
		"role_id": user.RoleID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) createProfile(tx *gorm.DB, user *entity.User, req *dto.CreateUserRequest) error {
	switch user.RoleID {
	case entity.RoleIDPatient:
		if req.Patient == nil {
			return ErrProfileRequired
		}
		dob, err := time.Parse("2006-01-02", req.Patient.DateOfBirth)
		if err != nil {
			return ErrInvalidDateFormat
		}
		profile := &entity.PatientProfile{
			UserID:      user.ID,
			PhoneNumber: req.Patient.PhoneNumber,
			DateOfBirth: dob,
			Gender:      req.Patient.Gender,
			BloodGroup:  req.Patient.BloodGroup,
			Address:     req.Patient.Address,
		}
		if err := u.patientProfileRepo.Create(tx, profile); err != nil {
			u.log.Warnf("Failed to create patient profile: %+v", err)
			return err
		}
		user.PatientProfile = profile

	case entity.RoleIDDoctor:
		if req.Doctor == nil {
			return ErrProfileRequired
		}
		if req.Doctor.LicenseNumber == "" {
			return ErrLicenseRequired
		}
		profile := &entity.DoctorProfile{
			UserID:         user.ID,
			LicenseNumber:  req.Doctor.LicenseNumber,
			Specialization: req.Doctor.Specialization,
			Biography:      req.Doctor.Biography,
		}
		if err := u.doctorProfileRepo.Create(tx, profile); err != nil {
			if isDuplicateKeyError(err, "license_number") {
				return ErrLicenseAlreadyExists
			}
			u.log.Warnf("Failed to create doctor profile: %+v", err)
			return err
		}
		user.DoctorProfile = profile

	case entity.RoleIDAdmin, entity.RoleIDSuperAdmin:
		profile := &entity.AdminProfile{UserID: user.ID}
		if req.Admin != nil {
			profile.Designation = req.Admin.Designation
			profile.PhoneNumber = req.Admin.PhoneNumber
		}
		if err := u.adminProfileRepo.Create(tx, profile); err != nil {
			u.log.Warnf("Failed to create admin profile: %+v", err)
			return err
		}
		user.AdminProfile = profile
	}

	return nil
}

// DeleteUser soft-deletes the target account and its profile row. Deleting an
// already-deleted or unknown user reports not-found without error.
func (u *userUsecase) DeleteUser(ctx context.Context, actorID uuid.UUID, actorRoleID int, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrCannotDeleteSelf
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	target, err := u.userRepo.FindByID(tx, targetID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	if !entity.CanManage(actorRoleID, target.RoleID) {
		return ErrCannotManageUser
	}

	affected, err := u.userRepo.SoftDelete(tx, targetID)
	if err != nil {
		u.log.Warnf("Failed to soft delete user: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	// The profile row follows the user
	switch target.RoleID {
	case entity.RoleIDPatient:
		_, err = u.patientProfileRepo.SoftDelete(tx, targetID)
	case entity.RoleIDDoctor:
		_, err = u.doctorProfileRepo.SoftDelete(tx, targetID)
	case entity.RoleIDAdmin, entity.RoleIDSuperAdmin:
		_, err = u.adminProfileRepo.SoftDelete(tx, targetID)
	}
	if err != nil {
		u.log.Warnf("Failed to soft delete profile: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionUserDelete, "user", targetID.String(), map[string]interface{}{
		"email":   target.Email,
		"role_id": target.RoleID,
	}); err != nil {
		return err
	}

	return tx.Commit().Error
}
