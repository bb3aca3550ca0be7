package service

import (
	"context"

	"go-hospital-management/config"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedService writes the fixed role set, the permission matrix and the
// bootstrap superadmin account to the database at startup. Seeding is
// idempotent; permission_grants rows are created once and never mutated in
// normal operation.
type SeedService struct {
	db        *gorm.DB
	log       *logrus.Logger
	cfg       config.SeedConfig
	roleRepo  repository.RoleRepository
	grantRepo repository.PermissionGrantRepository
	userRepo  repository.UserRepository
	adminRepo repository.AdminProfileRepository
}

func NewSeedService(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.SeedConfig,
	roleRepo repository.RoleRepository,
	grantRepo repository.PermissionGrantRepository,
	userRepo repository.UserRepository,
	adminRepo repository.AdminProfileRepository,
) *SeedService {
	return &SeedService{
		db:        db,
		log:       log,
		cfg:       cfg,
		roleRepo:  roleRepo,
		grantRepo: grantRepo,
		userRepo:  userRepo,
		adminRepo: adminRepo,
	}
}

var roleDescriptions = map[int]string{
	entity.RoleIDPatient:    "Registered patient",
	entity.RoleIDDoctor:     "Practicing doctor",
	entity.RoleIDAdmin:      "Hospital administrator",
	entity.RoleIDSuperAdmin: "System owner",
}

// Seed runs all seed steps in one transaction.
func (s *SeedService) Seed(ctx context.Context) error {
	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := s.seedRoles(tx); err != nil {
		return err
	}
	if err := s.seedPermissionGrants(tx); err != nil {
		return err
	}
	if err := s.seedSuperAdmin(tx); err != nil {
		return err
	}

	return tx.Commit().Error
}

func (s *SeedService) seedRoles(tx *gorm.DB) error {
	for _, roleID := range []int{entity.RoleIDPatient, entity.RoleIDDoctor, entity.RoleIDAdmin, entity.RoleIDSuperAdmin} {
		role := &entity.Role{
			ID:          roleID,
			RoleName:    entity.RoleName(roleID),
			Description: roleDescriptions[roleID],
		}
		if err := s.roleRepo.Upsert(tx, role); err != nil {
			s.log.Warnf("Failed to seed role %d: %+v", roleID, err)
			return err
		}
	}
	return nil
}

// seedPermissionGrants persists the in-process matrix for audit and display.
// The gate never reads these rows; they must stay consistent with
// entity.RolePermissionMatrix, which upserting on every start guarantees.
func (s *SeedService) seedPermissionGrants(tx *gorm.DB) error {
	for roleID, permissions := range entity.RolePermissionMatrix() {
		for _, permission := range permissions {
			grant := &entity.PermissionGrant{
				RoleID:     roleID,
				Permission: permission,
			}
			if err := s.grantRepo.Upsert(tx, grant); err != nil {
				s.log.Warnf("Failed to seed permission grant %d/%s: %+v", roleID, permission, err)
				return err
			}
		}
	}
	return nil
}

func (s *SeedService) seedSuperAdmin(tx *gorm.DB) error {
	if s.cfg.SuperAdminEmail == "" || s.cfg.SuperAdminPassword == "" {
		s.log.Info("Superadmin seed credentials not configured, skipping")
		return nil
	}

	existing, err := s.userRepo.FindByEmailIncludeDeleted(tx, s.cfg.SuperAdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.cfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entity.User{
		Email:    s.cfg.SuperAdminEmail,
		Password: string(hashedPassword),
		FullName: "Super Administrator",
		RoleID:   entity.RoleIDSuperAdmin,
	}
	if err := s.userRepo.Create(tx, user); err != nil {
		return err
	}

	profile := &entity.AdminProfile{
		UserID:      user.ID,
		Designation: "System Owner",
	}
	if err := s.adminRepo.Create(tx, profile); err != nil {
		return err
	}

	s.log.Infof("Seeded superadmin account %s", s.cfg.SuperAdminEmail)
	return nil
}
