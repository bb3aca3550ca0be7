package usecase

import (
	"context"
	"errors"
	"strconv"

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
	ErrTestMasterNotFound   = errors.New("test master not found")
	ErrDosageMasterNotFound = errors.New("dosage master not found")
	ErrTestNameExists       = errors.New("test name already exists")
	ErrDosageNameExists     = errors.New("dosage name already exists")
)

// MasterDataUsecase covers the lookup tables medical records reference:
// laboratory tests and dosage presets.
type MasterDataUsecase interface {
	CreateTest(ctx context.Context, actorID uuid.UUID, req *dto.CreateTestMasterRequest) (*dto.TestMasterResponse, error)
	GetTest(ctx context.Context, id int) (*dto.TestMasterResponse, error)
	GetTests(ctx context.Context, page, limit int) (*dto.TestMasterListResponse, error)
	UpdateTest(ctx context.Context, actorID uuid.UUID, id int, req *dto.UpdateTestMasterRequest) (*dto.TestMasterResponse, error)
	DeleteTest(ctx context.Context, actorID uuid.UUID, id int) error

	CreateDosage(ctx context.Context, actorID uuid.UUID, req *dto.CreateDosageMasterRequest) (*dto.DosageMasterResponse, error)
	GetDosage(ctx context.Context, id int) (*dto.DosageMasterResponse, error)
	GetDosages(ctx context.Context, page, limit int) (*dto.DosageMasterListResponse, error)
	UpdateDosage(ctx context.Context, actorID uuid.UUID, id int, req *dto.UpdateDosageMasterRequest) (*dto.DosageMasterResponse, error)
	DeleteDosage(ctx context.Context, actorID uuid.UUID, id int) error
}

type masterDataUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	testRepo     repository.TestMasterRepository
	dosageRepo   repository.DosageMasterRepository
	auditService service.AuditService
}

func NewMasterDataUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	testRepo repository.TestMasterRepository,
	dosageRepo repository.DosageMasterRepository,
	auditService service.AuditService,
) MasterDataUsecase {
	return &masterDataUsecase{
		db:           db,
		log:          log,
		testRepo:     testRepo,
		dosageRepo:   dosageRepo,
		auditService: auditService,
	}
}

func (u *masterDataUsecase) CreateTest(ctx context.Context, actorID uuid.UUID, req *dto.CreateTestMasterRequest) (*dto.TestMasterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	test := &entity.TestMaster{
		TestName:    req.TestName,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := u.testRepo.Create(tx, test); err != nil {
		if isDuplicateKeyError(err, "test_name") {
			return nil, ErrTestNameExists
		}
		u.log.Warnf("Failed to create test master: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionTestMasterCreate, "test_master", strconv.Itoa(test.ID), map[string]interface{}{
		"test_name": test.TestName,
		"price":     test.Price.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TestMasterToResponse(test), nil
}

func (u *masterDataUsecase) GetTest(ctx context.Context, id int) (*dto.TestMasterResponse, error) {
	test, err := u.testRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find test master: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestMasterNotFound
	}
	return converter.TestMasterToResponse(test), nil
}

func (u *masterDataUsecase) GetTests(ctx context.Context, page, limit int) (*dto.TestMasterListResponse, error) {
	offset := (page - 1) * limit

	tests, total, err := u.testRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list test masters: %+v", err)
		return nil, err
	}

	return &dto.TestMasterListResponse{
		Tests: converter.TestMastersToResponses(tests),
		Total: total,
	}, nil
}

func (u *masterDataUsecase) UpdateTest(ctx context.Context, actorID uuid.UUID, id int, req *dto.UpdateTestMasterRequest) (*dto.TestMasterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Deleted rows are invisible here, so updating one reports not-found
	test, err := u.testRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find test master: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestMasterNotFound
	}

	old := map[string]interface{}{
		"test_name": test.TestName,
		"price":     test.Price.String(),
	}

	if req.TestName != "" {
		test.TestName = req.TestName
	}
	if req.Description != "" {
		test.Description = req.Description
	}
	if req.Price != nil {
		test.Price = *req.Price
	}

	if err := u.testRepo.Update(tx, test); err != nil {
		if isDuplicateKeyError(err, "test_name") {
			return nil, ErrTestNameExists
		}
		u.log.Warnf("Failed to update test master: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionTestMasterUpdate, "test_master", strconv.Itoa(id), old, map[string]interface{}{
		"test_name": test.TestName,
		"price":     test.Price.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TestMasterToResponse(test), nil
}

// DeleteTest soft-deletes; existing recommended tests keep their reference.
func (u *masterDataUsecase) DeleteTest(ctx context.Context, actorID uuid.UUID, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.testRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete test master: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrTestMasterNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionTestMasterDelete, "test_master", strconv.Itoa(id), nil); err != nil {
		return err
	}

	return tx.Commit().Error
}

func (u *masterDataUsecase) CreateDosage(ctx context.Context, actorID uuid.UUID, req *dto.CreateDosageMasterRequest) (*dto.DosageMasterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	dosage := &entity.DosageMaster{
		DosageName: req.DosageName,
		Amount:     req.Amount,
		Unit:       req.Unit,
	}

	if err := u.dosageRepo.Create(tx, dosage); err != nil {
		if isDuplicateKeyError(err, "dosage_name") {
			return nil, ErrDosageNameExists
		}
		u.log.Warnf("Failed to create dosage master: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionDosageMasterCreate, "dosage_master", strconv.Itoa(dosage.ID), map[string]interface{}{
		"dosage_name": dosage.DosageName,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DosageMasterToResponse(dosage), nil
}

func (u *masterDataUsecase) GetDosage(ctx context.Context, id int) (*dto.DosageMasterResponse, error) {
	dosage, err := u.dosageRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find dosage master: %+v", err)
		return nil, err
	}
	if dosage == nil {
		return nil, ErrDosageMasterNotFound
	}
	return converter.DosageMasterToResponse(dosage), nil
}

func (u *masterDataUsecase) GetDosages(ctx context.Context, page, limit int) (*dto.DosageMasterListResponse, error) {
	offset := (page - 1) * limit

	dosages, total, err := u.dosageRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list dosage masters: %+v", err)
		return nil, err
	}

	return &dto.DosageMasterListResponse{
		Dosages: converter.DosageMastersToResponses(dosages),
		Total:   total,
	}, nil
}

func (u *masterDataUsecase) UpdateDosage(ctx context.Context, actorID uuid.UUID, id int, req *dto.UpdateDosageMasterRequest) (*dto.DosageMasterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	dosage, err := u.dosageRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find dosage master: %+v", err)
		return nil, err
	}
	if dosage == nil {
		return nil, ErrDosageMasterNotFound
	}

	old := map[string]interface{}{
		"dosage_name": dosage.DosageName,
		"amount":      dosage.Amount.String(),
		"unit":        dosage.Unit,
	}

	if req.DosageName != "" {
		dosage.DosageName = req.DosageName
	}
	if req.Amount != nil {
		dosage.Amount = *req.Amount
	}
	if req.Unit != "" {
		dosage.Unit = req.Unit
	}

	if err := u.dosageRepo.Update(tx, dosage); err != nil {
		if isDuplicateKeyError(err, "dosage_name") {
			return nil, ErrDosageNameExists
		}
		u.log.Warnf("Failed to update dosage master: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionDosageMasterUpdate, "dosage_master", strconv.Itoa(id), old, map[string]interface{}{
		"dosage_name": dosage.DosageName,
		"amount":      dosage.Amount.String(),
		"unit":        dosage.Unit,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DosageMasterToResponse(dosage), nil
}

func (u *masterDataUsecase) DeleteDosage(ctx context.Context, actorID uuid.UUID, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.dosageRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete dosage master: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDosageMasterNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionDosageMasterDelete, "dosage_master", strconv.Itoa(id), nil); err != nil {
		return err
	}

	return tx.Commit().Error
}
