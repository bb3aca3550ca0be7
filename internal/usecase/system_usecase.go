package usecase

import (
	"context"
	"errors"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAuditLogNotFound = errors.New("audit log not found")

// SystemUsecase serves the read-only admin surfaces: the seeded permission
// matrix and the audit trail.
type SystemUsecase interface {
	GetPermissionMatrix(ctx context.Context) (*dto.PermissionMatrixResponse, error)
	GetAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type systemUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	grantRepo    repository.PermissionGrantRepository
	auditLogRepo repository.AuditLogRepository
}

func NewSystemUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	grantRepo repository.PermissionGrantRepository,
	auditLogRepo repository.AuditLogRepository,
) SystemUsecase {
	return &systemUsecase{
		db:           db,
		log:          log,
		grantRepo:    grantRepo,
		auditLogRepo: auditLogRepo,
	}
}

func (u *systemUsecase) GetPermissionMatrix(ctx context.Context) (*dto.PermissionMatrixResponse, error) {
	grants, err := u.grantRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list permission grants: %+v", err)
		return nil, err
	}

	return converter.PermissionGrantsToMatrixResponse(grants), nil
}

func (u *systemUsecase) GetAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error) {
	offset := (page - 1) * limit

	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: total,
	}, nil
}

func (u *systemUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	log, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if log == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(log), nil
}
