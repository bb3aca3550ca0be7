package usecase

import (
	"context"
	"io"
	"testing"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/repository"
	"go-hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMasterDataUsecase(t *testing.T) (MasterDataUsecase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	statements := []string{
		`CREATE TABLE test_masters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			test_name TEXT NOT NULL UNIQUE,
			description TEXT,
			price DECIMAL(10,2) NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE dosage_masters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dosage_name TEXT NOT NULL UNIQUE,
			amount DECIMAL(10,2) NOT NULL,
			unit TEXT NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE audit_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT,
			action TEXT NOT NULL,
			metadata TEXT,
			created_at DATETIME
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())
	uc := NewMasterDataUsecase(db, log,
		repository.NewTestMasterRepository(),
		repository.NewDosageMasterRepository(),
		auditService,
	)
	return uc, db
}

func TestMasterDataTestLifecycle(t *testing.T) {
	uc, db := newMasterDataUsecase(t)
	ctx := context.Background()
	actorID := uuid.New()

	created, err := uc.CreateTest(ctx, actorID, &dto.CreateTestMasterRequest{
		TestName: "Complete Blood Count",
		Price:    decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := uc.GetTest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Complete Blood Count", found.TestName)

	require.NoError(t, uc.DeleteTest(ctx, actorID, created.ID))

	// Deleted rows disappear from reads and from updates alike
	_, err = uc.GetTest(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTestMasterNotFound)

	_, err = uc.UpdateTest(ctx, actorID, created.ID, &dto.UpdateTestMasterRequest{TestName: "Renamed"})
	assert.ErrorIs(t, err, ErrTestMasterNotFound)

	// Deleting again reports not found instead of silently succeeding
	err = uc.DeleteTest(ctx, actorID, created.ID)
	assert.ErrorIs(t, err, ErrTestMasterNotFound)

	list, err := uc.GetTests(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.Total)

	// Create and delete each left an audit trail entry
	var auditCount int64
	require.NoError(t, db.Model(&entity.AuditLog{}).Count(&auditCount).Error)
	assert.Equal(t, int64(2), auditCount)
}

func TestMasterDataDosageLifecycle(t *testing.T) {
	uc, _ := newMasterDataUsecase(t)
	ctx := context.Background()
	actorID := uuid.New()

	created, err := uc.CreateDosage(ctx, actorID, &dto.CreateDosageMasterRequest{
		DosageName: "Paracetamol 500",
		Amount:     decimal.NewFromInt(500),
		Unit:       "mg",
	})
	require.NoError(t, err)

	amount := decimal.NewFromInt(650)
	updated, err := uc.UpdateDosage(ctx, actorID, created.ID, &dto.UpdateDosageMasterRequest{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, amount.Equal(updated.Amount))

	require.NoError(t, uc.DeleteDosage(ctx, actorID, created.ID))

	_, err = uc.GetDosage(ctx, created.ID)
	assert.ErrorIs(t, err, ErrDosageMasterNotFound)
}
