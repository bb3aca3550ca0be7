package repository

import (
	"testing"

	"go-hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendedTestRepositoryLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecommendedTestRepository()

	master := &entity.TestMaster{
		TestName: "Lipid Panel",
		Price:    decimal.NewFromInt(200),
	}
	require.NoError(t, db.Create(master).Error)

	recordID := uuid.New()
	ordered := &entity.RecommendedTest{
		ID:              uuid.New(),
		MedicalRecordID: recordID,
		TestID:          master.ID,
		Notes:           "fasting required",
	}
	require.NoError(t, repo.Create(db, ordered))

	found, err := repo.FindByID(db, ordered.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, recordID, found.MedicalRecordID)
	assert.Equal(t, "Lipid Panel", found.Test.TestName)

	tests, err := repo.FindByMedicalRecordID(db, recordID)
	require.NoError(t, err)
	require.Len(t, tests, 1)

	affected, err := repo.SoftDelete(db, ordered.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err = repo.FindByID(db, ordered.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	tests, err = repo.FindByMedicalRecordID(db, recordID)
	require.NoError(t, err)
	assert.Empty(t, tests)

	affected, err = repo.SoftDelete(db, ordered.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
