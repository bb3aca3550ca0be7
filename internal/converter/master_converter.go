package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

func TestMasterToResponse(test *entity.TestMaster) *dto.TestMasterResponse {
	if test == nil {
		return nil
	}

	return &dto.TestMasterResponse{
		ID:          test.ID,
		TestName:    test.TestName,
		Description: test.Description,
		Price:       test.Price,
	}
}

func TestMastersToResponses(tests []entity.TestMaster) []dto.TestMasterResponse {
	responses := make([]dto.TestMasterResponse, len(tests))
	for i := range tests {
		responses[i] = *TestMasterToResponse(&tests[i])
	}
	return responses
}

func DosageMasterToResponse(dosage *entity.DosageMaster) *dto.DosageMasterResponse {
	if dosage == nil {
		return nil
	}

	return &dto.DosageMasterResponse{
		ID:         dosage.ID,
		DosageName: dosage.DosageName,
		Amount:     dosage.Amount,
		Unit:       dosage.Unit,
	}
}

func DosageMastersToResponses(dosages []entity.DosageMaster) []dto.DosageMasterResponse {
	responses := make([]dto.DosageMasterResponse, len(dosages))
	for i := range dosages {
		responses[i] = *DosageMasterToResponse(&dosages[i])
	}
	return responses
}
