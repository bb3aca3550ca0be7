package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateTestMasterRequest struct {
	TestName    string          `json:"test_name" validate:"required"`
	Description string          `json:"description" validate:"omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

type UpdateTestMasterRequest struct {
	TestName    string           `json:"test_name" validate:"omitempty"`
	Description string           `json:"description" validate:"omitempty"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty"`
}

type CreateDosageMasterRequest struct {
	DosageName string          `json:"dosage_name" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Unit       string          `json:"unit" validate:"required,max=20"`
}

type UpdateDosageMasterRequest struct {
	DosageName string           `json:"dosage_name" validate:"omitempty"`
	Amount     *decimal.Decimal `json:"amount" validate:"omitempty"`
	Unit       string           `json:"unit" validate:"omitempty,max=20"`
}

// Response DTOs

type TestMasterResponse struct {
	ID          int             `json:"id"`
	TestName    string          `json:"test_name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type TestMasterListResponse struct {
	Tests []TestMasterResponse `json:"tests"`
	Total int64                `json:"total"`
}

type DosageMasterResponse struct {
	ID         int             `json:"id"`
	DosageName string          `json:"dosage_name"`
	Amount     decimal.Decimal `json:"amount"`
	Unit       string          `json:"unit"`
}

type DosageMasterListResponse struct {
	Dosages []DosageMasterResponse `json:"dosages"`
	Total   int64                  `json:"total"`
}
