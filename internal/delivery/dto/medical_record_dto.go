package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	Diagnosis string    `json:"diagnosis" validate:"required"`
	Symptoms  string    `json:"symptoms" validate:"omitempty"`
	Notes     string    `json:"notes" validate:"omitempty"`

	Prescriptions    []PrescriptionRequest    `json:"prescriptions" validate:"omitempty,dive"`
	RecommendedTests []RecommendedTestRequest `json:"recommended_tests" validate:"omitempty,dive"`
}

type UpdateMedicalRecordRequest struct {
	Diagnosis string `json:"diagnosis" validate:"omitempty"`
	Symptoms  string `json:"symptoms" validate:"omitempty"`
	Notes     string `json:"notes" validate:"omitempty"`
}

type PrescriptionRequest struct {
	DosageID     int    `json:"dosage_id" validate:"required,gte=1"`
	MedicineName string `json:"medicine_name" validate:"required"`
	Instructions string `json:"instructions" validate:"omitempty"`
	DurationDays int    `json:"duration_days" validate:"omitempty,gte=0"`
}

type RecommendedTestRequest struct {
	TestID int    `json:"test_id" validate:"required,gte=1"`
	Notes  string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	Diagnosis   string    `json:"diagnosis"`
	Symptoms    string    `json:"symptoms,omitempty"`
	Notes       string    `json:"notes,omitempty"`

	Prescriptions    []PrescriptionResponse    `json:"prescriptions,omitempty"`
	RecommendedTests []RecommendedTestResponse `json:"recommended_tests,omitempty"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int64                   `json:"total"`
}

type PrescriptionResponse struct {
	ID           uuid.UUID       `json:"id"`
	MedicineName string          `json:"medicine_name"`
	DosageName   string          `json:"dosage_name,omitempty"`
	DosageAmount decimal.Decimal `json:"dosage_amount"`
	DosageUnit   string          `json:"dosage_unit,omitempty"`
	Instructions string          `json:"instructions,omitempty"`
	DurationDays int             `json:"duration_days"`
}

type RecommendedTestResponse struct {
	ID       uuid.UUID       `json:"id"`
	TestName string          `json:"test_name,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Notes    string          `json:"notes,omitempty"`
}
