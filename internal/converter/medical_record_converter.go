package converter

import (
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity (with any loaded
// prescriptions and recommended tests) to a MedicalRecordResponse DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	resp := &dto.MedicalRecordResponse{
		ID:          record.ID,
		PatientID:   record.PatientID,
		PatientName: record.Patient.User.FullName,
		DoctorID:    record.DoctorID,
		DoctorName:  record.Doctor.User.FullName,
		Diagnosis:   record.Diagnosis,
		Symptoms:    record.Symptoms,
		Notes:       record.Notes,
	}

	for i := range record.Prescriptions {
		resp.Prescriptions = append(resp.Prescriptions, *PrescriptionToResponse(&record.Prescriptions[i]))
	}
	for i := range record.RecommendedTests {
		resp.RecommendedTests = append(resp.RecommendedTests, *RecommendedTestToResponse(&record.RecommendedTests[i]))
	}

	return resp
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}

// PrescriptionToResponse converts a Prescription entity to a PrescriptionResponse DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:           prescription.ID,
		MedicineName: prescription.MedicineName,
		DosageName:   prescription.Dosage.DosageName,
		DosageAmount: prescription.Dosage.Amount,
		DosageUnit:   prescription.Dosage.Unit,
		Instructions: prescription.Instructions,
		DurationDays: prescription.DurationDays,
	}
}

// RecommendedTestToResponse converts a RecommendedTest entity to a RecommendedTestResponse DTO
func RecommendedTestToResponse(test *entity.RecommendedTest) *dto.RecommendedTestResponse {
	if test == nil {
		return nil
	}

	return &dto.RecommendedTestResponse{
		ID:       test.ID,
		TestName: test.Test.TestName,
		Price:    test.Test.Price,
		Notes:    test.Notes,
	}
}
