package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// Create handles a doctor writing a medical record
// @Summary Create medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicalRecordRequest true "Create Record Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records [post]
func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDosageNotFound, usecase.ErrTestNotFound:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

// GetRecords handles listing medical records for the caller's scope
// @Summary List medical records
// @Description All records for admins, own authored records for doctors, own history for patients
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /medical-records [get]
func (h *MedicalRecordHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	actorRoleID, _ := middleware.GetRoleIDFromContext(r.Context())

	page, limit := parsePagination(r)

	list, err := h.recordUsecase.GetRecords(r.Context(), actorID, actorRoleID, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list medical records")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Medical records retrieved successfully", list.Records, response.NewMeta(page, limit, list.Total))
}

// GetRecord handles fetching one medical record
// @Summary Get medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [get]
func (h *MedicalRecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	actorRoleID, _ := middleware.GetRoleIDFromContext(r.Context())

	id, err := parseUUIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	record, err := h.recordUsecase.GetRecord(r.Context(), actorID, actorRoleID, id)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecordNotVisible:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

// Update handles the owning doctor editing a record
// @Summary Update medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.UpdateMedicalRecordRequest true "Update Record Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [put]
func (h *MedicalRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseUUIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Update(r.Context(), actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrNotRecordOwner:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", record)
}

// Delete handles medical record soft deletion
// @Summary Delete medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [delete]
func (h *MedicalRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseUUIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	if err := h.recordUsecase.Delete(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrNotRecordOwner:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to delete medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record deleted successfully", nil)
}

// AddPrescription appends a prescription to an owned record
// @Summary Add prescription
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.PrescriptionRequest true "Prescription Request"
// @Success 201 {object} response.Response
// @Router /medical-records/{id}/prescriptions [post]
func (h *MedicalRecordHandler) AddPrescription(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	recordID, err := parseUUIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	var req dto.PrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.recordUsecase.AddPrescription(r.Context(), actorID, recordID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrNotRecordOwner:
			response.Forbidden(w, err.Error())
		case usecase.ErrDosageNotFound:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to add prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription added successfully", prescription)
}

// RemovePrescription soft-deletes a prescription from an owned record
// @Summary Remove prescription
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Param prescriptionId path string true "Prescription ID"
// @Success 200 {object} response.Response
// @Router /medical-records/{id}/prescriptions/{prescriptionId} [delete]
func (h *MedicalRecordHandler) RemovePrescription(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	recordID, err := parseUUIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}
	prescriptionID, err := parseUUIDVar(r, "prescriptionId")
	if err != nil {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	if err := h.recordUsecase.RemovePrescription(r.Context(), actorID, recordID, prescriptionID); err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case usecase.ErrNotRecordOwner:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to remove prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription removed successfully", nil)
}

// AddRecommendedTest appends a recommended test to an owned record
// @Summary Add recommended test
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.RecommendedTestRequest true "Recommended Test Request"
// @Success 201 {object} response.Response
// @Router /medical-records/{id}/recommended-tests [post]
func (h *MedicalRecordHandler) AddRecommendedTest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	recordID, err := parseUUIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	var req dto.RecommendedTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	recommended, err := h.recordUsecase.AddRecommendedTest(r.Context(), actorID, recordID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrNotRecordOwner:
			response.Forbidden(w, err.Error())
		case usecase.ErrTestNotFound:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to add recommended test")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Recommended test added successfully", recommended)
}

// RemoveRecommendedTest soft-deletes a recommended test from an owned record
// @Summary Remove recommended test
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Param testId path string true "Recommended Test ID"
// @Success 200 {object} response.Response
// @Router /medical-records/{id}/recommended-tests/{testId} [delete]
func (h *MedicalRecordHandler) RemoveRecommendedTest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	recordID, err := parseUUIDVar(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}
	testID, err := parseUUIDVar(r, "testId")
	if err != nil {
		response.BadRequest(w, "Invalid recommended test ID")
		return
	}

	if err := h.recordUsecase.RemoveRecommendedTest(r.Context(), actorID, recordID, testID); err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecommendedTestNotFound:
			response.NotFound(w, "Recommended test not found")
		case usecase.ErrNotRecordOwner:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to remove recommended test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Recommended test removed successfully", nil)
}
