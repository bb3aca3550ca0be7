package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

// MasterHandler serves the test and dosage lookup tables.
type MasterHandler struct {
	masterUsecase usecase.MasterDataUsecase
	validator     *validator.CustomValidator
}

func NewMasterHandler(masterUsecase usecase.MasterDataUsecase, validator *validator.CustomValidator) *MasterHandler {
	return &MasterHandler{
		masterUsecase: masterUsecase,
		validator:     validator,
	}
}

// CreateTest handles creating a laboratory test entry
// @Summary Create test master
// @Tags Masters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTestMasterRequest true "Create Test Request"
// @Success 201 {object} response.Response
// @Router /masters/tests [post]
func (h *MasterHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateTestMasterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.masterUsecase.CreateTest(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTestNameExists:
			response.Conflict(w, "Test name already exists")
		default:
			response.InternalServerError(w, "Failed to create test")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Test created successfully", test)
}

// GetTests handles listing laboratory tests
// @Summary List test masters
// @Tags Masters
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /masters/tests [get]
func (h *MasterHandler) GetTests(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	list, err := h.masterUsecase.GetTests(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list tests")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Tests retrieved successfully", list.Tests, response.NewMeta(page, limit, list.Total))
}

// GetTest handles fetching one test entry
// @Summary Get test master
// @Tags Masters
// @Security BearerAuth
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /masters/tests/{id} [get]
func (h *MasterHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	test, err := h.masterUsecase.GetTest(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTestMasterNotFound:
			response.NotFound(w, "Test not found")
		default:
			response.InternalServerError(w, "Failed to get test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test retrieved successfully", test)
}

// UpdateTest handles updating a test entry
// @Summary Update test master
// @Tags Masters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param request body dto.UpdateTestMasterRequest true "Update Test Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /masters/tests/{id} [put]
func (h *MasterHandler) UpdateTest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	var req dto.UpdateTestMasterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.masterUsecase.UpdateTest(r.Context(), actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTestMasterNotFound:
			response.NotFound(w, "Test not found")
		case usecase.ErrTestNameExists:
			response.Conflict(w, "Test name already exists")
		default:
			response.InternalServerError(w, "Failed to update test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test updated successfully", test)
}

// DeleteTest handles test soft deletion
// @Summary Delete test master
// @Tags Masters
// @Security BearerAuth
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /masters/tests/{id} [delete]
func (h *MasterHandler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	if err := h.masterUsecase.DeleteTest(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrTestMasterNotFound:
			response.NotFound(w, "Test not found")
		default:
			response.InternalServerError(w, "Failed to delete test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test deleted successfully", nil)
}

// CreateDosage handles creating a dosage preset
// @Summary Create dosage master
// @Tags Masters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDosageMasterRequest true "Create Dosage Request"
// @Success 201 {object} response.Response
// @Router /masters/dosages [post]
func (h *MasterHandler) CreateDosage(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateDosageMasterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dosage, err := h.masterUsecase.CreateDosage(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDosageNameExists:
			response.Conflict(w, "Dosage name already exists")
		default:
			response.InternalServerError(w, "Failed to create dosage")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Dosage created successfully", dosage)
}

// GetDosages handles listing dosage presets
// @Summary List dosage masters
// @Tags Masters
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /masters/dosages [get]
func (h *MasterHandler) GetDosages(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	list, err := h.masterUsecase.GetDosages(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list dosages")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Dosages retrieved successfully", list.Dosages, response.NewMeta(page, limit, list.Total))
}

// GetDosage handles fetching one dosage preset
// @Summary Get dosage master
// @Tags Masters
// @Security BearerAuth
// @Produce json
// @Param id path int true "Dosage ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /masters/dosages/{id} [get]
func (h *MasterHandler) GetDosage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid dosage ID")
		return
	}

	dosage, err := h.masterUsecase.GetDosage(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDosageMasterNotFound:
			response.NotFound(w, "Dosage not found")
		default:
			response.InternalServerError(w, "Failed to get dosage")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dosage retrieved successfully", dosage)
}

// UpdateDosage handles updating a dosage preset
// @Summary Update dosage master
// @Tags Masters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Dosage ID"
// @Param request body dto.UpdateDosageMasterRequest true "Update Dosage Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /masters/dosages/{id} [put]
func (h *MasterHandler) UpdateDosage(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid dosage ID")
		return
	}

	var req dto.UpdateDosageMasterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dosage, err := h.masterUsecase.UpdateDosage(r.Context(), actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDosageMasterNotFound:
			response.NotFound(w, "Dosage not found")
		case usecase.ErrDosageNameExists:
			response.Conflict(w, "Dosage name already exists")
		default:
			response.InternalServerError(w, "Failed to update dosage")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dosage updated successfully", dosage)
}

// DeleteDosage handles dosage soft deletion
// @Summary Delete dosage master
// @Tags Masters
// @Security BearerAuth
// @Produce json
// @Param id path int true "Dosage ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /masters/dosages/{id} [delete]
func (h *MasterHandler) DeleteDosage(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid dosage ID")
		return
	}

	if err := h.masterUsecase.DeleteDosage(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrDosageMasterNotFound:
			response.NotFound(w, "Dosage not found")
		default:
			response.InternalServerError(w, "Failed to delete dosage")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dosage deleted successfully", nil)
}
