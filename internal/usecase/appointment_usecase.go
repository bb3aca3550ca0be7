package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrNotAppointmentParticipant = errors.New("not a participant of this appointment")
	ErrInvalidTimeFormat         = errors.New("invalid time format, use HH:MM")
	ErrAppointmentInPast         = errors.New("appointment date must be in the future")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAppointments(ctx context.Context, actorID uuid.UUID, actorRoleID int, page, limit int) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, ErrAppointmentInPast
	}

	doctor, err := u.doctorRepo.FindByUserID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: date,
		StartTime:       req.StartTime,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentBook, "appointment", appointment.ID.String(), map[string]interface{}{
		"doctor_id":        appointment.DoctorID.String(),
		"appointment_date": req.AppointmentDate,
		"start_time":       req.StartTime,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Reload with participants for the response
	created, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || created == nil {
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(created), nil
}

// checkAppointmentScope keeps participants and the "all" permission holders
// in; everyone else gets a participant error regardless of role.
func checkAppointmentScope(actorID uuid.UUID, actorRoleID int, appointment *entity.Appointment) error {
	if entity.HasPermission(actorRoleID, entity.PermissionManageAllAppointments) {
		return nil
	}
	if entity.HasPermission(actorRoleID, entity.PermissionManageAssignedAppointments) && appointment.DoctorID == actorID {
		return nil
	}
	if appointment.PatientID == actorID {
		return nil
	}
	return ErrNotAppointmentParticipant
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := checkAppointmentScope(actorID, actorRoleID, appointment); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointments(ctx context.Context, actorID uuid.UUID, actorRoleID int, page, limit int) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)
	offset := (page - 1) * limit

	var (
		appointments []entity.Appointment
		total        int64
		err          error
	)
	switch {
	case entity.HasPermission(actorRoleID, entity.PermissionManageAllAppointments):
		appointments, total, err = u.appointmentRepo.FindAll(db, limit, offset)
	case entity.HasPermission(actorRoleID, entity.PermissionManageAssignedAppointments):
		appointments, total, err = u.appointmentRepo.FindByDoctorID(db, actorID, limit, offset)
	default:
		appointments, total, err = u.appointmentRepo.FindByPatientID(db, actorID, limit, offset)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Deleted rows are invisible here, so updating one reports not-found
	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := checkAppointmentScope(actorID, actorRoleID, appointment); err != nil {
		return nil, err
	}

	oldStatus := appointment.Status
	appointment.Status = entity.AppointmentStatus(req.Status)

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentUpdate, "appointment", id.String(),
		map[string]interface{}{"status": string(oldStatus)},
		map[string]interface{}{"status": req.Status},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Cancel soft-deletes the appointment. Cancelling an already-cancelled or
// unknown appointment reports not-found without error.
func (u *appointmentUsecase) Cancel(ctx context.Context, actorID uuid.UUID, actorRoleID int, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := checkAppointmentScope(actorID, actorRoleID, appointment); err != nil {
		return err
	}

	affected, err := u.appointmentRepo.SoftDelete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to soft delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionAppointmentCancel, "appointment", id.String(), map[string]interface{}{
		"status": string(appointment.Status),
	}); err != nil {
		return err
	}

	return tx.Commit().Error
}
